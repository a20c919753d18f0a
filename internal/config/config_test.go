package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/borsel2002/yollar-burada/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "HTTP_PORT", "SNAPSHOT_PATH", "SNAPSHOT_DISABLED",
		"SWEEP_INTERVAL", "SWEEP_GRACE", "API_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Env != "local" {
		t.Fatalf("unexpected env %q", cfg.Env)
	}
	if cfg.Http.Port != ":8080" {
		t.Fatalf("unexpected port %q", cfg.Http.Port)
	}
	if cfg.Snapshot.Path != "markers.json" || cfg.Snapshot.Disabled {
		t.Fatalf("unexpected snapshot config %+v", cfg.Snapshot)
	}
	if cfg.Sweep.Interval != time.Minute || cfg.Sweep.Grace != 10*time.Minute {
		t.Fatalf("unexpected sweep config %+v", cfg.Sweep)
	}
	if cfg.APIKey != "" {
		t.Fatalf("API_KEY must not default to a usable secret, got %q", cfg.APIKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("SNAPSHOT_DISABLED", "true")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("API_KEY", "test-key")

	cfg, err := config.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Env != "prod" || cfg.Http.Port != ":9090" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.Snapshot.Disabled {
		t.Fatal("SNAPSHOT_DISABLED=true not applied")
	}
	if cfg.Sweep.Interval != 30*time.Second {
		t.Fatalf("unexpected sweep interval %v", cfg.Sweep.Interval)
	}
	if cfg.APIKey != "test-key" {
		t.Fatalf("unexpected api key %q", cfg.APIKey)
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080") // no leading colon

	if _, err := config.Load(context.Background()); err == nil {
		t.Fatal("expected validation error for a port without ':'")
	}
}
