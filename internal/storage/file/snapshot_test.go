package file_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/borsel2002/yollar-burada/internal/domain"
	"github.com/borsel2002/yollar-burada/internal/storage/file"
	"github.com/borsel2002/yollar-burada/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func testMarkers() []domain.Marker {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Marker{
		{
			ID:          uuid.New(),
			Coordinates: domain.Coordinates{Lat: 41.0, Lng: 29.0},
			Metadata:    domain.MarkerMetadata{Name: "A", Category: domain.CategoryHazard, Description: "pothole"},
			CreatedAt:   created,
			ExpiresAt:   created.Add(domain.MarkerTTL),
			CreatorID:   "dev1",
			Proof:       "opaque-token",
		},
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "markers.json")
	snap := file.New(path, newTestLogger())

	want := testMarkers()
	if err := snap.Save(want); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := snap.Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: got=%+v want=%+v", got, want)
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	snap := file.New(filepath.Join(t.TempDir(), "absent.json"), newTestLogger())

	got, err := snap.Load()
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty set, got %d markers", len(got))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "markers.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	snap := file.New(path, newTestLogger())
	if _, err := snap.Load(); !errors.Is(err, e.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestSave_NilBecomesEmptyArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "markers.json")
	snap := file.New(path, newTestLogger())

	if err := snap.Save(nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(bytes.TrimSpace(data)) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", data)
	}
}

func TestSave_OverwritesWhole(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "markers.json")
	snap := file.New(path, newTestLogger())

	if err := snap.Save(testMarkers()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := snap.Save([]domain.Marker{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := snap.Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("second save must replace the document, got %d markers", len(got))
	}
}
