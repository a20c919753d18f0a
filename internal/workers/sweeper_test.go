package workers_test

import (
	"bytes"
	"testing"
	"time"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/borsel2002/yollar-burada/internal/domain"
	mock_service "github.com/borsel2002/yollar-burada/internal/service/mocks"
	"github.com/borsel2002/yollar-burada/internal/store"
	"github.com/borsel2002/yollar-burada/internal/workers"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func markerExpiringAt(expires time.Time) domain.Marker {
	return domain.Marker{
		ID:          uuid.New(),
		Coordinates: domain.Coordinates{Lat: 41.0, Lng: 29.0},
		Metadata:    domain.MarkerMetadata{Name: "road pit", Category: domain.CategoryHazard},
		CreatedAt:   expires.Add(-domain.MarkerTTL),
		ExpiresAt:   expires,
		CreatorID:   "dev1",
	}
}

func TestSweep_PrunesOnlyPastGrace(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	grace := 10 * time.Minute

	live := markerExpiringAt(now.Add(time.Hour))
	justExpired := markerExpiringAt(now.Add(-time.Minute)) // inside grace, kept
	stale := markerExpiringAt(now.Add(-time.Hour))         // past grace, pruned

	st := store.New()
	for _, m := range []domain.Marker{live, justExpired, stale} {
		if err := st.Insert(m); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	persister := mock_service.NewMockSnapshotWriter(ctrl)
	persister.EXPECT().Save(gomock.Len(2)).Return(nil)

	sw := workers.NewSweeper(st, persister, time.Minute, grace, newTestLogger(), func() time.Time { return now })
	sw.Sweep()

	if st.Len() != 2 {
		t.Fatalf("expected 2 markers after sweep, have %d", st.Len())
	}
	if _, ok := st.Get(stale.ID); ok {
		t.Fatal("stale marker survived the sweep")
	}
	if _, ok := st.Get(justExpired.ID); !ok {
		t.Fatal("marker inside the grace window was pruned")
	}
	if _, ok := st.Get(live.ID); !ok {
		t.Fatal("live marker was pruned")
	}
}

func TestSweep_NothingToPrune_SkipsPersist(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	st := store.New()
	if err := st.Insert(markerExpiringAt(now.Add(time.Hour))); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// no Save expectation: persisting with nothing swept would fail the test
	persister := mock_service.NewMockSnapshotWriter(ctrl)

	sw := workers.NewSweeper(st, persister, time.Minute, 10*time.Minute, newTestLogger(), func() time.Time { return now })
	sw.Sweep()

	if st.Len() != 1 {
		t.Fatalf("expected 1 marker, have %d", st.Len())
	}
}

func TestSweep_NilPersister(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	st := store.New()
	if err := st.Insert(markerExpiringAt(now.Add(-time.Hour))); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	sw := workers.NewSweeper(st, nil, time.Minute, 10*time.Minute, newTestLogger(), func() time.Time { return now })
	sw.Sweep()

	if st.Len() != 0 {
		t.Fatalf("expected empty store, have %d", st.Len())
	}
}
