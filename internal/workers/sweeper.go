// Package workers holds background loops. The sweeper prunes long-expired
// markers from the store: expired markers are already invisible (every outgoing
// snapshot is live-filtered), so pruning only bounds memory and the snapshot
// file. It therefore never triggers a broadcast.
package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/borsel2002/yollar-burada/internal/domain"
	"github.com/borsel2002/yollar-burada/internal/expiry"
	"github.com/borsel2002/yollar-burada/internal/metrics"
)

type MarkerPruner interface {
	Snapshot() []domain.Marker
	Remove(id uuid.UUID) bool
}

type SnapshotWriter interface {
	Save(markers []domain.Marker) error
}

type Sweeper struct {
	store     MarkerPruner
	persister SnapshotWriter
	interval  time.Duration
	grace     time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewSweeper builds the pruning loop. persister may be nil; now may be nil
// and defaults to wall-clock UTC. grace keeps freshly expired markers around
// a little longer so a just-expired marker can still be garbage-collected by
// a client delete (which anyone is allowed to do).
func NewSweeper(store MarkerPruner, persister SnapshotWriter, interval, grace time.Duration, logger *slog.Logger, now func() time.Time) *Sweeper {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Sweeper{
		store:     store,
		persister: persister,
		interval:  interval,
		grace:     grace,
		logger:    logger,
		now:       now,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep removes every marker expired past the grace period and rewrites the
// snapshot file when anything changed.
func (s *Sweeper) Sweep() {
	cutoff := s.now().Add(-s.grace)

	swept := 0
	for _, m := range s.store.Snapshot() {
		if expiry.IsLive(m, cutoff) {
			continue
		}
		if s.store.Remove(m.ID) {
			swept++
		}
	}

	if swept == 0 {
		return
	}

	metrics.MarkersSwept.Add(float64(swept))
	s.logger.Info("expired markers pruned", slog.Int("count", swept))

	if s.persister != nil {
		if err := s.persister.Save(s.store.Snapshot()); err != nil {
			s.logger.Error("snapshot save after sweep failed", slog.Any("error", err))
		}
	}
}
