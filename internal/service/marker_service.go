package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/borsel2002/yollar-burada/internal/domain"
	"github.com/borsel2002/yollar-burada/internal/expiry"
	"github.com/borsel2002/yollar-burada/internal/metrics"
	"github.com/borsel2002/yollar-burada/pkg/e"
	"github.com/borsel2002/yollar-burada/pkg/validator"
)

type markerService struct {
	repo      MarkerRepository
	publisher Publisher
	persister SnapshotWriter
	logger    *slog.Logger
	now       func() time.Time

	// mu serializes whole mutations: mutate, persist, publish as one unit.
	// The store's own lock only makes single calls atomic; without this a
	// mutation that stalls in Save could publish its snapshot after a newer
	// one, leaving every subscriber on stale state until the next mutation.
	mu sync.Mutex
}

// NewMarkerService wires the gateway. persister may be nil (persistence
// disabled); now may be nil and defaults to wall-clock UTC.
func NewMarkerService(
	repo MarkerRepository,
	publisher Publisher,
	persister SnapshotWriter,
	logger *slog.Logger,
	now func() time.Time,
) MarkerService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &markerService{
		repo:      repo,
		publisher: publisher,
		persister: persister,
		logger:    logger,
		now:       now,
	}
}

func (s *markerService) Create(ctx context.Context, req domain.CreateMarkerRequest, creatorID string) (domain.Marker, error) {
	if creatorID == "" {
		return domain.Marker{}, e.Wrap("device id required", e.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(&req); err != nil {
		s.logger.Warn("create marker rejected",
			slog.String("creator_id", creatorID),
			slog.String("error", err.Error()),
		)
		return domain.Marker{}, e.Wrap(err.Error(), e.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	marker := domain.Marker{
		ID:          uuid.New(),
		Coordinates: req.Coordinates,
		Metadata:    req.Metadata,
		CreatedAt:   now,
		ExpiresAt:   now.Add(domain.MarkerTTL),
		CreatorID:   creatorID,
		Proof:       req.Proof,
	}

	if err := s.repo.Insert(marker); err != nil {
		// ids are random; a collision here means the invariant broke
		s.logger.Error("insert marker failed", slog.Any("error", err))
		return domain.Marker{}, e.WrapError(ctx, "create marker", err)
	}

	metrics.MarkersCreated.Inc()
	s.logger.Info("marker created",
		slog.String("id", marker.ID.String()),
		slog.String("category", string(marker.Metadata.Category)),
		slog.String("creator_id", creatorID),
		slog.Time("expires_at", marker.ExpiresAt),
	)

	s.afterMutation()
	return marker, nil
}

func (s *markerService) Delete(ctx context.Context, id uuid.UUID, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	marker, ok := s.repo.Get(id)
	if !ok {
		return e.Wrap("delete marker", e.ErrNotFound)
	}

	if !expiry.CanDelete(marker, s.now(), requesterID) {
		s.logger.Warn("delete forbidden",
			slog.String("id", id.String()),
			slog.String("requester_id", requesterID),
			slog.String("creator_id", marker.CreatorID),
		)
		return e.Wrap("delete marker", e.ErrForbidden)
	}

	if !s.repo.Remove(id) {
		return e.Wrap("delete marker", e.ErrNotFound)
	}

	metrics.MarkersDeleted.Inc()
	s.logger.Info("marker deleted",
		slog.String("id", id.String()),
		slog.String("requester_id", requesterID),
	)

	s.afterMutation()
	return nil
}

func (s *markerService) List(ctx context.Context) []domain.Marker {
	return expiry.FilterLive(s.repo.Snapshot(), s.now())
}

// Clear wipes the whole store. Administrative; publishes one empty snapshot.
func (s *markerService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repo.Replace(nil)
	s.logger.Info("all markers cleared")
	s.afterMutation()
	return nil
}

func (s *markerService) Stats(ctx context.Context) domain.MarkerStats {
	snapshot := s.repo.Snapshot()
	live := expiry.FilterLive(snapshot, s.now())

	byCategory := make(map[domain.MarkerCategory]int)
	for _, m := range live {
		byCategory[m.Metadata.Category]++
	}

	return domain.MarkerStats{
		Live:        len(live),
		Stored:      len(snapshot),
		ByCategory:  byCategory,
		Subscribers: s.publisher.Subscribers(),
	}
}

// LiveMarkers implements hub.SnapshotSource for fresh subscribers.
func (s *markerService) LiveMarkers() []domain.Marker {
	return expiry.FilterLive(s.repo.Snapshot(), s.now())
}

// afterMutation runs the two side effects of every successful mutation:
// rewrite the durable snapshot and push the live set to all subscribers.
// Exactly one publish per mutation, no batching, and publish order follows
// mutation order (the caller holds mu). A persistence failure is logged and
// absorbed; it never blocks the in-memory path.
func (s *markerService) afterMutation() {
	snapshot := s.repo.Snapshot()

	if s.persister != nil {
		if err := s.persister.Save(snapshot); err != nil {
			s.logger.Error("snapshot save failed", slog.Any("error", err))
		}
	}

	s.publisher.Publish(expiry.FilterLive(snapshot, s.now()))
}
