package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/borsel2002/yollar-burada/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// MarkerService is the mutation gateway: the only path through which the
// marker store is ever mutated.
type MarkerService interface {
	Create(ctx context.Context, req domain.CreateMarkerRequest, creatorID string) (domain.Marker, error)
	Delete(ctx context.Context, id uuid.UUID, requesterID string) error
	List(ctx context.Context) []domain.Marker
	Clear(ctx context.Context) error
	Stats(ctx context.Context) domain.MarkerStats

	// LiveMarkers satisfies hub.SnapshotSource: the hub pulls the current
	// live set for every fresh subscriber.
	LiveMarkers() []domain.Marker
}

type MarkerRepository interface {
	Insert(m domain.Marker) error
	Remove(id uuid.UUID) bool
	Get(id uuid.UUID) (domain.Marker, bool)
	Snapshot() []domain.Marker
	Replace(markers []domain.Marker)
	Len() int
}

// Publisher fans the post-mutation live snapshot out to subscribers.
type Publisher interface {
	Publish(markers []domain.Marker)
	Subscribers() int
}

// SnapshotWriter rewrites the durable snapshot document after each mutation.
type SnapshotWriter interface {
	Save(markers []domain.Marker) error
}
