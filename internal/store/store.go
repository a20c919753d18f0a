// Package store holds the authoritative in-memory marker set. It is the only
// mutable shared state in the process; mutations go through the marker service
// exclusively. The store is deliberately filter-free: expiry is applied by its
// callers, never here.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/borsel2002/yollar-burada/internal/domain"
	"github.com/borsel2002/yollar-burada/pkg/e"
)

type MarkerStore struct {
	mu      sync.RWMutex
	markers map[uuid.UUID]domain.Marker
}

func New() *MarkerStore {
	return &MarkerStore{
		markers: make(map[uuid.UUID]domain.Marker),
	}
}

// Insert adds a marker. A duplicate id is an invariant violation (ids are
// assigned server-side), surfaced as e.ErrDuplicateID rather than silently
// overwritten.
func (s *MarkerStore) Insert(m domain.Marker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.markers[m.ID]; exists {
		return e.Wrap(m.ID.String(), e.ErrDuplicateID)
	}
	s.markers[m.ID] = m
	return nil
}

// Remove deletes the marker with the given id and reports whether anything was
// removed. Removing an absent id is a no-op.
func (s *MarkerStore) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.markers[id]; !exists {
		return false
	}
	delete(s.markers, id)
	return true
}

func (s *MarkerStore) Get(id uuid.UUID) (domain.Marker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.markers[id]
	return m, ok
}

// Snapshot returns a copy of the full current set, live and expired alike.
// A concurrent snapshot never observes a half-applied mutation.
func (s *MarkerStore) Snapshot() []domain.Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Marker, 0, len(s.markers))
	for _, m := range s.markers {
		out = append(out, m)
	}
	return out
}

// Replace installs a whole new marker set, dropping whatever was held before.
// Used for the boot-time snapshot load and the administrative bulk clear.
func (s *MarkerStore) Replace(markers []domain.Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markers = make(map[uuid.UUID]domain.Marker, len(markers))
	for _, m := range markers {
		s.markers[m.ID] = m
	}
}

func (s *MarkerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.markers)
}
