// Package expiry holds the marker lifecycle policy. Everything here is a pure
// function over (marker, now, requester); no state, no clocks of its own.
package expiry

import (
	"time"

	"github.com/borsel2002/yollar-burada/internal/domain"
)

func IsLive(m domain.Marker, now time.Time) bool {
	return now.Before(m.ExpiresAt)
}

// CanDelete reports whether requesterID may delete m at the given instant.
// The creator may always delete their own marker. Once a marker has expired,
// anyone may delete it: stale data loses creator-exclusivity so any client
// can garbage-collect it.
func CanDelete(m domain.Marker, now time.Time, requesterID string) bool {
	if !IsLive(m, now) {
		return true
	}
	return requesterID == m.CreatorID
}

// FilterLive returns the subset of markers whose TTL has not elapsed. Every
// snapshot that crosses the wire goes through here first.
func FilterLive(markers []domain.Marker, now time.Time) []domain.Marker {
	live := make([]domain.Marker, 0, len(markers))
	for _, m := range markers {
		if IsLive(m, now) {
			live = append(live, m)
		}
	}
	return live
}
