package domain

import (
	"time"

	"github.com/google/uuid"
)

// MarkerTTL is the fixed validity window of every marker, counted from creation.
const MarkerTTL = 4 * time.Hour

type MarkerCategory string

const (
	CategoryHazard    MarkerCategory = "hazard"
	CategoryAccident  MarkerCategory = "accident"
	CategoryRoadwork  MarkerCategory = "roadwork"
	CategoryTraffic   MarkerCategory = "traffic"
	CategoryPolice    MarkerCategory = "police"
	CategoryCamera    MarkerCategory = "camera"
	CategoryGarbage   MarkerCategory = "garbage"
	CategoryExpensive MarkerCategory = "expensive"
	CategoryOther     MarkerCategory = "other"
)

func (c MarkerCategory) Valid() bool {
	switch c {
	case CategoryHazard, CategoryAccident, CategoryRoadwork, CategoryTraffic,
		CategoryPolice, CategoryCamera, CategoryGarbage, CategoryExpensive, CategoryOther:
		return true
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat" validate:"required,lat"` // -90..90
	Lng float64 `json:"lng" validate:"required,lng"` // -180..180
}

type MarkerMetadata struct {
	Name        string         `json:"name" validate:"required"`
	Category    MarkerCategory `json:"category" validate:"required,category"`
	Description string         `json:"description,omitempty"`
}

// Marker is immutable once created; only creation and deletion exist.
type Marker struct {
	ID          uuid.UUID      `json:"id"`
	Coordinates Coordinates    `json:"coordinates"`
	Metadata    MarkerMetadata `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
	ExpiresAt   time.Time      `json:"expires_at"` // always CreatedAt + MarkerTTL
	CreatorID   string         `json:"creator_id"`
	// Proof is reserved for tamper evidence; carried but never verified.
	Proof string `json:"proof,omitempty"`
}
