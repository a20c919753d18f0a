package domain

type CreateMarkerRequest struct {
	Coordinates Coordinates    `json:"coordinates" validate:"required"`
	Metadata    MarkerMetadata `json:"metadata" validate:"required"`
	Proof       string         `json:"proof,omitempty"`
}

type MarkerStats struct {
	Live        int                    `json:"live"`
	Stored      int                    `json:"stored"`
	ByCategory  map[MarkerCategory]int `json:"by_category"`
	Subscribers int                    `json:"subscribers"`
}
