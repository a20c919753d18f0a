package domain

import "math"

// DefaultCreateRadiusKM bounds how far from their reference point a client may
// place a new marker.
const DefaultCreateRadiusKM = 1.0

// ReferencePoint is client-local state derived from the device's last known
// location. It is never persisted or shared; each client recomputes its own.
type ReferencePoint struct {
	Coordinates Coordinates `json:"coordinates"`
	RadiusKM    float64     `json:"radius_km"`
}

func NewReferencePoint(c Coordinates) ReferencePoint {
	return ReferencePoint{Coordinates: c, RadiusKM: DefaultCreateRadiusKM}
}

// Contains reports whether c lies within the reference radius.
func (rp ReferencePoint) Contains(c Coordinates) bool {
	return haversine(rp.Coordinates.Lat, rp.Coordinates.Lng, c.Lat, c.Lng) <= rp.RadiusKM
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0 // радиус Земли в км

	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}
