package model

import "math"

const (
	EarthRadiusKm = 6371.0

	// distances are compared at 10 m resolution so the radius boundary is stable.
	distancePrecision = 100
)

type Status string

const (
	StatusOK          Status = "ok"
	StatusTooFar      Status = "too_far"
	StatusUnresolved  Status = "unresolved"
	StatusUnavailable Status = "unavailable"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Result struct {
	Status     Status   `json:"status"`
	DistanceKm *float64 `json:"distanceKm"`
	MaxKm      float64  `json:"maxKm"`
}

// Verified reports whether the address was located at all.
func (r Result) Verified() bool {
	return r.Status == StatusOK || r.Status == StatusTooFar
}

// HaversineKm returns the great-circle distance between two points.
func HaversineKm(from, to Coordinates) float64 {
	lat1 := radians(from.Latitude)
	lat2 := radians(to.Latitude)
	dLat := radians(to.Latitude - from.Latitude)
	dLon := radians(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return round(EarthRadiusKm * c)
}

// Classify applies the delivery radius. The radius itself is deliverable.
func Classify(distanceKm, maxKm float64) Status {
	if distanceKm <= maxKm {
		return StatusOK
	}

	return StatusTooFar
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func round(km float64) float64 {
	return math.Round(km*distancePrecision) / distancePrecision
}
