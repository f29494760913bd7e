package location

import (
	"math"

	"horion-farms/api/apperr"
)

type ETA struct {
	City       string  `json:"city"`
	Hub        string  `json:"hub"`
	DistanceKm float64 `json:"distance_km"`
	ETAHours   float64 `json:"eta_hours"`
	ColdChain  bool    `json:"cold_chain"`
}

// EstimateETA predicts delivery time from hub to city.
// An empty hub means DefaultHub. Unknown names fail with
// apperr.ErrUnsupportedLocation.
func EstimateETA(city, hub string) (ETA, error) {
	if hub == "" {
		hub = DefaultHub
	}
	h, ok := LookupHub(hub)
	if !ok {
		return ETA{}, apperr.ErrUnsupportedLocation
	}
	c, ok := LookupCity(city)
	if !ok {
		return ETA{}, apperr.ErrUnsupportedLocation
	}

	km := DistanceKm(h.Latitude, h.Longitude, c.Latitude, c.Longitude)

	return ETA{
		City:       c.Name,
		Hub:        h.Name,
		DistanceKm: round1(km),
		ETAHours:   round1(h.Hours(km)),
		ColdChain:  h.ColdChain,
	}, nil
}

// Hours is the unrounded delivery time over km kilometres from this hub.
func (h Hub) Hours(km float64) float64 {
	return h.BaseHours + (km*h.PerKmMinuteCost)/60.0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
