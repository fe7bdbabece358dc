package airport

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

const (
	earthRadiusMiles   = 3959.0
	avgDrivingSpeedMph = 45.0
	kmToMiles          = 0.621371
)

type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// NearbyAirport is an airport with its distance from the caller in miles.
type NearbyAirport struct {
	Airport
	Distance    int    `json:"distance"`
	DrivingTime string `json:"driving_time"`
}

// DistanceMiles is the great-circle distance between two points.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusMiles
}

// KilometersToMiles converts upstream distances, which are reported in km.
func KilometersToMiles(km float64) float64 {
	return km * kmToMiles
}

// EstimateDrivingTime renders a rough drive time at 45 mph, e.g. "1 hr 20 min".
func EstimateDrivingTime(miles float64) string {
	total := int(math.Floor(miles/avgDrivingSpeedMph*60 + 0.5))
	h, m := total/60, total%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d hr", h)
	default:
		return fmt.Sprintf("%d hr %d min", h, m)
	}
}

func validCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
