package services

import (
	"errors"
	"fmt"
	"math"

	"dashboard-hub/internal/models"
)

// ErrInvalidCoordinate is returned for NaN or out-of-range coordinates.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

const earthRadiusKm = 6371.0

// DistanceKm computes the great-circle distance in kilometers between
// two locations using the haversine formula.
func DistanceKm(a, b models.Location) (float64, error) {
	if err := validateCoordinate(a); err != nil {
		return 0, err
	}
	if err := validateCoordinate(b); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(a.Latitude)
	lat2 := degreesToRadians(b.Latitude)
	deltaLat := degreesToRadians(b.Latitude - a.Latitude)
	deltaLon := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, nil
}

func validateCoordinate(loc models.Location) error {
	if math.IsNaN(loc.Latitude) || math.IsNaN(loc.Longitude) {
		return fmt.Errorf("%w: NaN for %q", ErrInvalidCoordinate, loc.Name)
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("%w: latitude %.4f for %q", ErrInvalidCoordinate, loc.Latitude, loc.Name)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("%w: longitude %.4f for %q", ErrInvalidCoordinate, loc.Longitude, loc.Name)
	}
	return nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
