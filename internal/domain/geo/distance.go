// Package geo contains the pure coordinate math used by the geo index and the ranking engine.
package geo

import (
	"fmt"
	"math"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusMiles is the mean Earth radius used by the haversine formula.
	EarthRadiusMiles = 3958.8

	// MetersPerMile converts statute miles to meters.
	MetersPerMile = 1609.344

	// MalformedDistance is returned by Distance when either coordinate is invalid,
	// so bulk callers can rank such rows last without handling per-item errors.
	MalformedDistance = math.MaxFloat64
)

// Coordinate aliases the entity type so callers of this package need not import both.
type Coordinate = entity.Coordinate

// ToPoint converts the coordinate to an orb point (lng, lat order).
func ToPoint(c Coordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// FromPoint converts an orb point back to a Coordinate.
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// IsValid reports whether both components are finite and within range.
func IsValid(c Coordinate) bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Validate returns ErrInvalidCoordinate for out-of-range input. Coordinates are never clamped.
func Validate(c Coordinate) error {
	if !IsValid(c) {
		return domainerrors.ErrInvalidCoordinate.WithDetails(fmt.Sprintf("lat=%v lng=%v", c.Lat, c.Lng))
	}

	return nil
}

// Distance returns the great-circle distance in miles between a and b.
func Distance(a, b Coordinate) float64 {
	if !IsValid(a) || !IsValid(b) {
		return MalformedDistance
	}

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMiles * math.Asin(math.Sqrt(h))
}

// MilesToMeters converts miles to meters.
func MilesToMeters(miles float64) float64 {
	return miles * MetersPerMile
}

// MetersToMiles converts meters to miles.
func MetersToMiles(meters float64) float64 {
	return meters / MetersPerMile
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
