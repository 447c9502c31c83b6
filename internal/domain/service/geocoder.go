package service

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"
)

// ErrNoGeocodeResult is returned when the provider answered but found nothing.
var ErrNoGeocodeResult = errors.New("no geocode result")

// GeocodeQuery is a free-text address split into the parts the provider understands.
type GeocodeQuery struct {
	Address string
	City    string
	State   string
	Country string
	ZipCode string
}

// GeocodeResult is a resolved address.
type GeocodeResult struct {
	Coordinate entity.Coordinate
	Address    string
	City       string
	State      string
	Country    string
	ZipCode    string
}

// Geocoder is the best-effort geocoding provider.
type Geocoder interface {
	// Forward resolves an address to a coordinate.
	Forward(ctx context.Context, query GeocodeQuery) (*GeocodeResult, error)

	// Reverse resolves a coordinate to an address.
	Reverse(ctx context.Context, coordinate entity.Coordinate) (*GeocodeResult, error)
}
