package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// UpdateLocationInput is a raw location report. Either a coordinate or an address is required.
type UpdateLocationInput struct {
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Address   string   `json:"address,omitempty" validate:"max=500"`
	City      string   `json:"city,omitempty" validate:"max=100"`
	State     string   `json:"state,omitempty" validate:"max=100"`
	Country   string   `json:"country,omitempty" validate:"max=100"`
	ZipCode   string   `json:"zip_code,omitempty" validate:"max=20"`
	Accuracy  float64  `json:"accuracy,omitempty" validate:"min=0"`
	Source    string   `json:"source,omitempty" validate:"omitempty,oneof=gps manual"`
}

// UpdateLocationOutput is the accepted location plus venues around it.
type UpdateLocationOutput struct {
	Subject      *entity.Subject       `json:"subject"`
	Location     *entity.Location      `json:"location"`
	NearbyVenues []*entity.NearbyVenue `json:"nearby_venues"`
}

// LocationUsecase defines the location update use case
type LocationUsecase interface {
	// UpdateLocation records the caller's location, creating a guest profile on first write.
	UpdateLocation(ctx context.Context, identity entity.Identity, input *UpdateLocationInput) (*UpdateLocationOutput, error)
}
