package usecase

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateVenueInput creates a gym or an interest group meeting spot.
// Coordinates are optional when an address is given.
type CreateVenueInput struct {
	Kind      entity.EntityKind `json:"kind" validate:"required,oneof=gym group"`
	Name      string            `json:"name" validate:"required,min=2,max=200"`
	Latitude  *float64          `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64          `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Address   string            `json:"address,omitempty" validate:"max=500"`
	City      string            `json:"city,omitempty" validate:"max=100"`
	State     string            `json:"state,omitempty" validate:"max=100"`
	Country   string            `json:"country,omitempty" validate:"max=100"`
	ZipCode   string            `json:"zip_code,omitempty" validate:"max=20"`
	Amenities []string          `json:"amenities,omitempty" validate:"max=50,dive,max=50"`
	Chain     string            `json:"chain,omitempty" validate:"max=100"`
}

// VenueUsecase defines the venue use cases
type VenueUsecase interface {
	// CreateVenue creates a venue unless a same-named one exists close by.
	CreateVenue(ctx context.Context, identity entity.Identity, input *CreateVenueInput) (*entity.Venue, error)

	// GetVenue returns a venue by ID.
	GetVenue(ctx context.Context, venueID uuid.UUID) (*entity.Venue, error)

	// DeactivateVenue hides a venue. Only its creator may do this.
	DeactivateVenue(ctx context.Context, identity entity.Identity, venueID uuid.UUID) error

	// GetVenueQRCode returns the venue check-in QR code as PNG.
	GetVenueQRCode(ctx context.Context, venueID uuid.UUID) ([]byte, error)
}
