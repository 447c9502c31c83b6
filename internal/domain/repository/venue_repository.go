// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for venue persistence.
var (
	// ErrVenueNotFound is returned when a venue is not found.
	ErrVenueNotFound = errors.New("venue not found")
)

// VenueRepository defines the interface for venue persistence.
type VenueRepository interface {
	// CreateVenue persists a new venue.
	CreateVenue(ctx context.Context, venue *entity.Venue) error

	// FindVenueByID retrieves a venue by its unique ID.
	FindVenueByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)

	// FindVenuesByIDs retrieves venues by IDs; missing IDs are skipped.
	FindVenuesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Venue, error)

	// UpdateVenueActive sets the active flag. Venues are never hard-deleted.
	UpdateVenueActive(ctx context.Context, id uuid.UUID, active bool) error

	// LockVenueName serializes creates of venues of kind named normalizedName until the
	// surrounding transaction ends. It must be called through a RepositoryFactory.
	LockVenueName(ctx context.Context, kind entity.EntityKind, normalizedName string) error
}
