// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/geo"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for geo index persistence.
var (
	// ErrLocationNotFound is returned when an entity has no indexed location.
	ErrLocationNotFound = errors.New("indexed location not found")
)

// GeoIndexRepository stores the last known point of every discoverable entity.
type GeoIndexRepository interface {
	// UpsertLocation replaces the indexed location of an entity in a single atomic write.
	UpsertLocation(ctx context.Context, location *entity.IndexedLocation) error

	// FindLocation retrieves the indexed location of an entity.
	FindLocation(ctx context.Context, entityID uuid.UUID) (*entity.IndexedLocation, error)

	// FindWithinRadius returns entities within radiusMiles of center matching filter.
	// Implementations may over-select; callers re-check the exact distance.
	FindWithinRadius(ctx context.Context, center entity.Coordinate, radiusMiles float64, filter entity.GeoFilter) ([]*entity.IndexedLocation, error)

	// FindWithinBoundingBox returns entities inside box matching filter.
	FindWithinBoundingBox(ctx context.Context, box geo.BoundingBox, filter entity.GeoFilter) ([]*entity.IndexedLocation, error)

	// SetActive toggles whether the entity is returned by active-only queries.
	SetActive(ctx context.Context, entityID uuid.UUID, active bool) error

	// TouchLastActive records activity of an entity without moving it.
	TouchLastActive(ctx context.Context, entityID uuid.UUID, at time.Time) error
}
