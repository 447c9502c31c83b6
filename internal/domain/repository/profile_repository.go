// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when the owner or guest phone already has a profile.
	ErrDuplicateProfile = errors.New("profile already exists")
	// ErrProfileClaimedByOther is returned when a claim targets a profile owned by someone else.
	ErrProfileClaimedByOther = errors.New("profile claimed by another user")
)

// ProfileRepository defines the interface for profile (subject) persistence.
type ProfileRepository interface {
	// CreateProfile persists a new profile. Returns ErrDuplicateProfile on owner/phone conflicts.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByID retrieves a profile by its unique ID.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindProfileByOwner retrieves the profile claimed by an authenticated user.
	FindProfileByOwner(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindProfileByGuestPhone retrieves the profile created for a guest phone, claimed or not.
	FindProfileByGuestPhone(ctx context.Context, phone string) (*entity.Profile, error)

	// ClaimProfile sets the owner of a guest profile to userID. The transition is one-way
	// and idempotent: claiming a profile already owned by userID succeeds, claiming one
	// owned by anyone else returns ErrProfileClaimedByOther.
	ClaimProfile(ctx context.Context, profileID, userID uuid.UUID) (*entity.Profile, error)

	// UpdateProfileLocation overwrites the profile's last known location.
	UpdateProfileLocation(ctx context.Context, id uuid.UUID, location *entity.Location) error

	// TouchProfile records activity of the profile.
	TouchProfile(ctx context.Context, id uuid.UUID, at time.Time) error
}
