package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// ProfileUsecase defines the profile ownership use cases
type ProfileUsecase interface {
	// ClaimProfile transfers the guest profile named by the guest identity to the
	// authenticated user. Both must be present.
	ClaimProfile(ctx context.Context, identity entity.Identity) (*entity.Profile, error)
}
