package service

import (
	"time"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService verifies access tokens issued by the external auth collaborator and
// issues/renews guest tokens bound to a phone.
type TokenService interface {
	// ValidateAccessToken returns the authenticated user of a bearer token.
	ValidateAccessToken(tokenString string) (uuid.UUID, error)

	// GenerateAccessToken signs an access token for userID. Used by tooling and tests.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// IssueGuestToken signs a guest token for the given identity.
	IssueGuestToken(guest entity.GuestIdentity) (string, error)

	// ValidateGuestToken verifies a guest token and returns its identity.
	ValidateGuestToken(tokenString string) (*entity.GuestIdentity, error)

	// GuestTokenTTL returns the lifetime of issued guest tokens.
	GuestTokenTTL() time.Duration
}
