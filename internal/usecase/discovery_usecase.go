package usecase

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/geo"
)

// DiscoverInput selects candidates by radius around Center or by Box; Box wins when set.
type DiscoverInput struct {
	Center       *entity.Coordinate
	RadiusMiles  float64
	Box          *geo.BoundingBox
	Kinds        []entity.EntityKind
	VerifiedOnly bool
	IncludeIdle  bool // Include inactive entities.
}

// DiscoverOutput is the ranked candidate list.
type DiscoverOutput struct {
	Candidates []*RankedCandidate `json:"candidates"`
	Degraded   bool               `json:"degraded,omitempty"`
}

// DiscoveryUsecase defines the discovery use case
type DiscoveryUsecase interface {
	// Discover ranks nearby entities. The identity is optional; when it resolves, the
	// caller's own profile is excluded.
	Discover(ctx context.Context, identity entity.Identity, input *DiscoverInput) (*DiscoverOutput, error)
}
