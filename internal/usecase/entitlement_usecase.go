package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// EntitlementsOutput is everything a client needs to render boost expiry and remaining quota.
type EntitlementsOutput struct {
	Subject     *entity.Subject            `json:"subject"`
	Boost       *entity.Boost              `json:"boost,omitempty"`
	BoostFactor float64                    `json:"boost_factor"`
	Membership  *entity.Membership         `json:"membership,omitempty"`
	Quotas      []*entity.FeatureAllowance `json:"quotas"`
	Points      *int                       `json:"points,omitempty"` // Authenticated callers only.
}

// PurchaseMembershipInput selects a plan from the catalog.
type PurchaseMembershipInput struct {
	PlanType string `json:"plan_type" validate:"required,max=50"`
}

// PurchaseMembershipOutput is the new membership and the boost it installed, if any.
type PurchaseMembershipOutput struct {
	Membership *entity.Membership `json:"membership"`
	Boost      *entity.Boost      `json:"boost,omitempty"`
}

// EntitlementUsecase defines the entitlement and membership use cases
type EntitlementUsecase interface {
	// GetEntitlements returns the caller's boost, membership and per-feature quotas.
	GetEntitlements(ctx context.Context, identity entity.Identity) (*EntitlementsOutput, error)

	// PurchaseMembership debits points and starts a membership after the current one.
	PurchaseMembership(ctx context.Context, identity entity.Identity, input *PurchaseMembershipInput) (*PurchaseMembershipOutput, error)

	// CancelMembership stamps the cancellation date of the effective membership.
	CancelMembership(ctx context.Context, identity entity.Identity) (*entity.Membership, error)

	// GetPointBalance returns the authenticated caller's point balance.
	GetPointBalance(ctx context.Context, identity entity.Identity) (int, error)
}
