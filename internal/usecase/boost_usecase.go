package usecase

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivateBoostInput is a boost purchase request.
type ActivateBoostInput struct {
	BoostType       string               `json:"boost_type" validate:"omitempty,max=50"`
	PaymentMethod   entity.PaymentMethod `json:"payment_method" validate:"required,oneof=points stripe membership"`
	PaymentIntentID string               `json:"payment_intent_id,omitempty" validate:"required_if=PaymentMethod stripe"`
}

// BoostUsecase defines the boost purchase use cases
type BoostUsecase interface {
	// ActivateBoost pays for and installs a boost for the caller.
	ActivateBoost(ctx context.Context, identity entity.Identity, input *ActivateBoostInput) (*entity.Boost, error)

	// CancelBoost deactivates one of the caller's boosts without refund.
	CancelBoost(ctx context.Context, identity entity.Identity, boostID uuid.UUID) error
}
