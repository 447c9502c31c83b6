package usecase

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
)

// SendSuperLikeInput is a super-like request.
type SendSuperLikeInput struct {
	RecipientID   uuid.UUID            `json:"recipient_id" validate:"required"`
	Message       string               `json:"message,omitempty" validate:"max=500"`
	PaymentMethod entity.PaymentMethod `json:"payment_method,omitempty" validate:"omitempty,oneof=quota points"`
}

// SendSuperLikeOutput reports whether the super-like produced a match.
type SendSuperLikeOutput struct {
	Sent    bool                     `json:"sent"`
	Matched bool                     `json:"matched"`
	MatchID *uuid.UUID               `json:"match_id,omitempty"`
	Quota   *entity.FeatureAllowance `json:"quota,omitempty"`
}

// SuperLikeUsecase defines the super-like use case
type SuperLikeUsecase interface {
	// SendSuperLike records a super-like from the caller to the recipient.
	SendSuperLike(ctx context.Context, identity entity.Identity, input *SendSuperLikeInput) (*SendSuperLikeOutput, error)
}
