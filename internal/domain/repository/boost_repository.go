// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for boost persistence.
var (
	// ErrBoostNotFound is returned when a boost is not found.
	ErrBoostNotFound = errors.New("boost not found")
	// ErrBoostNotHigher is returned when an effective boost with an equal or higher factor exists.
	ErrBoostNotHigher = errors.New("effective boost has equal or higher factor")
	// ErrPaymentAlreadyRedeemed is returned when a boost already carries the candidate's payment reference.
	ErrPaymentAlreadyRedeemed = errors.New("payment already redeemed")
)

// BoostRepository defines the interface for boost persistence.
type BoostRepository interface {
	// FindEffectiveBoost returns the highest-factor boost effective at now, or ErrBoostNotFound.
	FindEffectiveBoost(ctx context.Context, subjectID uuid.UUID, now time.Time) (*entity.Boost, error)

	// FindEffectiveFactors returns the highest effective factor per subject. Subjects
	// without an effective boost are absent from the map.
	FindEffectiveFactors(ctx context.Context, subjectIDs []uuid.UUID, now time.Time) (map[uuid.UUID]float64, error)

	// ReplaceIfHigher installs candidate as one atomic unit per subject: when an effective
	// boost with factor >= candidate.Factor exists it is returned with ErrBoostNotHigher;
	// otherwise every effective boost of the subject is deactivated, candidate is inserted
	// with its ID and timestamps filled in, and nil is returned. A non-empty PaymentRef
	// already held by any boost fails with ErrPaymentAlreadyRedeemed.
	ReplaceIfHigher(ctx context.Context, candidate *entity.Boost, now time.Time) (*entity.Boost, error)

	// FindBoostByID retrieves a boost by its unique ID.
	FindBoostByID(ctx context.Context, id uuid.UUID) (*entity.Boost, error)

	// DeactivateBoost sets active=false. Rows are kept for history.
	DeactivateBoost(ctx context.Context, id uuid.UUID) error
}
