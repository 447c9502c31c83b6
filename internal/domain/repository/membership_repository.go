// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for membership persistence.
var (
	// ErrMembershipNotFound is returned when a membership is not found.
	ErrMembershipNotFound = errors.New("membership not found")
)

// MembershipRepository defines the interface for membership persistence.
type MembershipRepository interface {
	// CreateMembership persists a new membership.
	CreateMembership(ctx context.Context, membership *entity.Membership) error

	// FindMembershipsEndingAfter returns the subject's memberships whose end date is after t,
	// ordered by end date descending. More than one row is tolerated.
	FindMembershipsEndingAfter(ctx context.Context, subjectID uuid.UUID, t time.Time) ([]*entity.Membership, error)

	// CancelMembership stamps the cancellation date. The end date is unchanged.
	CancelMembership(ctx context.Context, id uuid.UUID, at time.Time) error
}
