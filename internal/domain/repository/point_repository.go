// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for point balances.
var (
	// ErrInsufficientPoints is returned when a debit exceeds the balance.
	ErrInsufficientPoints = errors.New("insufficient points")
)

// PointRepository is the point balance collaborator.
type PointRepository interface {
	// Debit atomically subtracts amount when the balance covers it, else ErrInsufficientPoints.
	Debit(ctx context.Context, userID uuid.UUID, amount int) error

	// Credit adds amount to the balance, creating the account when absent.
	Credit(ctx context.Context, userID uuid.UUID, amount int) error

	// Balance returns the current balance, 0 for unknown accounts.
	Balance(ctx context.Context, userID uuid.UUID) (int, error)
}
