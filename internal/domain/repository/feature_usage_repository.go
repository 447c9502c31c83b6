// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for feature usage persistence.
var (
	// ErrUsageLimitReached is returned when an increment would push a period count over its limit.
	ErrUsageLimitReached = errors.New("usage limit reached")
)

// UsageKey identifies one period row.
type UsageKey struct {
	SubjectID   uuid.UUID
	FeatureType entity.FeatureType
	PeriodStart time.Time
	ResetAt     time.Time
}

// FeatureUsageRepository defines the interface for per-period feature counters.
type FeatureUsageRepository interface {
	// EnsureUsage returns the row for key, creating it with count=0 when absent.
	EnsureUsage(ctx context.Context, key UsageKey) (*entity.FeatureUsage, error)

	// IncrementUsage adds cost to the row for key (creating it when absent) only if the
	// resulting count stays <= limit. The check and the increment are one atomic store
	// operation. Returns ErrUsageLimitReached when the limit would be exceeded.
	IncrementUsage(ctx context.Context, key UsageKey, cost, limit int) (*entity.FeatureUsage, error)
}
