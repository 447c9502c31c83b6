package memory

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/google/uuid"
)

type featureUsageRepository struct {
	store *Store
}

// NewFeatureUsageRepository is the constructor for the in-memory usage counters.
func NewFeatureUsageRepository(store *Store) repository.FeatureUsageRepository {
	return &featureUsageRepository{store: store}
}

func keyOf(key repository.UsageKey) usageKey {
	return usageKey{
		subjectID:   key.SubjectID,
		feature:     key.FeatureType,
		periodStart: key.PeriodStart.UTC().Unix(),
	}
}

// ensureUsageLocked returns the row for key, inserting a zero row when absent. Callers hold s.mu.
func (s *Store) ensureUsageLocked(key repository.UsageKey) *entity.FeatureUsage {
	k := keyOf(key)
	if u, ok := s.usages[k]; ok {
		return u
	}

	now := s.now()
	u := &entity.FeatureUsage{
		ID:          uuid.New(),
		SubjectID:   key.SubjectID,
		FeatureType: key.FeatureType,
		PeriodStart: key.PeriodStart,
		ResetAt:     key.ResetAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.usages[k] = u

	return u
}

func (repo *featureUsageRepository) EnsureUsage(_ context.Context, key repository.UsageKey) (*entity.FeatureUsage, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *s.ensureUsageLocked(key)

	return &cp, nil
}

func (repo *featureUsageRepository) IncrementUsage(_ context.Context, key repository.UsageKey, cost, limit int) (*entity.FeatureUsage, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if cost > limit {
		return nil, repository.ErrUsageLimitReached
	}

	if u, ok := s.usages[keyOf(key)]; ok && u.Count+cost > limit {
		return nil, repository.ErrUsageLimitReached
	}

	u := s.ensureUsageLocked(key)
	u.Count += cost
	u.UpdatedAt = s.now()
	cp := *u

	return &cp, nil
}
