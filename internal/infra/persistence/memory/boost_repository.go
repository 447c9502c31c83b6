package memory

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/google/uuid"
)

type boostRepository struct {
	store *Store
}

// NewBoostRepository is the constructor for the in-memory boost repository.
func NewBoostRepository(store *Store) repository.BoostRepository {
	return &boostRepository{store: store}
}

// effectiveBoostLocked returns the best effective boost of subjectID. Callers hold s.mu.
func (s *Store) effectiveBoostLocked(subjectID uuid.UUID, now time.Time) *entity.Boost {
	var best *entity.Boost
	for _, b := range s.boosts {
		if b.SubjectID != subjectID || !b.IsEffective(now) {
			continue
		}
		if best == nil || b.Factor > best.Factor || (b.Factor == best.Factor && b.ExpiresAt.After(best.ExpiresAt)) {
			best = b
		}
	}

	return best
}

func (repo *boostRepository) FindEffectiveBoost(_ context.Context, subjectID uuid.UUID, now time.Time) (*entity.Boost, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	best := s.effectiveBoostLocked(subjectID, now)
	if best == nil {
		return nil, repository.ErrBoostNotFound
	}
	cp := *best

	return &cp, nil
}

func (repo *boostRepository) FindEffectiveFactors(_ context.Context, subjectIDs []uuid.UUID, now time.Time) (map[uuid.UUID]float64, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[uuid.UUID]struct{}, len(subjectIDs))
	for _, id := range subjectIDs {
		wanted[id] = struct{}{}
	}

	factors := make(map[uuid.UUID]float64, len(subjectIDs))
	for _, b := range s.boosts {
		if _, ok := wanted[b.SubjectID]; !ok || !b.IsEffective(now) {
			continue
		}
		if b.Factor > factors[b.SubjectID] {
			factors[b.SubjectID] = b.Factor
		}
	}

	return factors, nil
}

func (repo *boostRepository) ReplaceIfHigher(_ context.Context, candidate *entity.Boost, now time.Time) (*entity.Boost, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if candidate.PaymentRef != "" {
		for _, b := range s.boosts {
			if b.PaymentRef == candidate.PaymentRef {
				return nil, repository.ErrPaymentAlreadyRedeemed
			}
		}
	}

	if existing := s.effectiveBoostLocked(candidate.SubjectID, now); existing != nil && existing.Factor >= candidate.Factor {
		cp := *existing

		return &cp, repository.ErrBoostNotHigher
	}

	for _, b := range s.boosts {
		if b.SubjectID == candidate.SubjectID && b.IsEffective(now) {
			b.Active = false
			b.UpdatedAt = now
		}
	}

	candidate.ID = newIDIfNil(candidate.ID)
	candidate.CreatedAt = now
	candidate.UpdatedAt = now
	stored := *candidate
	s.boosts[stored.ID] = &stored

	return nil, nil
}

func (repo *boostRepository) FindBoostByID(_ context.Context, id uuid.UUID) (*entity.Boost, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boosts[id]
	if !ok {
		return nil, repository.ErrBoostNotFound
	}
	cp := *b

	return &cp, nil
}

func (repo *boostRepository) DeactivateBoost(_ context.Context, id uuid.UUID) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boosts[id]
	if !ok {
		return repository.ErrBoostNotFound
	}
	b.Active = false
	b.UpdatedAt = s.now()

	return nil
}
