package memory

import (
	"context"

	"nearby/internal/domain/repository"

	"github.com/google/uuid"
)

type pointRepository struct {
	store *Store
}

// NewPointRepository is the constructor for the in-memory point balances.
func NewPointRepository(store *Store) repository.PointRepository {
	return &pointRepository{store: store}
}

func (repo *pointRepository) Debit(_ context.Context, userID uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}

	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.points[userID] < amount {
		return repository.ErrInsufficientPoints
	}
	s.points[userID] -= amount

	return nil
}

func (repo *pointRepository) Credit(_ context.Context, userID uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}

	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.points[userID] += amount

	return nil
}

func (repo *pointRepository) Balance(_ context.Context, userID uuid.UUID) (int, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.points[userID], nil
}
