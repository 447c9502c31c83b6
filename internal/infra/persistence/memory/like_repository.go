package memory

import (
	"context"
	"slices"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/google/uuid"
)

type likeRepository struct {
	store *Store
}

// NewLikeRepository is the constructor for the in-memory like repository.
func NewLikeRepository(store *Store) repository.LikeRepository {
	return &likeRepository{store: store}
}

func (repo *likeRepository) CreateLike(_ context.Context, like *entity.Like) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	k := likeKey{from: like.FromID, to: like.ToID, kind: like.Kind}
	if _, ok := s.likes[k]; ok {
		return repository.ErrDuplicateLike
	}

	like.ID = newIDIfNil(like.ID)
	like.CreatedAt = s.now()
	stored := *like
	s.likes[k] = &stored

	return nil
}

func (repo *likeRepository) HasLiked(_ context.Context, fromID, toID uuid.UUID, kinds ...entity.LikeKind) (bool, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.likes {
		if k.from == fromID && k.to == toID && (len(kinds) == 0 || slices.Contains(kinds, k.kind)) {
			return true, nil
		}
	}

	return false, nil
}

func (repo *likeRepository) CreateMatch(_ context.Context, match *entity.Match) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	a, b := entity.OrderedPair(match.SubjectA, match.SubjectB)
	k := pairKey{a: a, b: b}
	if _, ok := s.matches[k]; ok {
		return repository.ErrDuplicateMatch
	}

	match.ID = newIDIfNil(match.ID)
	match.SubjectA = a
	match.SubjectB = b
	match.CreatedAt = s.now()
	stored := *match
	s.matches[k] = &stored

	return nil
}

func (repo *likeRepository) FindMatch(_ context.Context, a, b uuid.UUID) (*entity.Match, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	first, second := entity.OrderedPair(a, b)
	m, ok := s.matches[pairKey{a: first, b: second}]
	if !ok {
		return nil, repository.ErrMatchNotFound
	}
	cp := *m

	return &cp, nil
}
