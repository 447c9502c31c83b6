package memory

import (
	"context"
	"sort"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/google/uuid"
)

type membershipRepository struct {
	store *Store
}

// NewMembershipRepository is the constructor for the in-memory membership repository.
func NewMembershipRepository(store *Store) repository.MembershipRepository {
	return &membershipRepository{store: store}
}

func (repo *membershipRepository) CreateMembership(_ context.Context, membership *entity.Membership) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	membership.ID = newIDIfNil(membership.ID)
	membership.CreatedAt = now
	membership.UpdatedAt = now
	s.memberships[membership.ID] = cloneMembership(membership)

	return nil
}

func (repo *membershipRepository) FindMembershipsEndingAfter(_ context.Context, subjectID uuid.UUID, t time.Time) ([]*entity.Membership, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Membership, 0)
	for _, m := range s.memberships {
		if m.SubjectID == subjectID && m.EndDate.After(t) {
			out = append(out, cloneMembership(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.After(out[j].EndDate) })

	return out, nil
}

func (repo *membershipRepository) CancelMembership(_ context.Context, id uuid.UUID, at time.Time) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.memberships[id]
	if !ok {
		return repository.ErrMembershipNotFound
	}
	if m.CancellationDate == nil {
		stamp := at
		m.CancellationDate = &stamp
	}
	m.UpdatedAt = s.now()

	return nil
}
