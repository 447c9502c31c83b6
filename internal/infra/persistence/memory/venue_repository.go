package memory

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/google/uuid"
)

type venueRepository struct {
	store *Store
}

// NewVenueRepository is the constructor for the in-memory venue repository.
func NewVenueRepository(store *Store) repository.VenueRepository {
	return &venueRepository{store: store}
}

func (repo *venueRepository) CreateVenue(_ context.Context, venue *entity.Venue) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	venue.ID = newIDIfNil(venue.ID)
	venue.CreatedAt = now
	venue.UpdatedAt = now
	if venue.Amenities == nil {
		venue.Amenities = []string{}
	}
	s.venues[venue.ID] = cloneVenue(venue)

	return nil
}

func (repo *venueRepository) FindVenueByID(_ context.Context, id uuid.UUID) (*entity.Venue, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.venues[id]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}

	return cloneVenue(v), nil
}

func (repo *venueRepository) FindVenuesByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Venue, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Venue, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.venues[id]; ok {
			out = append(out, cloneVenue(v))
		}
	}

	return out, nil
}

func (repo *venueRepository) UpdateVenueActive(_ context.Context, id uuid.UUID, active bool) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.venues[id]
	if !ok {
		return repository.ErrVenueNotFound
	}
	v.IsActive = active
	v.UpdatedAt = s.now()

	return nil
}

// LockVenueName is a no-op: in-memory transactions already run one at a time.
func (repo *venueRepository) LockVenueName(_ context.Context, _ entity.EntityKind, _ string) error {
	return nil
}
