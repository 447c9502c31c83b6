package memory

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/google/uuid"
)

type profileRepository struct {
	store *Store
}

// NewProfileRepository is the constructor for the in-memory profile repository.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (repo *profileRepository) CreateProfile(_ context.Context, profile *entity.Profile) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.profiles {
		if profile.GuestPhone != "" && existing.GuestPhone == profile.GuestPhone {
			return repository.ErrDuplicateProfile
		}
		if profile.IsClaimed() && existing.OwnedBy(*profile.OwnerUserID) {
			return repository.ErrDuplicateProfile
		}
	}

	now := s.now()
	profile.ID = newIDIfNil(profile.ID)
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.LastActive.IsZero() {
		profile.LastActive = now
	}
	s.profiles[profile.ID] = cloneProfile(profile)

	return nil
}

func (repo *profileRepository) FindProfileByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(p), nil
}

func (repo *profileRepository) FindProfileByOwner(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return repo.findFirst(func(p *entity.Profile) bool { return p.OwnedBy(userID) })
}

func (repo *profileRepository) FindProfileByGuestPhone(_ context.Context, phone string) (*entity.Profile, error) {
	return repo.findFirst(func(p *entity.Profile) bool { return phone != "" && p.GuestPhone == phone })
}

func (repo *profileRepository) findFirst(match func(*entity.Profile) bool) (*entity.Profile, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if match(p) {
			return cloneProfile(p), nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (repo *profileRepository) ClaimProfile(_ context.Context, profileID, userID uuid.UUID) (*entity.Profile, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[profileID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	if p.OwnedBy(userID) {
		return cloneProfile(p), nil
	}
	if p.IsClaimed() {
		return nil, repository.ErrProfileClaimedByOther
	}
	for id, other := range s.profiles {
		if id != profileID && other.OwnedBy(userID) {
			return nil, repository.ErrDuplicateProfile
		}
	}

	owner := userID
	p.OwnerUserID = &owner
	p.UpdatedAt = s.now()

	return cloneProfile(p), nil
}

func (repo *profileRepository) UpdateProfileLocation(_ context.Context, id uuid.UUID, location *entity.Location) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return repository.ErrProfileNotFound
	}
	loc := *location
	p.Location = &loc
	p.UpdatedAt = s.now()

	return nil
}

func (repo *profileRepository) TouchProfile(_ context.Context, id uuid.UUID, at time.Time) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return repository.ErrProfileNotFound
	}
	if at.After(p.LastActive) {
		p.LastActive = at
	}

	return nil
}
