package memory

import (
	"context"
	"slices"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct {
	store *Store
}

// NewDeviceRepository is the constructor for the in-memory device repository.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{store: store}
}

func (repo *deviceRepository) CreateDevice(_ context.Context, device *entity.SubjectDevice) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.devices {
		if d.SubjectID == device.SubjectID && d.DeviceID == device.DeviceID {
			return repository.ErrDuplicateDevice
		}
	}

	now := s.now()
	device.ID = newIDIfNil(device.ID)
	device.CreatedAt = now
	device.UpdatedAt = now
	stored := *device
	s.devices[device.ID] = &stored

	return nil
}

func (repo *deviceRepository) FindDeviceByID(_ context.Context, id uuid.UUID) (*entity.SubjectDevice, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.devices[id]
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}
	cp := *d

	return &cp, nil
}

func (repo *deviceRepository) FindDeviceBySubjectAndDeviceID(_ context.Context, subjectID uuid.UUID, deviceID string) (*entity.SubjectDevice, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.devices {
		if d.SubjectID == subjectID && d.DeviceID == deviceID {
			cp := *d

			return &cp, nil
		}
	}

	return nil, repository.ErrDeviceNotFound
}

func (repo *deviceRepository) FindActiveDevicesBySubjects(_ context.Context, subjectIDs []uuid.UUID) ([]*entity.SubjectDevice, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.SubjectDevice, 0)
	for _, d := range s.devices {
		if d.IsActive && slices.Contains(subjectIDs, d.SubjectID) {
			cp := *d
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (repo *deviceRepository) UpdateFCMToken(_ context.Context, id uuid.UUID, fcmToken string) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.devices[id]
	if !ok {
		return repository.ErrDeviceNotFound
	}
	d.FCMToken = fcmToken
	d.IsActive = true
	d.UpdatedAt = s.now()

	return nil
}

func (repo *deviceRepository) DeactivateDevice(_ context.Context, id uuid.UUID) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.devices[id]
	if !ok {
		return repository.ErrDeviceNotFound
	}
	d.IsActive = false
	d.UpdatedAt = s.now()

	return nil
}

func (repo *deviceRepository) DeactivateDevicesByTokens(_ context.Context, tokens []string) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.devices {
		if slices.Contains(tokens, d.FCMToken) {
			d.IsActive = false
			d.UpdatedAt = s.now()
		}
	}

	return nil
}
