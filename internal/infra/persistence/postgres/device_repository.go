package postgres

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device for a subject.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.SubjectDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.SubjectDevice, error) {
	var deviceM model.SubjectDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDeviceBySubjectAndDeviceID retrieves a subject's device by the client identifier.
func (repo *deviceRepository) FindDeviceBySubjectAndDeviceID(ctx context.Context, subjectID uuid.UUID, deviceID string) (*entity.SubjectDevice, error) {
	var deviceM model.SubjectDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("subject_id = ? AND device_id = ?", subjectID, deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by subject")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindActiveDevicesBySubjects retrieves active devices for every subject in one query.
func (repo *deviceRepository) FindActiveDevicesBySubjects(ctx context.Context, subjectIDs []uuid.UUID) ([]*entity.SubjectDevice, error) {
	if len(subjectIDs) == 0 {
		return []*entity.SubjectDevice{}, nil
	}

	var deviceModels []*model.SubjectDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("subject_id IN ? AND is_active = ?", subjectIDs, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	devices := make([]*entity.SubjectDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken updates the FCM token for a device and reactivates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubjectDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"fcm_token":  fcmToken,
			"is_active":  true,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice marks a device inactive.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubjectDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevicesByTokens marks every device holding one of the tokens inactive.
func (repo *deviceRepository) DeactivateDevicesByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.SubjectDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		}).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices by token")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM SubjectDeviceModel to a domain SubjectDevice entity.
func toDeviceDomain(data *model.SubjectDeviceModel) *entity.SubjectDevice {
	if data == nil {
		return nil
	}

	return &entity.SubjectDevice{
		ID:        data.ID,
		SubjectID: data.SubjectID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain SubjectDevice entity to a GORM SubjectDeviceModel.
func fromDeviceDomain(data *entity.SubjectDevice) *model.SubjectDeviceModel {
	if data == nil {
		return nil
	}

	return &model.SubjectDeviceModel{
		ID:        data.ID,
		SubjectID: data.SubjectID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
