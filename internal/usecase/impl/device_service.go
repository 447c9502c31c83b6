package impl

import (
	"context"
	"log/slog"
	"time"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	resolver   usecase.IdentityResolver
	guard      storeGuard
	logger     *slog.Logger
	now        func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Resolver   usecase.IdentityResolver
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		resolver:   params.Resolver,
		guard:      newStoreGuard(params.Config),
		logger:     loggerOrDefault(params.Logger),
		now:        utcNow,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, identity entity.Identity, deviceInfo *usecase.DeviceInfo) (*entity.SubjectDevice, error) {
	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{CreateIfMissing: true})
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	existing, err := s.deviceRepo.FindDeviceBySubjectAndDeviceID(ctx, subject.SubjectID, deviceInfo.DeviceID)
	switch {
	case err == nil:
		if err := s.deviceRepo.UpdateFCMToken(ctx, existing.ID, deviceInfo.FCMToken); err != nil {
			return nil, writeFailure(err, "failed to update FCM token")
		}
		existing.FCMToken = deviceInfo.FCMToken
		existing.IsActive = true
		existing.UpdatedAt = s.now()

		return existing, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, writeFailure(err, "failed to find device")
	}

	now := s.now()
	device := &entity.SubjectDevice{
		ID:        uuid.New(),
		SubjectID: subject.SubjectID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, writeFailure(err, "failed to create device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("device registered",
		slog.String("subject_id", subject.SubjectID.String()),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// ListDevices retrieves all active devices of the caller
func (s *deviceService) ListDevices(ctx context.Context, identity entity.Identity) ([]*entity.SubjectDevice, error) {
	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{})
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	devices, err := s.deviceRepo.FindActiveDevicesBySubjects(ctx, []uuid.UUID{subject.SubjectID})
	if err != nil {
		return nil, writeFailure(err, "failed to find active devices")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, identity entity.Identity, deviceID uuid.UUID) error {
	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{})
	if err != nil {
		return err
	}

	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return writeFailure(err, "failed to find device")
	}

	// Other subjects' devices are reported as missing.
	if !device.BelongsTo(subject.SubjectID) {
		return domainerrors.ErrDeviceNotFound
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return writeFailure(err, "failed to deactivate device")
	}

	return nil
}
