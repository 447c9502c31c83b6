package usecase

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required,max=255"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of an existing one
	RegisterDevice(ctx context.Context, identity entity.Identity, deviceInfo *DeviceInfo) (*entity.SubjectDevice, error)

	// ListDevices retrieves all active devices of the caller
	ListDevices(ctx context.Context, identity entity.Identity) ([]*entity.SubjectDevice, error)

	// DeactivateDevice stops pushes to one of the caller's devices
	DeactivateDevice(ctx context.Context, identity entity.Identity, deviceID uuid.UUID) error
}
