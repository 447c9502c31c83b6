// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a subject.
	CreateDevice(ctx context.Context, device *entity.SubjectDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.SubjectDevice, error)

	// FindDeviceBySubjectAndDeviceID retrieves a subject's device by the client device identifier.
	FindDeviceBySubjectAndDeviceID(ctx context.Context, subjectID uuid.UUID, deviceID string) (*entity.SubjectDevice, error)

	// FindActiveDevicesBySubjects retrieves all active devices for the given subjects.
	FindActiveDevicesBySubjects(ctx context.Context, subjectIDs []uuid.UUID) ([]*entity.SubjectDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeactivateDevice marks a device inactive.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// DeactivateDevicesByTokens marks every device holding one of the tokens inactive.
	DeactivateDevicesByTokens(ctx context.Context, tokens []string) error
}
