package impl

import (
	"context"
	"testing"

	domainerrors "nearby/internal/domain/errors"
	mockRepo "nearby/internal/mocks/repository"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *engineFixture) newDeviceService() usecase.DeviceUsecase {
	svc := NewDeviceService(DeviceServiceParams{DeviceRepo: f.deviceRepo, Resolver: f.resolver, Config: f.cfg, Logger: f.logger})
	svc.(*deviceService).now = f.clock.Now

	return svc
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	devices := f.newDeviceService()
	identity := guestIdentity("+15145550050")

	device, err := devices.RegisterDevice(ctx, identity, &usecase.DeviceInfo{FCMToken: "token-1", DeviceID: "iphone", Platform: "ios"})
	require.NoError(t, err)
	assert.True(t, device.IsActive)

	// Registering the same device again refreshes its token.
	refreshed, err := devices.RegisterDevice(ctx, identity, &usecase.DeviceInfo{FCMToken: "token-2", DeviceID: "iphone", Platform: "ios"})
	require.NoError(t, err)
	assert.Equal(t, device.ID, refreshed.ID)
	assert.Equal(t, "token-2", refreshed.FCMToken)

	_, err = devices.RegisterDevice(ctx, identity, &usecase.DeviceInfo{FCMToken: "token-3", DeviceID: "ipad", Platform: "ios"})
	require.NoError(t, err)

	list, err := devices.ListDevices(ctx, identity)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	devices := f.newDeviceService()
	owner, _ := f.newUser(t, 0)
	other, _ := f.newUser(t, 0)

	device, err := devices.RegisterDevice(ctx, owner, &usecase.DeviceInfo{FCMToken: "token", DeviceID: "pixel", Platform: "android"})
	require.NoError(t, err)

	assert.ErrorIs(t, devices.DeactivateDevice(ctx, other, device.ID), domainerrors.ErrDeviceNotFound)
	assert.ErrorIs(t, devices.DeactivateDevice(ctx, owner, uuid.New()), domainerrors.ErrDeviceNotFound)

	require.NoError(t, devices.DeactivateDevice(ctx, owner, device.ID))

	list, err := devices.ListDevices(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeviceService_ListDevicesStoreTimeout(t *testing.T) {
	f := newEngineFixture(t)
	identity, subject := f.newUser(t, 0)

	repo := mockRepo.NewMockDeviceRepository(t)
	repo.EXPECT().
		FindActiveDevicesBySubjects(mock.Anything, []uuid.UUID{subject.SubjectID}).
		Return(nil, context.DeadlineExceeded)

	svc := NewDeviceService(DeviceServiceParams{DeviceRepo: repo, Resolver: f.resolver, Config: f.cfg, Logger: f.logger})
	_, err := svc.ListDevices(context.Background(), identity)
	assert.ErrorIs(t, err, domainerrors.ErrBackingStoreTimeout)
}
