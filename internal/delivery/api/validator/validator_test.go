package validator

import (
	"testing"

	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid location", func(t *testing.T) {
		lat, lng := 45.5, -73.56
		assert.NoError(t, v.Validate(&usecase.UpdateLocationInput{Latitude: &lat, Longitude: &lng}))
	})

	t.Run("latitude out of range uses the json name", func(t *testing.T) {
		lat, lng := 91.0, 0.0
		err := v.Validate(&usecase.UpdateLocationInput{Latitude: &lat, Longitude: &lng})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "latitude:max=90")
	})

	t.Run("stripe boost needs an intent", func(t *testing.T) {
		err := v.Validate(&usecase.ActivateBoostInput{PaymentMethod: "stripe"})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "payment_intent_id:required_if")
	})

	t.Run("every violation is listed", func(t *testing.T) {
		err := v.Validate(&usecase.DeviceInfo{Platform: "windows"})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "fcm_token:required")
		assert.Contains(t, appErr.Details(), "device_id:required")
		assert.Contains(t, appErr.Details(), "platform:oneof=ios android")
	})
}
