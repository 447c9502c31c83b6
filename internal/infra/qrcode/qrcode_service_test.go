package qrcode

import (
	"encoding/json"
	"testing"

	"nearby/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateVenueCheckInQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})
	venueID := uuid.New()

	qrBytes, err := svc.GenerateVenueCheckInQR(venueID)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_DifferentSizes(t *testing.T) {
	venueID := uuid.New()
	small, err := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128}}).GenerateVenueCheckInQR(venueID)
	require.NoError(t, err)
	large, err := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 512}}).GenerateVenueCheckInQR(venueID)
	require.NoError(t, err)

	assert.Greater(t, len(large), len(small))
}

func TestQRCodeService_CheckInContent(t *testing.T) {
	venueID := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	t.Run("deep link with base URL", func(t *testing.T) {
		svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://nearby.example/"}}).(*qrcodeService)

		content, err := svc.checkInContent(venueID)
		require.NoError(t, err)
		assert.Equal(t, "https://nearby.example/venues/7c9e6679-7425-40de-944b-e07fc1f90ae7/check-in", content)
	})

	t.Run("json payload without base URL", func(t *testing.T) {
		svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

		content, err := svc.checkInContent(venueID)
		require.NoError(t, err)

		var payload CheckInPayload
		require.NoError(t, json.Unmarshal([]byte(content), &payload))
		assert.Equal(t, venueID.String(), payload.VenueID)
		assert.Equal(t, checkInCodeType, payload.Type)
	})
}
