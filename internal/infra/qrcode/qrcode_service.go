package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"nearby/config"
	"nearby/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize       = 256
	checkInCodeType   = "venue_check_in"
	checkInPathFormat = "/venues/%s/check-in"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// CheckInPayload is encoded into venue QR codes when no base URL is configured
type CheckInPayload struct {
	VenueID string `json:"venue_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateVenueCheckInQR renders a PNG whose content points at the venue check-in
func (s *qrcodeService) GenerateVenueCheckInQR(venueID uuid.UUID) ([]byte, error) {
	content, err := s.checkInContent(venueID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// checkInContent is a deep link when a base URL is configured, a JSON payload otherwise
func (s *qrcodeService) checkInContent(venueID uuid.UUID) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + fmt.Sprintf(checkInPathFormat, venueID), nil
	}

	data, err := json.Marshal(CheckInPayload{VenueID: venueID.String(), Type: checkInCodeType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(data), nil
}
