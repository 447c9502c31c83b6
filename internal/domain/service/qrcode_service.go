package service

import "github.com/google/uuid"

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateVenueCheckInQR generates a PNG QR code for checking in at a venue
	GenerateVenueCheckInQR(venueID uuid.UUID) ([]byte, error)
}
