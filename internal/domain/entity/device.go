// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device platforms accepted at registration.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// SubjectDevice is a push target of a subject (user or guest profile). Realtime
// events addressed to the subject fan out to every active device.
type SubjectDevice struct {
	ID        uuid.UUID `json:"id"`
	SubjectID uuid.UUID `json:"subject_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"` // client-chosen, unique per subject
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"is_active"` // cleared when FCM reports the token unregistered
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BelongsTo reports whether the device is registered to subjectID.
func (d *SubjectDevice) BelongsTo(subjectID uuid.UUID) bool {
	return d != nil && d.SubjectID == subjectID
}
