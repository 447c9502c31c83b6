package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectDeviceModel is the GORM-specific struct for the 'subject_devices' table.
// It represents a subject's device registered for push notifications.
type SubjectDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subject_devices_device"`
	FCMToken  string    `gorm:"type:varchar(255);not null;index"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_subject_devices_device"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SubjectDeviceModel) TableName() string {
	return "subject_devices"
}
