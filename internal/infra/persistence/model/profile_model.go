package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// A profile is owned by a guest phone until an authenticated user claims it.
type ProfileModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerUserID       *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_profiles_owner,where:owner_user_id IS NOT NULL"`
	GuestPhone        *string    `gorm:"type:varchar(32);uniqueIndex:idx_profiles_guest_phone,where:guest_phone IS NOT NULL"`
	DisplayName       string     `gorm:"type:varchar(100);not null;default:''"`
	Latitude          *float64   `gorm:"type:double precision"`
	Longitude         *float64   `gorm:"type:double precision"`
	Address           string     `gorm:"type:text;not null;default:''"`
	City              string     `gorm:"type:varchar(100);not null;default:''"`
	State             string     `gorm:"type:varchar(100);not null;default:''"`
	Country           string     `gorm:"type:varchar(100);not null;default:''"`
	ZipCode           string     `gorm:"type:varchar(20);not null;default:''"`
	LocationSource    string     `gorm:"type:varchar(20);not null;default:''"`
	Accuracy          float64    `gorm:"not null;default:0"`
	LocationUpdatedAt *time.Time
	LastActive        time.Time `gorm:"not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
