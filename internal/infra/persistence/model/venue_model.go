package model

import (
	"time"

	"github.com/google/uuid"
)

// VenueModel is the GORM-specific struct for the 'venues' table.
type VenueModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Kind           string    `gorm:"type:varchar(20);not null;index"`
	Name           string    `gorm:"type:varchar(200);not null"`
	NormalizedName string    `gorm:"type:varchar(200);not null;index"`
	Latitude       float64   `gorm:"type:double precision;not null"`
	Longitude      float64   `gorm:"type:double precision;not null"`
	Address        string    `gorm:"type:text;not null;default:''"`
	City           string    `gorm:"type:varchar(100);not null;default:''"`
	State          string    `gorm:"type:varchar(100);not null;default:''"`
	Country        string    `gorm:"type:varchar(100);not null;default:''"`
	ZipCode        string    `gorm:"type:varchar(20);not null;default:''"`
	Source         string    `gorm:"type:varchar(20);not null"`
	Amenities      []string  `gorm:"type:jsonb;not null;serializer:json"`
	Chain          string    `gorm:"type:varchar(100);not null;default:''"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive       bool      `gorm:"not null;default:true"`
	IsVerified     bool      `gorm:"not null;default:false"`
	MemberCount    int       `gorm:"not null;default:0"`
	Rating         float64   `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VenueModel) TableName() string {
	return "venues"
}
