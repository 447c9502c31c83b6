package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipModel is the GORM-specific struct for the 'memberships' table.
type MembershipModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SubjectID           uuid.UUID `gorm:"type:uuid;not null;index:idx_memberships_subject_end"`
	Type                string    `gorm:"type:varchar(50);not null"`
	StartDate           time.Time `gorm:"not null"`
	EndDate             time.Time `gorm:"not null;index:idx_memberships_subject_end"`
	UnlimitedLikes      bool      `gorm:"not null;default:false"`
	UnlimitedSuperLikes bool      `gorm:"not null;default:false"`
	UnlimitedRekindles  bool      `gorm:"not null;default:false"`
	AdvancedFilters     bool      `gorm:"not null;default:false"`
	ProfileBoostFactor  float64   `gorm:"type:double precision;not null;default:1"`
	CancellationDate    *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "memberships"
}
