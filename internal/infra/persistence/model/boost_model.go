package model

import (
	"time"

	"github.com/google/uuid"
)

// BoostModel is the GORM-specific struct for the 'boosts' table.
// Rows are deactivated rather than deleted so purchase history survives.
type BoostModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SubjectID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_boosts_subject_active"`
	BoostType     string     `gorm:"type:varchar(50);not null"`
	Factor        float64    `gorm:"type:double precision;not null;check:factor > 1"`
	StartedAt     time.Time  `gorm:"not null"`
	ExpiresAt     time.Time  `gorm:"not null;index"`
	PaymentMethod string     `gorm:"type:varchar(20);not null"`
	MembershipID  *uuid.UUID `gorm:"type:uuid"`
	PaymentRef    *string    `gorm:"type:varchar(255);uniqueIndex:idx_boosts_payment_ref"`
	Active        bool       `gorm:"not null;default:true;index:idx_boosts_subject_active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BoostModel) TableName() string {
	return "boosts"
}
