package model

import (
	"time"

	"github.com/google/uuid"
)

// FeatureUsageModel is the GORM-specific struct for the 'feature_usages' table.
// One row per subject, feature and period; the unique key is the upsert target.
type FeatureUsageModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SubjectID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_feature_usages_period"`
	FeatureType   string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_feature_usages_period"`
	PeriodStart   time.Time  `gorm:"not null;uniqueIndex:idx_feature_usages_period"`
	Count         int        `gorm:"not null;default:0;check:count >= 0"`
	ResetAt       time.Time  `gorm:"not null"`
	MembershipRef *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeatureUsageModel) TableName() string {
	return "feature_usages"
}
