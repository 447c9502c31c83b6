package model

import (
	"time"

	"github.com/google/uuid"
)

// PointAccountModel is the GORM-specific struct for the 'point_accounts' table.
type PointAccountModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Balance   int       `gorm:"not null;default:0;check:balance >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointAccountModel) TableName() string {
	return "point_accounts"
}
