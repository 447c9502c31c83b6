package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel is the GORM-specific struct for the 'likes' table.
type LikeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FromID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_directed"`
	ToID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_directed;index"`
	Kind      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_likes_directed"`
	Message   string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// MatchModel is the GORM-specific struct for the 'matches' table.
// SubjectA always sorts before SubjectB so each pair has exactly one row.
type MatchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SubjectA  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair"`
	SubjectB  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}
