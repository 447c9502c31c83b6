// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LikeKind distinguishes ordinary likes from super-likes.
type LikeKind string

const (
	LikeKindLike      LikeKind = "like"
	LikeKindSuperLike LikeKind = "superlike"
)

// Like is a directed interest from one subject to another.
type Like struct {
	ID        uuid.UUID `json:"id"`
	FromID    uuid.UUID `json:"from_id"`
	ToID      uuid.UUID `json:"to_id"`
	Kind      LikeKind  `json:"kind"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Match is created when interest is mutual. SubjectA sorts before SubjectB.
type Match struct {
	ID        uuid.UUID `json:"id"`
	SubjectA  uuid.UUID `json:"subject_a"`
	SubjectB  uuid.UUID `json:"subject_b"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderedPair returns the two ids in canonical match order.
func OrderedPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}

	return b, a
}
