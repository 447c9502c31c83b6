// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for like persistence.
var (
	// ErrDuplicateLike is returned when the same directed like of the same kind exists.
	ErrDuplicateLike = errors.New("like already exists")
	// ErrDuplicateMatch is returned when the pair is already matched.
	ErrDuplicateMatch = errors.New("match already exists")
	// ErrMatchNotFound is returned when a pair has no match.
	ErrMatchNotFound = errors.New("match not found")
)

// LikeRepository defines the interface for likes and matches.
type LikeRepository interface {
	// CreateLike persists a directed like. Returns ErrDuplicateLike on (from, to, kind) conflicts.
	CreateLike(ctx context.Context, like *entity.Like) error

	// HasLiked reports whether from has liked to with one of kinds, or with any kind when none are given.
	HasLiked(ctx context.Context, fromID, toID uuid.UUID, kinds ...entity.LikeKind) (bool, error)

	// CreateMatch persists a match. Returns ErrDuplicateMatch when the pair already matched.
	CreateMatch(ctx context.Context, match *entity.Match) error

	// FindMatch retrieves the match for an unordered pair.
	FindMatch(ctx context.Context, a, b uuid.UUID) (*entity.Match, error)
}
