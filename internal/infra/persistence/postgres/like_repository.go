package postgres

import (
	"context"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

// CreateLike persists a directed like.
func (repo *likeRepository) CreateLike(ctx context.Context, like *entity.Like) error {
	likeM := &model.LikeModel{
		ID:        like.ID,
		FromID:    like.FromID,
		ToID:      like.ToID,
		Kind:      string(like.Kind),
		Message:   like.Message,
		CreatedAt: like.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid like target")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// HasLiked reports whether fromID has liked toID, optionally restricted to kinds.
func (repo *likeRepository) HasLiked(ctx context.Context, fromID, toID uuid.UUID, kinds ...entity.LikeKind) (bool, error) {
	var count int64

	query := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("from_id = ? AND to_id = ?", fromID, toID)
	if len(kinds) > 0 {
		names := make([]string, 0, len(kinds))
		for _, kind := range kinds {
			names = append(names, string(kind))
		}
		query = query.Where("kind IN ?", names)
	}

	if err := query.
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check like")
	}

	return count > 0, nil
}

// CreateMatch persists a match for the canonical pair.
func (repo *likeRepository) CreateMatch(ctx context.Context, match *entity.Match) error {
	a, b := entity.OrderedPair(match.SubjectA, match.SubjectB)
	matchM := &model.MatchModel{
		ID:        match.ID,
		SubjectA:  a,
		SubjectB:  b,
		CreatedAt: match.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMatch
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match")
	}

	match.ID = matchM.ID
	match.SubjectA = a
	match.SubjectB = b
	match.CreatedAt = matchM.CreatedAt

	return nil
}

// FindMatch retrieves the match for an unordered pair.
func (repo *likeRepository) FindMatch(ctx context.Context, a, b uuid.UUID) (*entity.Match, error) {
	first, second := entity.OrderedPair(a, b)

	var matchM model.MatchModel
	if err := repo.db.WithContext(ctx).
		Where("subject_a = ? AND subject_b = ?", first, second).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match")
	}

	return &entity.Match{
		ID:        matchM.ID,
		SubjectA:  matchM.SubjectA,
		SubjectB:  matchM.SubjectB,
		CreatedAt: matchM.CreatedAt,
	}, nil
}
