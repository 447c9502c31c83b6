package postgres

import (
	"context"
	"time"

	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pointRepository implements the repository.PointRepository interface.
type pointRepository struct {
	db *gorm.DB
}

// NewPointRepository is the constructor for pointRepository.
func NewPointRepository(db *gorm.DB) repository.PointRepository {
	return &pointRepository{
		db: db,
	}
}

// Debit subtracts amount with a conditional update; the balance never goes negative.
func (repo *pointRepository) Debit(ctx context.Context, userID uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PointAccountModel{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to debit points")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInsufficientPoints
	}

	return nil
}

// Credit adds amount, opening the account on first credit.
func (repo *pointRepository) Credit(ctx context.Context, userID uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}

	now := time.Now().UTC()
	accountM := &model.PointAccountModel{
		UserID:    userID,
		Balance:   amount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"balance":    gorm.Expr("point_accounts.balance + EXCLUDED.balance"),
				"updated_at": now,
			}),
		}).
		Create(accountM).Error; err != nil {
		return errors.Wrap(err, "failed to credit points")
	}

	return nil
}

// Balance returns the current balance.
func (repo *pointRepository) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	var accountM model.PointAccountModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to read point balance")
	}

	return accountM.Balance, nil
}
