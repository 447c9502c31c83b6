package postgres

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const incrementUsageSQL = `
INSERT INTO feature_usages (id, subject_id, feature_type, period_start, count, reset_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (subject_id, feature_type, period_start)
DO UPDATE SET count = feature_usages.count + EXCLUDED.count, updated_at = EXCLUDED.updated_at
WHERE feature_usages.count + EXCLUDED.count <= ?
RETURNING id, subject_id, feature_type, period_start, count, reset_at, membership_ref, created_at, updated_at`

// featureUsageRepository implements the repository.FeatureUsageRepository interface.
type featureUsageRepository struct {
	db *gorm.DB
}

// NewFeatureUsageRepository is the constructor for featureUsageRepository.
func NewFeatureUsageRepository(db *gorm.DB) repository.FeatureUsageRepository {
	return &featureUsageRepository{
		db: db,
	}
}

// EnsureUsage inserts a zero row for the period when absent and returns the stored row.
func (repo *featureUsageRepository) EnsureUsage(ctx context.Context, key repository.UsageKey) (*entity.FeatureUsage, error) {
	now := time.Now().UTC()
	usageM := &model.FeatureUsageModel{
		ID:          uuid.New(),
		SubjectID:   key.SubjectID,
		FeatureType: string(key.FeatureType),
		PeriodStart: key.PeriodStart,
		ResetAt:     key.ResetAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	db := repo.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(usageM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to ensure feature usage")
	}

	var stored model.FeatureUsageModel
	if err := db.
		Where("subject_id = ? AND feature_type = ? AND period_start = ?", key.SubjectID, string(key.FeatureType), key.PeriodStart).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read feature usage")
	}

	return toFeatureUsageDomain(&stored), nil
}

// IncrementUsage performs the limit check and the increment in one upsert.
// An upsert whose WHERE rejects the update returns no row.
func (repo *featureUsageRepository) IncrementUsage(ctx context.Context, key repository.UsageKey, cost, limit int) (*entity.FeatureUsage, error) {
	if cost > limit {
		return nil, repository.ErrUsageLimitReached
	}

	now := time.Now().UTC()
	var rows []*model.FeatureUsageModel

	if err := repo.db.WithContext(ctx).
		Raw(incrementUsageSQL,
			uuid.New(), key.SubjectID, string(key.FeatureType), key.PeriodStart, cost, key.ResetAt, now, now,
			limit,
		).
		Scan(&rows).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return nil, repository.ErrUsageLimitReached
		}

		return nil, errors.Wrap(err, "failed to increment feature usage")
	}

	if len(rows) == 0 {
		return nil, repository.ErrUsageLimitReached
	}

	return toFeatureUsageDomain(rows[0]), nil
}

// --- Mapper Functions ---

// toFeatureUsageDomain converts a GORM FeatureUsageModel to a domain FeatureUsage entity.
func toFeatureUsageDomain(data *model.FeatureUsageModel) *entity.FeatureUsage {
	if data == nil {
		return nil
	}

	return &entity.FeatureUsage{
		ID:            data.ID,
		SubjectID:     data.SubjectID,
		FeatureType:   entity.FeatureType(data.FeatureType),
		PeriodStart:   data.PeriodStart,
		Count:         data.Count,
		ResetAt:       data.ResetAt,
		MembershipRef: data.MembershipRef,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
