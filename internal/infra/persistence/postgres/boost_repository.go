package postgres

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// boostRepository implements the repository.BoostRepository interface.
type boostRepository struct {
	db *gorm.DB
}

// NewBoostRepository is the constructor for boostRepository.
func NewBoostRepository(db *gorm.DB) repository.BoostRepository {
	return &boostRepository{
		db: db,
	}
}

// FindEffectiveBoost returns the highest-factor boost effective at now.
func (repo *boostRepository) FindEffectiveBoost(ctx context.Context, subjectID uuid.UUID, now time.Time) (*entity.Boost, error) {
	return findEffectiveBoost(repo.db.WithContext(ctx), subjectID, now)
}

func findEffectiveBoost(db *gorm.DB, subjectID uuid.UUID, now time.Time) (*entity.Boost, error) {
	var boostM model.BoostModel

	if err := db.
		Where("subject_id = ? AND active = ? AND expires_at > ?", subjectID, true, now).
		Order("factor DESC, expires_at DESC").
		First(&boostM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoostNotFound
		}

		return nil, errors.Wrap(err, "failed to find effective boost")
	}

	return toBoostDomain(&boostM), nil
}

// FindEffectiveFactors returns the highest effective factor per subject in one query.
func (repo *boostRepository) FindEffectiveFactors(ctx context.Context, subjectIDs []uuid.UUID, now time.Time) (map[uuid.UUID]float64, error) {
	factors := make(map[uuid.UUID]float64, len(subjectIDs))
	if len(subjectIDs) == 0 {
		return factors, nil
	}

	var rows []struct {
		SubjectID uuid.UUID
		Factor    float64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.BoostModel{}).
		Select("subject_id, MAX(factor) AS factor").
		Where("subject_id IN ? AND active = ? AND expires_at > ?", subjectIDs, true, now).
		Group("subject_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find effective boost factors")
	}

	for _, row := range rows {
		factors[row.SubjectID] = row.Factor
	}

	return factors, nil
}

// ReplaceIfHigher serializes activations per subject with a transaction-scoped advisory
// lock, then compares against the effective boost and swaps it out.
func (repo *boostRepository) ReplaceIfHigher(ctx context.Context, candidate *entity.Boost, now time.Time) (*entity.Boost, error) {
	var blocking *entity.Boost

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", "boost:"+candidate.SubjectID.String()).Error; err != nil {
			return errors.Wrap(err, "failed to lock subject boosts")
		}

		if candidate.PaymentRef != "" {
			var redeemed int64
			if err := tx.Model(&model.BoostModel{}).
				Where("payment_ref = ?", candidate.PaymentRef).
				Count(&redeemed).Error; err != nil {
				return errors.Wrap(err, "failed to check payment redemption")
			}
			if redeemed > 0 {
				return repository.ErrPaymentAlreadyRedeemed
			}
		}

		existing, err := findEffectiveBoost(tx, candidate.SubjectID, now)
		switch {
		case err == nil:
			if existing.Factor >= candidate.Factor {
				blocking = existing

				return repository.ErrBoostNotHigher
			}
		case !errors.Is(err, repository.ErrBoostNotFound):
			return err
		}

		if err := tx.Model(&model.BoostModel{}).
			Where("subject_id = ? AND active = ? AND expires_at > ?", candidate.SubjectID, true, now).
			Updates(map[string]any{
				"active":     false,
				"updated_at": now,
			}).Error; err != nil {
			return errors.Wrap(err, "failed to deactivate superseded boosts")
		}

		boostM := fromBoostDomain(candidate)
		if err := tx.Create(boostM).Error; err != nil {
			// Two subjects redeeming one payment race past the count; the unique index decides.
			if isUniqueConstraintViolation(err) && candidate.PaymentRef != "" {
				return repository.ErrPaymentAlreadyRedeemed
			}
			if isCheckConstraintViolation(err) {
				return domainerrors.ErrInvalidBoostFactor.WrapMessage("boost factor must exceed 1")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create boost")
		}

		candidate.ID = boostM.ID
		candidate.CreatedAt = boostM.CreatedAt
		candidate.UpdatedAt = boostM.UpdatedAt

		return nil
	})
	if err != nil {
		return blocking, err
	}

	return nil, nil
}

// FindBoostByID retrieves a boost by its unique ID.
func (repo *boostRepository) FindBoostByID(ctx context.Context, id uuid.UUID) (*entity.Boost, error) {
	var boostM model.BoostModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&boostM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoostNotFound
		}

		return nil, errors.Wrap(err, "failed to find boost by ID")
	}

	return toBoostDomain(&boostM), nil
}

// DeactivateBoost sets active=false.
func (repo *boostRepository) DeactivateBoost(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BoostModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"active":     false,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate boost")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBoostNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBoostDomain converts a GORM BoostModel to a domain Boost entity.
func toBoostDomain(data *model.BoostModel) *entity.Boost {
	if data == nil {
		return nil
	}

	return &entity.Boost{
		ID:            data.ID,
		SubjectID:     data.SubjectID,
		BoostType:     data.BoostType,
		Factor:        data.Factor,
		StartedAt:     data.StartedAt,
		ExpiresAt:     data.ExpiresAt,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		MembershipID:  data.MembershipID,
		PaymentRef:    derefString(data.PaymentRef),
		Active:        data.Active,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromBoostDomain converts a domain Boost entity to a GORM BoostModel.
func fromBoostDomain(data *entity.Boost) *model.BoostModel {
	if data == nil {
		return nil
	}

	return &model.BoostModel{
		ID:            data.ID,
		SubjectID:     data.SubjectID,
		BoostType:     data.BoostType,
		Factor:        data.Factor,
		StartedAt:     data.StartedAt,
		ExpiresAt:     data.ExpiresAt,
		PaymentMethod: string(data.PaymentMethod),
		MembershipID:  data.MembershipID,
		PaymentRef:    nullableString(data.PaymentRef),
		Active:        data.Active,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// nullableString stores an empty string as NULL so unique indexes ignore it.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
