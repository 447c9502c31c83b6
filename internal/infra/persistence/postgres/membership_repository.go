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

// membershipRepository implements the repository.MembershipRepository interface.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{
		db: db,
	}
}

// CreateMembership persists a new membership.
func (repo *membershipRepository) CreateMembership(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required membership information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership")
	}

	membership.ID = membershipM.ID
	membership.CreatedAt = membershipM.CreatedAt
	membership.UpdatedAt = membershipM.UpdatedAt

	return nil
}

// FindMembershipsEndingAfter returns memberships ending after t, latest end first.
func (repo *membershipRepository) FindMembershipsEndingAfter(ctx context.Context, subjectID uuid.UUID, t time.Time) ([]*entity.Membership, error) {
	var membershipModels []*model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("subject_id = ? AND end_date > ?", subjectID, t).
		Order("end_date DESC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find memberships")
	}

	memberships := make([]*entity.Membership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

// CancelMembership stamps the cancellation date once; later calls keep the first stamp.
func (repo *membershipRepository) CancelMembership(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"cancellation_date": gorm.Expr("COALESCE(cancellation_date, ?)", at),
			"updated_at":        time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to cancel membership")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMembershipDomain converts a GORM MembershipModel to a domain Membership entity.
func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		ID:        data.ID,
		SubjectID: data.SubjectID,
		Type:      data.Type,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		Benefits: entity.MembershipBenefits{
			UnlimitedLikes:      data.UnlimitedLikes,
			UnlimitedSuperLikes: data.UnlimitedSuperLikes,
			UnlimitedRekindles:  data.UnlimitedRekindles,
			AdvancedFilters:     data.AdvancedFilters,
			ProfileBoostFactor:  data.ProfileBoostFactor,
		},
		CancellationDate: data.CancellationDate,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromMembershipDomain converts a domain Membership entity to a GORM MembershipModel.
func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	if data == nil {
		return nil
	}

	return &model.MembershipModel{
		ID:                  data.ID,
		SubjectID:           data.SubjectID,
		Type:                data.Type,
		StartDate:           data.StartDate,
		EndDate:             data.EndDate,
		UnlimitedLikes:      data.Benefits.UnlimitedLikes,
		UnlimitedSuperLikes: data.Benefits.UnlimitedSuperLikes,
		UnlimitedRekindles:  data.Benefits.UnlimitedRekindles,
		AdvancedFilters:     data.Benefits.AdvancedFilters,
		ProfileBoostFactor:  data.Benefits.ProfileBoostFactor,
		CancellationDate:    data.CancellationDate,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
