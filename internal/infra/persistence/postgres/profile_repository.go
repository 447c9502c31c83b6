// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// CreateProfile persists a new profile.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfileByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindProfileByOwner retrieves the profile claimed by userID.
func (repo *profileRepository) FindProfileByOwner(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "owner_user_id = ?", userID)
}

// FindProfileByGuestPhone retrieves the profile created for a guest phone.
func (repo *profileRepository) FindProfileByGuestPhone(ctx context.Context, phone string) (*entity.Profile, error) {
	return repo.findOne(ctx, "guest_phone = ?", phone)
}

func (repo *profileRepository) findOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// ClaimProfile sets the owner with a single conditional update so concurrent claims
// cannot both win.
func (repo *profileRepository) ClaimProfile(ctx context.Context, profileID, userID uuid.UUID) (*entity.Profile, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ? AND (owner_user_id IS NULL OR owner_user_id = ?)", profileID, userID).
		Updates(map[string]any{
			"owner_user_id": userID,
			"updated_at":    time.Now().UTC(),
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrDuplicateProfile
		}

		return nil, errors.Wrap(result.Error, "failed to claim profile")
	}

	profile, err := repo.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected == 0 && !profile.OwnedBy(userID) {
		return nil, repository.ErrProfileClaimedByOther
	}

	return profile, nil
}

// UpdateProfileLocation overwrites the profile's location columns.
func (repo *profileRepository) UpdateProfileLocation(ctx context.Context, id uuid.UUID, location *entity.Location) error {
	lat := location.Coordinate.Lat
	lng := location.Coordinate.Lng
	updatedAt := location.LastUpdated

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"latitude":            lat,
			"longitude":           lng,
			"address":             location.Address,
			"city":                location.City,
			"state":               location.State,
			"country":             location.Country,
			"zip_code":            location.ZipCode,
			"location_source":     string(location.Source),
			"accuracy":            location.Accuracy,
			"location_updated_at": updatedAt,
			"updated_at":          time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// TouchProfile moves last_active forward; it never moves it back.
func (repo *profileRepository) TouchProfile(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("last_active", gorm.Expr("GREATEST(last_active, ?)", at))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		ID:          data.ID,
		OwnerUserID: data.OwnerUserID,
		DisplayName: data.DisplayName,
		LastActive:  data.LastActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.GuestPhone != nil {
		profile.GuestPhone = *data.GuestPhone
	}

	if data.Latitude != nil && data.Longitude != nil {
		location := &entity.Location{
			Coordinate: entity.Coordinate{Lat: *data.Latitude, Lng: *data.Longitude},
			Address:    data.Address,
			City:       data.City,
			State:      data.State,
			Country:    data.Country,
			ZipCode:    data.ZipCode,
			Source:     entity.LocationSource(data.LocationSource),
			Accuracy:   data.Accuracy,
		}
		if data.LocationUpdatedAt != nil {
			location.LastUpdated = *data.LocationUpdatedAt
		}
		profile.Location = location
	}

	return profile
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	profileM := &model.ProfileModel{
		ID:          data.ID,
		OwnerUserID: data.OwnerUserID,
		DisplayName: data.DisplayName,
		LastActive:  data.LastActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.GuestPhone != "" {
		phone := data.GuestPhone
		profileM.GuestPhone = &phone
	}

	if loc := data.Location; loc != nil {
		lat, lng := loc.Coordinate.Lat, loc.Coordinate.Lng
		updatedAt := loc.LastUpdated
		profileM.Latitude = &lat
		profileM.Longitude = &lng
		profileM.Address = loc.Address
		profileM.City = loc.City
		profileM.State = loc.State
		profileM.Country = loc.Country
		profileM.ZipCode = loc.ZipCode
		profileM.LocationSource = string(loc.Source)
		profileM.Accuracy = loc.Accuracy
		profileM.LocationUpdatedAt = &updatedAt
	}

	return profileM
}
