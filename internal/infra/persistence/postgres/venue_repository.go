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

// venueRepository implements the repository.VenueRepository interface.
type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository is the constructor for venueRepository.
func NewVenueRepository(db *gorm.DB) repository.VenueRepository {
	return &venueRepository{
		db: db,
	}
}

// CreateVenue persists a new venue.
func (repo *venueRepository) CreateVenue(ctx context.Context, venue *entity.Venue) error {
	venueM := fromVenueDomain(venue)

	if err := repo.db.WithContext(ctx).Create(venueM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required venue information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create venue")
	}

	venue.ID = venueM.ID
	venue.CreatedAt = venueM.CreatedAt
	venue.UpdatedAt = venueM.UpdatedAt

	return nil
}

// LockVenueName takes a transaction-scoped advisory lock on the kind and name, so two
// creates of the same venue run their duplicate check one after the other.
func (repo *venueRepository) LockVenueName(ctx context.Context, kind entity.EntityKind, normalizedName string) error {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", "venue:"+string(kind)+":"+normalizedName).Error; err != nil {
		return errors.Wrap(err, "failed to lock venue name")
	}

	return nil
}

// FindVenueByID retrieves a venue by its unique ID.
func (repo *venueRepository) FindVenueByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	var venueM model.VenueModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&venueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to find venue by ID")
	}

	return toVenueDomain(&venueM), nil
}

// FindVenuesByIDs retrieves venues by IDs.
func (repo *venueRepository) FindVenuesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Venue, error) {
	if len(ids) == 0 {
		return []*entity.Venue{}, nil
	}

	var venueModels []*model.VenueModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&venueModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find venues by IDs")
	}

	venues := make([]*entity.Venue, 0, len(venueModels))
	for _, venueM := range venueModels {
		venues = append(venues, toVenueDomain(venueM))
	}

	return venues, nil
}

// UpdateVenueActive sets the active flag.
func (repo *venueRepository) UpdateVenueActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  active,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update venue active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVenueNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVenueDomain converts a GORM VenueModel to a domain Venue entity.
func toVenueDomain(data *model.VenueModel) *entity.Venue {
	if data == nil {
		return nil
	}

	amenities := data.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &entity.Venue{
		ID:   data.ID,
		Kind: entity.EntityKind(data.Kind),
		Name: data.Name,
		Location: entity.Location{
			Coordinate:  entity.Coordinate{Lat: data.Latitude, Lng: data.Longitude},
			Address:     data.Address,
			City:        data.City,
			State:       data.State,
			Country:     data.Country,
			ZipCode:     data.ZipCode,
			Source:      entity.LocationSource(data.Source),
			LastUpdated: data.UpdatedAt,
		},
		Amenities:   amenities,
		Chain:       data.Chain,
		CreatedBy:   data.CreatedBy,
		IsActive:    data.IsActive,
		IsVerified:  data.IsVerified,
		MemberCount: data.MemberCount,
		Rating:      data.Rating,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromVenueDomain converts a domain Venue entity to a GORM VenueModel.
func fromVenueDomain(data *entity.Venue) *model.VenueModel {
	if data == nil {
		return nil
	}

	amenities := data.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &model.VenueModel{
		ID:             data.ID,
		Kind:           string(data.Kind),
		Name:           data.Name,
		NormalizedName: entity.NormalizeVenueName(data.Name),
		Latitude:       data.Location.Coordinate.Lat,
		Longitude:      data.Location.Coordinate.Lng,
		Address:        data.Location.Address,
		City:           data.Location.City,
		State:          data.Location.State,
		Country:        data.Location.Country,
		ZipCode:        data.Location.ZipCode,
		Source:         string(data.Location.Source),
		Amenities:      amenities,
		Chain:          data.Chain,
		CreatedBy:      data.CreatedBy,
		IsActive:       data.IsActive,
		IsVerified:     data.IsVerified,
		MemberCount:    data.MemberCount,
		Rating:         data.Rating,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
