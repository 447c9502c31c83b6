package postgres

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/geo"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultGeoQueryLimit bounds a geo query when the filter sets no limit.
const defaultGeoQueryLimit = 500

// geoIndexRepository implements repository.GeoIndexRepository on PostGIS.
// Radius and box queries hit the GiST index on the generated geog column.
type geoIndexRepository struct {
	db *gorm.DB
}

// NewGeoIndexRepository is the constructor for geoIndexRepository.
func NewGeoIndexRepository(db *gorm.DB) repository.GeoIndexRepository {
	return &geoIndexRepository{
		db: db,
	}
}

// UpsertLocation replaces the row for the entity in one statement.
func (repo *geoIndexRepository) UpsertLocation(ctx context.Context, location *entity.IndexedLocation) error {
	locationM := fromIndexedLocationDomain(location)
	if locationM.UpdatedAt.IsZero() {
		locationM.UpdatedAt = time.Now().UTC()
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "entity_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"entity_kind", "latitude", "longitude", "address", "city", "state",
				"country", "zip_code", "source", "accuracy", "is_active", "is_verified",
				"last_active", "updated_at",
			}),
		}).
		Omit("geog").
		Create(locationM).Error
	if err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "invalid indexed location")
		}

		return errors.Wrap(err, "failed to upsert indexed location")
	}

	return nil
}

// FindLocation retrieves the indexed location of an entity.
func (repo *geoIndexRepository) FindLocation(ctx context.Context, entityID uuid.UUID) (*entity.IndexedLocation, error) {
	var locationM model.IndexedLocationModel

	if err := repo.db.WithContext(ctx).
		Omit("geog").
		Where("entity_id = ?", entityID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find indexed location")
	}

	return toIndexedLocationDomain(&locationM), nil
}

// FindWithinRadius selects rows whose geography lies within radiusMiles of center,
// nearest first. Distances are spherical to agree with the haversine re-measure.
func (repo *geoIndexRepository) FindWithinRadius(ctx context.Context, center entity.Coordinate, radiusMiles float64, filter entity.GeoFilter) ([]*entity.IndexedLocation, error) {
	point := gorm.Expr("ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography", center.Lng, center.Lat)

	query := repo.db.WithContext(ctx).
		Model(&model.IndexedLocationModel{}).
		Omit("geog").
		Where("ST_DWithin(geog, ?, ?, false)", point, geo.MilesToMeters(radiusMiles)).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "ST_Distance(geog, ?, false)", Vars: []any{point}},
		})

	return repo.find(applyGeoFilter(query, filter), filter, "failed to find locations within radius")
}

// FindWithinBoundingBox selects rows inside box.
func (repo *geoIndexRepository) FindWithinBoundingBox(ctx context.Context, box geo.BoundingBox, filter entity.GeoFilter) ([]*entity.IndexedLocation, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.IndexedLocationModel{}).
		Omit("geog").
		Where("geog && ST_MakeEnvelope(?, ?, ?, ?, 4326)::geography", box.West, box.South, box.East, box.North).
		Where("latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?", box.South, box.North, box.West, box.East).
		Order("last_active DESC")

	return repo.find(applyGeoFilter(query, filter), filter, "failed to find locations within bounding box")
}

func (repo *geoIndexRepository) find(query *gorm.DB, filter entity.GeoFilter, msg string) ([]*entity.IndexedLocation, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultGeoQueryLimit
	}

	var locationModels []*model.IndexedLocationModel
	if err := query.Limit(limit).Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	locations := make([]*entity.IndexedLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toIndexedLocationDomain(locationM))
	}

	return locations, nil
}

func applyGeoFilter(query *gorm.DB, filter entity.GeoFilter) *gorm.DB {
	if len(filter.Kinds) > 0 {
		kinds := make([]string, 0, len(filter.Kinds))
		for _, kind := range filter.Kinds {
			kinds = append(kinds, string(kind))
		}
		query = query.Where("entity_kind IN ?", kinds)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.VerifiedOnly {
		query = query.Where("is_verified = ?", true)
	}
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("entity_id NOT IN ?", filter.ExcludeIDs)
	}
	if filter.BoostedAt != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM boosts b WHERE b.subject_id = indexed_locations.entity_id AND b.active AND b.expires_at > ?)",
			*filter.BoostedAt)
	}

	return query
}

// SetActive toggles the active flag.
func (repo *geoIndexRepository) SetActive(ctx context.Context, entityID uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IndexedLocationModel{}).
		Where("entity_id = ?", entityID).
		Updates(map[string]any{
			"is_active":  active,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set indexed location active")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// TouchLastActive moves last_active forward without moving the point.
func (repo *geoIndexRepository) TouchLastActive(ctx context.Context, entityID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IndexedLocationModel{}).
		Where("entity_id = ?", entityID).
		Update("last_active", gorm.Expr("GREATEST(last_active, ?)", at))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch indexed location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toIndexedLocationDomain converts a GORM IndexedLocationModel to a domain IndexedLocation.
func toIndexedLocationDomain(data *model.IndexedLocationModel) *entity.IndexedLocation {
	if data == nil {
		return nil
	}

	return &entity.IndexedLocation{
		EntityID:   data.EntityID,
		EntityKind: entity.EntityKind(data.EntityKind),
		Location: entity.Location{
			Coordinate:  entity.Coordinate{Lat: data.Latitude, Lng: data.Longitude},
			Address:     data.Address,
			City:        data.City,
			State:       data.State,
			Country:     data.Country,
			ZipCode:     data.ZipCode,
			Source:      entity.LocationSource(data.Source),
			Accuracy:    data.Accuracy,
			LastUpdated: data.UpdatedAt,
		},
		IsActive:   data.IsActive,
		IsVerified: data.IsVerified,
		LastActive: data.LastActive,
	}
}

// fromIndexedLocationDomain converts a domain IndexedLocation to a GORM IndexedLocationModel.
func fromIndexedLocationDomain(data *entity.IndexedLocation) *model.IndexedLocationModel {
	if data == nil {
		return nil
	}

	return &model.IndexedLocationModel{
		EntityID:   data.EntityID,
		EntityKind: string(data.EntityKind),
		Latitude:   data.Location.Coordinate.Lat,
		Longitude:  data.Location.Coordinate.Lng,
		Address:    data.Location.Address,
		City:       data.Location.City,
		State:      data.Location.State,
		Country:    data.Location.Country,
		ZipCode:    data.Location.ZipCode,
		Source:     string(data.Location.Source),
		Accuracy:   data.Location.Accuracy,
		IsActive:   data.IsActive,
		IsVerified: data.IsVerified,
		LastActive: data.LastActive,
		UpdatedAt:  data.Location.LastUpdated,
	}
}
