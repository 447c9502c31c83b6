package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/geo"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// geoIndex implements usecase.GeoIndex. The repository may over-select; every hit is
// re-measured with the haversine distance and filtered against the exact radius.
type geoIndex struct {
	repo    repository.GeoIndexRepository
	guard   storeGuard
	metrics service.EngineMetrics
	logger  *slog.Logger
	now     func() time.Time
}

// GeoIndexParams holds dependencies for GeoIndex, injected by Fx.
type GeoIndexParams struct {
	fx.In

	Repo    repository.GeoIndexRepository
	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.EngineMetrics `optional:"true"`
}

// NewGeoIndex is the constructor for geoIndex.
func NewGeoIndex(params GeoIndexParams) usecase.GeoIndex {
	return &geoIndex{
		repo:    params.Repo,
		guard:   newStoreGuard(params.Config),
		metrics: metricsOrNop(params.Metrics),
		logger:  loggerOrDefault(params.Logger),
		now:     utcNow,
	}
}

func (idx *geoIndex) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, idx.logger)
}

// Upsert validates and stores the entry as one write. Invalid coordinates are rejected, never clamped.
func (idx *geoIndex) Upsert(ctx context.Context, entry *entity.IndexedLocation) error {
	if err := geo.Validate(entry.Location.Coordinate); err != nil {
		return err
	}

	now := idx.now()
	stored := *entry
	if stored.Location.LastUpdated.IsZero() {
		stored.Location.LastUpdated = now
	}
	if stored.LastActive.IsZero() {
		stored.LastActive = now
	}

	ctx, cancel := idx.guard.bound(ctx)
	defer cancel()

	if err := idx.repo.UpsertLocation(ctx, &stored); err != nil {
		return writeFailure(err, "failed to upsert indexed location")
	}

	return nil
}

// FindWithinRadius degrades to an empty result when the store fails.
func (idx *geoIndex) FindWithinRadius(ctx context.Context, center entity.Coordinate, radiusMiles float64, filter entity.GeoFilter) ([]*entity.Candidate, error) {
	candidates, err := idx.findWithinRadius(ctx, center, radiusMiles, filter)
	if err == nil {
		return candidates, nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return nil, err
	}

	idx.log(ctx).Warn("geo radius query degraded", slog.Any("error", err))
	idx.metrics.IncDegradedRead("geo_index")

	return []*entity.Candidate{}, nil
}

// FindNearbyForWrite propagates store failures.
func (idx *geoIndex) FindNearbyForWrite(ctx context.Context, center entity.Coordinate, radiusMiles float64, filter entity.GeoFilter) ([]*entity.Candidate, error) {
	candidates, err := idx.findWithinRadius(ctx, center, radiusMiles, filter)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, writeFailure(err, "failed to query nearby entities")
	}

	return candidates, nil
}

func (idx *geoIndex) findWithinRadius(ctx context.Context, center entity.Coordinate, radiusMiles float64, filter entity.GeoFilter) ([]*entity.Candidate, error) {
	if err := geo.Validate(center); err != nil {
		return nil, err
	}
	if radiusMiles < 0 {
		return nil, domainerrors.ErrInvalidRadius
	}

	ctx, cancel := idx.guard.bound(ctx)
	defer cancel()

	rows, err := idx.repo.FindWithinRadius(ctx, center, radiusMiles, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations within radius")
	}

	candidates := make([]*entity.Candidate, 0, len(rows))
	for _, row := range rows {
		d := geo.Distance(center, row.Location.Coordinate)
		if d > radiusMiles {
			continue
		}
		candidates = append(candidates, toCandidate(row, d))
	}
	sortByDistance(candidates)

	return candidates, nil
}

// FindWithinBoundingBox measures distance from the box center and degrades to an
// empty result when the store fails.
func (idx *geoIndex) FindWithinBoundingBox(ctx context.Context, box geo.BoundingBox, filter entity.GeoFilter) ([]*entity.Candidate, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := idx.guard.bound(ctx)
	defer cancel()

	rows, err := idx.repo.FindWithinBoundingBox(ctx, box, filter)
	if err != nil {
		idx.log(ctx).Warn("geo box query degraded", slog.Any("error", err))
		idx.metrics.IncDegradedRead("geo_index")

		return []*entity.Candidate{}, nil
	}

	center := box.Center()
	candidates := make([]*entity.Candidate, 0, len(rows))
	for _, row := range rows {
		if !box.Contains(row.Location.Coordinate) {
			continue
		}
		candidates = append(candidates, toCandidate(row, geo.Distance(center, row.Location.Coordinate)))
	}
	sortByDistance(candidates)

	return candidates, nil
}

// SetActive toggles discoverability.
func (idx *geoIndex) SetActive(ctx context.Context, entityID uuid.UUID, active bool) error {
	ctx, cancel := idx.guard.bound(ctx)
	defer cancel()

	if err := idx.repo.SetActive(ctx, entityID, active); err != nil {
		return writeFailure(err, "failed to set indexed location active")
	}

	return nil
}

func toCandidate(row *entity.IndexedLocation, distance float64) *entity.Candidate {
	return &entity.Candidate{
		EntityID:      row.EntityID,
		EntityKind:    row.EntityKind,
		Location:      row.Location,
		DistanceMiles: distance,
		LastActive:    row.LastActive,
	}
}

func sortByDistance(candidates []*entity.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceMiles < candidates[j].DistanceMiles
	})
}
