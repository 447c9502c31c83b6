package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/geo"
	"nearby/internal/domain/repository"

	"github.com/google/uuid"
)

const defaultGeoQueryLimit = 500

type geoIndexRepository struct {
	store *Store
}

// NewGeoIndexRepository is the constructor for the in-memory geo index. Queries scan
// every row and compute exact haversine distances.
func NewGeoIndexRepository(store *Store) repository.GeoIndexRepository {
	return &geoIndexRepository{store: store}
}

func (repo *geoIndexRepository) UpsertLocation(_ context.Context, location *entity.IndexedLocation) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := cloneLocation(location)
	if cp.Location.LastUpdated.IsZero() {
		cp.Location.LastUpdated = s.now()
	}
	s.locations[location.EntityID] = cp

	return nil
}

func (repo *geoIndexRepository) FindLocation(_ context.Context, entityID uuid.UUID) (*entity.IndexedLocation, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locations[entityID]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return cloneLocation(l), nil
}

func (repo *geoIndexRepository) FindWithinRadius(_ context.Context, center entity.Coordinate, radiusMiles float64, filter entity.GeoFilter) ([]*entity.IndexedLocation, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	type hit struct {
		loc  *entity.IndexedLocation
		dist float64
	}

	hits := make([]hit, 0)
	for _, l := range s.locations {
		if !s.matchesFilterLocked(l, filter) {
			continue
		}
		d := geo.Distance(center, l.Location.Coordinate)
		if d <= radiusMiles {
			hits = append(hits, hit{loc: l, dist: d})
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })

	out := make([]*entity.IndexedLocation, 0, len(hits))
	for _, h := range hits {
		out = append(out, cloneLocation(h.loc))
	}

	return limitLocations(out, filter.Limit), nil
}

func (repo *geoIndexRepository) FindWithinBoundingBox(_ context.Context, box geo.BoundingBox, filter entity.GeoFilter) ([]*entity.IndexedLocation, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.IndexedLocation, 0)
	for _, l := range s.locations {
		if s.matchesFilterLocked(l, filter) && box.Contains(l.Location.Coordinate) {
			out = append(out, cloneLocation(l))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].LastActive.After(out[j].LastActive) })

	return limitLocations(out, filter.Limit), nil
}

func (repo *geoIndexRepository) SetActive(_ context.Context, entityID uuid.UUID, active bool) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locations[entityID]
	if !ok {
		return repository.ErrLocationNotFound
	}
	l.IsActive = active

	return nil
}

func (repo *geoIndexRepository) TouchLastActive(_ context.Context, entityID uuid.UUID, at time.Time) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locations[entityID]
	if !ok {
		return repository.ErrLocationNotFound
	}
	if at.After(l.LastActive) {
		l.LastActive = at
	}

	return nil
}

// matchesFilterLocked reports whether l passes filter. Callers hold s.mu.
func (s *Store) matchesFilterLocked(l *entity.IndexedLocation, filter entity.GeoFilter) bool {
	if len(filter.Kinds) > 0 && !slices.Contains(filter.Kinds, l.EntityKind) {
		return false
	}
	if filter.ActiveOnly && !l.IsActive {
		return false
	}
	if filter.VerifiedOnly && !l.IsVerified {
		return false
	}
	if filter.BoostedAt != nil && s.effectiveBoostLocked(l.EntityID, *filter.BoostedAt) == nil {
		return false
	}

	return !slices.Contains(filter.ExcludeIDs, l.EntityID)
}

func limitLocations(locations []*entity.IndexedLocation, limit int) []*entity.IndexedLocation {
	if limit <= 0 {
		limit = defaultGeoQueryLimit
	}
	if len(locations) > limit {
		return locations[:limit]
	}

	return locations
}
