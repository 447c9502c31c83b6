package impl

import (
	"context"
	"testing"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/geo"
	mockRepo "nearby/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var montreal = entity.Coordinate{Lat: 45.5017, Lng: -73.5673}

func TestGeoIndex_FindWithinRadius_ExactAndSorted(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	near := uuid.New()
	mid := uuid.New()
	far := uuid.New()
	f.placeProfile(t, far, 45.4215, -73.2636) // ~16 mi
	f.placeProfile(t, near, 45.5088, -73.5878)
	f.placeProfile(t, mid, 45.5500, -73.6500)

	candidates, err := f.geoIndex.FindWithinRadius(ctx, montreal, 10, entity.GeoFilter{})
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, near, candidates[0].EntityID)
	assert.Equal(t, mid, candidates[1].EntityID)

	for i, c := range candidates {
		assert.LessOrEqual(t, geo.Distance(montreal, c.Location.Coordinate), 10.0)
		if i > 0 {
			assert.LessOrEqual(t, candidates[i-1].DistanceMiles, c.DistanceMiles)
		}
	}
}

func TestGeoIndex_Upsert_RejectsInvalidCoordinate(t *testing.T) {
	f := newEngineFixture(t)

	err := f.geoIndex.Upsert(context.Background(), &entity.IndexedLocation{
		EntityID:   uuid.New(),
		EntityKind: entity.EntityKindProfile,
		Location:   entity.Location{Coordinate: entity.Coordinate{Lat: 91, Lng: 0}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestGeoIndex_Upsert_OverwritesPreviousLocation(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.placeProfile(t, id, 45.5088, -73.5878)
	f.placeProfile(t, id, 48.8566, 2.3522)

	candidates, err := f.geoIndex.FindWithinRadius(ctx, montreal, 50, entity.GeoFilter{})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGeoIndex_FindWithinRadius_NegativeRadius(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.geoIndex.FindWithinRadius(context.Background(), montreal, -1, entity.GeoFilter{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
}

func TestGeoIndex_FindWithinRadius_DegradesOnStoreFailure(t *testing.T) {
	repo := mockRepo.NewMockGeoIndexRepository(t)
	idx := NewGeoIndex(GeoIndexParams{Repo: repo, Config: newTestConfig(), Logger: newDiscardLogger()})

	repo.EXPECT().
		FindWithinRadius(mock.Anything, montreal, 5.0, mock.Anything).
		Return(nil, errors.New("connection reset"))

	candidates, err := idx.FindWithinRadius(context.Background(), montreal, 5, entity.GeoFilter{})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGeoIndex_FindNearbyForWrite_PropagatesStoreFailure(t *testing.T) {
	repo := mockRepo.NewMockGeoIndexRepository(t)
	idx := NewGeoIndex(GeoIndexParams{Repo: repo, Config: newTestConfig(), Logger: newDiscardLogger()})

	repo.EXPECT().
		FindWithinRadius(mock.Anything, montreal, 0.1, mock.Anything).
		Return(nil, context.DeadlineExceeded)

	_, err := idx.FindNearbyForWrite(context.Background(), montreal, 0.1, entity.GeoFilter{})
	assert.ErrorIs(t, err, domainerrors.ErrBackingStoreTimeout)
}

func TestGeoIndex_FindWithinBoundingBox(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	inside := uuid.New()
	outside := uuid.New()
	f.placeProfile(t, inside, 45.5088, -73.5878)
	f.placeProfile(t, outside, 45.4215, -73.2636)

	box := geo.BoundingBox{North: 45.6, South: 45.45, East: -73.5, West: -73.7}
	candidates, err := f.geoIndex.FindWithinBoundingBox(ctx, box, entity.GeoFilter{})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, inside, candidates[0].EntityID)
	assert.InDelta(t, geo.Distance(box.Center(), candidates[0].Location.Coordinate), candidates[0].DistanceMiles, 1e-9)

	_, err = f.geoIndex.FindWithinBoundingBox(ctx, geo.BoundingBox{North: 45, South: 46, East: -73, West: -74}, entity.GeoFilter{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBoundingBox)
}

func TestGeoIndex_SetActive_HidesFromActiveQueries(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	id := uuid.New()
	f.placeProfile(t, id, 45.5088, -73.5878)

	require.NoError(t, f.geoIndex.SetActive(ctx, id, false))

	candidates, err := f.geoIndex.FindWithinRadius(ctx, montreal, 10, entity.GeoFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
