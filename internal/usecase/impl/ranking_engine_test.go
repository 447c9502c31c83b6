package impl

import (
	"context"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	mockRepo "nearby/internal/mocks/repository"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRankingEngine_BoostOutranksDistance(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	f.placeProfile(t, a, 45.5017, -73.5673)
	f.placeProfile(t, b, 45.5088, -73.5878)
	f.placeProfile(t, c, 45.4215, -73.2636)

	_, err := f.boosts.Activate(ctx, &usecase.ActivateInput{
		SubjectID:       b,
		BoostType:       "standard",
		Factor:          5,
		DurationMinutes: 30,
		PaymentMethod:   entity.PaymentMethodPoints,
	})
	require.NoError(t, err)

	ranked, err := f.ranking.Rank(ctx, montreal, 25, entity.GeoFilter{}, &a)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, b, ranked[0].EntityID)
	assert.Equal(t, 5.0, ranked[0].BoostFactor)
	assert.Equal(t, c, ranked[1].EntityID)
	assert.Equal(t, 1.0, ranked[1].BoostFactor)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	assert.InDelta(t, 5/ranked[0].DistanceMiles, ranked[0].Score, 1e-9)
}

func TestRankingEngine_ExcludesRequester(t *testing.T) {
	f := newEngineFixture(t)
	me := uuid.New()
	f.placeProfile(t, me, 45.5017, -73.5673)

	ranked, err := f.ranking.Rank(context.Background(), montreal, 25, entity.GeoFilter{}, &me)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankingEngine_EpsilonFloorsZeroDistance(t *testing.T) {
	f := newEngineFixture(t)
	id := uuid.New()
	f.placeProfile(t, id, montreal.Lat, montreal.Lng)

	ranked, err := f.ranking.Rank(context.Background(), montreal, 25, entity.GeoFilter{}, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 1/f.cfg.Engine.DistanceEpsilonMiles, ranked[0].Score, 1e-6)
}

func TestRankingEngine_TieBrokenByRecentActivity(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	older := uuid.New()
	newer := uuid.New()
	coordinate := entity.Coordinate{Lat: 45.5088, Lng: -73.5878}
	for id, lastActive := range map[uuid.UUID]time.Time{
		older: fixtureStart.Add(-time.Hour),
		newer: fixtureStart,
	} {
		require.NoError(t, f.geoIndex.Upsert(ctx, &entity.IndexedLocation{
			EntityID:   id,
			EntityKind: entity.EntityKindProfile,
			Location:   entity.Location{Coordinate: coordinate},
			IsActive:   true,
			LastActive: lastActive,
		}))
	}

	ranked, err := f.ranking.Rank(ctx, montreal, 25, entity.GeoFilter{}, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, newer, ranked[0].EntityID)
	assert.Equal(t, older, ranked[1].EntityID)
}

func TestRankingEngine_BoostStoreFailureRanksUnboosted(t *testing.T) {
	f := newEngineFixture(t)
	boostRepo := mockRepo.NewMockBoostRepository(t)
	boosts := NewBoostLedger(BoostLedgerParams{Repo: boostRepo, Config: f.cfg, Logger: f.logger})
	ranking := NewRankingEngine(RankingEngineParams{GeoIndex: f.geoIndex, Boosts: boosts, Config: f.cfg})

	near := uuid.New()
	far := uuid.New()
	f.placeProfile(t, near, 45.5088, -73.5878)
	f.placeProfile(t, far, 45.4215, -73.2636)

	boostRepo.EXPECT().
		FindEffectiveFactors(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("boost table unavailable"))

	ranked, err := ranking.Rank(context.Background(), montreal, 25, entity.GeoFilter{}, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, near, ranked[0].EntityID)
	for _, r := range ranked {
		assert.Equal(t, 1.0, r.BoostFactor)
	}
}

func TestRankingEngine_RespectsLimit(t *testing.T) {
	f := newEngineFixture(t)
	f.cfg.Engine.RankingLimit = 3
	ranking := NewRankingEngine(RankingEngineParams{GeoIndex: f.geoIndex, Boosts: f.boosts, Config: f.cfg})

	for i := range 5 {
		f.placeProfile(t, uuid.New(), 45.5+float64(i)*0.01, -73.57)
	}

	ranked, err := ranking.Rank(context.Background(), montreal, 25, entity.GeoFilter{}, nil)
	require.NoError(t, err)
	assert.Len(t, ranked, 3)
}

func TestRankingEngine_BoostedBeyondNearestCapStillRanked(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	// Fill the geo query's nearest-row cap with unboosted profiles a few blocks away.
	for i := range 500 {
		f.placeProfile(t, uuid.New(), montreal.Lat+0.002+float64(i)*0.000005, montreal.Lng)
	}

	boosted := uuid.New()
	f.placeProfile(t, boosted, montreal.Lat+0.03, montreal.Lng)
	_, err := f.boosts.Activate(ctx, &usecase.ActivateInput{
		SubjectID:       boosted,
		BoostType:       "standard",
		Factor:          1000,
		DurationMinutes: 30,
		PaymentMethod:   entity.PaymentMethodPoints,
	})
	require.NoError(t, err)

	ranked, err := f.ranking.Rank(ctx, montreal, 25, entity.GeoFilter{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, ranked)

	assert.Equal(t, boosted, ranked[0].EntityID)
	assert.Equal(t, 1000.0, ranked[0].BoostFactor)
	assert.Len(t, ranked, f.cfg.Engine.RankingLimit)
}

func TestRankingEngine_BoostedCandidateListedOnce(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	id := uuid.New()
	f.placeProfile(t, id, 45.5088, -73.5878)
	_, err := f.boosts.Activate(ctx, &usecase.ActivateInput{
		SubjectID:       id,
		BoostType:       "standard",
		Factor:          2,
		DurationMinutes: 30,
		PaymentMethod:   entity.PaymentMethodPoints,
	})
	require.NoError(t, err)

	ranked, err := f.ranking.Rank(ctx, montreal, 25, entity.GeoFilter{}, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 2.0, ranked[0].BoostFactor)

	f.clock.Advance(time.Hour)

	ranked, err = f.ranking.Rank(ctx, montreal, 25, entity.GeoFilter{}, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1.0, ranked[0].BoostFactor)
}
