package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/geo"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureUsage_ConcurrentIncrementsRespectLimit(t *testing.T) {
	store := NewStore()
	repo := NewFeatureUsageRepository(store)
	start, reset := entity.QuotaPeriodDaily.Window(time.Now())
	key := repository.UsageKey{SubjectID: uuid.New(), FeatureType: entity.FeatureSuperLike, PeriodStart: start, ResetAt: reset}

	var wg sync.WaitGroup
	var wins atomic.Int32
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.IncrementUsage(context.Background(), key, 1, 1); err == nil {
				wins.Add(1)
			} else {
				assert.ErrorIs(t, err, repository.ErrUsageLimitReached)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())

	usage, err := repo.EnsureUsage(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, 1, usage.Count)
}

func TestBoost_ReplaceIfHigher(t *testing.T) {
	store := NewStore()
	repo := NewBoostRepository(store)
	ctx := context.Background()
	now := time.Now().UTC()
	subject := uuid.New()

	newBoost := func(factor float64) *entity.Boost {
		return &entity.Boost{SubjectID: subject, Factor: factor, StartedAt: now, ExpiresAt: now.Add(30 * time.Minute), Active: true}
	}

	blocking, err := repo.ReplaceIfHigher(ctx, newBoost(2), now)
	require.NoError(t, err)
	assert.Nil(t, blocking)

	blocking, err = repo.ReplaceIfHigher(ctx, newBoost(1.5), now)
	require.ErrorIs(t, err, repository.ErrBoostNotHigher)
	require.NotNil(t, blocking)
	assert.InDelta(t, 2.0, blocking.Factor, 1e-9)

	_, err = repo.ReplaceIfHigher(ctx, newBoost(3), now)
	require.NoError(t, err)

	effective, err := repo.FindEffectiveBoost(ctx, subject, now)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, effective.Factor, 1e-9)

	factors, err := repo.FindEffectiveFactors(ctx, []uuid.UUID{subject, uuid.New()}, now)
	require.NoError(t, err)
	assert.Len(t, factors, 1)
	assert.InDelta(t, 3.0, factors[subject], 1e-9)

	_, err = repo.FindEffectiveBoost(ctx, subject, now.Add(31*time.Minute))
	assert.ErrorIs(t, err, repository.ErrBoostNotFound)
}

func TestBoost_ConcurrentReplaceLeavesOneEffective(t *testing.T) {
	store := NewStore()
	repo := NewBoostRepository(store)
	now := time.Now().UTC()
	subject := uuid.New()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(factor float64) {
			defer wg.Done()
			candidate := &entity.Boost{SubjectID: subject, Factor: factor, StartedAt: now, ExpiresAt: now.Add(30 * time.Minute), Active: true}
			if _, err := repo.ReplaceIfHigher(context.Background(), candidate, now); err != nil {
				assert.ErrorIs(t, err, repository.ErrBoostNotHigher)
			}
		}(float64(i + 2))
	}
	wg.Wait()

	effective := 0
	for _, b := range store.boosts {
		if b.SubjectID == subject && b.IsEffective(now) {
			effective++
		}
	}
	assert.Equal(t, 1, effective)

	best, err := repo.FindEffectiveBoost(context.Background(), subject, now)
	require.NoError(t, err)
	assert.InDelta(t, 21.0, best.Factor, 1e-9)
}

func TestBoost_PaymentRefRedeemedOnce(t *testing.T) {
	store := NewStore()
	repo := NewBoostRepository(store)
	ctx := context.Background()
	now := time.Now().UTC()

	paid := func(subject uuid.UUID) *entity.Boost {
		return &entity.Boost{SubjectID: subject, Factor: 2, StartedAt: now, ExpiresAt: now.Add(time.Minute), PaymentRef: "pi_1", Active: true}
	}

	_, err := repo.ReplaceIfHigher(ctx, paid(uuid.New()), now)
	require.NoError(t, err)

	_, err = repo.ReplaceIfHigher(ctx, paid(uuid.New()), now.Add(time.Hour))
	assert.ErrorIs(t, err, repository.ErrPaymentAlreadyRedeemed)
}

func TestGeoIndex_BoostedAtFilter(t *testing.T) {
	store := NewStore()
	geoRepo := NewGeoIndexRepository(store)
	boostRepo := NewBoostRepository(store)
	ctx := context.Background()
	now := time.Now().UTC()
	origin := entity.Coordinate{Lat: 45.5017, Lng: -73.5673}

	plain := uuid.New()
	boosted := uuid.New()
	for _, id := range []uuid.UUID{plain, boosted} {
		require.NoError(t, geoRepo.UpsertLocation(ctx, &entity.IndexedLocation{
			EntityID:   id,
			EntityKind: entity.EntityKindProfile,
			Location:   entity.Location{Coordinate: origin},
			IsActive:   true,
		}))
	}
	_, err := boostRepo.ReplaceIfHigher(ctx, &entity.Boost{SubjectID: boosted, Factor: 2, StartedAt: now, ExpiresAt: now.Add(time.Minute), Active: true}, now)
	require.NoError(t, err)

	hits, err := geoRepo.FindWithinRadius(ctx, origin, 1, entity.GeoFilter{BoostedAt: &now})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, boosted, hits[0].EntityID)

	later := now.Add(2 * time.Minute)
	hits, err = geoRepo.FindWithinRadius(ctx, origin, 1, entity.GeoFilter{BoostedAt: &later})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestProfile_ClaimIsOneWay(t *testing.T) {
	store := NewStore()
	repo := NewProfileRepository(store)
	ctx := context.Background()

	profile := &entity.Profile{GuestPhone: "+15145550100"}
	require.NoError(t, repo.CreateProfile(ctx, profile))

	owner := uuid.New()
	claimed, err := repo.ClaimProfile(ctx, profile.ID, owner)
	require.NoError(t, err)
	assert.True(t, claimed.OwnedBy(owner))

	_, err = repo.ClaimProfile(ctx, profile.ID, owner)
	require.NoError(t, err)

	_, err = repo.ClaimProfile(ctx, profile.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProfileClaimedByOther)

	err = repo.CreateProfile(ctx, &entity.Profile{GuestPhone: "+15145550100"})
	assert.ErrorIs(t, err, repository.ErrDuplicateProfile)
}

func TestGeoIndex_RadiusAndBox(t *testing.T) {
	store := NewStore()
	repo := NewGeoIndexRepository(store)
	ctx := context.Background()
	origin := entity.Coordinate{Lat: 45.5017, Lng: -73.5673}

	near := uuid.New()
	far := uuid.New()
	inactive := uuid.New()
	require.NoError(t, repo.UpsertLocation(ctx, &entity.IndexedLocation{
		EntityID: near, EntityKind: entity.EntityKindProfile, IsActive: true,
		Location: entity.Location{Coordinate: entity.Coordinate{Lat: 45.5088, Lng: -73.5878}},
	}))
	require.NoError(t, repo.UpsertLocation(ctx, &entity.IndexedLocation{
		EntityID: far, EntityKind: entity.EntityKindProfile, IsActive: true,
		Location: entity.Location{Coordinate: entity.Coordinate{Lat: 45.6, Lng: -73.7}},
	}))
	require.NoError(t, repo.UpsertLocation(ctx, &entity.IndexedLocation{
		EntityID: inactive, EntityKind: entity.EntityKindProfile, IsActive: false,
		Location: entity.Location{Coordinate: origin},
	}))

	hits, err := repo.FindWithinRadius(ctx, origin, 2, entity.GeoFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, near, hits[0].EntityID)

	hits, err = repo.FindWithinRadius(ctx, origin, 20, entity.GeoFilter{ActiveOnly: true, ExcludeIDs: []uuid.UUID{near}})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, far, hits[0].EntityID)

	box := geo.BoundAround(origin, 2)
	hits, err = repo.FindWithinBoundingBox(ctx, box, entity.GeoFilter{})
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()
	userID := uuid.New()
	require.NoError(t, NewPointRepository(store).Credit(ctx, userID, 100))

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.NewPointRepository().Debit(ctx, userID, 60))
		require.NoError(t, f.NewMembershipRepository().CreateMembership(ctx, &entity.Membership{SubjectID: uuid.New()}))

		return boom
	})
	require.ErrorIs(t, err, boom)

	balance, err := NewPointRepository(store).Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 100, balance)
	assert.Empty(t, store.memberships)
}

func TestPoints_DebitNeverNegative(t *testing.T) {
	store := NewStore()
	repo := NewPointRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	require.ErrorIs(t, repo.Debit(ctx, userID, 1), repository.ErrInsufficientPoints)
	require.NoError(t, repo.Credit(ctx, userID, 5))
	require.NoError(t, repo.Debit(ctx, userID, 5))

	balance, err := repo.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, balance)
}
