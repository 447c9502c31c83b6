package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/memory"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Engine:       config.DefaultEngineConfig(),
		Entitlements: config.DefaultEntitlementsConfig(),
	}
}

// testClock is a settable clock shared by every component of a fixture.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now.UTC()}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// engineFixture wires the engine components on the in-memory store.
type engineFixture struct {
	cfg    *config.Config
	clock  *testClock
	logger *slog.Logger

	store          *memory.Store
	txManager      repository.TransactionManager
	profileRepo    repository.ProfileRepository
	geoRepo        repository.GeoIndexRepository
	venueRepo      repository.VenueRepository
	boostRepo      repository.BoostRepository
	usageRepo      repository.FeatureUsageRepository
	membershipRepo repository.MembershipRepository
	pointRepo      repository.PointRepository
	likeRepo       repository.LikeRepository
	deviceRepo     repository.DeviceRepository

	geoIndex     usecase.GeoIndex
	boosts       usecase.BoostLedger
	entitlements usecase.EntitlementLedger
	ranking      usecase.RankingEngine
	resolver     usecase.IdentityResolver
}

// Wednesday, so daily and weekly windows differ.
var fixtureStart = time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	store := memory.NewStore()
	f := &engineFixture{
		cfg:            newTestConfig(),
		clock:          newTestClock(fixtureStart),
		logger:         newDiscardLogger(),
		store:          store,
		txManager:      memory.NewTransactionManager(store),
		profileRepo:    memory.NewProfileRepository(store),
		geoRepo:        memory.NewGeoIndexRepository(store),
		venueRepo:      memory.NewVenueRepository(store),
		boostRepo:      memory.NewBoostRepository(store),
		usageRepo:      memory.NewFeatureUsageRepository(store),
		membershipRepo: memory.NewMembershipRepository(store),
		pointRepo:      memory.NewPointRepository(store),
		likeRepo:       memory.NewLikeRepository(store),
		deviceRepo:     memory.NewDeviceRepository(store),
	}

	f.geoIndex = NewGeoIndex(GeoIndexParams{Repo: f.geoRepo, Config: f.cfg, Logger: f.logger})
	f.geoIndex.(*geoIndex).now = f.clock.Now

	f.boosts = NewBoostLedger(BoostLedgerParams{Repo: f.boostRepo, Config: f.cfg, Logger: f.logger})
	f.boosts.(*boostLedger).now = f.clock.Now

	f.entitlements = NewEntitlementLedger(EntitlementLedgerParams{
		UsageRepo:      f.usageRepo,
		MembershipRepo: f.membershipRepo,
		PointRepo:      f.pointRepo,
		Config:         f.cfg,
		Logger:         f.logger,
	})
	f.entitlements.(*entitlementLedger).now = f.clock.Now

	f.ranking = NewRankingEngine(RankingEngineParams{GeoIndex: f.geoIndex, Boosts: f.boosts, Config: f.cfg})
	f.ranking.(*rankingEngine).now = f.clock.Now
	f.resolver = NewIdentityResolver(IdentityResolverParams{ProfileRepo: f.profileRepo, Config: f.cfg, Logger: f.logger})

	return f
}

// newUser creates an authenticated user with a profile and a point balance.
func (f *engineFixture) newUser(t *testing.T, points int) (entity.Identity, *entity.Subject) {
	t.Helper()

	userID := uuid.New()
	identity := entity.Identity{UserID: &userID}
	subject, err := f.resolver.Resolve(context.Background(), identity, usecase.ResolveOptions{CreateIfMissing: true})
	require.NoError(t, err)

	if points > 0 {
		require.NoError(t, f.pointRepo.Credit(context.Background(), userID, points))
	}

	return identity, subject
}

// placeProfile indexes a profile at coordinate.
func (f *engineFixture) placeProfile(t *testing.T, id uuid.UUID, lat, lng float64) {
	t.Helper()

	require.NoError(t, f.geoIndex.Upsert(context.Background(), &entity.IndexedLocation{
		EntityID:   id,
		EntityKind: entity.EntityKindProfile,
		Location:   entity.Location{Coordinate: entity.Coordinate{Lat: lat, Lng: lng}, Source: entity.LocationSourceGPS},
		IsActive:   true,
	}))
}

func (f *engineFixture) grantMembership(t *testing.T, subjectID uuid.UUID, benefits entity.MembershipBenefits) *entity.Membership {
	t.Helper()

	now := f.clock.Now()
	membership := &entity.Membership{
		ID:        uuid.New(),
		SubjectID: subjectID,
		Type:      "gold",
		StartDate: now.Add(-time.Hour),
		EndDate:   now.AddDate(0, 0, 30),
		Benefits:  benefits,
	}
	require.NoError(t, f.membershipRepo.CreateMembership(context.Background(), membership))

	return membership
}

func floatPtr(v float64) *float64 {
	return &v
}
