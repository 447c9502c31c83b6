package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	mockRepo "nearby/internal/mocks/repository"
	mockService "nearby/internal/mocks/service"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *engineFixture) newVenueService(geocoder service.Geocoder, qrCode service.QRCodeService) usecase.VenueUsecase {
	svc := NewVenueService(VenueServiceParams{
		TxManager: f.txManager,
		VenueRepo: f.venueRepo,
		GeoIndex:  f.geoIndex,
		Resolver:  f.resolver,
		Geocoder:  geocoder,
		QRCode:    qrCode,
		Config:    f.cfg,
		Logger:    f.logger,
	})
	svc.(*venueService).now = f.clock.Now

	return svc
}

func gymInput(name string, lat, lng float64) *usecase.CreateVenueInput {
	return &usecase.CreateVenueInput{
		Kind:      entity.EntityKindGym,
		Name:      name,
		Latitude:  floatPtr(lat),
		Longitude: floatPtr(lng),
		Address:   "1234 Rue Sainte-Catherine",
		City:      "Montreal",
	}
}

func TestVenueService_CreateAndGet(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	identity, subject := f.newUser(t, 0)
	venues := f.newVenueService(nil, nil)

	venue, err := venues.CreateVenue(ctx, identity, gymInput("  Gold's Gym ", 45.5017, -73.5673))
	require.NoError(t, err)
	assert.Equal(t, "Gold's Gym", venue.Name)
	assert.Equal(t, subject.SubjectID, venue.CreatedBy)
	assert.True(t, venue.IsActive)
	assert.Equal(t, entity.LocationSourceManual, venue.Location.Source)
	assert.NotNil(t, venue.Amenities)

	found, err := venues.GetVenue(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, venue.ID, found.ID)

	candidates, err := f.geoIndex.FindWithinRadius(ctx, montreal, 1, entity.GeoFilter{Kinds: []entity.EntityKind{entity.EntityKindGym}})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, venue.ID, candidates[0].EntityID)

	_, err = venues.GetVenue(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrVenueNotFound)
}

func TestVenueService_Deduplication(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	identity, _ := f.newUser(t, 0)
	venues := f.newVenueService(nil, nil)

	first, err := venues.CreateVenue(ctx, identity, gymInput("Gold's Gym", 45.5017, -73.5673))
	require.NoError(t, err)

	// Same normalized name about 50 meters away.
	_, err = venues.CreateVenue(ctx, identity, gymInput("golds  GYM", 45.5021, -73.5670))
	require.ErrorIs(t, err, domainerrors.ErrVenueDuplicate)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), first.ID.String())

	// A different name, a different kind or a farther spot are all fine.
	_, err = venues.CreateVenue(ctx, identity, gymInput("Nautilus Plus", 45.5021, -73.5670))
	require.NoError(t, err)

	group := gymInput("Gold's Gym", 45.5021, -73.5670)
	group.Kind = entity.EntityKindGroup
	_, err = venues.CreateVenue(ctx, identity, group)
	require.NoError(t, err)

	_, err = venues.CreateVenue(ctx, identity, gymInput("Gold's Gym", 45.5200, -73.5673))
	require.NoError(t, err)

	// A deactivated venue no longer blocks its name.
	require.NoError(t, venues.DeactivateVenue(ctx, identity, first.ID))
	_, err = venues.CreateVenue(ctx, identity, gymInput("Gold's Gym", 45.5017, -73.5673))
	require.NoError(t, err)
}

func TestVenueService_ConcurrentCreatesOfSameVenue(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	identity, _ := f.newUser(t, 0)
	venues := f.newVenueService(nil, nil)

	// About ten meters apart, well inside the dedup radius.
	inputs := []*usecase.CreateVenueInput{
		gymInput("Gold's Gym", 45.50170, -73.56730),
		gymInput("golds gym", 45.50179, -73.56730),
	}

	const rounds = 8
	var wg sync.WaitGroup
	var created, duplicates atomic.Int32
	for i := range rounds {
		wg.Add(1)
		go func(input *usecase.CreateVenueInput) {
			defer wg.Done()
			_, err := venues.CreateVenue(ctx, identity, input)
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, domainerrors.ErrVenueDuplicate):
				duplicates.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(inputs[i%len(inputs)])
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(rounds-1), duplicates.Load())

	candidates, err := f.geoIndex.FindWithinRadius(ctx, montreal, 1, entity.GeoFilter{Kinds: []entity.EntityKind{entity.EntityKindGym}})
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestVenueService_GeocodesAddress(t *testing.T) {
	f := newEngineFixture(t)
	identity, _ := f.newUser(t, 0)

	geocoder := mockService.NewMockGeocoder(t)
	geocoder.EXPECT().
		Forward(mock.Anything, service.GeocodeQuery{Address: "1 Rue Peel", City: "Montreal"}).
		Return(&service.GeocodeResult{Coordinate: montreal, Country: "Canada"}, nil).
		Once()

	venue, err := f.newVenueService(geocoder, nil).CreateVenue(context.Background(), identity, &usecase.CreateVenueInput{
		Kind: entity.EntityKindGroup, Name: "Chess Club", Address: "1 Rue Peel", City: "Montreal",
	})
	require.NoError(t, err)
	assert.Equal(t, montreal, venue.Location.Coordinate)
	assert.Equal(t, entity.LocationSourceGeocoded, venue.Location.Source)
}

func TestVenueService_Validation(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	identity, _ := f.newUser(t, 0)
	venues := f.newVenueService(nil, nil)

	input := gymInput("Gym", 45.5, -73.5)
	input.Kind = entity.EntityKindProfile
	_, err := venues.CreateVenue(ctx, identity, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = venues.CreateVenue(ctx, identity, &usecase.CreateVenueInput{Kind: entity.EntityKindGym, Name: "Gym", Latitude: floatPtr(45)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = venues.CreateVenue(ctx, identity, &usecase.CreateVenueInput{Kind: entity.EntityKindGym, Name: "Gym"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = venues.CreateVenue(ctx, identity, gymInput("Gym", 45, 181))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestVenueService_DedupCheckFailureBlocksCreate(t *testing.T) {
	f := newEngineFixture(t)
	identity, _ := f.newUser(t, 0)

	geoRepo := mockRepo.NewMockGeoIndexRepository(t)
	geoRepo.EXPECT().
		FindWithinRadius(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded)
	f.geoIndex = NewGeoIndex(GeoIndexParams{Repo: geoRepo, Config: f.cfg, Logger: f.logger})

	_, err := f.newVenueService(nil, nil).CreateVenue(context.Background(), identity, gymInput("Gym", 45.5, -73.5))
	assert.ErrorIs(t, err, domainerrors.ErrBackingStoreTimeout)
}

func TestVenueService_Deactivate(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	owner, _ := f.newUser(t, 0)
	stranger, _ := f.newUser(t, 0)
	venues := f.newVenueService(nil, nil)

	venue, err := venues.CreateVenue(ctx, owner, gymInput("Gym", 45.5017, -73.5673))
	require.NoError(t, err)

	assert.ErrorIs(t, venues.DeactivateVenue(ctx, stranger, venue.ID), domainerrors.ErrVenueOwnershipViolation)
	assert.ErrorIs(t, venues.DeactivateVenue(ctx, owner, uuid.New()), domainerrors.ErrVenueNotFound)

	require.NoError(t, venues.DeactivateVenue(ctx, owner, venue.ID))
	require.NoError(t, venues.DeactivateVenue(ctx, owner, venue.ID))

	found, err := venues.GetVenue(ctx, venue.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	candidates, err := f.geoIndex.FindWithinRadius(ctx, montreal, 1, entity.GeoFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestVenueService_QRCode(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	owner, _ := f.newUser(t, 0)

	qrCode := mockService.NewMockQRCodeService(t)
	venues := f.newVenueService(nil, qrCode)

	venue, err := venues.CreateVenue(ctx, owner, gymInput("Gym", 45.5017, -73.5673))
	require.NoError(t, err)

	png := []byte{0x89, 'P', 'N', 'G'}
	qrCode.EXPECT().GenerateVenueCheckInQR(venue.ID).Return(png, nil).Once()

	got, err := venues.GetVenueQRCode(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)

	require.NoError(t, venues.DeactivateVenue(ctx, owner, venue.ID))
	_, err = venues.GetVenueQRCode(ctx, venue.ID)
	assert.ErrorIs(t, err, domainerrors.ErrVenueNotFound)
}
