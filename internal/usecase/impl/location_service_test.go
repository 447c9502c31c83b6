package impl

import (
	"context"
	"testing"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	mockService "nearby/internal/mocks/service"
	"nearby/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *engineFixture) newLocationService(geocoder service.Geocoder) usecase.LocationUsecase {
	svc := NewLocationService(LocationServiceParams{
		Resolver:    f.resolver,
		GeoIndex:    f.geoIndex,
		ProfileRepo: f.profileRepo,
		VenueRepo:   f.venueRepo,
		Geocoder:    geocoder,
		Config:      f.cfg,
		Logger:      f.logger,
	})
	svc.(*locationService).now = f.clock.Now

	return svc
}

func TestLocationService_FirstGuestWriteCreatesProfile(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	geocoder := mockService.NewMockGeocoder(t)
	geocoder.EXPECT().
		Reverse(mock.Anything, entity.Coordinate{Lat: 45.5017, Lng: -73.5673}).
		Return(&service.GeocodeResult{City: "Montréal", State: "QC", Country: "Canada", ZipCode: "H2Y"}, nil).
		Once()

	output, err := f.newLocationService(geocoder).UpdateLocation(ctx, guestIdentity("+15145550000"), &usecase.UpdateLocationInput{
		Latitude:  floatPtr(45.5017),
		Longitude: floatPtr(-73.5673),
	})
	require.NoError(t, err)
	assert.True(t, output.Subject.Created)
	assert.Equal(t, "Montréal", output.Location.City)
	assert.Equal(t, entity.LocationSourceGPS, output.Location.Source)
	assert.True(t, output.Location.LastUpdated.Equal(fixtureStart))
	assert.Empty(t, output.NearbyVenues)

	profile, err := f.profileRepo.FindProfileByID(ctx, output.Subject.SubjectID)
	require.NoError(t, err)
	require.NotNil(t, profile.Location)
	assert.Equal(t, "Montréal", profile.Location.City)

	candidates, err := f.geoIndex.FindWithinRadius(ctx, montreal, 1, entity.GeoFilter{})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, output.Subject.SubjectID, candidates[0].EntityID)
}

func TestLocationService_ReverseGeocodeFailureKeepsCoordinate(t *testing.T) {
	f := newEngineFixture(t)
	identity, _ := f.newUser(t, 0)

	geocoder := mockService.NewMockGeocoder(t)
	geocoder.EXPECT().Reverse(mock.Anything, mock.Anything).Return(nil, errors.New("provider down")).Once()

	output, err := f.newLocationService(geocoder).UpdateLocation(context.Background(), identity, &usecase.UpdateLocationInput{
		Latitude:  floatPtr(45.5017),
		Longitude: floatPtr(-73.5673),
		Source:    "manual",
	})
	require.NoError(t, err)
	assert.Empty(t, output.Location.City)
	assert.Equal(t, entity.LocationSourceManual, output.Location.Source)
}

func TestLocationService_AddressOnly(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	placed := entity.Coordinate{Lat: 45.5048, Lng: -73.5772}

	t.Run("full address", func(t *testing.T) {
		identity, _ := f.newUser(t, 0)
		geocoder := mockService.NewMockGeocoder(t)
		geocoder.EXPECT().
			Forward(mock.Anything, service.GeocodeQuery{Address: "1 Rue Sherbrooke", City: "Montreal"}).
			Return(&service.GeocodeResult{Coordinate: placed, Country: "Canada"}, nil).
			Once()

		output, err := f.newLocationService(geocoder).UpdateLocation(ctx, identity, &usecase.UpdateLocationInput{Address: "1 Rue Sherbrooke", City: "Montreal"})
		require.NoError(t, err)
		assert.Equal(t, placed, output.Location.Coordinate)
		assert.Equal(t, entity.LocationSourceGeocoded, output.Location.Source)
		assert.Equal(t, "Canada", output.Location.Country)
	})

	t.Run("falls back to city level", func(t *testing.T) {
		identity, _ := f.newUser(t, 0)
		geocoder := mockService.NewMockGeocoder(t)
		geocoder.EXPECT().
			Forward(mock.Anything, service.GeocodeQuery{Address: "nowhere 99", City: "Montreal"}).
			Return(nil, service.ErrNoGeocodeResult).
			Once()
		geocoder.EXPECT().
			Forward(mock.Anything, service.GeocodeQuery{City: "Montreal"}).
			Return(&service.GeocodeResult{Coordinate: montreal}, nil).
			Once()

		output, err := f.newLocationService(geocoder).UpdateLocation(ctx, identity, &usecase.UpdateLocationInput{Address: "nowhere 99", City: "Montreal"})
		require.NoError(t, err)
		assert.Equal(t, entity.LocationSourceCityLevel, output.Location.Source)
		assert.Equal(t, "nowhere 99", output.Location.Address)
	})

	t.Run("unresolvable", func(t *testing.T) {
		identity, _ := f.newUser(t, 0)
		geocoder := mockService.NewMockGeocoder(t)
		geocoder.EXPECT().Forward(mock.Anything, mock.Anything).Return(nil, errors.New("breaker open")).Once()

		_, err := f.newLocationService(geocoder).UpdateLocation(ctx, identity, &usecase.UpdateLocationInput{City: "Atlantis"})
		assert.ErrorIs(t, err, domainerrors.ErrGeocodeUnavailable)
	})

	t.Run("no provider", func(t *testing.T) {
		identity, _ := f.newUser(t, 0)

		_, err := f.newLocationService(nil).UpdateLocation(ctx, identity, &usecase.UpdateLocationInput{City: "Montreal"})
		assert.ErrorIs(t, err, domainerrors.ErrGeocodeUnavailable)
	})
}

func TestLocationService_UnplaceableGuestWriteCreatesNoProfile(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	const phone = "+15145550077"

	geocoder := mockService.NewMockGeocoder(t)
	geocoder.EXPECT().Forward(mock.Anything, mock.Anything).Return(nil, errors.New("breaker open")).Once()

	_, err := f.newLocationService(geocoder).UpdateLocation(ctx, guestIdentity(phone), &usecase.UpdateLocationInput{City: "Atlantis"})
	require.ErrorIs(t, err, domainerrors.ErrGeocodeUnavailable)

	_, err = f.profileRepo.FindProfileByGuestPhone(ctx, phone)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestLocationService_Validation(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	svc := f.newLocationService(nil)
	identity, _ := f.newUser(t, 0)

	_, err := svc.UpdateLocation(ctx, identity, &usecase.UpdateLocationInput{Latitude: floatPtr(45)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.UpdateLocation(ctx, identity, &usecase.UpdateLocationInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.UpdateLocation(ctx, identity, &usecase.UpdateLocationInput{Latitude: floatPtr(91), Longitude: floatPtr(0)})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

	_, err = svc.UpdateLocation(ctx, entity.Identity{}, &usecase.UpdateLocationInput{Latitude: floatPtr(45), Longitude: floatPtr(-73)})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
}

func TestLocationService_ListsNearbyActiveVenues(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	identity, _ := f.newUser(t, 0)

	venues := f.newVenueService(nil, nil)
	gym, err := venues.CreateVenue(ctx, identity, &usecase.CreateVenueInput{
		Kind: entity.EntityKindGym, Name: "Nautilus Plus", Latitude: floatPtr(45.5030), Longitude: floatPtr(-73.5690), City: "Montreal", Address: "1 Rue",
	})
	require.NoError(t, err)
	closed, err := venues.CreateVenue(ctx, identity, &usecase.CreateVenueInput{
		Kind: entity.EntityKindGroup, Name: "Run Club", Latitude: floatPtr(45.5040), Longitude: floatPtr(-73.5700), City: "Montreal", Address: "2 Rue",
	})
	require.NoError(t, err)
	require.NoError(t, venues.DeactivateVenue(ctx, identity, closed.ID))

	output, err := f.newLocationService(nil).UpdateLocation(ctx, identity, &usecase.UpdateLocationInput{Latitude: floatPtr(45.5017), Longitude: floatPtr(-73.5673)})
	require.NoError(t, err)
	require.Len(t, output.NearbyVenues, 1)
	assert.Equal(t, gym.ID, output.NearbyVenues[0].Venue.ID)
	assert.Greater(t, output.NearbyVenues[0].DistanceMiles, 0.0)
}
