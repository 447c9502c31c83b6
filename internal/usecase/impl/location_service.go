package impl

import (
	"context"
	"log/slog"
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

type locationService struct {
	resolver    usecase.IdentityResolver
	geoIndex    usecase.GeoIndex
	profileRepo repository.ProfileRepository
	venueRepo   repository.VenueRepository
	geocoder    service.Geocoder
	engine      *config.EngineConfig
	guard       storeGuard
	logger      *slog.Logger
	now         func() time.Time
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	Resolver    usecase.IdentityResolver
	GeoIndex    usecase.GeoIndex
	ProfileRepo repository.ProfileRepository
	VenueRepo   repository.VenueRepository
	Geocoder    service.Geocoder `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		resolver:    params.Resolver,
		geoIndex:    params.GeoIndex,
		profileRepo: params.ProfileRepo,
		venueRepo:   params.VenueRepo,
		geocoder:    params.Geocoder,
		engine:      engineConfig(params.Config),
		guard:       newStoreGuard(params.Config),
		logger:      loggerOrDefault(params.Logger),
		now:         utcNow,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// UpdateLocation overwrites the caller's last known location and lists venues around it.
// The first write from an unknown guest phone creates the profile.
func (s *locationService) UpdateLocation(ctx context.Context, identity entity.Identity, input *usecase.UpdateLocationInput) (*usecase.UpdateLocationOutput, error) {
	fields := addressFields{Address: input.Address, City: input.City, State: input.State, Country: input.Country, ZipCode: input.ZipCode}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be given together")
	}
	if input.Latitude == nil && fields.isEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("either coordinates or an address is required")
	}
	if input.Latitude != nil {
		if err := geo.Validate(entity.Coordinate{Lat: *input.Latitude, Lng: *input.Longitude}); err != nil {
			return nil, err
		}
	}

	// Place the caller before resolving so an unplaceable first write leaves no profile behind.
	location, err := s.buildLocation(ctx, input, fields)
	if err != nil {
		return nil, err
	}
	location.LastUpdated = s.now()

	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{CreateIfMissing: true})
	if err != nil {
		return nil, err
	}

	if err := s.geoIndex.Upsert(ctx, &entity.IndexedLocation{
		EntityID:   subject.SubjectID,
		EntityKind: entity.EntityKindProfile,
		Location:   location,
		IsActive:   true,
		LastActive: location.LastUpdated,
	}); err != nil {
		return nil, err
	}

	if err := s.saveProfileLocation(ctx, subject.SubjectID, &location); err != nil {
		s.log(ctx).Error("failed to save profile location", slog.String("subject_id", subject.SubjectID.String()), slog.Any("error", err))

		return nil, err
	}

	return &usecase.UpdateLocationOutput{
		Subject:      subject,
		Location:     &location,
		NearbyVenues: s.nearbyVenues(ctx, location.Coordinate),
	}, nil
}

func (s *locationService) buildLocation(ctx context.Context, input *usecase.UpdateLocationInput, fields addressFields) (entity.Location, error) {
	if input.Latitude == nil {
		return forwardGeocode(ctx, s.geocoder, s.log(ctx), fields)
	}

	source := entity.LocationSource(input.Source)
	if source == "" {
		source = entity.LocationSourceGPS
	}

	location := entity.Location{
		Coordinate: entity.Coordinate{Lat: *input.Latitude, Lng: *input.Longitude},
		Address:    fields.Address,
		City:       fields.City,
		State:      fields.State,
		Country:    fields.Country,
		ZipCode:    fields.ZipCode,
		Source:     source,
		Accuracy:   input.Accuracy,
	}
	if fields.Address == "" || fields.City == "" {
		reverseGeocode(ctx, s.geocoder, s.log(ctx), &location)
	}

	return location, nil
}

func (s *locationService) saveProfileLocation(ctx context.Context, subjectID uuid.UUID, location *entity.Location) error {
	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	if err := s.profileRepo.UpdateProfileLocation(ctx, subjectID, location); err != nil {
		return writeFailure(err, "failed to update profile location")
	}
	if err := s.profileRepo.TouchProfile(ctx, subjectID, location.LastUpdated); err != nil {
		return writeFailure(err, "failed to touch profile")
	}

	return nil
}

// nearbyVenues is a read path: failures yield an empty list.
func (s *locationService) nearbyVenues(ctx context.Context, center entity.Coordinate) []*entity.NearbyVenue {
	candidates, err := s.geoIndex.FindWithinRadius(ctx, center, s.engine.NearbyVenueRadiusMiles, entity.GeoFilter{
		Kinds:      []entity.EntityKind{entity.EntityKindGym, entity.EntityKindGroup},
		ActiveOnly: true,
		Limit:      s.engine.NearbyVenueLimit,
	})
	if err != nil || len(candidates) == 0 {
		return []*entity.NearbyVenue{}
	}

	return s.attachVenues(ctx, candidates)
}

func (s *locationService) attachVenues(ctx context.Context, candidates []*entity.Candidate) []*entity.NearbyVenue {
	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.EntityID)
	}

	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	venues, err := s.venueRepo.FindVenuesByIDs(ctx, ids)
	if err != nil {
		s.log(ctx).Warn("nearby venues degraded", slog.Any("error", errors.WithStack(err)))

		return []*entity.NearbyVenue{}
	}

	byID := make(map[uuid.UUID]*entity.Venue, len(venues))
	for _, v := range venues {
		byID[v.ID] = v
	}

	nearby := make([]*entity.NearbyVenue, 0, len(candidates))
	for _, c := range candidates {
		if v, ok := byID[c.EntityID]; ok && v.IsActive {
			nearby = append(nearby, &entity.NearbyVenue{Venue: v, DistanceMiles: c.DistanceMiles})
		}
	}

	return nearby
}
