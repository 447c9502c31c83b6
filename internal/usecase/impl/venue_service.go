package impl

import (
	"context"
	"log/slog"
	"strings"
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

type venueService struct {
	txManager repository.TransactionManager
	venueRepo repository.VenueRepository
	geoIndex  usecase.GeoIndex
	resolver  usecase.IdentityResolver
	geocoder  service.Geocoder
	qrCode    service.QRCodeService
	engine    *config.EngineConfig
	guard     storeGuard
	logger    *slog.Logger
	now       func() time.Time
}

// VenueServiceParams holds dependencies for VenueService, injected by Fx.
type VenueServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	VenueRepo repository.VenueRepository
	GeoIndex  usecase.GeoIndex
	Resolver  usecase.IdentityResolver
	Geocoder  service.Geocoder `optional:"true"`
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVenueService creates a new venue service instance
func NewVenueService(params VenueServiceParams) usecase.VenueUsecase {
	return &venueService{
		txManager: params.TxManager,
		venueRepo: params.VenueRepo,
		geoIndex:  params.GeoIndex,
		resolver:  params.Resolver,
		geocoder:  params.Geocoder,
		qrCode:    params.QRCode,
		engine:    engineConfig(params.Config),
		guard:     newStoreGuard(params.Config),
		logger:    loggerOrDefault(params.Logger),
		now:       utcNow,
	}
}

func (s *venueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateVenue places the venue, then under a per-name lock rejects a same-named venue of
// the same kind close by and writes the venue and its geo index row together.
func (s *venueService) CreateVenue(ctx context.Context, identity entity.Identity, input *usecase.CreateVenueInput) (*entity.Venue, error) {
	if input.Kind != entity.EntityKindGym && input.Kind != entity.EntityKindGroup {
		return nil, domainerrors.ErrValidationFailed.WithDetails("kind must be gym or group")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be given together")
	}
	fields := addressFields{Address: input.Address, City: input.City, State: input.State, Country: input.Country, ZipCode: input.ZipCode}
	if input.Latitude == nil && fields.isEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("either coordinates or an address is required")
	}

	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{CreateIfMissing: true})
	if err != nil {
		return nil, err
	}

	location, err := s.placeVenue(ctx, input, fields)
	if err != nil {
		return nil, err
	}

	now := s.now()
	location.LastUpdated = now
	venue := &entity.Venue{
		ID:        uuid.New(),
		Kind:      input.Kind,
		Name:      strings.TrimSpace(input.Name),
		Location:  location,
		Amenities: input.Amenities,
		Chain:     input.Chain,
		CreatedBy: subject.SubjectID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if venue.Amenities == nil {
		venue.Amenities = []string{}
	}

	if err := s.persist(ctx, venue); err != nil {
		if !errors.Is(err, domainerrors.ErrVenueDuplicate) {
			s.log(ctx).Error("failed to create venue", slog.String("name", venue.Name), slog.Any("error", err))
		}

		return nil, err
	}

	s.log(ctx).Info("venue created", slog.String("venue_id", venue.ID.String()), slog.String("kind", string(venue.Kind)))

	return venue, nil
}

func (s *venueService) placeVenue(ctx context.Context, input *usecase.CreateVenueInput, fields addressFields) (entity.Location, error) {
	if input.Latitude == nil {
		return forwardGeocode(ctx, s.geocoder, s.log(ctx), fields)
	}

	location := entity.Location{
		Coordinate: entity.Coordinate{Lat: *input.Latitude, Lng: *input.Longitude},
		Address:    fields.Address,
		City:       fields.City,
		State:      fields.State,
		Country:    fields.Country,
		ZipCode:    fields.ZipCode,
		Source:     entity.LocationSourceManual,
	}
	if err := geo.Validate(location.Coordinate); err != nil {
		return entity.Location{}, err
	}
	if fields.Address == "" || fields.City == "" {
		reverseGeocode(ctx, s.geocoder, s.log(ctx), &location)
	}

	return location, nil
}

// checkDuplicate is a write path: a failing geo index blocks the create.
func (s *venueService) checkDuplicate(ctx context.Context, kind entity.EntityKind, name string, center entity.Coordinate) error {
	candidates, err := s.geoIndex.FindNearbyForWrite(ctx, center, s.engine.VenueDedupRadiusMiles, entity.GeoFilter{
		Kinds:      []entity.EntityKind{kind},
		ActiveOnly: true,
	})
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.EntityID)
	}

	boundCtx, cancel := s.guard.bound(ctx)
	defer cancel()

	venues, err := s.venueRepo.FindVenuesByIDs(boundCtx, ids)
	if err != nil {
		return writeFailure(err, "failed to load nearby venues")
	}

	normalized := entity.NormalizeVenueName(name)
	for _, v := range venues {
		if v.IsActive && entity.NormalizeVenueName(v.Name) == normalized {
			return domainerrors.ErrVenueDuplicate.WithDetails(v.ID.String())
		}
	}

	return nil
}

func (s *venueService) persist(ctx context.Context, venue *entity.Venue) error {
	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		venueRepo := factory.NewVenueRepository()
		if err := venueRepo.LockVenueName(ctx, venue.Kind, entity.NormalizeVenueName(venue.Name)); err != nil {
			return err
		}
		// The lock is held, so a concurrent create of the same name has committed or not started.
		if err := s.checkDuplicate(ctx, venue.Kind, venue.Name, venue.Location.Coordinate); err != nil {
			return err
		}

		if err := venueRepo.CreateVenue(ctx, venue); err != nil {
			return errors.Wrap(err, "failed to create venue")
		}

		return factory.NewGeoIndexRepository().UpsertLocation(ctx, &entity.IndexedLocation{
			EntityID:   venue.ID,
			EntityKind: venue.Kind,
			Location:   venue.Location,
			IsActive:   true,
			IsVerified: venue.IsVerified,
			LastActive: venue.CreatedAt,
		})
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && !isStoreTimeout(err) {
			return err
		}

		return writeFailure(err, "failed to persist venue")
	}

	return nil
}

// GetVenue returns active and inactive venues alike.
func (s *venueService) GetVenue(ctx context.Context, venueID uuid.UUID) (*entity.Venue, error) {
	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	venue, err := s.venueRepo.FindVenueByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound
		}

		return nil, writeFailure(err, "failed to find venue")
	}

	return venue, nil
}

// DeactivateVenue removes the venue from discovery. Deactivating twice is a no-op.
func (s *venueService) DeactivateVenue(ctx context.Context, identity entity.Identity, venueID uuid.UUID) error {
	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{})
	if err != nil {
		return err
	}

	venue, err := s.GetVenue(ctx, venueID)
	if err != nil {
		return err
	}
	if venue.CreatedBy != subject.SubjectID {
		return domainerrors.ErrVenueOwnershipViolation
	}
	if !venue.IsActive {
		return nil
	}

	if err := s.geoIndex.SetActive(ctx, venueID, false); err != nil {
		return err
	}

	boundCtx, cancel := s.guard.bound(ctx)
	defer cancel()

	if err := s.venueRepo.UpdateVenueActive(boundCtx, venueID, false); err != nil {
		return writeFailure(err, "failed to deactivate venue")
	}

	s.log(ctx).Info("venue deactivated", slog.String("venue_id", venueID.String()))

	return nil
}

// GetVenueQRCode renders the check-in code of an active venue.
func (s *venueService) GetVenueQRCode(ctx context.Context, venueID uuid.UUID) ([]byte, error) {
	venue, err := s.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if !venue.IsActive {
		return nil, domainerrors.ErrVenueNotFound.WithDetails("venue is inactive")
	}

	png, err := s.qrCode.GenerateVenueCheckInQR(venue.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate venue QR code")
	}

	return png, nil
}
