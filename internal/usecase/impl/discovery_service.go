package impl

import (
	"context"
	"log/slog"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type discoveryService struct {
	resolver usecase.IdentityResolver
	ranking  usecase.RankingEngine
	engine   *config.EngineConfig
	logger   *slog.Logger
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	Resolver usecase.IdentityResolver
	Ranking  usecase.RankingEngine
	Config   *config.Config
	Logger   *slog.Logger
}

// NewDiscoveryService creates a new discovery service instance
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	return &discoveryService{
		resolver: params.Resolver,
		ranking:  params.Ranking,
		engine:   engineConfig(params.Config),
		logger:   loggerOrDefault(params.Logger),
	}
}

func (s *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Discover ranks candidates by radius or bounding box.
func (s *discoveryService) Discover(ctx context.Context, identity entity.Identity, input *usecase.DiscoverInput) (*usecase.DiscoverOutput, error) {
	requester, degraded, err := s.requester(ctx, identity)
	if err != nil {
		return nil, err
	}

	filter := entity.GeoFilter{
		Kinds:        input.Kinds,
		ActiveOnly:   !input.IncludeIdle,
		VerifiedOnly: input.VerifiedOnly,
	}

	var ranked []*usecase.RankedCandidate
	switch {
	case input.Box != nil:
		ranked, err = s.ranking.RankWithinBox(ctx, *input.Box, filter, requester)
	case input.Center != nil:
		radius, radiusErr := s.radius(input.RadiusMiles)
		if radiusErr != nil {
			return nil, radiusErr
		}
		ranked, err = s.ranking.Rank(ctx, *input.Center, radius, filter, requester)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("either a center or a bounding box is required")
	}
	if err != nil {
		return nil, err
	}

	return &usecase.DiscoverOutput{Candidates: ranked, Degraded: degraded}, nil
}

// requester resolves the caller so their own profile is excluded. Discovery works
// anonymously, so only an identity conflict is fatal.
func (s *discoveryService) requester(ctx context.Context, identity entity.Identity) (*uuid.UUID, bool, error) {
	if identity.IsAnonymous() {
		return nil, false, nil
	}

	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{})
	if err == nil {
		return &subject.SubjectID, false, nil
	}

	switch {
	case errors.Is(err, domainerrors.ErrIdentityMismatch):
		return nil, false, err
	case errors.Is(err, domainerrors.ErrProfileNotFound):
		return nil, false, nil
	}

	s.log(ctx).Warn("discovery without requester exclusion", slog.Any("error", err))

	return nil, true, nil
}

func (s *discoveryService) radius(requested float64) (float64, error) {
	switch {
	case requested == 0:
		return s.engine.DefaultRadiusMiles, nil
	case requested < 0 || requested > s.engine.MaxRadiusMiles:
		return 0, domainerrors.ErrInvalidRadius.WithDetails("radius must be within (0, max]")
	}

	return requested, nil
}
