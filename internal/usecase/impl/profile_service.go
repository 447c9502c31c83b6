// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/usecase"

	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	resolver usecase.IdentityResolver
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Resolver usecase.IdentityResolver
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		resolver: params.Resolver,
		logger:   loggerOrDefault(params.Logger),
	}
}

// ClaimProfile hands the guest's profile, with its boosts and quota history, to the
// authenticated user.
func (srv *profileService) ClaimProfile(ctx context.Context, identity entity.Identity) (*entity.Profile, error) {
	if identity.UserID == nil || identity.Guest == nil {
		return nil, domainerrors.ErrIdentityRequired.WithDetails("claiming needs both an access token and a guest token")
	}

	profile, err := srv.resolver.Claim(ctx, *identity.UserID, identity.Guest)
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("profile claimed",
		slog.String("profile_id", profile.ID.String()),
		slog.String("user_id", identity.UserID.String()),
	)

	return profile, nil
}
