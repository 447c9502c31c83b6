package impl

import (
	"context"
	"log/slog"
	"strings"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// identityResolver implements usecase.IdentityResolver. It fails closed: a guest
// token never resolves to a profile with an authenticated owner, and an
// authenticated caller never silently inherits a guest profile without Claim.
type identityResolver struct {
	profileRepo repository.ProfileRepository
	guard       storeGuard
	metrics     service.EngineMetrics
	logger      *slog.Logger
}

// IdentityResolverParams holds dependencies for IdentityResolver, injected by Fx.
type IdentityResolverParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Config      *config.Config
	Logger      *slog.Logger
	Metrics     service.EngineMetrics `optional:"true"`
}

// NewIdentityResolver is the constructor for identityResolver.
func NewIdentityResolver(params IdentityResolverParams) usecase.IdentityResolver {
	return &identityResolver{
		profileRepo: params.ProfileRepo,
		guard:       newStoreGuard(params.Config),
		metrics:     metricsOrNop(params.Metrics),
		logger:      loggerOrDefault(params.Logger),
	}
}

func (r *identityResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve maps the request identity to its subject.
func (r *identityResolver) Resolve(ctx context.Context, identity entity.Identity, opts usecase.ResolveOptions) (*entity.Subject, error) {
	subject, err := r.resolve(ctx, identity, opts)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && !isStoreTimeout(err) {
			r.metrics.IncIdentityResolution(service.OutcomeRejected)
			if errors.Is(err, domainerrors.ErrIdentityMismatch) {
				r.log(ctx).Info("identity resolution rejected", slog.String("code", appErr.ErrorCode()))
			}
		} else {
			r.metrics.IncIdentityResolution(service.OutcomeError)
		}

		return nil, err
	}

	r.metrics.IncIdentityResolution(service.OutcomeSuccess)

	return subject, nil
}

func (r *identityResolver) resolve(ctx context.Context, identity entity.Identity, opts usecase.ResolveOptions) (*entity.Subject, error) {
	if identity.IsAnonymous() {
		return nil, domainerrors.ErrIdentityRequired
	}

	ctx, cancel := r.guard.bound(ctx)
	defer cancel()

	if identity.UserID != nil {
		return r.resolveUser(ctx, *identity.UserID, identity.Guest, opts)
	}

	return r.resolveGuest(ctx, identity.Guest, opts)
}

// resolveUser lets the authenticated identity win, but still refuses a guest token
// whose phone belongs to a different account.
func (r *identityResolver) resolveUser(ctx context.Context, userID uuid.UUID, guest *entity.GuestIdentity, opts usecase.ResolveOptions) (*entity.Subject, error) {
	if guest != nil && normalizePhone(guest.Phone) != "" {
		guestProfile, err := r.profileRepo.FindProfileByGuestPhone(ctx, normalizePhone(guest.Phone))
		switch {
		case err == nil:
			if guestProfile.IsClaimed() && !guestProfile.OwnedBy(userID) {
				return nil, domainerrors.ErrIdentityMismatch.WrapMessage("guest phone belongs to another account")
			}
		case !errors.Is(err, repository.ErrProfileNotFound):
			return nil, writeFailure(err, "failed to find guest profile")
		}
	}

	profile, err := r.profileRepo.FindProfileByOwner(ctx, userID)
	if err == nil {
		return userSubject(profile, userID, false), nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, writeFailure(err, "failed to find profile by owner")
	}
	if !opts.CreateIfMissing {
		return nil, domainerrors.ErrProfileNotFound
	}

	owner := userID
	profile = &entity.Profile{ID: uuid.New(), OwnerUserID: &owner}
	if err := r.profileRepo.CreateProfile(ctx, profile); err != nil {
		if !errors.Is(err, repository.ErrDuplicateProfile) {
			return nil, writeFailure(err, "failed to create profile")
		}
		// A concurrent request created it first.
		profile, err = r.profileRepo.FindProfileByOwner(ctx, userID)
		if err != nil {
			return nil, writeFailure(err, "failed to find profile by owner")
		}

		return userSubject(profile, userID, false), nil
	}

	return userSubject(profile, userID, true), nil
}

func (r *identityResolver) resolveGuest(ctx context.Context, guest *entity.GuestIdentity, opts usecase.ResolveOptions) (*entity.Subject, error) {
	phone := normalizePhone(guest.Phone)
	if phone == "" {
		return nil, domainerrors.ErrIdentityRequired
	}

	profile, err := r.profileRepo.FindProfileByGuestPhone(ctx, phone)
	switch {
	case err == nil:
		if err := checkGuestProfile(profile, guest); err != nil {
			return nil, err
		}

		return guestSubject(profile, false), nil
	case !errors.Is(err, repository.ErrProfileNotFound):
		return nil, writeFailure(err, "failed to find guest profile")
	}

	if guest.ProfileID != nil {
		// The token names a profile that is no longer keyed by this phone.
		return nil, domainerrors.ErrIdentityMismatch.WrapMessage("guest token profile does not match phone")
	}
	if !opts.CreateIfMissing {
		return nil, domainerrors.ErrProfileNotFound
	}

	profile = &entity.Profile{ID: uuid.New(), GuestPhone: phone}
	if err := r.profileRepo.CreateProfile(ctx, profile); err != nil {
		if !errors.Is(err, repository.ErrDuplicateProfile) {
			return nil, writeFailure(err, "failed to create guest profile")
		}

		profile, err = r.profileRepo.FindProfileByGuestPhone(ctx, phone)
		if err != nil {
			return nil, writeFailure(err, "failed to find guest profile")
		}
		if err := checkGuestProfile(profile, guest); err != nil {
			return nil, err
		}

		return guestSubject(profile, false), nil
	}

	return guestSubject(profile, true), nil
}

// Claim performs the one-way guest-phone to user transition.
func (r *identityResolver) Claim(ctx context.Context, userID uuid.UUID, guest *entity.GuestIdentity) (*entity.Profile, error) {
	if guest == nil || normalizePhone(guest.Phone) == "" {
		return nil, domainerrors.ErrIdentityRequired.WrapMessage("claim requires a guest token")
	}

	ctx, cancel := r.guard.bound(ctx)
	defer cancel()

	profile, err := r.profileRepo.FindProfileByGuestPhone(ctx, normalizePhone(guest.Phone))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, writeFailure(err, "failed to find guest profile")
	}
	if guest.ProfileID != nil && *guest.ProfileID != profile.ID {
		return nil, domainerrors.ErrIdentityMismatch.WrapMessage("guest token profile does not match phone")
	}
	if profile.OwnedBy(userID) {
		return profile, nil
	}
	if profile.IsClaimed() {
		return nil, domainerrors.ErrIdentityMismatch.WrapMessage("profile already claimed")
	}

	claimed, err := r.profileRepo.ClaimProfile(ctx, profile.ID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProfileClaimedByOther):
			return nil, domainerrors.ErrIdentityMismatch.WrapMessage("profile already claimed")
		case errors.Is(err, repository.ErrDuplicateProfile):
			return nil, domainerrors.ErrProfileAlreadyOwned
		case errors.Is(err, repository.ErrProfileNotFound):
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, writeFailure(err, "failed to claim profile")
	}

	r.log(ctx).Info("guest profile claimed",
		slog.String("profile_id", claimed.ID.String()),
		slog.String("user_id", userID.String()))

	return claimed, nil
}

func checkGuestProfile(profile *entity.Profile, guest *entity.GuestIdentity) error {
	if profile.IsClaimed() {
		return domainerrors.ErrIdentityMismatch.WrapMessage("guest profile is owned by an account")
	}
	if guest.ProfileID != nil && *guest.ProfileID != profile.ID {
		return domainerrors.ErrIdentityMismatch.WrapMessage("guest token profile does not match phone")
	}

	return nil
}

func userSubject(profile *entity.Profile, userID uuid.UUID, created bool) *entity.Subject {
	owner := userID

	return &entity.Subject{SubjectID: profile.ID, UserID: &owner, Created: created}
}

func guestSubject(profile *entity.Profile, created bool) *entity.Subject {
	return &entity.Subject{SubjectID: profile.ID, IsGuest: true, Created: created}
}

// normalizePhone strips formatting so "+1 (514) 555-0000" and "+15145550000" match.
func normalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}
