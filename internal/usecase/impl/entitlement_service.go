package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// entitlementReadConcurrency bounds the fan-out of GetEntitlements.
const entitlementReadConcurrency = 4

type entitlementService struct {
	resolver       usecase.IdentityResolver
	boosts         usecase.BoostLedger
	entitlements   usecase.EntitlementLedger
	membershipRepo repository.MembershipRepository
	catalog        *config.EntitlementsConfig
	guard          storeGuard
	logger         *slog.Logger
	now            func() time.Time
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	Resolver       usecase.IdentityResolver
	Boosts         usecase.BoostLedger
	Entitlements   usecase.EntitlementLedger
	MembershipRepo repository.MembershipRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewEntitlementService creates a new entitlement service instance
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		resolver:       params.Resolver,
		boosts:         params.Boosts,
		entitlements:   params.Entitlements,
		membershipRepo: params.MembershipRepo,
		catalog:        entitlementsConfig(params.Config),
		guard:          newStoreGuard(params.Config),
		logger:         loggerOrDefault(params.Logger),
		now:            utcNow,
	}
}

func (s *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetEntitlements reads boost, membership, quotas and points concurrently. Every part
// degrades on its own so one slow store never hides the rest.
func (s *entitlementService) GetEntitlements(ctx context.Context, identity entity.Identity) (*usecase.EntitlementsOutput, error) {
	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{})
	if err != nil {
		return nil, err
	}

	output := &usecase.EntitlementsOutput{
		Subject:     subject,
		BoostFactor: entity.NoBoostFactor,
		Quotas:      make([]*entity.FeatureAllowance, len(entity.AllFeatures)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(entitlementReadConcurrency)

	g.Go(func() error {
		boost, err := s.boosts.CurrentBoost(gctx, subject.SubjectID)
		if err != nil {
			s.log(ctx).Warn("boost unavailable for entitlements", slog.Any("error", err))

			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		output.Boost = boost
		if boost != nil {
			output.BoostFactor = boost.Factor
		}

		return nil
	})

	g.Go(func() error {
		membership, err := s.entitlements.EffectiveMembership(gctx, subject.SubjectID)
		if err != nil {
			s.log(ctx).Warn("membership unavailable for entitlements", slog.Any("error", err))

			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		output.Membership = membership

		return nil
	})

	for i, feature := range entity.AllFeatures {
		g.Go(func() error {
			allowance := s.entitlements.CanUseFeature(gctx, subject.SubjectID, feature)
			mu.Lock()
			defer mu.Unlock()
			output.Quotas[i] = allowance

			return nil
		})
	}

	if subject.UserID != nil {
		userID := *subject.UserID
		g.Go(func() error {
			balance, err := s.entitlements.PointBalance(gctx, userID)
			if err != nil {
				s.log(ctx).Warn("point balance unavailable for entitlements", slog.Any("error", err))

				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			output.Points = &balance

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to read entitlements")
	}

	return output, nil
}

// PurchaseMembership debits points, then creates the membership starting where the
// current one ends. A plan with a profile boost installs it when the membership
// starts now; a stronger running boost is kept.
func (s *entitlementService) PurchaseMembership(ctx context.Context, identity entity.Identity, input *usecase.PurchaseMembershipInput) (*usecase.PurchaseMembershipOutput, error) {
	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{CreateIfMissing: true})
	if err != nil {
		return nil, err
	}
	if subject.UserID == nil {
		return nil, domainerrors.ErrIdentityRequired.WrapMessage("memberships are paid with points")
	}
	userID := *subject.UserID

	plan, ok := s.catalog.MembershipPlan(input.PlanType)
	if !ok {
		return nil, domainerrors.ErrUnknownPlan.WithDetails(input.PlanType)
	}

	current, err := s.entitlements.EffectiveMembership(ctx, subject.SubjectID)
	if err != nil {
		return nil, writeFailure(err, "failed to read current membership")
	}

	now := s.now()
	start := now
	if current != nil && current.EndDate.After(now) {
		start = current.EndDate
	}

	if err := s.entitlements.SpendPoints(ctx, userID, plan.PointCost); err != nil {
		return nil, err
	}

	membership := &entity.Membership{
		SubjectID: subject.SubjectID,
		Type:      plan.Type,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, plan.DurationDays),
		Benefits:  plan.Benefits,
	}
	if err := s.createMembership(ctx, membership); err != nil {
		if refundErr := s.entitlements.RefundPoints(ctx, userID, plan.PointCost); refundErr != nil {
			s.log(ctx).Error("points refund failed", slog.String("user_id", userID.String()), slog.Any("error", refundErr))
		}

		return nil, err
	}

	output := &usecase.PurchaseMembershipOutput{Membership: membership}
	if membership.IsEffective(now) && plan.Benefits.ProfileBoostFactor > entity.NoBoostFactor {
		output.Boost = s.installMembershipBoost(ctx, membership)
	}

	return output, nil
}

func (s *entitlementService) createMembership(ctx context.Context, membership *entity.Membership) error {
	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	if err := s.membershipRepo.CreateMembership(ctx, membership); err != nil {
		return writeFailure(err, "failed to create membership")
	}

	return nil
}

// installMembershipBoost never fails the purchase.
func (s *entitlementService) installMembershipBoost(ctx context.Context, membership *entity.Membership) *entity.Boost {
	membershipID := membership.ID

	boost, err := s.boosts.Activate(ctx, &usecase.ActivateInput{
		SubjectID:       membership.SubjectID,
		BoostType:       membershipBoostType,
		Factor:          membership.Benefits.ProfileBoostFactor,
		DurationMinutes: s.catalog.MembershipBoostMinutes,
		PaymentMethod:   entity.PaymentMethodMembership,
		MembershipID:    &membershipID,
	})
	if err != nil {
		var active *domainerrors.BoostAlreadyActiveError
		if errors.As(err, &active) {
			s.log(ctx).Info("membership boost skipped, stronger boost running", slog.String("membership_id", membershipID.String()))
		} else {
			s.log(ctx).Warn("membership boost not installed", slog.String("membership_id", membershipID.String()), slog.Any("error", err))
		}

		return nil
	}

	return boost
}

// CancelMembership keeps the membership effective until its end date.
func (s *entitlementService) CancelMembership(ctx context.Context, identity entity.Identity) (*entity.Membership, error) {
	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{})
	if err != nil {
		return nil, err
	}

	membership, err := s.entitlements.EffectiveMembership(ctx, subject.SubjectID)
	if err != nil {
		return nil, writeFailure(err, "failed to read current membership")
	}
	if membership == nil {
		return nil, domainerrors.ErrMembershipNotFound
	}
	if membership.CancellationDate != nil {
		return membership, nil
	}

	now := s.now()

	boundCtx, cancel := s.guard.bound(ctx)
	defer cancel()

	if err := s.membershipRepo.CancelMembership(boundCtx, membership.ID, now); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, domainerrors.ErrMembershipNotFound
		}

		return nil, writeFailure(err, "failed to cancel membership")
	}
	membership.CancellationDate = &now

	return membership, nil
}

// GetPointBalance is available to authenticated callers only.
func (s *entitlementService) GetPointBalance(ctx context.Context, identity entity.Identity) (int, error) {
	if identity.UserID == nil {
		return 0, domainerrors.ErrIdentityRequired.WrapMessage("points require an authenticated account")
	}

	return s.entitlements.PointBalance(ctx, *identity.UserID)
}
