package impl

import (
	"context"
	"log/slog"
	"time"

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

// entitlementLedger implements usecase.EntitlementLedger. Membership benefits are
// consulted first and never touch usage rows; otherwise usage is counted per
// calendar period, one row per period.
type entitlementLedger struct {
	usageRepo      repository.FeatureUsageRepository
	membershipRepo repository.MembershipRepository
	pointRepo      repository.PointRepository
	entitlements   *config.EntitlementsConfig
	guard          storeGuard
	metrics        service.EngineMetrics
	logger         *slog.Logger
	now            func() time.Time
}

// EntitlementLedgerParams holds dependencies for EntitlementLedger, injected by Fx.
type EntitlementLedgerParams struct {
	fx.In

	UsageRepo      repository.FeatureUsageRepository
	MembershipRepo repository.MembershipRepository
	PointRepo      repository.PointRepository
	Config         *config.Config
	Logger         *slog.Logger
	Metrics        service.EngineMetrics `optional:"true"`
}

// NewEntitlementLedger is the constructor for entitlementLedger.
func NewEntitlementLedger(params EntitlementLedgerParams) usecase.EntitlementLedger {
	return &entitlementLedger{
		usageRepo:      params.UsageRepo,
		membershipRepo: params.MembershipRepo,
		pointRepo:      params.PointRepo,
		entitlements:   entitlementsConfig(params.Config),
		guard:          newStoreGuard(params.Config),
		metrics:        metricsOrNop(params.Metrics),
		logger:         loggerOrDefault(params.Logger),
		now:            utcNow,
	}
}

func (l *entitlementLedger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// CanUseFeature answers from the membership overlay or the current period row.
// Any store failure yields an Unknown allowance that is not allowed.
func (l *entitlementLedger) CanUseFeature(ctx context.Context, subjectID uuid.UUID, feature entity.FeatureType) *entity.FeatureAllowance {
	membership, err := l.EffectiveMembership(ctx, subjectID)
	if err != nil {
		return l.unknownAllowance(ctx, feature, err)
	}
	if membership != nil && membership.Benefits.Unlimited(feature) {
		return unlimitedAllowance(feature)
	}

	quota := l.entitlements.QuotaFor(feature)
	key := l.usageKey(subjectID, feature, quota)

	boundCtx, cancel := l.guard.bound(ctx)
	defer cancel()

	usage, err := l.usageRepo.EnsureUsage(boundCtx, key)
	if err != nil {
		return l.unknownAllowance(ctx, feature, err)
	}

	remaining := quota.Limit - usage.Count
	if remaining < 0 {
		remaining = 0
	}
	resetAt := key.ResetAt

	return &entity.FeatureAllowance{
		Feature:   feature,
		Allowed:   remaining > 0,
		Remaining: remaining,
		Limit:     quota.Limit,
		Used:      usage.Count,
		ResetAt:   &resetAt,
	}
}

// Consume is the single atomic check-and-increment. An unlimited membership returns
// a nil usage without creating or touching a row.
func (l *entitlementLedger) Consume(ctx context.Context, subjectID uuid.UUID, feature entity.FeatureType, cost int) (*entity.FeatureUsage, error) {
	if !feature.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown feature " + string(feature))
	}
	if cost <= 0 {
		cost = 1
	}

	membership, err := l.EffectiveMembership(ctx, subjectID)
	if err != nil {
		l.metrics.IncQuotaConsume(string(feature), service.OutcomeError)

		return nil, writeFailure(err, "failed to read membership before consuming quota")
	}
	if membership != nil && membership.Benefits.Unlimited(feature) {
		l.metrics.IncQuotaConsume(string(feature), service.OutcomeSuccess)

		return nil, nil
	}

	quota := l.entitlements.QuotaFor(feature)
	key := l.usageKey(subjectID, feature, quota)

	boundCtx, cancel := l.guard.bound(ctx)
	defer cancel()

	usage, err := l.usageRepo.IncrementUsage(boundCtx, key, cost, quota.Limit)
	if err != nil {
		if errors.Is(err, repository.ErrUsageLimitReached) {
			l.metrics.IncQuotaConsume(string(feature), service.OutcomeRejected)

			return nil, domainerrors.NewQuotaExceededError(feature, quota.Limit, key.ResetAt)
		}
		l.metrics.IncQuotaConsume(string(feature), service.OutcomeError)
		l.log(ctx).Error("quota consume failed",
			slog.String("subject_id", subjectID.String()),
			slog.String("feature", string(feature)),
			slog.Any("error", err))

		return nil, writeFailure(err, "failed to consume quota")
	}

	l.metrics.IncQuotaConsume(string(feature), service.OutcomeSuccess)

	return usage, nil
}

// SpendPoints debits the balance. It must run before the ledger mutation it pays for.
func (l *entitlementLedger) SpendPoints(ctx context.Context, userID uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}

	ctx, cancel := l.guard.bound(ctx)
	defer cancel()

	if err := l.pointRepo.Debit(ctx, userID, amount); err != nil {
		if errors.Is(err, repository.ErrInsufficientPoints) {
			return domainerrors.ErrInsufficientPoints
		}

		return writeFailure(err, "failed to debit points")
	}

	return nil
}

// RefundPoints is the compensating credit for a debit whose purchase failed.
func (l *entitlementLedger) RefundPoints(ctx context.Context, userID uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}

	// The refund must outlive a cancelled request.
	ctx, cancel := l.guard.bound(context.WithoutCancel(ctx))
	defer cancel()

	if err := l.pointRepo.Credit(ctx, userID, amount); err != nil {
		return writeFailure(err, "failed to refund points")
	}

	return nil
}

// PointBalance reads the balance collaborator.
func (l *entitlementLedger) PointBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	ctx, cancel := l.guard.bound(ctx)
	defer cancel()

	balance, err := l.pointRepo.Balance(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read point balance")
	}

	return balance, nil
}

// EffectiveMembership tolerates overlapping rows and picks the latest end date.
func (l *entitlementLedger) EffectiveMembership(ctx context.Context, subjectID uuid.UUID) (*entity.Membership, error) {
	now := l.now()

	ctx, cancel := l.guard.bound(ctx)
	defer cancel()

	memberships, err := l.membershipRepo.FindMembershipsEndingAfter(ctx, subjectID, now)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find memberships")
	}

	return entity.SelectEffectiveMembership(memberships, now), nil
}

func (l *entitlementLedger) usageKey(subjectID uuid.UUID, feature entity.FeatureType, quota entity.Quota) repository.UsageKey {
	start, resetAt := quota.Period.Window(l.now())

	return repository.UsageKey{
		SubjectID:   subjectID,
		FeatureType: feature,
		PeriodStart: start,
		ResetAt:     resetAt,
	}
}

func (l *entitlementLedger) unknownAllowance(ctx context.Context, feature entity.FeatureType, err error) *entity.FeatureAllowance {
	l.log(ctx).Warn("quota check degraded", slog.String("feature", string(feature)), slog.Any("error", err))
	l.metrics.IncDegradedRead("entitlement_ledger")

	return &entity.FeatureAllowance{
		Feature: feature,
		Allowed: false,
		Unknown: true,
	}
}

func unlimitedAllowance(feature entity.FeatureType) *entity.FeatureAllowance {
	return &entity.FeatureAllowance{
		Feature:   feature,
		Allowed:   true,
		Remaining: entity.Unbounded,
		Limit:     entity.Unbounded,
		Unlimited: true,
	}
}
