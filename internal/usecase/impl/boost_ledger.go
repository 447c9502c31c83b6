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

// boostLedger implements usecase.BoostLedger. "Higher wins, else reject": a boost that
// does not strictly beat the effective one is refused, never queued.
type boostLedger struct {
	repo    repository.BoostRepository
	guard   storeGuard
	metrics service.EngineMetrics
	logger  *slog.Logger
	now     func() time.Time
}

// BoostLedgerParams holds dependencies for BoostLedger, injected by Fx.
type BoostLedgerParams struct {
	fx.In

	Repo    repository.BoostRepository
	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.EngineMetrics `optional:"true"`
}

// NewBoostLedger is the constructor for boostLedger.
func NewBoostLedger(params BoostLedgerParams) usecase.BoostLedger {
	return &boostLedger{
		repo:    params.Repo,
		guard:   newStoreGuard(params.Config),
		metrics: metricsOrNop(params.Metrics),
		logger:  loggerOrDefault(params.Logger),
		now:     utcNow,
	}
}

func (l *boostLedger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// EffectiveBoost never fails: a store error ranks the subject unboosted.
func (l *boostLedger) EffectiveBoost(ctx context.Context, subjectID uuid.UUID) float64 {
	ctx, cancel := l.guard.bound(ctx)
	defer cancel()

	boost, err := l.repo.FindEffectiveBoost(ctx, subjectID, l.now())
	if err != nil {
		if !errors.Is(err, repository.ErrBoostNotFound) {
			l.log(ctx).Warn("effective boost lookup degraded", slog.String("subject_id", subjectID.String()), slog.Any("error", err))
			l.metrics.IncDegradedRead("boost_ledger")
		}

		return entity.NoBoostFactor
	}

	return normalizeFactor(boost.Factor)
}

// EffectiveBoosts reads all factors in one round trip.
func (l *boostLedger) EffectiveBoosts(ctx context.Context, subjectIDs []uuid.UUID) map[uuid.UUID]float64 {
	result := make(map[uuid.UUID]float64, len(subjectIDs))
	for _, id := range subjectIDs {
		result[id] = entity.NoBoostFactor
	}
	if len(subjectIDs) == 0 {
		return result
	}

	ctx, cancel := l.guard.bound(ctx)
	defer cancel()

	factors, err := l.repo.FindEffectiveFactors(ctx, subjectIDs, l.now())
	if err != nil {
		l.log(ctx).Warn("effective boosts lookup degraded", slog.Int("subjects", len(subjectIDs)), slog.Any("error", err))
		l.metrics.IncDegradedRead("boost_ledger")

		return result
	}

	for id, factor := range factors {
		result[id] = normalizeFactor(factor)
	}

	return result
}

// CurrentBoost returns nil when the subject has no effective boost.
func (l *boostLedger) CurrentBoost(ctx context.Context, subjectID uuid.UUID) (*entity.Boost, error) {
	ctx, cancel := l.guard.bound(ctx)
	defer cancel()

	boost, err := l.repo.FindEffectiveBoost(ctx, subjectID, l.now())
	if err != nil {
		if errors.Is(err, repository.ErrBoostNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find current boost")
	}

	return boost, nil
}

// Activate installs the boost atomically per subject.
func (l *boostLedger) Activate(ctx context.Context, input *usecase.ActivateInput) (*entity.Boost, error) {
	if input.Factor <= entity.NoBoostFactor {
		return nil, domainerrors.ErrInvalidBoostFactor.WithDetails("factor must be greater than 1")
	}
	if input.DurationMinutes <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("boost duration must be positive")
	}

	now := l.now()
	candidate := &entity.Boost{
		ID:            uuid.New(),
		SubjectID:     input.SubjectID,
		BoostType:     input.BoostType,
		Factor:        input.Factor,
		StartedAt:     now,
		ExpiresAt:     now.Add(time.Duration(input.DurationMinutes) * time.Minute),
		PaymentMethod: input.PaymentMethod,
		MembershipID:  input.MembershipID,
		PaymentRef:    input.PaymentRef,
		Active:        true,
	}

	ctx, cancel := l.guard.bound(ctx)
	defer cancel()

	existing, err := l.repo.ReplaceIfHigher(ctx, candidate, now)
	if err != nil {
		if errors.Is(err, repository.ErrBoostNotHigher) {
			l.metrics.IncBoostActivation(string(input.PaymentMethod), service.OutcomeRejected)

			return nil, domainerrors.NewBoostAlreadyActiveError(existing)
		}
		if errors.Is(err, repository.ErrPaymentAlreadyRedeemed) {
			l.metrics.IncBoostActivation(string(input.PaymentMethod), service.OutcomeRejected)

			return nil, domainerrors.ErrPaymentAlreadyRedeemed
		}
		l.metrics.IncBoostActivation(string(input.PaymentMethod), service.OutcomeError)

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && !isStoreTimeout(err) {
			return nil, err
		}

		return nil, writeFailure(err, "failed to activate boost")
	}

	l.metrics.IncBoostActivation(string(input.PaymentMethod), service.OutcomeSuccess)

	return candidate, nil
}

// Cancel deactivates the boost if it belongs to subjectID.
func (l *boostLedger) Cancel(ctx context.Context, subjectID, boostID uuid.UUID) error {
	ctx, cancel := l.guard.bound(ctx)
	defer cancel()

	boost, err := l.repo.FindBoostByID(ctx, boostID)
	if err != nil {
		if errors.Is(err, repository.ErrBoostNotFound) {
			return domainerrors.ErrBoostNotFound
		}

		return writeFailure(err, "failed to find boost")
	}
	if boost.SubjectID != subjectID {
		// Someone else's boost is reported as missing.
		return domainerrors.ErrBoostNotFound
	}
	if !boost.Active {
		return nil
	}

	if err := l.repo.DeactivateBoost(ctx, boostID); err != nil {
		return writeFailure(err, "failed to deactivate boost")
	}

	return nil
}

func normalizeFactor(factor float64) float64 {
	if factor < entity.NoBoostFactor {
		return entity.NoBoostFactor
	}

	return factor
}
