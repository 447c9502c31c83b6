package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultBoostType    = "standard"
	membershipBoostType = "membership"

	// paymentMetadataBoostType is the payment intent metadata key naming the boost bought.
	paymentMetadataBoostType = "boost_type"
)

type boostService struct {
	resolver     usecase.IdentityResolver
	boosts       usecase.BoostLedger
	entitlements usecase.EntitlementLedger
	payments     service.PaymentVerifier
	notifier     usecase.EventNotifier
	catalog      *config.EntitlementsConfig
	logger       *slog.Logger
}

// BoostServiceParams holds dependencies for BoostService, injected by Fx.
type BoostServiceParams struct {
	fx.In

	Resolver     usecase.IdentityResolver
	Boosts       usecase.BoostLedger
	Entitlements usecase.EntitlementLedger
	Payments     service.PaymentVerifier `optional:"true"`
	Notifier     usecase.EventNotifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBoostService creates a new boost service instance
func NewBoostService(params BoostServiceParams) usecase.BoostUsecase {
	return &boostService{
		resolver:     params.Resolver,
		boosts:       params.Boosts,
		entitlements: params.Entitlements,
		payments:     params.Payments,
		notifier:     params.Notifier,
		catalog:      entitlementsConfig(params.Config),
		logger:       loggerOrDefault(params.Logger),
	}
}

func (s *boostService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ActivateBoost takes payment first and installs the boost second.
func (s *boostService) ActivateBoost(ctx context.Context, identity entity.Identity, input *usecase.ActivateBoostInput) (*entity.Boost, error) {
	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{CreateIfMissing: true})
	if err != nil {
		return nil, err
	}

	var boost *entity.Boost
	switch input.PaymentMethod {
	case entity.PaymentMethodPoints:
		boost, err = s.activateWithPoints(ctx, subject, input)
	case entity.PaymentMethodStripe:
		boost, err = s.activateWithStripe(ctx, subject, input)
	case entity.PaymentMethodMembership:
		boost, err = s.activateWithMembership(ctx, subject)
	default:
		return nil, domainerrors.ErrUnsupportedPaymentMethod.WithDetails(string(input.PaymentMethod))
	}
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, subject.SubjectID, entity.EventBoostActivated, map[string]string{
		"boost_id":   boost.ID.String(),
		"factor":     strconv.FormatFloat(boost.Factor, 'f', -1, 64),
		"expires_at": boost.ExpiresAt.Format(time.RFC3339),
	})

	return boost, nil
}

// activateWithPoints refunds the debit when the boost cannot be installed.
func (s *boostService) activateWithPoints(ctx context.Context, subject *entity.Subject, input *usecase.ActivateBoostInput) (*entity.Boost, error) {
	if subject.UserID == nil {
		return nil, domainerrors.ErrIdentityRequired.WrapMessage("points require an authenticated account")
	}

	boostType, err := s.boostType(input.BoostType)
	if err != nil {
		return nil, err
	}

	if err := s.entitlements.SpendPoints(ctx, *subject.UserID, boostType.PointCost); err != nil {
		return nil, err
	}

	boost, err := s.boosts.Activate(ctx, &usecase.ActivateInput{
		SubjectID:       subject.SubjectID,
		BoostType:       boostType.Name,
		Factor:          boostType.Factor,
		DurationMinutes: boostType.DurationMinutes,
		PaymentMethod:   entity.PaymentMethodPoints,
	})
	if err != nil {
		s.refund(ctx, *subject.UserID, boostType.PointCost, err)

		return nil, err
	}

	return boost, nil
}

func (s *boostService) activateWithStripe(ctx context.Context, subject *entity.Subject, input *usecase.ActivateBoostInput) (*entity.Boost, error) {
	if s.payments == nil {
		return nil, domainerrors.ErrUnsupportedPaymentMethod.WithDetails("card payments are not configured")
	}
	if input.PaymentIntentID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment_intent_id is required")
	}

	boostType, err := s.boostType(input.BoostType)
	if err != nil {
		return nil, err
	}

	intent, err := s.payments.Verify(ctx, input.PaymentIntentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify payment")
	}
	if intent.Status != service.PaymentSucceeded {
		return nil, domainerrors.ErrPaymentNotConfirmed.WithDetails(string(intent.Status))
	}
	if err := checkIntentPaysFor(intent, boostType); err != nil {
		return nil, err
	}

	return s.boosts.Activate(ctx, &usecase.ActivateInput{
		SubjectID:       subject.SubjectID,
		BoostType:       boostType.Name,
		Factor:          boostType.Factor,
		DurationMinutes: boostType.DurationMinutes,
		PaymentMethod:   entity.PaymentMethodStripe,
		PaymentRef:      input.PaymentIntentID,
	})
}

// checkIntentPaysFor rejects an intent tagged for another product or paying less than
// the catalog price.
func checkIntentPaysFor(intent *service.PaymentIntent, boostType entity.BoostType) error {
	if tagged, ok := intent.Metadata[paymentMetadataBoostType]; ok && !strings.EqualFold(tagged, boostType.Name) {
		return domainerrors.ErrPaymentMismatch.WithDetails("payment was made for boost type " + tagged)
	}
	if boostType.PriceCents <= 0 {
		return nil
	}
	if boostType.Currency != "" && !strings.EqualFold(intent.Currency, boostType.Currency) {
		return domainerrors.ErrPaymentMismatch.WithDetails("unexpected currency " + intent.Currency)
	}
	if intent.Amount < boostType.PriceCents {
		return domainerrors.ErrPaymentMismatch.WithDetails("amount below price of " + boostType.Name)
	}

	return nil
}

// activateWithMembership spends the weekly boost quota at the membership's factor.
func (s *boostService) activateWithMembership(ctx context.Context, subject *entity.Subject) (*entity.Boost, error) {
	membership, err := s.entitlements.EffectiveMembership(ctx, subject.SubjectID)
	if err != nil {
		return nil, writeFailure(err, "failed to read membership")
	}
	if membership == nil || membership.Benefits.ProfileBoostFactor <= entity.NoBoostFactor {
		return nil, domainerrors.ErrMembershipRequired
	}
	factor := membership.Benefits.ProfileBoostFactor

	// Reject before spending quota when the outcome is already known.
	current, err := s.boosts.CurrentBoost(ctx, subject.SubjectID)
	if err == nil && current != nil && current.Factor >= factor {
		return nil, domainerrors.NewBoostAlreadyActiveError(current)
	}

	if _, err := s.entitlements.Consume(ctx, subject.SubjectID, entity.FeatureBoost, 1); err != nil {
		return nil, err
	}

	membershipID := membership.ID

	return s.boosts.Activate(ctx, &usecase.ActivateInput{
		SubjectID:       subject.SubjectID,
		BoostType:       membershipBoostType,
		Factor:          factor,
		DurationMinutes: s.catalog.MembershipBoostMinutes,
		PaymentMethod:   entity.PaymentMethodMembership,
		MembershipID:    &membershipID,
	})
}

// CancelBoost deactivates the caller's boost. No refund is made.
func (s *boostService) CancelBoost(ctx context.Context, identity entity.Identity, boostID uuid.UUID) error {
	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{})
	if err != nil {
		return err
	}

	return s.boosts.Cancel(ctx, subject.SubjectID, boostID)
}

func (s *boostService) boostType(name string) (entity.BoostType, error) {
	if name == "" {
		name = defaultBoostType
	}

	boostType, ok := s.catalog.BoostType(name)
	if !ok {
		return entity.BoostType{}, domainerrors.ErrValidationFailed.WithDetails("unknown boost type " + name)
	}

	return boostType, nil
}

func (s *boostService) refund(ctx context.Context, userID uuid.UUID, amount int, cause error) {
	if err := s.entitlements.RefundPoints(ctx, userID, amount); err != nil {
		s.log(ctx).Error("points refund failed",
			slog.String("user_id", userID.String()),
			slog.Int("amount", amount),
			slog.Any("cause", cause),
			slog.Any("error", err))
	}
}
