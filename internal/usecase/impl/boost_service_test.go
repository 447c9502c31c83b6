package impl

import (
	"context"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	mockService "nearby/internal/mocks/service"
	mockUsecase "nearby/internal/mocks/usecase"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *engineFixture) newBoostService(payments service.PaymentVerifier, notifier usecase.EventNotifier) usecase.BoostUsecase {
	return NewBoostService(BoostServiceParams{
		Resolver:     f.resolver,
		Boosts:       f.boosts,
		Entitlements: f.entitlements,
		Payments:     payments,
		Notifier:     notifier,
		Config:       f.cfg,
		Logger:       f.logger,
	})
}

func TestBoostService_ActivateWithPoints(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	identity, subject := f.newUser(t, 200)

	notifier := mockUsecase.NewMockEventNotifier(t)
	notifier.EXPECT().
		Notify(mock.Anything, subject.SubjectID, entity.EventBoostActivated, mock.Anything).
		Return().
		Once()

	boosts := f.newBoostService(nil, notifier)

	boost, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodPoints})
	require.NoError(t, err)
	assert.Equal(t, 2.0, boost.Factor)
	assert.True(t, fixtureStart.Add(30*time.Minute).Equal(boost.ExpiresAt))

	balance, err := f.entitlements.PointBalance(ctx, *identity.UserID)
	require.NoError(t, err)
	assert.Equal(t, 150, balance)
}

func TestBoostService_RejectedActivationRefundsPoints(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	identity, subject := f.newUser(t, 200)

	notifier := mockUsecase.NewMockEventNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, subject.SubjectID, entity.EventBoostActivated, mock.Anything).Return().Once()

	boosts := f.newBoostService(nil, notifier)

	_, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{BoostType: "super", PaymentMethod: entity.PaymentMethodPoints})
	require.NoError(t, err)

	// A weaker boost is rejected and the debit is returned.
	_, err = boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{BoostType: "standard", PaymentMethod: entity.PaymentMethodPoints})
	var active *domainerrors.BoostAlreadyActiveError
	require.True(t, errors.As(err, &active))
	assert.Equal(t, 3.0, active.Existing.Factor)

	balance, err := f.entitlements.PointBalance(ctx, *identity.UserID)
	require.NoError(t, err)
	assert.Equal(t, 80, balance)
}

func TestBoostService_PointsValidation(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	boosts := f.newBoostService(nil, mockUsecase.NewMockEventNotifier(t))

	t.Run("guest cannot pay with points", func(t *testing.T) {
		_, err := boosts.ActivateBoost(ctx, guestIdentity("+15145550000"), &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodPoints})
		assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
	})

	t.Run("insufficient points", func(t *testing.T) {
		identity, _ := f.newUser(t, 10)
		_, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodPoints})
		assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
	})

	t.Run("unknown boost type", func(t *testing.T) {
		identity, _ := f.newUser(t, 500)
		_, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{BoostType: "mega", PaymentMethod: entity.PaymentMethodPoints})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		balance, err := f.entitlements.PointBalance(ctx, *identity.UserID)
		require.NoError(t, err)
		assert.Equal(t, 500, balance)
	})

	t.Run("unsupported payment method", func(t *testing.T) {
		identity, _ := f.newUser(t, 0)
		_, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: "cash"})
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedPaymentMethod)
	})
}

func paidIntent(id string, amount int64) *service.PaymentIntent {
	return &service.PaymentIntent{ID: id, Status: service.PaymentSucceeded, Amount: amount, Currency: "usd"}
}

func TestBoostService_ActivateWithStripe(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	t.Run("pending payment", func(t *testing.T) {
		identity, _ := f.newUser(t, 0)
		payments := mockService.NewMockPaymentVerifier(t)
		payments.EXPECT().Verify(mock.Anything, "pi_pending").
			Return(&service.PaymentIntent{ID: "pi_pending", Status: service.PaymentPending}, nil).Once()

		boosts := f.newBoostService(payments, mockUsecase.NewMockEventNotifier(t))
		_, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodStripe, PaymentIntentID: "pi_pending"})
		assert.ErrorIs(t, err, domainerrors.ErrPaymentNotConfirmed)
	})

	t.Run("succeeded payment", func(t *testing.T) {
		identity, subject := f.newUser(t, 0)
		payments := mockService.NewMockPaymentVerifier(t)
		payments.EXPECT().Verify(mock.Anything, "pi_ok").Return(paidIntent("pi_ok", 299), nil).Once()
		notifier := mockUsecase.NewMockEventNotifier(t)
		notifier.EXPECT().Notify(mock.Anything, subject.SubjectID, entity.EventBoostActivated, mock.Anything).Return().Once()

		boosts := f.newBoostService(payments, notifier)
		boost, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodStripe, PaymentIntentID: "pi_ok"})
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentMethodStripe, boost.PaymentMethod)
		assert.Equal(t, "pi_ok", boost.PaymentRef)
	})

	t.Run("provider failure", func(t *testing.T) {
		identity, _ := f.newUser(t, 0)
		payments := mockService.NewMockPaymentVerifier(t)
		payments.EXPECT().Verify(mock.Anything, "pi_err").Return(nil, errors.New("provider down")).Once()

		boosts := f.newBoostService(payments, mockUsecase.NewMockEventNotifier(t))
		_, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodStripe, PaymentIntentID: "pi_err"})
		assert.Error(t, err)
	})

	t.Run("not configured", func(t *testing.T) {
		boosts := f.newBoostService(nil, mockUsecase.NewMockEventNotifier(t))
		_, err := boosts.ActivateBoost(ctx, guestIdentity("+15145550013"), &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodStripe, PaymentIntentID: "pi"})
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedPaymentMethod)
	})
}

func TestBoostService_StripeIntentRedeemedOnce(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	identity, subject := f.newUser(t, 0)

	payments := mockService.NewMockPaymentVerifier(t)
	payments.EXPECT().Verify(mock.Anything, "pi_once").Return(paidIntent("pi_once", 299), nil)
	notifier := mockUsecase.NewMockEventNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, subject.SubjectID, entity.EventBoostActivated, mock.Anything).Return().Once()
	boosts := f.newBoostService(payments, notifier)

	granted := 0
	for range 3 {
		boost, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodStripe, PaymentIntentID: "pi_once"})
		if err != nil {
			assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadyRedeemed)

			continue
		}
		granted++
		require.NoError(t, boosts.CancelBoost(ctx, identity, boost.ID))
	}
	assert.Equal(t, 1, granted)

	// Expiry does not make the intent redeemable again either.
	f.clock.Advance(time.Hour)
	_, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodStripe, PaymentIntentID: "pi_once"})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadyRedeemed)

	// Nor can another subject redeem it.
	other, _ := f.newUser(t, 0)
	_, err = boosts.ActivateBoost(ctx, other, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodStripe, PaymentIntentID: "pi_once"})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadyRedeemed)
}

func TestBoostService_StripeIntentMustPayForBoostType(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		boost  string
		intent *service.PaymentIntent
	}{
		{name: "amount below price", boost: "super", intent: paidIntent("pi_cheap", 299)},
		{name: "other currency", boost: "standard", intent: &service.PaymentIntent{ID: "pi_eur", Status: service.PaymentSucceeded, Amount: 299, Currency: "eur"}},
		{
			name:  "tagged for another boost",
			boost: "standard",
			intent: &service.PaymentIntent{
				ID: "pi_tagged", Status: service.PaymentSucceeded, Amount: 499, Currency: "usd",
				Metadata: map[string]string{"boost_type": "super"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, subject := f.newUser(t, 0)
			payments := mockService.NewMockPaymentVerifier(t)
			payments.EXPECT().Verify(mock.Anything, tt.intent.ID).Return(tt.intent, nil).Once()

			boosts := f.newBoostService(payments, mockUsecase.NewMockEventNotifier(t))
			_, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{
				BoostType:       tt.boost,
				PaymentMethod:   entity.PaymentMethodStripe,
				PaymentIntentID: tt.intent.ID,
			})
			assert.ErrorIs(t, err, domainerrors.ErrPaymentMismatch)
			assert.Equal(t, entity.NoBoostFactor, f.boosts.EffectiveBoost(ctx, subject.SubjectID))
		})
	}
}

func TestBoostService_ActivateWithMembership(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	identity, subject := f.newUser(t, 0)

	notifier := mockUsecase.NewMockEventNotifier(t)
	boosts := f.newBoostService(nil, notifier)

	_, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodMembership})
	require.ErrorIs(t, err, domainerrors.ErrMembershipRequired)

	membership := f.grantMembership(t, subject.SubjectID, entity.MembershipBenefits{ProfileBoostFactor: 2})
	notifier.EXPECT().Notify(mock.Anything, subject.SubjectID, entity.EventBoostActivated, mock.Anything).Return().Once()

	boost, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodMembership})
	require.NoError(t, err)
	assert.Equal(t, 2.0, boost.Factor)
	require.NotNil(t, boost.MembershipID)
	assert.Equal(t, membership.ID, *boost.MembershipID)

	// The running boost is rejected before the weekly quota is touched.
	_, err = boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodMembership})
	var active *domainerrors.BoostAlreadyActiveError
	require.True(t, errors.As(err, &active))

	// Once it expires, the weekly quota is already spent.
	f.clock.Advance(31 * time.Minute)
	_, err = boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodMembership})
	var exceeded *domainerrors.QuotaExceededError
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, entity.FeatureBoost, exceeded.Feature)
}

func TestBoostService_CancelBoost(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	identity, subject := f.newUser(t, 100)

	notifier := mockUsecase.NewMockEventNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, subject.SubjectID, entity.EventBoostActivated, mock.Anything).Return().Once()
	boosts := f.newBoostService(nil, notifier)

	boost, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodPoints})
	require.NoError(t, err)

	require.NoError(t, boosts.CancelBoost(ctx, identity, boost.ID))
	assert.Equal(t, entity.NoBoostFactor, f.boosts.EffectiveBoost(ctx, subject.SubjectID))

	other, _ := f.newUser(t, 0)
	assert.ErrorIs(t, boosts.CancelBoost(ctx, other, boost.ID), domainerrors.ErrBoostNotFound)
}

func TestBoostService_MembershipBoostOutlivesMembership(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.cfg.Entitlements.MembershipBoostMinutes = 24 * 60
	identity, subject := f.newUser(t, 0)

	// The membership ends two hours after the boost starts.
	now := f.clock.Now()
	membership := &entity.Membership{
		ID:        uuid.New(),
		SubjectID: subject.SubjectID,
		Type:      "gold",
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(2 * time.Hour),
		Benefits:  entity.MembershipBenefits{ProfileBoostFactor: 4},
	}
	require.NoError(t, f.membershipRepo.CreateMembership(ctx, membership))

	notifier := mockUsecase.NewMockEventNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, subject.SubjectID, entity.EventBoostActivated, mock.Anything).Return().Once()
	boosts := f.newBoostService(nil, notifier)

	boost, err := boosts.ActivateBoost(ctx, identity, &usecase.ActivateBoostInput{PaymentMethod: entity.PaymentMethodMembership})
	require.NoError(t, err)
	require.True(t, boost.ExpiresAt.After(membership.EndDate))

	cancelledAt := f.clock.Now()
	require.NoError(t, f.membershipRepo.CancelMembership(ctx, membership.ID, cancelledAt))
	f.clock.Advance(3 * time.Hour)

	current, err := f.entitlements.EffectiveMembership(ctx, subject.SubjectID)
	require.NoError(t, err)
	assert.Nil(t, current)
	assert.Equal(t, 4.0, f.boosts.EffectiveBoost(ctx, subject.SubjectID))

	f.clock.Advance(24 * time.Hour)
	assert.Equal(t, entity.NoBoostFactor, f.boosts.EffectiveBoost(ctx, subject.SubjectID))
}
