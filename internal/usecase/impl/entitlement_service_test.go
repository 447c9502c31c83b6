package impl

import (
	"context"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *engineFixture) newEntitlementService() usecase.EntitlementUsecase {
	svc := NewEntitlementService(EntitlementServiceParams{
		Resolver:       f.resolver,
		Boosts:         f.boosts,
		Entitlements:   f.entitlements,
		MembershipRepo: f.membershipRepo,
		Config:         f.cfg,
		Logger:         f.logger,
	})
	svc.(*entitlementService).now = f.clock.Now

	return svc
}

func TestEntitlementService_GetEntitlements(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	svc := f.newEntitlementService()

	t.Run("unknown guest is not created", func(t *testing.T) {
		_, err := svc.GetEntitlements(ctx, guestIdentity("+15145550030"))
		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})

	t.Run("free tier user", func(t *testing.T) {
		identity, subject := f.newUser(t, 40)

		output, err := svc.GetEntitlements(ctx, identity)
		require.NoError(t, err)
		assert.Equal(t, subject.SubjectID, output.Subject.SubjectID)
		assert.Equal(t, entity.NoBoostFactor, output.BoostFactor)
		assert.Nil(t, output.Boost)
		assert.Nil(t, output.Membership)
		require.NotNil(t, output.Points)
		assert.Equal(t, 40, *output.Points)

		require.Len(t, output.Quotas, len(entity.AllFeatures))
		for i, feature := range entity.AllFeatures {
			assert.Equal(t, feature, output.Quotas[i].Feature)
		}
		assert.True(t, output.Quotas[0].Allowed)
		assert.False(t, output.Quotas[3].Allowed, "filters are membership only")
	})

	t.Run("member with boost", func(t *testing.T) {
		identity, subject := f.newUser(t, 0)
		f.grantMembership(t, subject.SubjectID, entity.MembershipBenefits{UnlimitedSuperLikes: true, AdvancedFilters: true})
		_, err := f.boosts.Activate(ctx, activateInput(subject.SubjectID, 3))
		require.NoError(t, err)

		output, err := svc.GetEntitlements(ctx, identity)
		require.NoError(t, err)
		assert.Equal(t, 3.0, output.BoostFactor)
		require.NotNil(t, output.Membership)
		assert.True(t, output.Quotas[0].Unlimited)
		assert.True(t, output.Quotas[3].Allowed)
	})

	t.Run("guest has no points", func(t *testing.T) {
		identity := guestIdentity("+15145550031")
		_, err := f.resolver.Resolve(ctx, identity, usecase.ResolveOptions{CreateIfMissing: true})
		require.NoError(t, err)

		output, err := svc.GetEntitlements(ctx, identity)
		require.NoError(t, err)
		assert.Nil(t, output.Points)
	})
}

func TestEntitlementService_PurchaseMembership(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	svc := f.newEntitlementService()

	t.Run("requires an account", func(t *testing.T) {
		_, err := svc.PurchaseMembership(ctx, guestIdentity("+15145550032"), &usecase.PurchaseMembershipInput{PlanType: "gold"})
		assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
	})

	t.Run("unknown plan", func(t *testing.T) {
		identity, _ := f.newUser(t, 1000)
		_, err := svc.PurchaseMembership(ctx, identity, &usecase.PurchaseMembershipInput{PlanType: "platinum"})
		assert.ErrorIs(t, err, domainerrors.ErrUnknownPlan)
	})

	t.Run("insufficient points", func(t *testing.T) {
		identity, _ := f.newUser(t, 100)
		_, err := svc.PurchaseMembership(ctx, identity, &usecase.PurchaseMembershipInput{PlanType: "gold"})
		assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
	})

	t.Run("starts now and installs the plan boost", func(t *testing.T) {
		identity, subject := f.newUser(t, 1000)

		output, err := svc.PurchaseMembership(ctx, identity, &usecase.PurchaseMembershipInput{PlanType: "gold"})
		require.NoError(t, err)
		assert.True(t, output.Membership.StartDate.Equal(fixtureStart))
		assert.True(t, output.Membership.EndDate.Equal(fixtureStart.AddDate(0, 0, 30)))
		require.NotNil(t, output.Boost)
		assert.Equal(t, 2.0, output.Boost.Factor)
		assert.Equal(t, 2.0, f.boosts.EffectiveBoost(ctx, subject.SubjectID))

		balance, err := f.entitlements.PointBalance(ctx, *identity.UserID)
		require.NoError(t, err)
		assert.Equal(t, 100, balance)
	})

	t.Run("renewal queues after the current membership", func(t *testing.T) {
		identity, _ := f.newUser(t, 2000)

		first, err := svc.PurchaseMembership(ctx, identity, &usecase.PurchaseMembershipInput{PlanType: "plus"})
		require.NoError(t, err)

		second, err := svc.PurchaseMembership(ctx, identity, &usecase.PurchaseMembershipInput{PlanType: "gold"})
		require.NoError(t, err)
		assert.True(t, second.Membership.StartDate.Equal(first.Membership.EndDate))
		assert.Nil(t, second.Boost)
	})

	t.Run("stronger running boost is kept", func(t *testing.T) {
		identity, subject := f.newUser(t, 1000)
		_, err := f.boosts.Activate(ctx, activateInput(subject.SubjectID, 3))
		require.NoError(t, err)

		output, err := svc.PurchaseMembership(ctx, identity, &usecase.PurchaseMembershipInput{PlanType: "gold"})
		require.NoError(t, err)
		assert.Nil(t, output.Boost)
		assert.Equal(t, 3.0, f.boosts.EffectiveBoost(ctx, subject.SubjectID))
	})
}

func TestEntitlementService_CancelMembership(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	svc := f.newEntitlementService()
	identity, subject := f.newUser(t, 0)

	_, err := svc.CancelMembership(ctx, identity)
	require.ErrorIs(t, err, domainerrors.ErrMembershipNotFound)

	granted := f.grantMembership(t, subject.SubjectID, entity.MembershipBenefits{UnlimitedRekindles: true})

	cancelled, err := svc.CancelMembership(ctx, identity)
	require.NoError(t, err)
	require.NotNil(t, cancelled.CancellationDate)
	assert.True(t, cancelled.CancellationDate.Equal(fixtureStart))

	f.clock.Advance(time.Hour)
	again, err := svc.CancelMembership(ctx, identity)
	require.NoError(t, err)
	assert.True(t, again.CancellationDate.Equal(fixtureStart))

	// Benefits stay until the end date.
	allowance := f.entitlements.CanUseFeature(ctx, subject.SubjectID, entity.FeatureRekindle)
	assert.True(t, allowance.Unlimited)

	f.clock.Advance(granted.EndDate.Sub(f.clock.Now()))
	allowance = f.entitlements.CanUseFeature(ctx, subject.SubjectID, entity.FeatureRekindle)
	assert.False(t, allowance.Unlimited)
}

func TestEntitlementService_GetPointBalance(t *testing.T) {
	f := newEngineFixture(t)
	svc := f.newEntitlementService()
	identity, _ := f.newUser(t, 70)

	balance, err := svc.GetPointBalance(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, 70, balance)

	_, err = svc.GetPointBalance(context.Background(), guestIdentity("+15145550033"))
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
}
