package impl

import (
	"context"
	"testing"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_ClaimCarriesLedgers(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	profiles := NewProfileService(ProfileServiceParams{Resolver: f.resolver, Logger: f.logger})

	guest := guestIdentity("+15145550060")
	subject, err := f.resolver.Resolve(ctx, guest, usecase.ResolveOptions{CreateIfMissing: true})
	require.NoError(t, err)
	_, err = f.boosts.Activate(ctx, activateInput(subject.SubjectID, 2))
	require.NoError(t, err)
	_, err = f.entitlements.Consume(ctx, subject.SubjectID, entity.FeatureSuperLike, 1)
	require.NoError(t, err)

	userID := uuid.New()
	claimed, err := profiles.ClaimProfile(ctx, entity.Identity{UserID: &userID, Guest: guest.Guest})
	require.NoError(t, err)
	assert.Equal(t, subject.SubjectID, claimed.ID)

	// Boost and quota history follow the profile, not the token.
	assert.Equal(t, 2.0, f.boosts.EffectiveBoost(ctx, claimed.ID))
	assert.False(t, f.entitlements.CanUseFeature(ctx, claimed.ID, entity.FeatureSuperLike).Allowed)
}

func TestProfileService_ClaimNeedsBothTokens(t *testing.T) {
	f := newEngineFixture(t)
	profiles := NewProfileService(ProfileServiceParams{Resolver: f.resolver, Logger: f.logger})
	userID := uuid.New()

	_, err := profiles.ClaimProfile(context.Background(), entity.Identity{UserID: &userID})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)

	_, err = profiles.ClaimProfile(context.Background(), guestIdentity("+15145550061"))
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)

	_, err = profiles.ClaimProfile(context.Background(), entity.Identity{UserID: &userID, Guest: &entity.GuestIdentity{Phone: "+15145550062"}})
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
