package auth

import (
	"testing"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{GuestToken: &config.GuestTokenConfig{TTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Guest = "test_guest_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_AccessToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)

	got, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_GuestToken(t *testing.T) {
	svc := newTestJWTService(t)
	profileID := uuid.New()

	token, err := svc.IssueGuestToken(entity.GuestIdentity{Phone: "+15145550000", ProfileID: &profileID})
	require.NoError(t, err)

	guest, err := svc.ValidateGuestToken(token)
	require.NoError(t, err)
	assert.Equal(t, "+15145550000", guest.Phone)
	require.NotNil(t, guest.ProfileID)
	assert.Equal(t, profileID, *guest.ProfileID)
	assert.Equal(t, time.Hour, svc.GuestTokenTTL())

	_, err = svc.IssueGuestToken(entity.GuestIdentity{})
	assert.Error(t, err)
}

func TestJWTService_TokenTypesDoNotMix(t *testing.T) {
	svc := newTestJWTService(t)

	guestToken, err := svc.IssueGuestToken(entity.GuestIdentity{Phone: "+15145550000"})
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(guestToken)
	assert.ErrorIs(t, err, ErrInvalidToken, "guest tokens are signed with another secret")

	accessToken, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)
	_, err = svc.ValidateGuestToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Now()
	svc.now = func() time.Time { return issued }

	token, err := svc.IssueGuestToken(entity.GuestIdentity{Phone: "+15145550000"})
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.ValidateGuestToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
