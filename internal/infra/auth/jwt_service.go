// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess = "access"
	tokenTypeGuest  = "guest"

	// Lifetime of access tokens minted locally; production tokens come from the auth service.
	defaultAccessTTL = 15 * time.Minute
)

var (
	// ErrInvalidToken is returned for malformed, expired or wrongly signed tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrWrongTokenType is returned when a guest token is presented as an access token or vice versa.
	ErrWrongTokenType = errors.New("wrong token type")
)

// tokenClaims is the payload of both token kinds. Phone and ProfileID are set on guest tokens only.
type tokenClaims struct {
	Type      string `json:"type"`
	Phone     string `json:"phone,omitempty"`
	ProfileID string `json:"pid,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Shared with the external auth service.
	guestSecret  []byte        // Private to this service.
	accessTTL    time.Duration // Time-to-live for locally minted access tokens.
	guestTTL     time.Duration // Time-to-live for guest tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Guest == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	guestTTL := time.Duration(0)
	if cfg.GuestToken != nil {
		guestTTL = cfg.GuestToken.TTL
	}
	if guestTTL <= 0 {
		guestTTL = 30 * 24 * time.Hour
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		guestSecret:  []byte(cfg.SecretKey.Guest),
		accessTTL:    defaultAccessTTL,
		guestTTL:     guestTTL,
		now:          time.Now,
	}, nil
}

// ValidateAccessToken returns the user a bearer token was issued to.
func (s *jwtService) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	claims, err := s.parse(tokenString, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidToken, "subject is not a user id")
	}

	return userID, nil
}

// GenerateAccessToken signs an access token for userID.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return s.sign(tokenClaims{
		Type:             tokenTypeAccess,
		RegisteredClaims: s.registered(userID.String(), s.accessTTL),
	}, s.accessSecret)
}

// IssueGuestToken signs a guest token bound to the phone and, once known, its profile.
func (s *jwtService) IssueGuestToken(guest entity.GuestIdentity) (string, error) {
	if strings.TrimSpace(guest.Phone) == "" {
		return "", errors.New("guest token requires a phone")
	}

	claims := tokenClaims{
		Type:             tokenTypeGuest,
		Phone:            guest.Phone,
		RegisteredClaims: s.registered(guest.Phone, s.guestTTL),
	}
	if guest.ProfileID != nil {
		claims.ProfileID = guest.ProfileID.String()
	}

	return s.sign(claims, s.guestSecret)
}

// ValidateGuestToken verifies a guest token and returns its identity.
func (s *jwtService) ValidateGuestToken(tokenString string) (*entity.GuestIdentity, error) {
	claims, err := s.parse(tokenString, s.guestSecret, tokenTypeGuest)
	if err != nil {
		return nil, err
	}
	if claims.Phone == "" {
		return nil, errors.Wrap(ErrInvalidToken, "guest token has no phone")
	}

	guest := &entity.GuestIdentity{Phone: claims.Phone}
	if claims.ProfileID != "" {
		profileID, err := uuid.Parse(claims.ProfileID)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidToken, "guest token profile is not a uuid")
		}
		guest.ProfileID = &profileID
	}

	return guest, nil
}

// GuestTokenTTL returns the lifetime of issued guest tokens.
func (s *jwtService) GuestTokenTTL() time.Duration {
	return s.guestTTL
}

func (s *jwtService) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()

	return jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *jwtService) sign(claims tokenClaims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(tokenString string, secret []byte, wantType string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, errorText(err))
	}
	if claims.Type != wantType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}

func errorText(err error) string {
	if err == nil {
		return "token is not valid"
	}

	return err.Error()
}
