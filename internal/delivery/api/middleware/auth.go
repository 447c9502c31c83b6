package middleware

import (
	"log/slog"
	"strings"

	"nearby/internal/delivery/api/response"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/constants"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const keyGuestProfileID = "guestProfileID"

// AuthMiddleware resolves the caller from an optional bearer access token and an
// optional guest token. Neither is required; a present but invalid one is rejected.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Identify stores whatever identity the request carries and renews the guest token.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var (
			userID     *uuid.UUID
			guestPhone string
		)

		if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
			}

			id, err := m.tokenSvc.ValidateAccessToken(tokenString)
			if err != nil {
				return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			}
			c.Set(constants.ContextKeyUserID, id)
			userID = &id
		}

		if guestToken := c.Request().Header.Get(constants.HeaderGuestToken); guestToken != "" {
			guest, err := m.tokenSvc.ValidateGuestToken(guestToken)
			if err != nil {
				return response.Unauthorized(c, "INVALID_GUEST_TOKEN", "Invalid or expired guest token")
			}
			c.Set(constants.ContextKeyGuestToken, guest)
			guestPhone = guest.Phone

			// Sliding expiry: every guest request gets a fresh token, issued just
			// before the headers go out so a profile created by the handler is bound.
			c.Response().Before(func() { m.renewGuestToken(c, *guest) })
		}

		if userID != nil || guestPhone != "" {
			ctx := deliverycontext.WithCaller(c.Request().Context(), userID, guestPhone)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

func (m *AuthMiddleware) renewGuestToken(c echo.Context, guest entity.GuestIdentity) {
	if guest.ProfileID == nil {
		if profileID, ok := c.Get(keyGuestProfileID).(uuid.UUID); ok {
			guest.ProfileID = &profileID
		}
	}

	renewed, err := m.tokenSvc.IssueGuestToken(guest)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Warn("failed to renew guest token", slog.Any("error", err))

		return
	}
	c.Response().Header().Set(constants.HeaderGuestToken, renewed)
}

// BindGuestSubject records the guest profile a handler resolved so the renewed
// guest token names it.
func BindGuestSubject(c echo.Context, subject *entity.Subject) {
	if subject != nil && subject.IsGuest {
		c.Set(keyGuestProfileID, subject.SubjectID)
	}
}

// RequireUser rejects requests without an authenticated user. Use after Identify.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetUserID(c); !ok {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Authorization header is missing")
		}

		return next(c)
	}
}

// GetUserID returns the authenticated user set by Identify.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetGuest returns the verified guest identity set by Identify.
func GetGuest(c echo.Context) (*entity.GuestIdentity, bool) {
	guest, ok := c.Get(constants.ContextKeyGuestToken).(*entity.GuestIdentity)

	return guest, ok && guest != nil
}

// IdentityFrom assembles the caller identity for the usecases.
func IdentityFrom(c echo.Context) entity.Identity {
	var identity entity.Identity
	if userID, ok := GetUserID(c); ok {
		identity.UserID = &userID
	}
	if guest, ok := GetGuest(c); ok {
		identity.Guest = guest
	}

	return identity
}
