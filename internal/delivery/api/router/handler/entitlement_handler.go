package handler

import (
	"log/slog"
	"net/http"

	"nearby/internal/delivery/api/middleware"
	"nearby/internal/delivery/api/response"
	"nearby/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EntitlementHandlerParams holds dependencies for EntitlementHandler, injected by Fx.
type EntitlementHandlerParams struct {
	fx.In

	EntitlementUC usecase.EntitlementUsecase
	ProfileUC     usecase.ProfileUsecase
	Logger        *slog.Logger
}

// EntitlementHandler handles quotas, memberships, points and profile claims
type EntitlementHandler struct {
	entitlementUC usecase.EntitlementUsecase
	profileUC     usecase.ProfileUsecase
	logger        *slog.Logger
}

// NewEntitlementHandler is the constructor for EntitlementHandler
func NewEntitlementHandler(params EntitlementHandlerParams) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementUC: params.EntitlementUC,
		profileUC:     params.ProfileUC,
		logger:        params.Logger,
	}
}

// GetEntitlements returns boost, membership and per-feature quota state
func (h *EntitlementHandler) GetEntitlements(c echo.Context) error {
	out, err := h.entitlementUC.GetEntitlements(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	middleware.BindGuestSubject(c, out.Subject)

	return response.Success(c, http.StatusOK, out)
}

// PurchaseMembership buys a plan with points
func (h *EntitlementHandler) PurchaseMembership(c echo.Context) error {
	var req usecase.PurchaseMembershipInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid membership input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.entitlementUC.PurchaseMembership(c.Request().Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// CancelMembership stops renewal; benefits last until the end date
func (h *EntitlementHandler) CancelMembership(c echo.Context) error {
	membership, err := h.entitlementUC.CancelMembership(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, membership)
}

// GetPointBalance returns the authenticated caller's balance
func (h *EntitlementHandler) GetPointBalance(c echo.Context) error {
	balance, err := h.entitlementUC.GetPointBalance(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"balance": balance})
}

// ClaimProfile moves the guest profile named by the guest token to the user
func (h *EntitlementHandler) ClaimProfile(c echo.Context) error {
	profile, err := h.profileUC.ClaimProfile(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
