package handler

import (
	"log/slog"
	"net/http"

	"nearby/internal/delivery/api/middleware"
	"nearby/internal/delivery/api/response"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BoostHandlerParams holds dependencies for BoostHandler, injected by Fx.
type BoostHandlerParams struct {
	fx.In

	BoostUC     usecase.BoostUsecase
	SuperLikeUC usecase.SuperLikeUsecase
	Logger      *slog.Logger
}

// BoostHandler handles paid visibility features: boosts and super-likes
type BoostHandler struct {
	boostUC     usecase.BoostUsecase
	superLikeUC usecase.SuperLikeUsecase
	logger      *slog.Logger
}

// NewBoostHandler is the constructor for BoostHandler
func NewBoostHandler(params BoostHandlerParams) *BoostHandler {
	return &BoostHandler{
		boostUC:     params.BoostUC,
		superLikeUC: params.SuperLikeUC,
		logger:      params.Logger,
	}
}

// ActivateBoost pays for and installs a boost
func (h *BoostHandler) ActivateBoost(c echo.Context) error {
	var req usecase.ActivateBoostInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid boost input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	boost, err := h.boostUC.ActivateBoost(c.Request().Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, boost)
}

// CancelBoost deactivates one of the caller's boosts
func (h *BoostHandler) CancelBoost(c echo.Context) error {
	boostID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid boost ID")
	}

	if err := h.boostUC.CancelBoost(c.Request().Context(), middleware.IdentityFrom(c), boostID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SendSuperLike records a super-like, creating a match when it is mutual
func (h *BoostHandler) SendSuperLike(c echo.Context) error {
	var req usecase.SendSuperLikeInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid super-like input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.superLikeUC.SendSuperLike(c.Request().Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}
