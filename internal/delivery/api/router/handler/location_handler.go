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

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler handles location reports
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// UpdateLocation records the caller's location and returns venues around it
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	var req usecase.UpdateLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.locationUC.UpdateLocation(c.Request().Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	middleware.BindGuestSubject(c, out.Subject)

	return response.Success(c, http.StatusOK, out)
}
