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

// VenueHandlerParams holds dependencies for VenueHandler, injected by Fx.
type VenueHandlerParams struct {
	fx.In

	VenueUC usecase.VenueUsecase
	Logger  *slog.Logger
}

// VenueHandler handles gyms and interest group spots
type VenueHandler struct {
	venueUC usecase.VenueUsecase
	logger  *slog.Logger
}

// NewVenueHandler is the constructor for VenueHandler
func NewVenueHandler(params VenueHandlerParams) *VenueHandler {
	return &VenueHandler{
		venueUC: params.VenueUC,
		logger:  params.Logger,
	}
}

// CreateVenue creates a venue unless a same-named one is close by
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var req usecase.CreateVenueInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid venue input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	venue, err := h.venueUC.CreateVenue(c.Request().Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, venue)
}

// GetVenue returns one venue
func (h *VenueHandler) GetVenue(c echo.Context) error {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid venue ID")
	}

	venue, err := h.venueUC.GetVenue(c.Request().Context(), venueID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, venue)
}

// DeactivateVenue hides a venue created by the caller
func (h *VenueHandler) DeactivateVenue(c echo.Context) error {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid venue ID")
	}

	if err := h.venueUC.DeactivateVenue(c.Request().Context(), middleware.IdentityFrom(c), venueID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetVenueQRCode renders the check-in QR code as PNG
func (h *VenueHandler) GetVenueQRCode(c echo.Context) error {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid venue ID")
	}

	png, err := h.venueUC.GetVenueQRCode(c.Request().Context(), venueID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
