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

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDevice registers a push device or refreshes its token
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req usecase.DeviceInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// ListDevices returns the caller's active devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	devices, err := h.deviceUC.ListDevices(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// DeactivateDevice stops pushes to a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), middleware.IdentityFrom(c), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated successfully"})
}
