// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nearby/config"
	"nearby/internal/delivery/api/middleware"
	"nearby/internal/delivery/api/router/handler"
	"nearby/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	LocationHandler    *handler.LocationHandler
	DiscoveryHandler   *handler.DiscoveryHandler
	BoostHandler       *handler.BoostHandler
	EntitlementHandler *handler.EntitlementHandler
	VenueHandler       *handler.VenueHandler
	DeviceHandler      *handler.DeviceHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Metrics            *metrics.EngineMetrics `optional:"true"`
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler    *handler.LocationHandler
	discoveryHandler   *handler.DiscoveryHandler
	boostHandler       *handler.BoostHandler
	entitlementHandler *handler.EntitlementHandler
	venueHandler       *handler.VenueHandler
	deviceHandler      *handler.DeviceHandler
	authMiddleware     *middleware.AuthMiddleware
	metrics            *metrics.EngineMetrics
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:    params.LocationHandler,
		discoveryHandler:   params.DiscoveryHandler,
		boostHandler:       params.BoostHandler,
		entitlementHandler: params.EntitlementHandler,
		venueHandler:       params.VenueHandler,
		deviceHandler:      params.DeviceHandler,
		authMiddleware:     params.AuthMiddleware,
		metrics:            params.Metrics,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Identity is optional on every v1 route; usecases decide what they need
	v1 := e.Group("/v1")
	v1.Use(r.authMiddleware.Identify)

	v1.POST("/location", r.locationHandler.UpdateLocation)
	v1.GET("/discover", r.discoveryHandler.Discover)

	boostsGroup := v1.Group("/boosts")
	{
		boostsGroup.POST("", r.boostHandler.ActivateBoost)
		boostsGroup.DELETE("/:id", r.boostHandler.CancelBoost)
	}
	v1.POST("/superlikes", r.boostHandler.SendSuperLike)

	v1.GET("/entitlements", r.entitlementHandler.GetEntitlements)

	// Points and memberships belong to accounts, never to guests
	accountGroup := v1.Group("", r.authMiddleware.RequireUser)
	{
		accountGroup.POST("/memberships", r.entitlementHandler.PurchaseMembership)
		accountGroup.DELETE("/memberships/current", r.entitlementHandler.CancelMembership)
		accountGroup.GET("/points", r.entitlementHandler.GetPointBalance)
		accountGroup.POST("/profile/claim", r.entitlementHandler.ClaimProfile)
	}

	venuesGroup := v1.Group("/venues")
	{
		venuesGroup.POST("", r.venueHandler.CreateVenue)
		venuesGroup.GET("/:id", r.venueHandler.GetVenue)
		venuesGroup.DELETE("/:id", r.venueHandler.DeactivateVenue)
		venuesGroup.GET("/:id/qrcode", r.venueHandler.GetVenueQRCode)
	}

	devicesGroup := v1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

// RegisterMetricsRoute exposes the prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = defaultMetricsPath
	}
	e.GET(path, echo.WrapHandler(r.metrics.Handler()))
}
