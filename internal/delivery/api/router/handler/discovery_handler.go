package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"nearby/internal/delivery/api/middleware"
	"nearby/internal/delivery/api/response"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/geo"
	"nearby/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler serves ranked nearby candidates
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// Discover accepts either lat/lng/radius or north/south/east/west, plus
// kind (comma separated), verified and include_idle filters.
func (h *DiscoveryHandler) Discover(c echo.Context) error {
	input, err := parseDiscoverQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	out, err := h.discoveryUC.Discover(c.Request().Context(), middleware.IdentityFrom(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func parseDiscoverQuery(c echo.Context) (*usecase.DiscoverInput, error) {
	input := &usecase.DiscoverInput{}
	binder := echo.QueryParamsBinder(c)

	if c.QueryParam("lat") != "" || c.QueryParam("lng") != "" {
		var center entity.Coordinate
		binder.MustFloat64("lat", &center.Lat).MustFloat64("lng", &center.Lng)
		input.Center = &center
	}
	binder.Float64("radius", &input.RadiusMiles)

	if c.QueryParam("north") != "" {
		var box geo.BoundingBox
		binder.
			MustFloat64("north", &box.North).
			MustFloat64("south", &box.South).
			MustFloat64("east", &box.East).
			MustFloat64("west", &box.West)
		input.Box = &box
	}

	binder.Bool("verified", &input.VerifiedOnly).Bool("include_idle", &input.IncludeIdle)

	if err := binder.BindError(); err != nil {
		return nil, err
	}

	for _, kind := range strings.Split(c.QueryParam("kind"), ",") {
		if kind = strings.TrimSpace(kind); kind != "" {
			input.Kinds = append(input.Kinds, entity.EntityKind(kind))
		}
	}

	return input, nil
}
