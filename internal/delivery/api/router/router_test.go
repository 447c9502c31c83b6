package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nearby/config"
	"nearby/internal/delivery/api/middleware"
	"nearby/internal/delivery/api/router/handler"
	"nearby/internal/delivery/api/validator"
	"nearby/internal/domain/constants"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	mockservice "nearby/internal/mocks/service"
	mockusecase "nearby/internal/mocks/usecase"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	echo        *echo.Echo
	tokens      *mockservice.MockTokenService
	location    *mockusecase.MockLocationUsecase
	discovery   *mockusecase.MockDiscoveryUsecase
	boost       *mockusecase.MockBoostUsecase
	entitlement *mockusecase.MockEntitlementUsecase
	venue       *mockusecase.MockVenueUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	f := &routerFixture{
		echo:        echo.New(),
		tokens:      mockservice.NewMockTokenService(t),
		location:    mockusecase.NewMockLocationUsecase(t),
		discovery:   mockusecase.NewMockDiscoveryUsecase(t),
		boost:       mockusecase.NewMockBoostUsecase(t),
		entitlement: mockusecase.NewMockEntitlementUsecase(t),
		venue:       mockusecase.NewMockVenueUsecase(t),
	}
	logger := slog.Default()

	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		LocationHandler:  handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: f.location, Logger: logger}),
		DiscoveryHandler: handler.NewDiscoveryHandler(handler.DiscoveryHandlerParams{DiscoveryUC: f.discovery, Logger: logger}),
		BoostHandler: handler.NewBoostHandler(handler.BoostHandlerParams{
			BoostUC: f.boost, SuperLikeUC: mockusecase.NewMockSuperLikeUsecase(t), Logger: logger,
		}),
		EntitlementHandler: handler.NewEntitlementHandler(handler.EntitlementHandlerParams{
			EntitlementUC: f.entitlement, ProfileUC: mockusecase.NewMockProfileUsecase(t), Logger: logger,
		}),
		VenueHandler:   handler.NewVenueHandler(handler.VenueHandlerParams{VenueUC: f.venue, Logger: logger}),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockusecase.NewMockDeviceUsecase(t), Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(f.tokens, logger),
		Config:         &config.Config{},
	})
	r.RegisterRoutes(f.echo)
	r.RegisterMetricsRoute(f.echo)

	return f
}

func (f *routerFixture) do(method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// metrics stay unregistered while disabled
	rec = f.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_GuestTokenRenewal(t *testing.T) {
	f := newRouterFixture(t)
	guest := &entity.GuestIdentity{Phone: "+15145550000"}
	profileID := uuid.New()

	f.tokens.EXPECT().ValidateGuestToken("guest-old").Return(guest, nil)
	f.tokens.EXPECT().
		IssueGuestToken(mock.MatchedBy(func(g entity.GuestIdentity) bool {
			return g.Phone == guest.Phone && g.ProfileID != nil && *g.ProfileID == profileID
		})).
		Return("guest-new", nil)
	f.location.EXPECT().
		UpdateLocation(mock.Anything, entity.Identity{Guest: guest}, mock.Anything).
		Return(&usecase.UpdateLocationOutput{
			Subject:  &entity.Subject{SubjectID: profileID, IsGuest: true},
			Location: &entity.Location{Coordinate: entity.Coordinate{Lat: 45.5, Lng: -73.56}},
		}, nil)

	rec := f.do(http.MethodPost, "/v1/location", `{"latitude":45.5,"longitude":-73.56}`,
		http.Header{constants.HeaderGuestToken: {"guest-old"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guest-new", rec.Header().Get(constants.HeaderGuestToken))
}

func TestRouter_Authentication(t *testing.T) {
	t.Run("invalid bearer token", func(t *testing.T) {
		f := newRouterFixture(t)
		f.tokens.EXPECT().ValidateAccessToken("bad").Return(uuid.Nil, assert.AnError)

		rec := f.do(http.MethodGet, "/v1/entitlements", "", http.Header{echo.HeaderAuthorization: {"Bearer bad"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("points need an account", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(http.MethodGet, "/v1/points", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("points for a user", func(t *testing.T) {
		f := newRouterFixture(t)
		userID := uuid.New()
		f.tokens.EXPECT().ValidateAccessToken("good").Return(userID, nil)
		f.entitlement.EXPECT().GetPointBalance(mock.Anything, entity.Identity{UserID: &userID}).Return(120, nil)

		rec := f.do(http.MethodGet, "/v1/points", "", http.Header{echo.HeaderAuthorization: {"Bearer good"}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"balance":120`)
	})
}

func TestRouter_BoostAlreadyActiveCarriesExistingBoost(t *testing.T) {
	f := newRouterFixture(t)
	existing := &entity.Boost{ID: uuid.New(), Factor: 3, ExpiresAt: time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC)}
	f.boost.EXPECT().ActivateBoost(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewBoostAlreadyActiveError(existing))

	rec := f.do(http.MethodPost, "/v1/boosts", `{"boost_type":"standard","payment_method":"points"}`, nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "BOOST_ALREADY_ACTIVE", body.Error.Code)

	var details entity.Boost
	require.NoError(t, json.Unmarshal(body.Error.Details, &details))
	assert.Equal(t, existing.ID, details.ID)
	assert.True(t, existing.ExpiresAt.Equal(details.ExpiresAt))
}

func TestRouter_ValidationFailure(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/v1/boosts", `{"payment_method":"stripe"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestRouter_DiscoverQuery(t *testing.T) {
	t.Run("radius query", func(t *testing.T) {
		f := newRouterFixture(t)
		f.discovery.EXPECT().
			Discover(mock.Anything, entity.Identity{}, mock.MatchedBy(func(in *usecase.DiscoverInput) bool {
				return in.Center != nil && in.Center.Lat == 45.5 && in.Center.Lng == -73.56 &&
					in.RadiusMiles == 10 && in.Box == nil && in.VerifiedOnly &&
					len(in.Kinds) == 2 && in.Kinds[0] == entity.EntityKindProfile && in.Kinds[1] == entity.EntityKindGym
			})).
			Return(&usecase.DiscoverOutput{}, nil)

		rec := f.do(http.MethodGet, "/v1/discover?lat=45.5&lng=-73.56&radius=10&kind=profile,gym&verified=true", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bounding box query", func(t *testing.T) {
		f := newRouterFixture(t)
		f.discovery.EXPECT().
			Discover(mock.Anything, entity.Identity{}, mock.MatchedBy(func(in *usecase.DiscoverInput) bool {
				return in.Box != nil && in.Box.North == 46 && in.Box.West == -74 && in.Center == nil
			})).
			Return(&usecase.DiscoverOutput{}, nil)

		rec := f.do(http.MethodGet, "/v1/discover?north=46&south=45&east=-73&west=-74", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed number", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(http.MethodGet, "/v1/discover?lat=north&lng=1", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_VenueQRCode(t *testing.T) {
	f := newRouterFixture(t)
	venueID := uuid.New()
	f.venue.EXPECT().GetVenueQRCode(mock.Anything, venueID).Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	rec := f.do(http.MethodGet, "/v1/venues/"+venueID.String()+"/qrcode", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = f.do(http.MethodGet, "/v1/venues/not-a-uuid/qrcode", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
