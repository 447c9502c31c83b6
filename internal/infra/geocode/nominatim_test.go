package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNominatim(t *testing.T, handler http.HandlerFunc) *Nominatim {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Geocoding: &config.GeocodingConfig{
		Endpoint:        server.URL,
		UserAgent:       "nearby-test",
		RatePerSecond:   1000,
		Burst:           10,
		BreakerFailures: 2,
		BreakerTimeout:  time.Minute,
	}}

	return NewNominatim(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNominatim_Forward(t *testing.T) {
	g := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "1 Rue Peel", r.URL.Query().Get("street"))
		assert.Equal(t, "Montreal", r.URL.Query().Get("city"))
		assert.Empty(t, r.URL.Query().Get("postalcode"))
		assert.Equal(t, "nearby-test", r.Header.Get("User-Agent"))

		_, _ = io.WriteString(w, `[{"lat":"45.5","lon":"-73.57","address":{"house_number":"1","road":"Rue Peel","town":"Montréal","state":"Québec","country":"Canada","postcode":"H3A"}}]`)
	})

	result, err := g.Forward(context.Background(), service.GeocodeQuery{Address: "1 Rue Peel", City: "Montreal"})
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinate{Lat: 45.5, Lng: -73.57}, result.Coordinate)
	assert.Equal(t, "1 Rue Peel", result.Address)
	assert.Equal(t, "Montréal", result.City)
	assert.Equal(t, "H3A", result.ZipCode)
}

func TestNominatim_ForwardNoResult(t *testing.T) {
	g := newTestNominatim(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	for range 3 {
		_, err := g.Forward(context.Background(), service.GeocodeQuery{City: "Atlantis"})
		assert.ErrorIs(t, err, service.ErrNoGeocodeResult)
	}
	// Empty answers never open the breaker.
	assert.Equal(t, gobreaker.StateClosed, g.breaker.State())
}

func TestNominatim_Reverse(t *testing.T) {
	g := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "45.5017", r.URL.Query().Get("lat"))
		assert.Equal(t, "-73.5673", r.URL.Query().Get("lon"))

		_, _ = io.WriteString(w, `{"lat":"45.50","lon":"-73.56","address":{"road":"Rue Notre-Dame","city":"Montréal","country":"Canada"}}`)
	})

	coordinate := entity.Coordinate{Lat: 45.5017, Lng: -73.5673}
	result, err := g.Reverse(context.Background(), coordinate)
	require.NoError(t, err)
	assert.Equal(t, coordinate, result.Coordinate)
	assert.Equal(t, "Rue Notre-Dame", result.Address)
	assert.Equal(t, "Montréal", result.City)
}

func TestNominatim_ReverseUnableToGeocode(t *testing.T) {
	g := newTestNominatim(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"error":"Unable to geocode"}`)
	})

	_, err := g.Reverse(context.Background(), entity.Coordinate{Lat: 0, Lng: -160})
	assert.ErrorIs(t, err, service.ErrNoGeocodeResult)
}

func TestNominatim_BreakerOpensOnFailures(t *testing.T) {
	var calls atomic.Int32
	g := newTestNominatim(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	for range 2 {
		_, err := g.Forward(context.Background(), service.GeocodeQuery{City: "Montreal"})
		assert.Error(t, err)
	}

	_, err := g.Forward(context.Background(), service.GeocodeQuery{City: "Montreal"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNewNominatim_DisabledWithoutEndpoint(t *testing.T) {
	assert.Nil(t, NewNominatim(&config.Config{}, slog.Default()))
}
