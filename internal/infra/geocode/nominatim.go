// Package geocode implements the geocoding provider against a Nominatim-compatible API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/errors"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout         = 5 * time.Second
	defaultRatePerSecond   = 1 // Nominatim usage policy
	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
	defaultUserAgent       = "nearby-geocoder/1.0"
)

// nominatimPlace is the subset of a jsonv2 place the service reads.
type nominatimPlace struct {
	Lat     string           `json:"lat"`
	Lon     string           `json:"lon"`
	Error   string           `json:"error,omitempty"`
	Address nominatimAddress `json:"address"`
}

type nominatimAddress struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Postcode    string `json:"postcode"`
}

// Nominatim is a rate limited, circuit broken geocoder.
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker[*service.GeocodeResult]
	logger    *slog.Logger
}

var _ service.Geocoder = (*Nominatim)(nil)

// NewNominatim builds the geocoder. It returns nil when no endpoint is configured so
// that the optional Geocoder dependency stays unset.
func NewNominatim(cfg *config.Config, logger *slog.Logger) *Nominatim {
	if cfg.Geocoding == nil || strings.TrimSpace(cfg.Geocoding.Endpoint) == "" {
		return nil
	}
	gc := cfg.Geocoding

	timeout := gc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	perSecond := gc.RatePerSecond
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}
	burst := max(gc.Burst, 1)
	failures := gc.BreakerFailures
	if failures == 0 {
		failures = defaultBreakerFailures
	}
	openFor := gc.BreakerTimeout
	if openFor <= 0 {
		openFor = defaultBreakerTimeout
	}
	userAgent := gc.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	n := &Nominatim{
		baseURL:   strings.TrimRight(gc.Endpoint, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:    logger,
	}
	n.breaker = gobreaker.NewCircuitBreaker[*service.GeocodeResult](gobreaker.Settings{
		Name:        "geocoder",
		MaxRequests: 1,
		Timeout:     openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// An empty answer is a healthy provider.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, service.ErrNoGeocodeResult)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("geocoder circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return n
}

// Forward resolves an address with a structured search.
func (n *Nominatim) Forward(ctx context.Context, query service.GeocodeQuery) (*service.GeocodeResult, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")
	setIfPresent(params, "street", query.Address)
	setIfPresent(params, "city", query.City)
	setIfPresent(params, "state", query.State)
	setIfPresent(params, "country", query.Country)
	setIfPresent(params, "postalcode", query.ZipCode)

	return n.execute(ctx, "/search?"+params.Encode(), func(body []byte) (*service.GeocodeResult, error) {
		var places []nominatimPlace
		if err := json.Unmarshal(body, &places); err != nil {
			return nil, errors.Wrap(err, "failed to decode search response")
		}
		if len(places) == 0 {
			return nil, service.ErrNoGeocodeResult
		}

		return places[0].toResult()
	})
}

// Reverse resolves a coordinate to the nearest address.
func (n *Nominatim) Reverse(ctx context.Context, coordinate entity.Coordinate) (*service.GeocodeResult, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("lat", strconv.FormatFloat(coordinate.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coordinate.Lng, 'f', -1, 64))

	return n.execute(ctx, "/reverse?"+params.Encode(), func(body []byte) (*service.GeocodeResult, error) {
		var place nominatimPlace
		if err := json.Unmarshal(body, &place); err != nil {
			return nil, errors.Wrap(err, "failed to decode reverse response")
		}
		if place.Error != "" {
			return nil, service.ErrNoGeocodeResult
		}

		result, err := place.toResult()
		if err != nil {
			return nil, err
		}
		// Keep the caller's exact coordinate rather than the place centroid.
		result.Coordinate = coordinate

		return result, nil
	})
}

func (n *Nominatim) execute(ctx context.Context, path string, decode func([]byte) (*service.GeocodeResult, error)) (*service.GeocodeResult, error) {
	return n.breaker.Execute(func() (*service.GeocodeResult, error) {
		if err := n.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "geocoder rate limit wait")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+path, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create geocode request")
		}
		req.Header.Set("User-Agent", n.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "geocode request failed")
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("geocoder returned status %d", resp.StatusCode)
		}

		var body json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, errors.Wrap(err, "failed to read geocode response")
		}

		return decode(body)
	})
}

func (p nominatimPlace) toResult() (*service.GeocodeResult, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid latitude in geocode response")
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid longitude in geocode response")
	}

	return &service.GeocodeResult{
		Coordinate: entity.Coordinate{Lat: lat, Lng: lng},
		Address:    p.Address.street(),
		City:       firstNonEmpty(p.Address.City, p.Address.Town, p.Address.Village),
		State:      p.Address.State,
		Country:    p.Address.Country,
		ZipCode:    p.Address.Postcode,
	}, nil
}

func (a nominatimAddress) street() string {
	if a.HouseNumber == "" {
		return a.Road
	}
	if a.Road == "" {
		return a.HouseNumber
	}

	return fmt.Sprintf("%s %s", a.HouseNumber, a.Road)
}

func setIfPresent(params url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		params.Set(key, v)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// NewGeocoder returns the configured provider, or a nil interface when geocoding is disabled.
func NewGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	if n := NewNominatim(cfg, logger); n != nil {
		return n
	}

	return nil
}
