package impl

import (
	"context"
	"log/slog"
	"strings"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
)

// addressFields is the free-text part of a location write.
type addressFields struct {
	Address string
	City    string
	State   string
	Country string
	ZipCode string
}

func (a addressFields) isEmpty() bool {
	return strings.TrimSpace(a.Address+a.City+a.State+a.Country+a.ZipCode) == ""
}

func (a addressFields) query() service.GeocodeQuery {
	return service.GeocodeQuery{Address: a.Address, City: a.City, State: a.State, Country: a.Country, ZipCode: a.ZipCode}
}

// cityQuery drops the street and postcode so a coarser match can still place the write.
func (a addressFields) cityQuery() (service.GeocodeQuery, bool) {
	q := service.GeocodeQuery{City: a.City, State: a.State, Country: a.Country}

	return q, strings.TrimSpace(q.City+q.State+q.Country) != ""
}

// forwardGeocode resolves an address, degrading to city level. Only when neither
// lookup yields a coordinate does it fail with ErrGeocodeUnavailable.
func forwardGeocode(ctx context.Context, geocoder service.Geocoder, logger *slog.Logger, fields addressFields) (entity.Location, error) {
	if geocoder == nil {
		return entity.Location{}, domainerrors.ErrGeocodeUnavailable.WithDetails("no geocoding provider configured")
	}

	var fullErr error
	if strings.TrimSpace(fields.Address+fields.ZipCode) != "" {
		result, err := geocoder.Forward(ctx, fields.query())
		if err == nil {
			return locationFromGeocode(result, fields, entity.LocationSourceGeocoded), nil
		}
		fullErr = err
		logger.Warn("address geocoding failed, trying city level", slog.Any("error", err))
	}

	cityQuery, ok := fields.cityQuery()
	if !ok {
		return entity.Location{}, errors.Wrap(domainerrors.ErrGeocodeUnavailable.WithDetails(errorText(fullErr)), "address could not be geocoded")
	}

	result, err := geocoder.Forward(ctx, cityQuery)
	if err != nil {
		return entity.Location{}, errors.Wrap(domainerrors.ErrGeocodeUnavailable.WithDetails(err.Error()), "city could not be geocoded")
	}

	return locationFromGeocode(result, fields, entity.LocationSourceCityLevel), nil
}

// reverseGeocode fills missing address fields. Failure leaves the location as is.
func reverseGeocode(ctx context.Context, geocoder service.Geocoder, logger *slog.Logger, location *entity.Location) {
	if geocoder == nil {
		return
	}

	result, err := geocoder.Reverse(ctx, location.Coordinate)
	if err != nil {
		logger.Warn("reverse geocoding unavailable", slog.Any("error", err))

		return
	}

	location.Address = firstNonEmpty(location.Address, result.Address)
	location.City = firstNonEmpty(location.City, result.City)
	location.State = firstNonEmpty(location.State, result.State)
	location.Country = firstNonEmpty(location.Country, result.Country)
	location.ZipCode = firstNonEmpty(location.ZipCode, result.ZipCode)
}

// locationFromGeocode keeps what the caller typed and fills the rest from the provider.
func locationFromGeocode(result *service.GeocodeResult, fields addressFields, source entity.LocationSource) entity.Location {
	return entity.Location{
		Coordinate: result.Coordinate,
		Address:    firstNonEmpty(fields.Address, result.Address),
		City:       firstNonEmpty(fields.City, result.City),
		State:      firstNonEmpty(fields.State, result.State),
		Country:    firstNonEmpty(fields.Country, result.Country),
		ZipCode:    firstNonEmpty(fields.ZipCode, result.ZipCode),
		Source:     source,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}

func errorText(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
