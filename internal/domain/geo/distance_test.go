package geo

import (
	"math"
	"testing"

	domainerrors "nearby/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

var (
	sanFrancisco = Coordinate{Lat: 37.7749, Lng: -122.4194}
	losAngeles   = Coordinate{Lat: 34.0522, Lng: -118.2437}
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Coordinate
		want  float64
		delta float64
	}{
		{name: "same point", a: sanFrancisco, b: sanFrancisco, want: 0, delta: 1e-9},
		{name: "san francisco to los angeles", a: sanFrancisco, b: losAngeles, want: 347.4, delta: 1.5},
		{name: "one degree of latitude", a: Coordinate{Lat: 0, Lng: 0}, b: Coordinate{Lat: 1, Lng: 0}, want: 69.09, delta: 0.05},
		{name: "antipodes", a: Coordinate{Lat: 0, Lng: 0}, b: Coordinate{Lat: 0, Lng: 180}, want: math.Pi * EarthRadiusMiles, delta: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), tt.delta)
			assert.InDelta(t, Distance(tt.a, tt.b), Distance(tt.b, tt.a), 1e-9)
		})
	}
}

func TestDistance_MalformedInputRanksLast(t *testing.T) {
	bad := Coordinate{Lat: 91, Lng: 0}

	assert.Equal(t, MalformedDistance, Distance(bad, sanFrancisco))
	assert.Equal(t, MalformedDistance, Distance(sanFrancisco, Coordinate{Lat: math.NaN(), Lng: 0}))
}

func TestValidate(t *testing.T) {
	valid := []Coordinate{
		{Lat: 90, Lng: 180},
		{Lat: -90, Lng: -180},
		sanFrancisco,
	}
	for _, c := range valid {
		assert.NoError(t, Validate(c))
	}

	invalid := []Coordinate{
		{Lat: 90.0001, Lng: 0},
		{Lat: 0, Lng: -180.5},
		{Lat: math.Inf(1), Lng: 0},
		{Lat: 0, Lng: math.NaN()},
	}
	for _, c := range invalid {
		assert.ErrorIs(t, Validate(c), domainerrors.ErrInvalidCoordinate)
	}
}

func TestMilesMetersRoundTrip(t *testing.T) {
	assert.InDelta(t, 1609.344, MilesToMeters(1), 1e-9)
	assert.InDelta(t, 25.0, MetersToMiles(MilesToMeters(25)), 1e-9)
}
