package geo

import (
	"testing"

	domainerrors "nearby/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		box := BoundingBox{North: 38, South: 37, East: -122, West: -123}
		assert.NoError(t, box.Validate())
	})

	t.Run("inverted latitudes", func(t *testing.T) {
		box := BoundingBox{North: 37, South: 38, East: -122, West: -123}
		assert.ErrorIs(t, box.Validate(), domainerrors.ErrInvalidBoundingBox)
	})

	t.Run("zero width", func(t *testing.T) {
		box := BoundingBox{North: 38, South: 37, East: -122, West: -122}
		assert.ErrorIs(t, box.Validate(), domainerrors.ErrInvalidBoundingBox)
	})

	t.Run("corner out of range", func(t *testing.T) {
		box := BoundingBox{North: 95, South: 37, East: -122, West: -123}
		assert.ErrorIs(t, box.Validate(), domainerrors.ErrInvalidCoordinate)
	})
}

func TestBoundingBox_ContainsAndCenter(t *testing.T) {
	box := BoundingBox{North: 38, South: 37, East: -122, West: -123}

	assert.True(t, box.Contains(sanFrancisco))
	assert.True(t, box.Contains(Coordinate{Lat: 38, Lng: -122}))
	assert.False(t, box.Contains(losAngeles))

	center := box.Center()
	assert.InDelta(t, 37.5, center.Lat, 1e-9)
	assert.InDelta(t, -122.5, center.Lng, 1e-9)
}

func TestBoundAround(t *testing.T) {
	t.Run("encloses the circle", func(t *testing.T) {
		box := BoundAround(sanFrancisco, 25)

		assert.NoError(t, box.Validate())
		assert.True(t, box.Contains(sanFrancisco))
		for _, c := range []Coordinate{
			{Lat: sanFrancisco.Lat + 0.36, Lng: sanFrancisco.Lng},
			{Lat: sanFrancisco.Lat - 0.36, Lng: sanFrancisco.Lng},
			{Lat: sanFrancisco.Lat, Lng: sanFrancisco.Lng + 0.45},
			{Lat: sanFrancisco.Lat, Lng: sanFrancisco.Lng - 0.45},
		} {
			assert.Less(t, Distance(sanFrancisco, c), 25.0)
			assert.True(t, box.Contains(c), "box should contain %+v", c)
		}
	})

	t.Run("near the antimeridian widens to all longitudes", func(t *testing.T) {
		box := BoundAround(Coordinate{Lat: 0, Lng: 179.9}, 50)

		assert.Equal(t, -180.0, box.West)
		assert.Equal(t, 180.0, box.East)
	})

	t.Run("near the pole is clamped", func(t *testing.T) {
		box := BoundAround(Coordinate{Lat: 89.9, Lng: 0}, 50)

		assert.LessOrEqual(t, box.North, 90.0)
		assert.Equal(t, -180.0, box.West)
	})
}
