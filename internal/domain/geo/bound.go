package geo

import (
	"fmt"
	"math"

	domainerrors "nearby/internal/domain/errors"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// BoundingBox is an axis-aligned lat/lng box. Boxes crossing the antimeridian are not supported.
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Validate rejects boxes with north<=south or east<=west, or corners out of range.
func (b BoundingBox) Validate() error {
	if !IsValid(Coordinate{Lat: b.North, Lng: b.East}) || !IsValid(Coordinate{Lat: b.South, Lng: b.West}) {
		return domainerrors.ErrInvalidCoordinate.WithDetails(
			fmt.Sprintf("north=%v south=%v east=%v west=%v", b.North, b.South, b.East, b.West))
	}
	if b.North <= b.South || b.East <= b.West {
		return domainerrors.ErrInvalidBoundingBox.WithDetails(
			fmt.Sprintf("north=%v south=%v east=%v west=%v", b.North, b.South, b.East, b.West))
	}

	return nil
}

// Bound returns the box as an orb.Bound.
func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// Center is the midpoint of the box, used as the distance origin for box queries.
func (b BoundingBox) Center() Coordinate {
	return FromPoint(b.Bound().Center())
}

// Contains reports whether c lies inside the box, edges included.
func (b BoundingBox) Contains(c Coordinate) bool {
	return b.Bound().Contains(ToPoint(c))
}

// BoundAround returns a box that encloses the circle of radiusMiles around center.
// The box is clamped to valid latitudes; when it would cross the antimeridian the
// full longitude range is returned so the box never drops candidates.
func BoundAround(center Coordinate, radiusMiles float64) BoundingBox {
	bound := orbgeo.NewBoundAroundPoint(ToPoint(center), MilesToMeters(radiusMiles))

	box := BoundingBox{
		North: math.Min(90, bound.Top()),
		South: math.Max(-90, bound.Bottom()),
		East:  bound.Right(),
		West:  bound.Left(),
	}
	if box.West < -180 || box.East > 180 || box.North >= 90 || box.South <= -90 || math.IsNaN(box.East) || math.IsNaN(box.West) {
		box.West = -180
		box.East = 180
	}

	return box
}
