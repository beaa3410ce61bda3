// Package layout computes anchor positions inside a container for hosts
// that do not measure their own anchor views.
package layout

import (
	"fmt"
	"math"

	"github.com/philipparndt/gotrack/pkg/geometry"
	"github.com/philipparndt/gotrack/pkg/track"
)

// Arrangement names a default anchor placement
type Arrangement string

const (
	ArrangementRing Arrangement = "ring"
	ArrangementGrid Arrangement = "grid"
)

// ParseArrangement converts a name into an Arrangement
func ParseArrangement(s string) (Arrangement, error) {
	switch Arrangement(s) {
	case ArrangementRing, ArrangementGrid:
		return Arrangement(s), nil
	default:
		return "", fmt.Errorf("unknown arrangement %q (want %q or %q)", s, ArrangementRing, ArrangementGrid)
	}
}

// Size is the width and height of a view or container
type Size struct {
	Width  float64
	Height float64
}

// Arrange returns n anchor centers for a container of the given size
func Arrange(a Arrangement, size Size, n int) ([]geometry.Vector2, error) {
	switch a {
	case ArrangementRing:
		return Ring(size, n)
	case ArrangementGrid:
		return Grid(size, n)
	default:
		return nil, fmt.Errorf("unknown arrangement %q", a)
	}
}

// Ring places n anchors evenly on a circle centered in the container with
// a radius of a third of the shorter side. Anchor 0 sits on the right.
func Ring(size Size, n int) ([]geometry.Vector2, error) {
	if err := track.ValidateAnchorCount(n); err != nil {
		return nil, err
	}

	circle := geometry.Circle{
		Center: geometry.NewVector2(size.Width/2, size.Height/2),
		Radius: math.Min(size.Width, size.Height) / 3,
	}
	return geometry.PointsOnCircle(circle, n, 0)
}

// Grid places anchors at the centers of a 2x2 grid in row-major order:
// top-left, top-right, bottom-left, bottom-right.
func Grid(size Size, n int) ([]geometry.Vector2, error) {
	if err := track.ValidateAnchorCount(n); err != nil {
		return nil, err
	}

	cells := []geometry.Vector2{
		{X: size.Width / 4, Y: size.Height / 4},
		{X: size.Width * 3 / 4, Y: size.Height / 4},
		{X: size.Width / 4, Y: size.Height * 3 / 4},
		{X: size.Width * 3 / 4, Y: size.Height * 3 / 4},
	}
	return cells[:n], nil
}

// RelativeCenter converts a view's screen origin into the center of the
// view in container coordinates.
func RelativeCenter(viewOrigin, containerOrigin geometry.Vector2, view Size) geometry.Vector2 {
	return viewOrigin.Sub(containerOrigin).Add(geometry.NewVector2(view.Width/2, view.Height/2))
}
