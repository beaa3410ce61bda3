package viewer

import (
	"math"

	"github.com/philipparndt/gotrack/pkg/geometry"
)

const (
	minScale = 0.01
	maxScale = 100.0
)

// Viewport maps layout coordinates to screen coordinates
type Viewport struct {
	Offset geometry.Vector2 // screen position of the layout origin
	Scale  float64
}

// FitViewport returns a viewport that shows bounds centered in a
// width x height area, leaving margin pixels on every side
func FitViewport(bounds geometry.Bounds, width, height, margin float64) Viewport {
	if bounds.Empty() || width <= 0 || height <= 0 {
		return Viewport{Scale: 1}
	}

	size := bounds.Size()
	availW := math.Max(width-2*margin, 1)
	availH := math.Max(height-2*margin, 1)

	scale := maxScale
	if size.X > 0 {
		scale = math.Min(scale, availW/size.X)
	}
	if size.Y > 0 {
		scale = math.Min(scale, availH/size.Y)
	}
	if size.X == 0 && size.Y == 0 {
		scale = 1
	}

	center := bounds.Center()
	return Viewport{
		Offset: geometry.NewVector2(width/2-center.X*scale, height/2-center.Y*scale),
		Scale:  scale,
	}
}

// Project converts a layout point to screen coordinates
func (v Viewport) Project(p geometry.Vector2) geometry.Vector2 {
	return p.Mul(v.Scale).Add(v.Offset)
}

// Unproject converts screen coordinates back to a layout point
func (v Viewport) Unproject(screen geometry.Vector2) geometry.Vector2 {
	return screen.Sub(v.Offset).Mul(1 / v.Scale)
}

// Pan moves the view by a screen-space delta
func (v *Viewport) Pan(delta geometry.Vector2) {
	v.Offset = v.Offset.Add(delta)
}

// Zoom scales the view by factor while keeping the layout point under
// the screen position around in place
func (v *Viewport) Zoom(factor float64, around geometry.Vector2) {
	anchor := v.Unproject(around)
	v.Scale = math.Max(minScale, math.Min(maxScale, v.Scale*factor))
	v.Offset = around.Sub(anchor.Mul(v.Scale))
}
