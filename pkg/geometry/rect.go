package geometry

// RotatedRect is a rectangle of the given length and width whose long
// axis is rotated by Angle degrees about Center.
type RotatedRect struct {
	Center Vector2
	Length float64
	Width  float64
	Angle  float64
}

// Corners returns the four corners in order: start-top, end-top,
// end-bottom, start-bottom (before rotation "top" is -y).
func (r RotatedRect) Corners() [4]Vector2 {
	hl := r.Length / 2
	hw := r.Width / 2
	local := [4]Vector2{
		{X: -hl, Y: -hw},
		{X: hl, Y: -hw},
		{X: hl, Y: hw},
		{X: -hl, Y: hw},
	}

	var corners [4]Vector2
	for i, c := range local {
		corners[i] = c.Rotate(r.Angle).Add(r.Center)
	}
	return corners
}

// Bounds returns the axis-aligned box enclosing the rotated rectangle
func (r RotatedRect) Bounds() Bounds {
	b := NewBounds()
	for _, c := range r.Corners() {
		b.Extend(c)
	}
	return b
}

// Axis returns the two endpoints of the long axis
func (r RotatedRect) Axis() (Vector2, Vector2) {
	half := Vector2{X: r.Length / 2}.Rotate(r.Angle)
	return r.Center.Sub(half), r.Center.Add(half)
}
