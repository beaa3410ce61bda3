package geometry

import "math"

// Vector2 represents a 2D point or vector in container coordinates
// (x grows to the right, y grows downwards)
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{
		X: v.X * scalar,
		Y: v.Y * scalar,
	}
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product
func (v Vector2) Cross(other Vector2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return other.Sub(v).Length()
}

// Normalize returns a unit vector in the same direction
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return v.Mul(1.0 / length)
}

// Midpoint returns the point halfway between v and other
func (v Vector2) Midpoint(other Vector2) Vector2 {
	return Vector2{
		X: (v.X + other.X) / 2,
		Y: (v.Y + other.Y) / 2,
	}
}

// AngleTo returns the direction of other as seen from v, in degrees.
// The result is atan2(dy, dx) converted to degrees and lies in (-180, 180].
func (v Vector2) AngleTo(other Vector2) float64 {
	d := other.Sub(v)
	deg := Degrees(math.Atan2(d.Y, d.X))
	if deg <= -180 {
		deg += 360
	}
	return deg
}

// Rotate rotates the vector around the origin by deg degrees.
// With y pointing down a positive angle turns clockwise on screen.
func (v Vector2) Rotate(deg float64) Vector2 {
	sin, cos := math.Sincos(Radians(deg))
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAround rotates v around pivot by deg degrees
func (v Vector2) RotateAround(pivot Vector2, deg float64) Vector2 {
	return v.Sub(pivot).Rotate(deg).Add(pivot)
}

// Min returns a vector with the minimum components of two vectors
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
	}
}

// ApproxEqual reports whether both components differ by at most eps
func (v Vector2) ApproxEqual(other Vector2, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps && math.Abs(v.Y-other.Y) <= eps
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
