package geometry

import (
	"fmt"
	"math"
)

// Circle is a circle in the plane
type Circle struct {
	Center Vector2
	Radius float64
}

// PointAt returns the point on the circle at deg degrees, measured from
// the positive x axis towards positive y.
func (c Circle) PointAt(deg float64) Vector2 {
	sin, cos := math.Sincos(Radians(deg))
	return Vector2{
		X: c.Center.X + c.Radius*cos,
		Y: c.Center.Y + c.Radius*sin,
	}
}

// Contains reports whether p lies inside or on the circle
func (c Circle) Contains(p Vector2) bool {
	return c.Center.Distance(p) <= c.Radius
}

// PointsOnCircle distributes count points evenly on the circle, the
// first one at startDeg.
func PointsOnCircle(c Circle, count int, startDeg float64) ([]Vector2, error) {
	if count < 1 {
		return nil, fmt.Errorf("need at least 1 point, got %d", count)
	}
	if c.Radius < 0 {
		return nil, fmt.Errorf("invalid radius: %f", c.Radius)
	}

	step := 360.0 / float64(count)
	points := make([]Vector2, count)
	for i := range points {
		points[i] = c.PointAt(startDeg + float64(i)*step)
	}
	return points, nil
}
