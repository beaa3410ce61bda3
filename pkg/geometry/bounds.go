package geometry

import "math"

// Bounds is an axis-aligned bounding box
type Bounds struct {
	Min Vector2
	Max Vector2
}

// NewBounds creates an empty bounding box that any point will extend
func NewBounds() Bounds {
	return Bounds{
		Min: Vector2{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vector2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Extend grows the bounding box to include the point
func (b *Bounds) Extend(p Vector2) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Union grows the bounding box to include another one
func (b *Bounds) Union(other Bounds) {
	if other.Empty() {
		return
	}
	b.Extend(other.Min)
	b.Extend(other.Max)
}

// Empty reports whether no point has been added yet
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Size returns the width and height of the box
func (b Bounds) Size() Vector2 {
	if b.Empty() {
		return Vector2{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the box
func (b Bounds) Center() Vector2 {
	return b.Min.Midpoint(b.Max)
}

// Contains reports whether p lies inside the box (edges included)
func (b Bounds) Contains(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
