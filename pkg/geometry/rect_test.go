package geometry

import (
	"math"
	"testing"
)

func TestRotatedRectAxis(t *testing.T) {
	r := RotatedRect{
		Center: NewVector2(5, 5),
		Length: math.Hypot(10, 10),
		Width:  4,
		Angle:  45,
	}

	start, end := r.Axis()
	if !start.ApproxEqual(NewVector2(0, 0), 1e-9) {
		t.Errorf("axis start: expected (0, 0), got %v", start)
	}
	if !end.ApproxEqual(NewVector2(10, 10), 1e-9) {
		t.Errorf("axis end: expected (10, 10), got %v", end)
	}
}

func TestRotatedRectCornersUnrotated(t *testing.T) {
	r := RotatedRect{Center: NewVector2(5, 0), Length: 10, Width: 2}

	corners := r.Corners()
	expected := [4]Vector2{{0, -1}, {10, -1}, {10, 1}, {0, 1}}
	for i := range corners {
		if !corners[i].ApproxEqual(expected[i], 1e-10) {
			t.Errorf("corner %d: expected %v, got %v", i, expected[i], corners[i])
		}
	}
}

func TestRotatedRectBounds(t *testing.T) {
	r := RotatedRect{Center: NewVector2(0, 5), Length: 10, Width: 2, Angle: 90}

	b := r.Bounds()
	if !b.Min.ApproxEqual(NewVector2(-1, 0), 1e-10) || !b.Max.ApproxEqual(NewVector2(1, 10), 1e-10) {
		t.Errorf("bounds: expected (-1,0)-(1,10), got %v-%v", b.Min, b.Max)
	}
}

func TestBoundsExtend(t *testing.T) {
	b := NewBounds()
	if !b.Empty() {
		t.Fatal("new bounds should be empty")
	}
	if size := b.Size(); size != (Vector2{}) {
		t.Errorf("empty size: expected zero, got %v", size)
	}

	b.Extend(NewVector2(1, 5))
	b.Extend(NewVector2(-3, 2))

	if b.Empty() {
		t.Fatal("bounds should not be empty after Extend")
	}
	if b.Size() != NewVector2(4, 3) {
		t.Errorf("size: expected (4, 3), got %v", b.Size())
	}
	if b.Center() != NewVector2(-1, 3.5) {
		t.Errorf("center: expected (-1, 3.5), got %v", b.Center())
	}
	if !b.Contains(NewVector2(0, 3)) {
		t.Error("expected (0, 3) to be inside")
	}
	if b.Contains(NewVector2(2, 3)) {
		t.Error("expected (2, 3) to be outside")
	}
}

func TestBoundsUnionIgnoresEmpty(t *testing.T) {
	b := NewBounds()
	b.Extend(NewVector2(1, 1))
	b.Union(NewBounds())

	if b.Min != NewVector2(1, 1) || b.Max != NewVector2(1, 1) {
		t.Errorf("union with empty changed bounds: %v-%v", b.Min, b.Max)
	}
}
