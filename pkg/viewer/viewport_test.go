package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gotrack/pkg/geometry"
)

func bounds(points ...geometry.Vector2) geometry.Bounds {
	b := geometry.NewBounds()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

func TestFitViewport(t *testing.T) {
	b := bounds(geometry.NewVector2(0, 0), geometry.NewVector2(100, 50))
	v := FitViewport(b, 420, 420, 10)

	if math.Abs(v.Scale-4) > 1e-10 {
		t.Errorf("Scale = %v, want 4", v.Scale)
	}

	center := v.Project(b.Center())
	if !center.ApproxEqual(geometry.NewVector2(210, 210), 1e-10) {
		t.Errorf("center projects to %v, want (210, 210)", center)
	}

	corner := v.Project(geometry.NewVector2(0, 0))
	if math.Abs(corner.X-10) > 1e-10 {
		t.Errorf("left edge at %v, want margin 10", corner.X)
	}
}

func TestFitViewportDegenerate(t *testing.T) {
	v := FitViewport(geometry.NewBounds(), 100, 100, 0)
	if v.Scale != 1 {
		t.Errorf("empty bounds Scale = %v, want 1", v.Scale)
	}

	p := geometry.NewVector2(5, 5)
	v = FitViewport(bounds(p), 100, 100, 0)
	if got := v.Project(p); !got.ApproxEqual(geometry.NewVector2(50, 50), 1e-10) {
		t.Errorf("single point projects to %v, want (50, 50)", got)
	}

	v = FitViewport(bounds(geometry.NewVector2(0, 0), geometry.NewVector2(10, 0)), 100, 100, 0)
	if math.Abs(v.Scale-10) > 1e-10 {
		t.Errorf("horizontal line Scale = %v, want 10", v.Scale)
	}
}

func TestProjectUnproject(t *testing.T) {
	v := Viewport{Offset: geometry.NewVector2(12, -7), Scale: 2.5}
	p := geometry.NewVector2(3.25, -8)

	if got := v.Unproject(v.Project(p)); !got.ApproxEqual(p, 1e-10) {
		t.Errorf("Unproject(Project(%v)) = %v", p, got)
	}
}

func TestZoomKeepsPointFixed(t *testing.T) {
	v := Viewport{Offset: geometry.NewVector2(10, 20), Scale: 1}
	around := geometry.NewVector2(50, 60)
	before := v.Unproject(around)

	v.Zoom(2, around)

	if v.Scale != 2 {
		t.Errorf("Scale = %v, want 2", v.Scale)
	}
	if got := v.Unproject(around); !got.ApproxEqual(before, 1e-10) {
		t.Errorf("point under cursor moved from %v to %v", before, got)
	}

	v.Zoom(1e9, around)
	if v.Scale != maxScale {
		t.Errorf("Scale = %v, want clamp at %v", v.Scale, maxScale)
	}
}

func TestPan(t *testing.T) {
	v := Viewport{Scale: 1}
	v.Pan(geometry.NewVector2(3, 4))
	if v.Offset != geometry.NewVector2(3, 4) {
		t.Errorf("Offset = %v, want (3, 4)", v.Offset)
	}
}
