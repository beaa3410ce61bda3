package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gotrack/pkg/geometry"
	"github.com/philipparndt/gotrack/pkg/track"
)

func TestRing(t *testing.T) {
	points, err := Ring(Size{Width: 600, Height: 300}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []geometry.Vector2{{X: 400, Y: 150}, {X: 300, Y: 250}, {X: 200, Y: 150}, {X: 300, Y: 50}}
	for i := range expected {
		if !points[i].ApproxEqual(expected[i], 1e-9) {
			t.Errorf("anchor %d = %v, want %v", i, points[i], expected[i])
		}
	}
}

func TestRingThree(t *testing.T) {
	points, err := Ring(Size{Width: 300, Height: 300}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	center := geometry.NewVector2(150, 150)
	for i, p := range points {
		if d := center.Distance(p); math.Abs(d-100) > 1e-9 {
			t.Errorf("anchor %d distance = %v, want 100", i, d)
		}
	}
}

func TestGrid(t *testing.T) {
	points, err := Grid(Size{Width: 400, Height: 200}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []geometry.Vector2{{X: 100, Y: 50}, {X: 300, Y: 50}, {X: 100, Y: 150}}
	if len(points) != len(expected) {
		t.Fatalf("got %d anchors, want %d", len(points), len(expected))
	}
	for i := range expected {
		if points[i] != expected[i] {
			t.Errorf("anchor %d = %v, want %v", i, points[i], expected[i])
		}
	}
}

func TestArrangeInvalidCount(t *testing.T) {
	for _, a := range []Arrangement{ArrangementRing, ArrangementGrid} {
		for _, n := range []int{1, 5} {
			if _, err := Arrange(a, Size{Width: 100, Height: 100}, n); !errors.Is(err, track.ErrInvalidAnchorCount) {
				t.Errorf("%s n=%d: err = %v, want ErrInvalidAnchorCount", a, n, err)
			}
		}
	}
}

func TestParseArrangement(t *testing.T) {
	if a, err := ParseArrangement("grid"); err != nil || a != ArrangementGrid {
		t.Errorf("ParseArrangement(grid) = %q, %v", a, err)
	}
	if _, err := ParseArrangement("hex"); err == nil {
		t.Error("ParseArrangement(hex) should fail")
	}
}

func TestRelativeCenter(t *testing.T) {
	got := RelativeCenter(geometry.NewVector2(120, 340), geometry.NewVector2(20, 40), Size{Width: 60, Height: 40})
	want := geometry.NewVector2(130, 320)
	if got != want {
		t.Errorf("RelativeCenter = %v, want %v", got, want)
	}
}
