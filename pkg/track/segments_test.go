package track

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gotrack/pkg/geometry"
)

func square(n int) []geometry.Vector2 {
	all := []geometry.Vector2{
		geometry.NewVector2(0, 0),
		geometry.NewVector2(100, 0),
		geometry.NewVector2(0, 100),
		geometry.NewVector2(100, 100),
	}
	return all[:n]
}

func TestComputeSegmentsCount(t *testing.T) {
	for n, want := range map[int]int{2: 1, 3: 3, 4: 6} {
		segs, err := ComputeSegments(square(n), DefaultWidth, PivotMidpoint)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if len(segs) != want {
			t.Errorf("n=%d: got %d segments, want %d", n, len(segs), want)
		}
	}
}

func TestComputeSegmentsInvalidCount(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		points := make([]geometry.Vector2, n)
		if _, err := ComputeSegments(points, DefaultWidth, PivotMidpoint); !errors.Is(err, ErrInvalidAnchorCount) {
			t.Errorf("n=%d: err = %v, want ErrInvalidAnchorCount", n, err)
		}
	}
}

func TestComputeSegmentsCanonicalOrder(t *testing.T) {
	segs, err := ComputeSegments(square(4), 20, PivotMidpoint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Pair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for k, s := range segs {
		if s.Pair() != want[k] {
			t.Errorf("segment %d = %s, want %s", k, s.Pair(), want[k])
		}
		idx, err := PairIndex(s.StartIndex, s.EndIndex, 4)
		if err != nil || idx != k {
			t.Errorf("PairIndex(%s) = %d, %v; want %d", s.Pair(), idx, err, k)
		}
	}

	again, _ := ComputeSegments(square(4), 20, PivotMidpoint)
	for k := range segs {
		if segs[k] != again[k] {
			t.Errorf("segment %d differs between runs: %+v vs %+v", k, segs[k], again[k])
		}
	}
}

func TestSegmentLengthAndAngle(t *testing.T) {
	tests := []struct {
		name   string
		end    geometry.Vector2
		length float64
		angle  float64
	}{
		{"horizontal", geometry.NewVector2(10, 0), 10, 0},
		{"vertical", geometry.NewVector2(0, 10), 10, 90},
		{"diagonal back", geometry.NewVector2(-10, -10), math.Sqrt(200), -135},
		{"left", geometry.NewVector2(-10, 0), 10, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, err := ComputeSegments([]geometry.Vector2{{}, tt.end}, 10, PivotMidpoint)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			s := segs[0]
			if math.Abs(s.Length-tt.length) > 1e-10 {
				t.Errorf("length = %v, want %v", s.Length, tt.length)
			}
			if math.Abs(s.Angle-tt.angle) > 1e-10 {
				t.Errorf("angle = %v, want %v", s.Angle, tt.angle)
			}
		})
	}
}

func TestSegmentPlacement(t *testing.T) {
	points := []geometry.Vector2{{X: 10, Y: 20}, {X: 50, Y: 50}}

	mid, _ := ComputeSegments(points, 8, PivotMidpoint)
	if mid[0].Placement != geometry.NewVector2(30, 35) {
		t.Errorf("midpoint placement = %v, want (30, 35)", mid[0].Placement)
	}

	start, _ := ComputeSegments(points, 8, PivotStart)
	if start[0].Placement != points[0] {
		t.Errorf("start placement = %v, want %v", start[0].Placement, points[0])
	}
}

func TestFrameMidpointConvention(t *testing.T) {
	segs, _ := ComputeSegments([]geometry.Vector2{{X: 0, Y: 0}, {X: 60, Y: 80}}, 20, PivotMidpoint)
	f := segs[0].Frame()

	if f.Width != 100 || f.Height != 20 {
		t.Errorf("frame size = %vx%v, want 100x20", f.Width, f.Height)
	}
	if f.Left != -20 || f.Top != 30 {
		t.Errorf("frame origin = (%v, %v), want (-20, 30)", f.Left, f.Top)
	}
	if f.PivotX != 50 || f.PivotY != 10 {
		t.Errorf("frame pivot = (%v, %v), want (50, 10)", f.PivotX, f.PivotY)
	}

	start, end := f.Axis()
	if !start.ApproxEqual(segs[0].Start, 1e-9) || !end.ApproxEqual(segs[0].End, 1e-9) {
		t.Errorf("frame axis = %v-%v, want %v-%v", start, end, segs[0].Start, segs[0].End)
	}
}

func TestFrameStartConvention(t *testing.T) {
	segs, _ := ComputeSegments([]geometry.Vector2{{X: 10, Y: 10}, {X: 10, Y: 110}}, 70, PivotStart)
	f := segs[0].Frame()

	if f.Left != 10 || f.Top != -25 {
		t.Errorf("frame origin = (%v, %v), want (10, -25)", f.Left, f.Top)
	}
	if f.PivotX != 0 || f.PivotY != 35 {
		t.Errorf("frame pivot = (%v, %v), want (0, 35)", f.PivotX, f.PivotY)
	}
	if f.Rotation != 90 {
		t.Errorf("frame rotation = %v, want 90", f.Rotation)
	}

	start, end := f.Axis()
	if !start.ApproxEqual(segs[0].Start, 1e-9) || !end.ApproxEqual(segs[0].End, 1e-9) {
		t.Errorf("frame axis = %v-%v, want %v-%v", start, end, segs[0].Start, segs[0].End)
	}
}

func TestSegmentRectMatchesAxis(t *testing.T) {
	segs, _ := ComputeSegments(square(4), 12, PivotStart)
	for _, s := range segs {
		start, end := s.Rect().Axis()
		if !start.ApproxEqual(s.Start, 1e-9) || !end.ApproxEqual(s.End, 1e-9) {
			t.Errorf("segment %s rect axis = %v-%v, want %v-%v", s.Pair(), start, end, s.Start, s.End)
		}
	}
}

func TestOrientationRelativeTo(t *testing.T) {
	s := Segment{StartIndex: 1, EndIndex: 3}

	if o, err := s.OrientationRelativeTo(1); err != nil || o != Forward {
		t.Errorf("anchor 1: got %v, %v; want forward", o, err)
	}
	if o, err := s.OrientationRelativeTo(3); err != nil || o != Reversed {
		t.Errorf("anchor 3: got %v, %v; want reversed", o, err)
	}
	if _, err := s.OrientationRelativeTo(2); !errors.Is(err, ErrNotAdjacent) {
		t.Errorf("anchor 2: err = %v, want ErrNotAdjacent", err)
	}
	if Forward.Sign() != 1 || Reversed.Sign() != -1 {
		t.Errorf("signs = %v, %v; want 1, -1", Forward.Sign(), Reversed.Sign())
	}
}

func TestTouching(t *testing.T) {
	segs, _ := ComputeSegments(square(4), 10, PivotMidpoint)

	adj := Touching(segs, 2)
	want := []struct {
		pair Pair
		o    Orientation
	}{
		{Pair{0, 2}, Reversed},
		{Pair{1, 2}, Reversed},
		{Pair{2, 3}, Forward},
	}
	if len(adj) != len(want) {
		t.Fatalf("got %d adjacent segments, want %d", len(adj), len(want))
	}
	for i, a := range adj {
		if a.Pair() != want[i].pair || a.Orientation != want[i].o {
			t.Errorf("adjacent %d = %s %v, want %s %v", i, a.Pair(), a.Orientation, want[i].pair, want[i].o)
		}
	}
}

func TestPairIndex(t *testing.T) {
	if k, err := PairIndex(3, 1, 4); err != nil || k != 4 {
		t.Errorf("PairIndex(3, 1, 4) = %d, %v; want 4", k, err)
	}
	if _, err := PairIndex(0, 4, 4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("PairIndex(0, 4, 4) err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := PairIndex(2, 2, 4); err == nil {
		t.Error("PairIndex(2, 2, 4) should fail")
	}
	if PairCount(1) != 0 || PairCount(4) != 6 {
		t.Errorf("PairCount(1), PairCount(4) = %d, %d; want 0, 6", PairCount(1), PairCount(4))
	}
}

func TestParsePivot(t *testing.T) {
	for in, want := range map[string]Pivot{"midpoint": PivotMidpoint, "center": PivotMidpoint, "start": PivotStart} {
		got, err := ParsePivot(in)
		if err != nil || got != want {
			t.Errorf("ParsePivot(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParsePivot("end"); err == nil {
		t.Error("ParsePivot(\"end\") should fail")
	}
}
