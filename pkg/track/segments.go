package track

import (
	"fmt"

	"github.com/philipparndt/gotrack/pkg/geometry"
)

// ValidateAnchorCount checks that n is within [MinAnchors, MaxAnchors]
func ValidateAnchorCount(n int) error {
	if n < MinAnchors || n > MaxAnchors {
		return fmt.Errorf("%w: need %d to %d anchors, got %d", ErrInvalidAnchorCount, MinAnchors, MaxAnchors, n)
	}
	return nil
}

// PairCount returns the number of segments between n anchors
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Pairs enumerates every anchor pair in canonical order
func Pairs(n int) []Pair {
	pairs := make([]Pair, 0, PairCount(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{Start: i, End: j})
		}
	}
	return pairs
}

// PairIndex returns the position of the pair (i, j) in the canonical
// enumeration over n anchors. The order of i and j does not matter.
func PairIndex(i, j, n int) (int, error) {
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= n {
		return 0, fmt.Errorf("%w: pair %d-%d with %d anchors", ErrIndexOutOfRange, i, j, n)
	}
	if i == j {
		return 0, fmt.Errorf("no segment connects anchor %d to itself", i)
	}
	return i*n - i*(i+1)/2 + (j - i - 1), nil
}

// ComputeSegments returns the segments joining every pair of points
func ComputeSegments(points []geometry.Vector2, width float64, pivot Pivot) ([]Segment, error) {
	if err := ValidateAnchorCount(len(points)); err != nil {
		return nil, err
	}
	return computeSegments(points, width, pivot), nil
}

func computeSegments(points []geometry.Vector2, width float64, pivot Pivot) []Segment {
	segments := make([]Segment, 0, PairCount(len(points)))
	for _, p := range Pairs(len(points)) {
		segments = append(segments, newSegment(p, points[p.Start], points[p.End], width, pivot))
	}
	return segments
}

func newSegment(p Pair, start, end geometry.Vector2, width float64, pivot Pivot) Segment {
	s := Segment{
		StartIndex: p.Start,
		EndIndex:   p.End,
		Start:      start,
		End:        end,
		Length:     start.Distance(end),
		Angle:      start.AngleTo(end),
		Width:      width,
		Pivot:      pivot,
	}

	if pivot == PivotStart {
		s.Placement = start
	} else {
		s.Placement = start.Midpoint(end)
	}
	return s
}

// Touching returns the segments starting or ending at anchor, in the order
// they appear in segments.
func Touching(segments []Segment, anchor int) []AdjacentSegment {
	var adjacent []AdjacentSegment
	for _, s := range segments {
		o, err := s.OrientationRelativeTo(anchor)
		if err != nil {
			continue
		}
		adjacent = append(adjacent, AdjacentSegment{Segment: s, Orientation: o})
	}
	return adjacent
}
