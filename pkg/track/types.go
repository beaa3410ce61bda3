package track

import (
	"fmt"

	"github.com/philipparndt/gotrack/pkg/geometry"
)

const (
	MinAnchors = 2
	MaxAnchors = 4
)

// Generation tags one anchor set. It increases with every SetAnchors call.
type Generation uint64

// Pivot selects the point a segment rectangle is placed and rotated about.
type Pivot string

const (
	// PivotMidpoint centers the rectangle on the midpoint of the two
	// anchors and rotates it about its own center.
	PivotMidpoint Pivot = "midpoint"
	// PivotStart places the left edge of the rectangle on the start anchor
	// and rotates it about the middle of that edge.
	PivotStart Pivot = "start"
)

func (p Pivot) String() string {
	return string(p)
}

// ParsePivot converts a name into a Pivot
func ParsePivot(s string) (Pivot, error) {
	switch Pivot(s) {
	case PivotMidpoint, PivotStart:
		return Pivot(s), nil
	case "center", "centre":
		return PivotMidpoint, nil
	default:
		return "", fmt.Errorf("unknown pivot %q (want %q or %q)", s, PivotMidpoint, PivotStart)
	}
}

// Orientation tells whether an anchor is the start or the end of a segment.
type Orientation int

const (
	Forward Orientation = iota
	Reversed
)

func (o Orientation) String() string {
	switch o {
	case Forward:
		return "forward"
	case Reversed:
		return "reversed"
	default:
		return "unknown"
	}
}

// Sign returns the horizontal mirroring factor a host applies to draw the
// segment as leaving the anchor: +1 for Forward, -1 for Reversed.
func (o Orientation) Sign() float64 {
	if o == Reversed {
		return -1
	}
	return 1
}

// Pair identifies a segment by the anchors it connects. Start < End.
type Pair struct {
	Start int
	End   int
}

func (p Pair) String() string {
	return fmt.Sprintf("%d-%d", p.Start, p.End)
}

// Anchor is a positioned anchor of the current set
type Anchor struct {
	Index    int
	Center   geometry.Vector2
	Reported bool
}

// Segment describes the rectangle joining two anchor centers.
type Segment struct {
	StartIndex int
	EndIndex   int
	Start      geometry.Vector2
	End        geometry.Vector2
	Length     float64
	Angle      float64 // degrees in (-180, 180]
	Width      float64
	Pivot      Pivot
	Placement  geometry.Vector2 // midpoint or start, depending on Pivot
}

// Pair returns the anchor pair of the segment
func (s Segment) Pair() Pair {
	return Pair{Start: s.StartIndex, End: s.EndIndex}
}

// Touches reports whether the segment starts or ends at the anchor
func (s Segment) Touches(anchor int) bool {
	return s.StartIndex == anchor || s.EndIndex == anchor
}

// OrientationRelativeTo returns Forward if the anchor is the start of the
// segment and Reversed if it is the end.
func (s Segment) OrientationRelativeTo(anchor int) (Orientation, error) {
	switch anchor {
	case s.StartIndex:
		return Forward, nil
	case s.EndIndex:
		return Reversed, nil
	default:
		return Forward, fmt.Errorf("%w: segment %s, anchor %d", ErrNotAdjacent, s.Pair(), anchor)
	}
}

// Midpoint returns the point halfway between both anchors
func (s Segment) Midpoint() geometry.Vector2 {
	return s.Start.Midpoint(s.End)
}

// Rect returns the rotated rectangle covered by the segment
func (s Segment) Rect() geometry.RotatedRect {
	return geometry.RotatedRect{
		Center: s.Midpoint(),
		Length: s.Length,
		Width:  s.Width,
		Angle:  s.Angle,
	}
}

// Frame returns the unrotated placement of the segment rectangle for hosts
// that position a view by its top-left corner and rotate it about a pivot.
func (s Segment) Frame() Frame {
	f := Frame{
		Width:    s.Length,
		Height:   s.Width,
		PivotY:   s.Width / 2,
		Rotation: s.Angle,
	}

	switch s.Pivot {
	case PivotStart:
		f.Left = s.Start.X
		f.Top = s.Start.Y - s.Width/2
	default:
		mid := s.Midpoint()
		f.Left = mid.X - s.Length/2
		f.Top = mid.Y - s.Width/2
		f.PivotX = s.Length / 2
	}
	return f
}

// AdjacentSegment is a segment seen from one of its anchors
type AdjacentSegment struct {
	Segment
	Orientation Orientation
}

// Frame is the host-facing placement of a segment rectangle. The
// rectangle is laid out unrotated at (Left, Top) with size Width x Height
// and then rotated by Rotation degrees about (Left+PivotX, Top+PivotY).
type Frame struct {
	Left     float64
	Top      float64
	Width    float64
	Height   float64
	PivotX   float64
	PivotY   float64
	Rotation float64
}

// Pivot returns the absolute rotation pivot
func (f Frame) Pivot() geometry.Vector2 {
	return geometry.NewVector2(f.Left+f.PivotX, f.Top+f.PivotY)
}

// Axis returns the endpoints of the rectangle's center line after rotation
func (f Frame) Axis() (geometry.Vector2, geometry.Vector2) {
	pivot := f.Pivot()
	left := geometry.NewVector2(f.Left, f.Top+f.Height/2)
	right := geometry.NewVector2(f.Left+f.Width, f.Top+f.Height/2)
	return left.RotateAround(pivot, f.Rotation), right.RotateAround(pivot, f.Rotation)
}

// Stats is a snapshot of connector activity
type Stats struct {
	Generation   Generation
	Anchors      int
	Reported     int
	Recomputes   uint64
	StaleReports uint64
}
