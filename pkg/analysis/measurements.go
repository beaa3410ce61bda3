package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gotrack/pkg/geometry"
	"github.com/philipparndt/gotrack/pkg/track"
)

// Result contains measurements over a set of segments
type Result struct {
	Bounds       geometry.Bounds // covers every segment rectangle
	SegmentCount int
	AnchorCount  int
	MinLength    float64
	MaxLength    float64
	AvgLength    float64
	TotalLength  float64
	TotalArea    float64
	AllSegments  []track.Segment
}

// Analyze measures a set of segments
func Analyze(segments []track.Segment) *Result {
	result := &Result{
		Bounds:       geometry.NewBounds(),
		SegmentCount: len(segments),
		AllSegments:  segments,
	}

	if len(segments) == 0 {
		return result
	}

	anchors := make(map[int]struct{})
	minLength := math.MaxFloat64
	maxLength := 0.0

	for _, s := range segments {
		anchors[s.StartIndex] = struct{}{}
		anchors[s.EndIndex] = struct{}{}

		result.Bounds.Union(s.Rect().Bounds())
		result.TotalLength += s.Length
		result.TotalArea += s.Length * s.Width

		if s.Length < minLength {
			minLength = s.Length
		}
		if s.Length > maxLength {
			maxLength = s.Length
		}
	}

	result.AnchorCount = len(anchors)
	result.MinLength = minLength
	result.MaxLength = maxLength
	result.AvgLength = result.TotalLength / float64(result.SegmentCount)

	return result
}

// FindByLength finds all segments within a length range
func FindByLength(result *Result, minLength, maxLength float64) []track.Segment {
	var segments []track.Segment
	for _, s := range result.AllSegments {
		if s.Length >= minLength && s.Length <= maxLength {
			segments = append(segments, s)
		}
	}
	return segments
}

// FindLongest returns the count longest segments
func FindLongest(result *Result, count int) []track.Segment {
	return sortedByLength(result, count, func(a, b float64) bool { return a > b })
}

// FindShortest returns the count shortest segments
func FindShortest(result *Result, count int) []track.Segment {
	return sortedByLength(result, count, func(a, b float64) bool { return a < b })
}

func sortedByLength(result *Result, count int, less func(a, b float64) bool) []track.Segment {
	segments := make([]track.Segment, len(result.AllSegments))
	copy(segments, result.AllSegments)

	// Stable keeps canonical order among equal lengths.
	sort.SliceStable(segments, func(i, j int) bool {
		return less(segments[i].Length, segments[j].Length)
	})

	if count > len(segments) {
		count = len(segments)
	}
	if count < 0 {
		count = 0
	}

	return segments[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "px"
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatPoint formats a 2D point
func FormatPoint(v geometry.Vector2) string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}
