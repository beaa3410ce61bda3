package trackfile

import (
	"fmt"

	"github.com/philipparndt/gotrack/pkg/geometry"
	"github.com/philipparndt/gotrack/pkg/track"
)

// Anchor is an anchor center as stored in a layout file
type Anchor struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Layout is a named anchor set with optional segment settings
type Layout struct {
	Name    string      `yaml:"name,omitempty"`
	Width   float64     `yaml:"width,omitempty"`
	Pivot   track.Pivot `yaml:"pivot,omitempty"`
	Anchors []Anchor    `yaml:"anchors"`
}

// NewLayout creates a layout from anchor centers
func NewLayout(name string, points []geometry.Vector2) *Layout {
	l := &Layout{
		Name:    name,
		Anchors: make([]Anchor, 0, len(points)),
	}
	for _, p := range points {
		l.AddAnchor(p)
	}
	return l
}

// AddAnchor appends an anchor to the layout
func (l *Layout) AddAnchor(p geometry.Vector2) {
	l.Anchors = append(l.Anchors, Anchor{X: p.X, Y: p.Y})
}

// AnchorCount returns the number of anchors in the layout
func (l *Layout) AnchorCount() int {
	return len(l.Anchors)
}

// Points returns the anchor centers
func (l *Layout) Points() []geometry.Vector2 {
	points := make([]geometry.Vector2, len(l.Anchors))
	for i, a := range l.Anchors {
		points[i] = geometry.NewVector2(a.X, a.Y)
	}
	return points
}

// Bounds calculates the bounding box of all anchor centers
func (l *Layout) Bounds() geometry.Bounds {
	bounds := geometry.NewBounds()
	for _, p := range l.Points() {
		bounds.Extend(p)
	}
	return bounds
}

// Validate checks the anchor count and any segment settings
func (l *Layout) Validate() error {
	if err := track.ValidateAnchorCount(len(l.Anchors)); err != nil {
		return err
	}
	if l.Width < 0 {
		return fmt.Errorf("invalid width %f", l.Width)
	}
	if l.Pivot != "" {
		if _, err := track.ParsePivot(string(l.Pivot)); err != nil {
			return err
		}
	}
	return nil
}

// Apply returns base with the layout's width and pivot applied where set
func (l *Layout) Apply(base track.Config) track.Config {
	if l.Width > 0 {
		base.Width = l.Width
	}
	if l.Pivot != "" {
		if p, err := track.ParsePivot(string(l.Pivot)); err == nil {
			base.Pivot = p
		}
	}
	return base
}
