package viewer

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gotrack/pkg/geometry"
	"github.com/philipparndt/gotrack/pkg/track"
)

const (
	anchorRadius = 8
	pickDistance = 20
	fitMargin    = 40
)

var (
	segmentColor   = color.NRGBA{R: 120, G: 120, B: 140, A: 200}
	touchingColor  = color.NRGBA{R: 255, G: 170, B: 0, A: 220}
	reversedColor  = color.NRGBA{R: 0, G: 170, B: 255, A: 220}
	anchorColor    = color.NRGBA{R: 220, G: 40, B: 40, A: 255}
	pendingColor   = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	selectedStroke = color.White
)

// TrackRenderer draws anchors and the segments connecting them in 2D.
// Tapping an anchor selects it and highlights the segments touching it.
type TrackRenderer struct {
	widget.BaseWidget

	mu        sync.Mutex
	anchors   []track.Anchor
	segments  []track.Segment
	selected  int
	viewport  Viewport
	fitted    bool
	width     float64
	height    float64
	dragStart *fyne.Position

	lines   []*canvas.Line
	markers []*canvas.Circle

	onAnchorSelect func(index int)
}

// NewTrackRenderer creates an empty track renderer
func NewTrackRenderer() *TrackRenderer {
	r := &TrackRenderer{
		selected: -1,
		viewport: Viewport{Scale: 1},
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetOnAnchorSelect sets the callback for when an anchor is tapped
func (r *TrackRenderer) SetOnAnchorSelect(callback func(index int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onAnchorSelect = callback
}

// SetAnchors replaces the drawn anchors. A new anchor count resets the
// selection and refits the view.
func (r *TrackRenderer) SetAnchors(anchors []track.Anchor) {
	r.mu.Lock()
	if len(anchors) != len(r.anchors) {
		r.selected = -1
		r.fitted = false
	}
	r.anchors = append(r.anchors[:0], anchors...)
	r.mu.Unlock()

	r.rerender()
}

// SetSegments replaces the drawn segments
func (r *TrackRenderer) SetSegments(segments []track.Segment) {
	r.mu.Lock()
	r.segments = append(r.segments[:0], segments...)
	r.mu.Unlock()

	r.rerender()
}

// Selected returns the selected anchor index, or -1
func (r *TrackRenderer) Selected() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}

// ClearSelection deselects the current anchor
func (r *TrackRenderer) ClearSelection() {
	r.mu.Lock()
	r.selected = -1
	r.mu.Unlock()

	r.rerender()
}

// FitView resets pan and zoom so every anchor and segment is visible
func (r *TrackRenderer) FitView() {
	r.mu.Lock()
	r.fitted = false
	r.mu.Unlock()

	r.rerender()
}

// Render rebuilds the canvas objects for a width x height area
func (r *TrackRenderer) Render(width, height float64) {
	r.mu.Lock()
	r.width = width
	r.height = height
	if !r.fitted && width > 0 && height > 0 && len(r.anchors) > 0 {
		r.viewport = FitViewport(r.sceneBounds(), width, height, fitMargin)
		r.fitted = true
	}

	var touching map[track.Pair]track.Orientation
	if r.selected >= 0 {
		touching = make(map[track.Pair]track.Orientation)
		for _, adj := range track.Touching(r.segments, r.selected) {
			touching[adj.Pair()] = adj.Orientation
		}
	}

	r.lines = make([]*canvas.Line, 0, len(r.segments))
	for _, s := range r.segments {
		c := segmentColor
		if o, ok := touching[s.Pair()]; ok {
			c = touchingColor
			if o == track.Reversed {
				c = reversedColor
			}
		}

		a, b := r.viewport.Project(s.Start), r.viewport.Project(s.End)
		line := canvas.NewLine(c)
		line.StrokeWidth = float32(math.Max(1, s.Width*r.viewport.Scale))
		line.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
		line.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
		r.lines = append(r.lines, line)
	}

	r.markers = make([]*canvas.Circle, 0, len(r.anchors))
	for _, anchor := range r.anchors {
		fill := anchorColor
		if !anchor.Reported {
			fill = pendingColor
		}
		marker := canvas.NewCircle(fill)
		if anchor.Index == r.selected {
			marker.StrokeColor = selectedStroke
			marker.StrokeWidth = 3
		}

		p := r.viewport.Project(anchor.Center)
		size := float32(2 * anchorRadius)
		marker.Resize(fyne.NewSize(size, size))
		marker.Move(fyne.NewPos(float32(p.X)-size/2, float32(p.Y)-size/2))
		r.markers = append(r.markers, marker)
	}
	r.mu.Unlock()

	r.Refresh()
}

func (r *TrackRenderer) rerender() {
	r.mu.Lock()
	width, height := r.width, r.height
	r.mu.Unlock()

	r.Render(width, height)
}

// sceneBounds covers every anchor and segment rectangle
func (r *TrackRenderer) sceneBounds() geometry.Bounds {
	b := geometry.NewBounds()
	for _, a := range r.anchors {
		b.Extend(a.Center)
	}
	for _, s := range r.segments {
		b.Union(s.Rect().Bounds())
	}
	return b
}

// Dragged handles mouse drag events for panning
func (r *TrackRenderer) Dragged(event *fyne.DragEvent) {
	r.mu.Lock()
	r.viewport.Pan(geometry.NewVector2(float64(event.Dragged.DX), float64(event.Dragged.DY)))
	r.dragStart = &event.Position
	r.mu.Unlock()

	r.rerender()
}

// DragEnd handles the end of a drag event
func (r *TrackRenderer) DragEnd() {
	r.mu.Lock()
	r.dragStart = nil
	r.mu.Unlock()
}

// Tapped selects the anchor nearest to the tap, if close enough
func (r *TrackRenderer) Tapped(event *fyne.PointEvent) {
	r.mu.Lock()
	if r.dragStart != nil {
		r.mu.Unlock()
		return
	}

	tap := geometry.NewVector2(float64(event.Position.X), float64(event.Position.Y))
	index, dist := r.findNearestAnchor(tap)
	if index < 0 || dist > pickDistance {
		r.mu.Unlock()
		return
	}
	r.selected = index
	callback := r.onAnchorSelect
	r.mu.Unlock()

	r.rerender()
	if callback != nil {
		callback(index)
	}
}

// findNearestAnchor returns the anchor closest to a screen position
func (r *TrackRenderer) findNearestAnchor(screen geometry.Vector2) (int, float64) {
	nearest := -1
	minDist := math.MaxFloat64
	for _, a := range r.anchors {
		d := r.viewport.Project(a.Center).Distance(screen)
		if d < minDist {
			minDist = d
			nearest = a.Index
		}
	}
	return nearest, minDist
}

// Scrolled handles scroll events for zooming around the cursor
func (r *TrackRenderer) Scrolled(event *fyne.ScrollEvent) {
	r.mu.Lock()
	around := geometry.NewVector2(float64(event.Position.X), float64(event.Position.Y))
	r.viewport.Zoom(math.Pow(1.001, float64(event.Scrolled.DY)), around)
	r.mu.Unlock()

	r.rerender()
}

// CreateRenderer creates the renderer for the widget
func (r *TrackRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &trackWidgetRenderer{renderer: r}
}

// trackWidgetRenderer implements fyne.WidgetRenderer
type trackWidgetRenderer struct {
	renderer *TrackRenderer
	objects  []fyne.CanvasObject
}

func (t *trackWidgetRenderer) Layout(size fyne.Size) {
	t.renderer.Render(float64(size.Width), float64(size.Height))
}

func (t *trackWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (t *trackWidgetRenderer) Refresh() {
	t.renderer.mu.Lock()
	objects := make([]fyne.CanvasObject, 0, len(t.renderer.lines)+len(t.renderer.markers))
	for _, line := range t.renderer.lines {
		objects = append(objects, line)
	}
	for _, marker := range t.renderer.markers {
		objects = append(objects, marker)
	}
	t.renderer.mu.Unlock()

	t.objects = objects
	canvas.Refresh(t.renderer)
}

func (t *trackWidgetRenderer) Objects() []fyne.CanvasObject {
	return t.objects
}

func (t *trackWidgetRenderer) Destroy() {}
