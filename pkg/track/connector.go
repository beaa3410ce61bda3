package track

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/philipparndt/gotrack/pkg/geometry"
)

// ReadyFunc is called with the segments of a generation each time they
// have been recomputed.
type ReadyFunc func(gen Generation, segments []Segment)

// Connector maintains the segments between the anchors of the current
// generation. It is safe for concurrent use.
type Connector struct {
	id       string
	cfg      Config
	logger   *slog.Logger
	observer Observer

	mu         sync.Mutex
	generation Generation
	anchors    []geometry.Vector2
	reported   []bool
	pending    int
	segments   []Segment
	round      *round
	listeners  []ReadyFunc
	recomputes uint64
	stale      uint64
}

// New creates a connector with no anchors
func New(cfg Config, opts ...Option) (*Connector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Connector{
		id:       uuid.NewString(),
		cfg:      cfg,
		logger:   slog.Default(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "track", "connector", c.id)
	return c, nil
}

// ID returns the unique id of the connector
func (c *Connector) ID() string {
	return c.id
}

// Config returns the connector settings
func (c *Connector) Config() Config {
	return c.cfg
}

// OnSegmentsReady registers fn to be called after every recompute
func (c *Connector) OnSegmentsReady(fn ReadyFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// SetAnchors replaces the anchor set with points and starts a new
// generation. The points act as placeholders until every anchor has been
// reported through ReportAnchorPosition with the returned generation.
func (c *Connector) SetAnchors(points []geometry.Vector2) (Generation, error) {
	if err := ValidateAnchorCount(len(points)); err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.abandonLocked()
	c.generation++
	gen := c.generation
	c.anchors = slices.Clone(points)
	c.reported = make([]bool, len(points))
	c.pending = len(points)
	c.segments = nil
	c.round = newRound(gen)
	c.mu.Unlock()

	c.observer.AnchorsSet(len(points))
	c.logger.Debug("anchors set", "generation", gen, "anchors", len(points))
	return gen, nil
}

// ReportAnchorPosition records the resolved position of one anchor.
// Reports for any generation other than the current one are dropped.
// When the last outstanding anchor reports, the segments are recomputed
// and listeners are notified. Re-reporting a changed position after that
// recomputes again.
func (c *Connector) ReportAnchorPosition(gen Generation, index int, p geometry.Vector2) error {
	c.mu.Lock()
	if c.round == nil || gen != c.generation {
		current := c.generation
		c.stale++
		c.mu.Unlock()

		c.observer.StaleReportDropped()
		c.logger.Debug("stale anchor position ignored",
			"generation", gen, "current", current, "index", index)
		return nil
	}

	if index < 0 || index >= len(c.anchors) {
		n := len(c.anchors)
		c.mu.Unlock()
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, n)
	}

	if c.reported[index] {
		if c.anchors[index] == p {
			c.mu.Unlock()
			return nil
		}
		c.anchors[index] = p
	} else {
		c.anchors[index] = p
		c.reported[index] = true
		c.pending--
	}

	if c.pending > 0 {
		c.mu.Unlock()
		return nil
	}

	segments, listeners, elapsed := c.recomputeLocked()
	c.round.complete()
	c.mu.Unlock()

	c.notify(gen, segments, listeners, elapsed)
	return nil
}

// Recompute derives the segments from the current anchor positions. It
// fails with ErrPositionsNotReady until every anchor has reported.
func (c *Connector) Recompute() ([]Segment, error) {
	c.mu.Lock()
	if err := c.readyLocked(); err != nil {
		c.mu.Unlock()
		return nil, err
	}

	gen := c.generation
	segments, listeners, elapsed := c.recomputeLocked()
	c.mu.Unlock()

	c.notify(gen, segments, listeners, elapsed)
	return slices.Clone(segments), nil
}

// Segments returns the segments of the last recompute
func (c *Connector) Segments() ([]Segment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.readyLocked(); err != nil {
		return nil, err
	}
	return slices.Clone(c.segments), nil
}

// SegmentsTouching returns the segments that start or end at anchor, in
// canonical order, each with the anchor's orientation on it.
func (c *Connector) SegmentsTouching(anchor int) ([]AdjacentSegment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if anchor < 0 || anchor >= len(c.anchors) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, anchor, len(c.anchors))
	}
	if err := c.readyLocked(); err != nil {
		return nil, err
	}
	return Touching(c.segments, anchor), nil
}

// Release clears the anchors and segments and abandons a pending barrier.
// Calling it more than once is harmless.
func (c *Connector) Release() {
	c.mu.Lock()
	released := c.round != nil
	c.abandonLocked()
	c.anchors = nil
	c.reported = nil
	c.pending = 0
	c.segments = nil
	gen := c.generation
	c.mu.Unlock()

	if released {
		c.logger.Debug("connector released", "generation", gen)
	}
}

// Generation returns the current generation; 0 before the first SetAnchors
func (c *Connector) Generation() Generation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// AnchorCount returns the number of anchors in the current set
func (c *Connector) AnchorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.anchors)
}

// Ready reports whether every anchor of the current set has a position
func (c *Connector) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readyLocked() == nil
}

// Anchors returns the current anchors with their last known positions
func (c *Connector) Anchors() []Anchor {
	c.mu.Lock()
	defer c.mu.Unlock()

	anchors := make([]Anchor, len(c.anchors))
	for i, p := range c.anchors {
		anchors[i] = Anchor{Index: i, Center: p, Reported: c.reported[i]}
	}
	return anchors
}

// Stats returns a snapshot of connector activity
func (c *Connector) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Generation:   c.generation,
		Anchors:      len(c.anchors),
		Reported:     len(c.anchors) - c.pending,
		Recomputes:   c.recomputes,
		StaleReports: c.stale,
	}
}

func (c *Connector) readyLocked() error {
	if c.round == nil {
		return fmt.Errorf("%w: no anchors set", ErrPositionsNotReady)
	}
	if c.pending > 0 {
		return fmt.Errorf("%w: %d of %d anchors reported", ErrPositionsNotReady, len(c.anchors)-c.pending, len(c.anchors))
	}
	return nil
}

func (c *Connector) recomputeLocked() ([]Segment, []ReadyFunc, time.Duration) {
	start := time.Now()
	c.segments = computeSegments(c.anchors, c.cfg.Width, c.cfg.Pivot)
	c.recomputes++
	return c.segments, slices.Clone(c.listeners), time.Since(start)
}

func (c *Connector) abandonLocked() {
	if c.round != nil {
		c.round.abandon()
		c.round = nil
	}
}

func (c *Connector) notify(gen Generation, segments []Segment, listeners []ReadyFunc, elapsed time.Duration) {
	c.observer.SegmentsComputed(len(segments), elapsed)
	c.logger.Debug("segments ready", "generation", gen, "segments", len(segments), "elapsed", elapsed)

	for _, fn := range listeners {
		fn(gen, slices.Clone(segments))
	}
}
