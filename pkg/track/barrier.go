package track

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// round is the barrier of one generation. ready is closed when every
// anchor has reported, abandoned when the generation is replaced.
type round struct {
	gen       Generation
	ready     chan struct{}
	abandoned chan struct{}
	completed bool
}

func newRound(gen Generation) *round {
	return &round{
		gen:       gen,
		ready:     make(chan struct{}),
		abandoned: make(chan struct{}),
	}
}

// complete and abandon must be called with the connector lock held.
func (r *round) complete() {
	if !r.completed {
		r.completed = true
		close(r.ready)
	}
}

func (r *round) abandon() {
	close(r.abandoned)
}

// Wait blocks until every anchor of the current generation has reported
// and returns the resulting segments. It gives up after
// Config.BarrierTimeout, when ctx is done, or when the generation is
// replaced by SetAnchors or Release.
func (c *Connector) Wait(ctx context.Context) ([]Segment, error) {
	c.mu.Lock()
	r := c.round
	c.mu.Unlock()

	if r == nil {
		return nil, ErrNoAnchors
	}

	var timeout <-chan time.Time
	if c.cfg.BarrierTimeout > 0 {
		timer := time.NewTimer(c.cfg.BarrierTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-r.ready:
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.round != r {
			return nil, fmt.Errorf("%w: generation %d", ErrSuperseded, r.gen)
		}
		return slices.Clone(c.segments), nil

	case <-r.abandoned:
		return nil, fmt.Errorf("%w: generation %d", ErrSuperseded, r.gen)

	case <-ctx.Done():
		return nil, ctx.Err()

	case <-timeout:
		stats := c.Stats()
		c.observer.BarrierTimedOut()
		c.logger.Warn("anchor positions did not arrive in time",
			"generation", r.gen, "reported", stats.Reported, "anchors", stats.Anchors,
			"timeout", c.cfg.BarrierTimeout)
		return nil, fmt.Errorf("%w after %s (generation %d)", ErrBarrierTimeout, c.cfg.BarrierTimeout, r.gen)
	}
}
