package main

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/philipparndt/gotrack/pkg/track"
	"github.com/philipparndt/gotrack/pkg/trackfile"
)

// loadLayout parses a layout file and builds a connector for it
func loadLayout(filename string) (*trackfile.Layout, *track.Connector, error) {
	layout, err := trackfile.Parse(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing layout file: %w", err)
	}

	c, err := newConnector(layout)
	if err != nil {
		return nil, nil, err
	}
	return layout, c, nil
}

// connectFile loads a layout file and waits for its segments
func connectFile(ctx context.Context, filename string) (*trackfile.Layout, *track.Connector, []track.Segment, error) {
	layout, c, err := loadLayout(filename)
	if err != nil {
		return nil, nil, nil, err
	}

	segments, err := connect(ctx, c, layout)
	if err != nil {
		c.Release()
		return nil, nil, nil, err
	}
	return layout, c, segments, nil
}

func newConnector(layout *trackfile.Layout, opts ...track.Option) (*track.Connector, error) {
	tc, err := trackConfig(layout.Apply)
	if err != nil {
		return nil, err
	}
	opts = append([]track.Option{track.WithLogger(logger)}, opts...)
	return track.New(tc, opts...)
}

// connect sets the layout's anchors and reports every position from its
// own goroutine in random order, then waits for the barrier
func connect(ctx context.Context, c *track.Connector, layout *trackfile.Layout) ([]track.Segment, error) {
	points := layout.Points()
	gen, err := c.SetAnchors(points)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(points))
	for _, i := range rand.Perm(len(points)) {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := c.ReportAnchorPosition(gen, i, points[i]); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}
	return c.Wait(ctx)
}
