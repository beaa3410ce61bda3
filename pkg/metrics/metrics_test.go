package metrics

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/philipparndt/gotrack/pkg/geometry"
	"github.com/philipparndt/gotrack/pkg/track"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	switch {
	case metric.Counter != nil:
		return metric.Counter.GetValue()
	case metric.Gauge != nil:
		return metric.Gauge.GetValue()
	}
	t.Fatal("metric is neither counter nor gauge")
	return 0
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.AnchorSetsTotal == nil || r.RecomputeDuration == nil || r.StaleReportsTotal == nil {
		t.Error("metrics not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestObserverCallbacks(t *testing.T) {
	r := NewRegistry()

	r.AnchorsSet(4)
	r.SegmentsComputed(6, time.Millisecond)
	r.StaleReportDropped()
	r.StaleReportDropped()
	r.BarrierTimedOut()

	if got := counterValue(t, r.AnchorSetsTotal); got != 1 {
		t.Errorf("AnchorSetsTotal = %v, want 1", got)
	}
	if got := counterValue(t, r.AnchorsCurrent); got != 4 {
		t.Errorf("AnchorsCurrent = %v, want 4", got)
	}
	if got := counterValue(t, r.SegmentsCurrent); got != 6 {
		t.Errorf("SegmentsCurrent = %v, want 6", got)
	}
	if got := counterValue(t, r.StaleReportsTotal); got != 2 {
		t.Errorf("StaleReportsTotal = %v, want 2", got)
	}
	if got := counterValue(t, r.BarrierTimeoutsTotal); got != 1 {
		t.Errorf("BarrierTimeoutsTotal = %v, want 1", got)
	}
}

func TestConnectorIntegration(t *testing.T) {
	r := NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := track.New(track.DefaultConfig(), track.WithObserver(r), track.WithLogger(logger))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	points := []geometry.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	gen, err := c.SetAnchors(points)
	if err != nil {
		t.Fatalf("SetAnchors() error = %v", err)
	}
	for i, p := range points {
		c.ReportAnchorPosition(gen, i, p)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := c.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	c.ReportAnchorPosition(gen-1, 0, geometry.Vector2{})

	if got := counterValue(t, r.SegmentsCurrent); got != 3 {
		t.Errorf("SegmentsCurrent = %v, want 3", got)
	}
	if got := counterValue(t, r.StaleReportsTotal); got != 1 {
		t.Errorf("StaleReportsTotal = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.AnchorsSet(2)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "gotrack_anchor_sets_total 1") {
		t.Errorf("metrics output missing anchor counter:\n%s", body)
	}
}
