package metrics

import (
	"net/http"
	"time"

	"github.com/philipparndt/gotrack/pkg/track"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ track.Observer = (*Registry)(nil)

// AnchorsSet records an accepted anchor set
func (r *Registry) AnchorsSet(count int) {
	r.AnchorSetsTotal.Inc()
	r.AnchorsCurrent.Set(float64(count))
	r.SegmentsCurrent.Set(0)
}

// SegmentsComputed records a completed recompute
func (r *Registry) SegmentsComputed(count int, elapsed time.Duration) {
	r.SegmentsComputedTotal.Add(float64(count))
	r.SegmentsCurrent.Set(float64(count))
	r.RecomputeDuration.Observe(elapsed.Seconds())
}

// StaleReportDropped records a position report for a superseded generation
func (r *Registry) StaleReportDropped() {
	r.StaleReportsTotal.Inc()
}

// BarrierTimedOut records a wait that gave up
func (r *Registry) BarrierTimedOut() {
	r.BarrierTimeoutsTotal.Inc()
}

// Handler returns an HTTP handler serving the registry in the Prometheus format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
