package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all connector metrics
type Registry struct {
	// Anchor Metrics
	AnchorSetsTotal prometheus.Counter
	AnchorsCurrent  prometheus.Gauge

	// Segment Metrics
	SegmentsComputedTotal prometheus.Counter
	SegmentsCurrent       prometheus.Gauge
	RecomputeDuration     prometheus.Histogram

	// Barrier Metrics
	StaleReportsTotal    prometheus.Counter
	BarrierTimeoutsTotal prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initAnchorMetrics()
	r.initSegmentMetrics()
	r.initBarrierMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

func (r *Registry) initAnchorMetrics() {
	r.AnchorSetsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "gotrack_anchor_sets_total",
			Help: "Total number of accepted anchor sets",
		},
	)

	r.AnchorsCurrent = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gotrack_anchors",
			Help: "Number of anchors in the current generation",
		},
	)
}

func (r *Registry) initSegmentMetrics() {
	r.SegmentsComputedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "gotrack_segments_computed_total",
			Help: "Total number of segments computed across all recomputes",
		},
	)

	r.SegmentsCurrent = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gotrack_segments",
			Help: "Number of segments in the current generation",
		},
	)

	r.RecomputeDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gotrack_recompute_duration_seconds",
			Help:    "Segment recompute duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		},
	)
}

func (r *Registry) initBarrierMetrics() {
	r.StaleReportsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "gotrack_stale_reports_total",
			Help: "Total number of position reports dropped for an old generation",
		},
	)

	r.BarrierTimeoutsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "gotrack_barrier_timeouts_total",
			Help: "Total number of waits that timed out before all positions arrived",
		},
	)
}
