// Package telemetry exports optimizer events as Prometheus metrics.
//
// Metrics implements tsp.Observer. Collectors are registered on the
// Registerer handed to NewMetrics rather than the global default, so several
// optimizers (or tests) can live in one process without collisions.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvroute/tsp"
)

const namespace = "lvroute"

// Metrics holds the optimizer collectors.
type Metrics struct {
	optimizeTotal    *prometheus.CounterVec
	fallbackTotal    prometheus.Counter
	optimizeDuration *prometheus.HistogramVec
	instanceSize     prometheus.Histogram
}

var _ tsp.Observer = (*Metrics)(nil)

// NewMetrics creates and registers the collectors on reg.
// A nil reg falls back to a fresh private registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		optimizeTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "optimize_total",
			Help:      "Optimize calls by producing strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		fallbackTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exact_fallback_total",
			Help:      "Exact strategy attempts answered by the heuristic.",
		}),
		optimizeDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "optimize_duration_seconds",
			Help:      "Wall-clock time of Optimize calls.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3.3s
		}, []string{"strategy"}),
		instanceSize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "instance_size",
			Help:      "Number of locations per Optimize call.",
			Buckets:   []float64{2, 4, 8, 12, 16, 24, 32, 64, 128},
		}),
	}
}

// ObserveOptimize implements tsp.Observer.
func (m *Metrics) ObserveOptimize(ev tsp.Event) {
	m.optimizeTotal.WithLabelValues(ev.Strategy, Outcome(ev)).Inc()
	if ev.Fallback {
		m.fallbackTotal.Inc()
	}
	m.optimizeDuration.WithLabelValues(ev.Strategy).Observe(ev.Elapsed.Seconds())
	m.instanceSize.Observe(float64(ev.N))
}

// Outcome condenses an event into a low-cardinality label value.
func Outcome(ev tsp.Event) string {
	switch {
	case ev.Cancelled:
		return "cancelled"
	case ev.Capped:
		return "capped"
	case ev.Proven:
		return "proven"
	default:
		return "local_optimum"
	}
}
