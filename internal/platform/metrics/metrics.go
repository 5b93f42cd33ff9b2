package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	ChartsComputed     prometheus.Counter
	ComputeDuration    prometheus.Histogram
	LuckQueries        *prometheus.CounterVec
	TermLookupFailures prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		ChartsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "saju_charts_computed_total",
			Help: "Total number of charts computed",
		}),
		ComputeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "saju_chart_compute_duration_seconds",
			Help:    "Time spent computing a full chart",
			Buckets: prometheus.DefBuckets,
		}),
		LuckQueries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "saju_luck_queries_total",
			Help: "Total number of luck-cycle queries by kind",
		}, []string{"kind"}),
		TermLookupFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "saju_solar_term_lookup_failures_total",
			Help: "Total number of solar-term lookups that found no event",
		}),
	}
}

// IncrementChartsComputed increments the computed-charts counter by 1
func (m *Metrics) IncrementChartsComputed() {
	if m == nil {
		return
	}
	m.ChartsComputed.Inc()
}

// ObserveComputeDuration records one chart computation duration
func (m *Metrics) ObserveComputeDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.ComputeDuration.Observe(d.Seconds())
}

// IncrementLuckQueries increments the luck-query counter for a kind
func (m *Metrics) IncrementLuckQueries(kind string) {
	if m == nil {
		return
	}
	m.LuckQueries.WithLabelValues(kind).Inc()
}

// IncrementTermLookupFailures increments the failed term lookup counter by 1
func (m *Metrics) IncrementTermLookupFailures() {
	if m == nil {
		return
	}
	m.TermLookupFailures.Inc()
}
