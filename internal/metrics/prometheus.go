package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusExporter holds a Collector alongside its own prometheus
// operation counter and duration histogram, registered with the prometheus
// client's registry. The prometheus metrics are fed only by Observe; the
// Collector's counters and timing samples are not read or exported.
type PrometheusExporter struct {
	collector *Collector

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewPrometheusExporter creates an exporter over collector and registers
// its metrics with reg.
func NewPrometheusExporter(collector *Collector, reg prometheus.Registerer) *PrometheusExporter {
	e := &PrometheusExporter{
		collector: collector,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tagotip",
			Name:      "operations_total",
			Help:      "Total number of parse/build/seal/open operations by outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tagotip",
			Name:      "operation_duration_seconds",
			Help:      "Duration of parse/build/seal/open operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(e.operations, e.duration)
	return e
}

// Observe records duration against the named operation and increments its
// success/failure counter. Call this alongside the matching Collector
// Record* call so both views of the same event stay in sync.
func (e *PrometheusExporter) Observe(operation string, success bool, seconds float64) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	e.operations.WithLabelValues(operation, outcome).Inc()
	e.duration.WithLabelValues(operation).Observe(seconds)
}
