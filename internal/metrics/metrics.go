package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ReasonKeyNotFound  = "key_not_found"
	ReasonShape        = "shape_mismatch"
	ReasonSample       = "sample"
	ReasonTransform    = "transform"
	ReasonCancellation = "cancelled"
)

// Observer collects the metrics of the process.
var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

// Metrics wraps the prometheus collectors.
type Metrics struct {
	prometheus Prometheus
}

// Run counts an estimation run for the given model.
func (m *Metrics) Run(model string) {
	m.prometheus.Runs.WithLabelValues(model).Inc()
}

// Failure counts a failed estimation run.
func (m *Metrics) Failure(model, reason string) {
	m.prometheus.Failures.WithLabelValues(model, reason).Inc()
}

// Score records the nmse of a successful estimation run.
func (m *Metrics) Score(model string, nmse float64) {
	m.prometheus.NMSE.WithLabelValues(model).Observe(nmse)
}

// Handler exposes the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
