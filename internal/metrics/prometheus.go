package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "ris"

type Prometheus struct {
	Runs     *prometheus.CounterVec
	Failures *prometheus.CounterVec
	NMSE     *prometheus.HistogramVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "estimations_total",
				Help:      "Number of estimation runs per model.",
			}, []string{"model"}),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "estimation_failures_total",
				Help:      "Number of failed estimation runs per model and reason.",
			}, []string{"model", "reason"}),
		NMSE: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "nmse",
				Help:      "Normalised mean squared error of successful estimations.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
			}, []string{"model"}),
	}
}
