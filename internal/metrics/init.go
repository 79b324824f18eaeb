package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(
		Observer.prometheus.Runs,
		Observer.prometheus.Failures,
		Observer.prometheus.NMSE,
	)
}
