package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Result label values for validation metrics.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	validationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "palindrome_policy_validation_total",
			Help: "Total number of admission requests evaluated by the policy, by verdict.",
		},
		[]string{"operation", "result"},
	)

	validationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "palindrome_policy_validation_duration_seconds",
			Help:    "Latency of policy evaluation in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		validationTotal,
		validationDuration,
	)
}

// Collectors returns all registered metric collectors. This is useful for
// testing that metrics are properly registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		validationTotal,
		validationDuration,
	}
}
