package monitoring

import "time"

// RecordValidation records the verdict and duration of one evaluation.
func RecordValidation(operation, result string, duration time.Duration) {
	validationTotal.WithLabelValues(operation, result).Inc()
	validationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
