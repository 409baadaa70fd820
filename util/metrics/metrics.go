// Package metrics exposes Prometheus collectors for the web panel.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"}, // result: success, failed
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uploads_total",
			Help: "Total number of stored file uploads",
		},
		[]string{"folder"},
	)
)

// RecordHTTPRequest records the duration of a finished HTTP request.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordLogin counts a login attempt outcome.
func RecordLogin(success bool) {
	result := "failed"
	if success {
		result = "success"
	}
	LoginAttempts.WithLabelValues(result).Inc()
}

// RecordUpload counts a stored upload per destination folder.
func RecordUpload(folder string) {
	UploadsTotal.WithLabelValues(folder).Inc()
}
