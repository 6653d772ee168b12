package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mooddecode_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mooddecode_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mooddecode_inference_duration_seconds",
			Help:    "Duration of upstream inference calls in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"capability", "provider", "outcome"},
	)

	UpstreamHealthy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mooddecode_upstream_healthy",
			Help: "1 if the last health probe of a capability's provider succeeded",
		},
		[]string{"capability"},
	)
)

func ObserveInference(capability, provider, outcome string, elapsed time.Duration) {
	InferenceDuration.WithLabelValues(capability, provider, outcome).Observe(elapsed.Seconds())
}
