package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Echo metrics
	EchoRequestsTotal prometheus.Counter
}

var (
	metricsInstance *Metrics
	metricsOnce     sync.Once
)

// GetMetrics returns the singleton metrics instance
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			// HTTP metrics
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "echotool_http_requests_total",
					Help: "Total number of HTTP requests by route, method, and status code",
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "echotool_http_request_duration_seconds",
					Help:    "HTTP request duration in seconds by route and method",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "path"},
			),
			HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "echotool_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			}),

			// Echo metrics
			EchoRequestsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "echotool_echo_requests_total",
				Help: "Total number of echo operations that passed input validation",
			}),
		}
	})
	return metricsInstance
}
