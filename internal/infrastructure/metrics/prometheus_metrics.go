package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	lookupDuration *prometheus.HistogramVec
}

func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dogweb_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dogweb_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		lookupDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dogweb_store_lookup_duration_seconds",
				Help:    "Entry lookup duration in seconds, including the wait for store access",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncHTTPRequests(method, path string, statusCode int) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

func (m *PrometheusMetrics) ObserveHTTPDuration(method, path string, duration float64) {
	m.httpDuration.WithLabelValues(method, path).Observe(duration)
}

func (m *PrometheusMetrics) ObserveStoreLookup(status string, duration float64) {
	m.lookupDuration.WithLabelValues(status).Observe(duration)
}
