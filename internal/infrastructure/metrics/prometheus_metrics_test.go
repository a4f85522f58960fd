package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_HTTPRequests(t *testing.T) {
	m := NewPrometheusMetrics(prometheus.NewRegistry())

	m.IncHTTPRequests("GET", "/", 200)
	m.IncHTTPRequests("GET", "/", 200)
	m.IncHTTPRequests("GET", "/", 404)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/", "404")))
}

func TestPrometheusMetrics_Histograms(t *testing.T) {
	m := NewPrometheusMetrics(prometheus.NewRegistry())

	m.ObserveHTTPDuration("GET", "/", 0.01)
	m.ObserveStoreLookup(LookupStatusOK, 0.0002)
	m.ObserveStoreLookup(LookupStatusError, 0.0003)

	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
	assert.Equal(t, 2, testutil.CollectAndCount(m.lookupDuration))
}

func TestNewPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
