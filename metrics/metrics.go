// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records the series tracked by the service. All recorders are
// nil-safe so services constructed without a registry (tests) stay silent.
type Collector struct {
	analyzeTotal    *prometheus.CounterVec
	providerLatency prometheus.Histogram
	httpStatus      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		analyzeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diet_analyze_requests_total",
			Help: "Analysis requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		providerLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "diet_provider_latency_seconds",
			Help:    "Latency of outbound vision-model calls.",
			Buckets: prometheus.DefBuckets,
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diet_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.analyzeTotal,
		c.providerLatency,
		c.httpStatus,
	)

	return c
}

// RecordAnalyze counts one provider call by outcome ("ok" or an error kind).
func (c *Collector) RecordAnalyze(provider, outcome string) {
	if c == nil {
		return
	}
	c.analyzeTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordProviderLatency records the duration of one outbound call.
func (c *Collector) RecordProviderLatency(d time.Duration) {
	if c == nil {
		return
	}
	c.providerLatency.Observe(d.Seconds())
}

// RecordHTTPStatus counts one HTTP response by status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	if c == nil {
		return
	}
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
