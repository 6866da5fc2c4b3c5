package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// vessel tracker service.
type Metrics struct {
	DecodeRequests *prometheus.CounterVec // labels: outcome={matched,unmatched}
	DecodeDuration prometheus.Histogram

	CacheLookups *prometheus.CounterVec // labels: result={hit,miss}

	HTTPRequests *prometheus.CounterVec   // labels: handler, code
	HTTPDuration *prometheus.HistogramVec // labels: handler

	RegistrySize prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DecodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vessel_tracker",
			Name:      "decode_requests_total",
			Help:      "Destination decode calls by outcome.",
		}, []string{"outcome"}),
		DecodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vessel_tracker",
			Name:      "decode_duration_seconds",
			Help:      "Duration of a single destination decode.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vessel_tracker",
			Name:      "decode_cache_total",
			Help:      "Decode cache lookups by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vessel_tracker",
			Name:      "http_requests_total",
			Help:      "HTTP requests by handler and status code.",
		}, []string{"handler", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vessel_tracker",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by handler.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"handler"}),
		RegistrySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vessel_tracker",
			Name:      "registry_size",
			Help:      "Number of location records loaded into the registry.",
		}),
	}

	prometheus.MustRegister(
		m.DecodeRequests,
		m.DecodeDuration,
		m.CacheLookups,
		m.HTTPRequests,
		m.HTTPDuration,
		m.RegistrySize,
	)
	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DecodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "vessel_tracker", Name: "decode_requests_total"}, []string{"outcome"}),
		DecodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "vessel_tracker", Name: "decode_duration_seconds"}),
		CacheLookups:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "vessel_tracker", Name: "decode_cache_total"}, []string{"result"}),
		HTTPRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "vessel_tracker", Name: "http_requests_total"}, []string{"handler", "code"}),
		HTTPDuration:   prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "vessel_tracker", Name: "http_request_duration_seconds"}, []string{"handler"}),
		RegistrySize:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "vessel_tracker", Name: "registry_size"}),
	}
}
