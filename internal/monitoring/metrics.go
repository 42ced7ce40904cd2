// internal/monitoring/metrics.go

// Package monitoring exposes Prometheus metrics for the scraping
// engine and the output writers.
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects scrape counters. A nil *Metrics is a valid no-op
// collector, so the engine never has to branch on whether monitoring is
// enabled.
type Metrics struct {
	registry *prometheus.Registry

	fetchesTotal   *prometheus.CounterVec
	fetchFailures  *prometheus.CounterVec
	recordsTotal   *prometheus.CounterVec
	recordsWritten *prometheus.CounterVec
}

// New creates a metrics collector with its own Prometheus registry.
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = "statement"
	}

	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		fetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scraper",
			Name:      "fetches_total",
			Help:      "Listing-page fetches attempted, by pattern.",
		}, []string{"pattern"}),
		fetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scraper",
			Name:      "fetch_failures_total",
			Help:      "Fetches that yielded no document, by pattern.",
		}, []string{"pattern"}),
		recordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scraper",
			Name:      "records_total",
			Help:      "Normalized records produced, by pattern.",
		}, []string{"pattern"}),
		recordsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "output",
			Name:      "records_written_total",
			Help:      "Records handed to an output writer, by format.",
		}, []string{"format"}),
	}

	registry.MustRegister(m.fetchesTotal, m.fetchFailures, m.recordsTotal, m.recordsWritten)
	return m
}

// ObserveFetch records one fetch attempt and whether it produced a
// document.
func (m *Metrics) ObserveFetch(pattern string, ok bool) {
	if m == nil {
		return
	}
	m.fetchesTotal.WithLabelValues(pattern).Inc()
	if !ok {
		m.fetchFailures.WithLabelValues(pattern).Inc()
	}
}

// AddRecords records normalized records produced by one invocation.
func (m *Metrics) AddRecords(pattern string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.recordsTotal.WithLabelValues(pattern).Add(float64(n))
}

// AddWritten records records handed to an output writer.
func (m *Metrics) AddWritten(format string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.recordsWritten.WithLabelValues(format).Add(float64(n))
}

// Handler serves the collector's registry in the Prometheus exposition
// format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
