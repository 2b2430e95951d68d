// Package metrics provides Prometheus metrics collection for nmap-navigator.
// It tracks HTTP request activity, scan-import outcomes, and the size of the
// in-memory inventory.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics and the underlying Prometheus
// registry they are registered with.
type Registry struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	scanImportsTotal    *prometheus.CounterVec
	importedHostsTotal  prometheus.Counter
	importedPortsTotal  prometheus.Counter
	inventoryHosts      prometheus.Gauge
	inventoryServices   prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	m := &Registry{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navigator_http_requests_total",
				Help: "Total HTTP requests processed, by method and status code.",
			},
			[]string{"method", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "navigator_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds, by method.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		scanImportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navigator_scan_imports_total",
				Help: "Total scan import attempts, by outcome.",
			},
			[]string{"status"},
		),
		importedHostsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "navigator_imported_hosts_total",
				Help: "Total hosts created by scan imports.",
			},
		),
		importedPortsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "navigator_imported_services_total",
				Help: "Total services created by scan imports.",
			},
		),
		inventoryHosts: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "navigator_inventory_hosts",
				Help: "Hosts currently held in the in-memory store.",
			},
		),
		inventoryServices: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "navigator_inventory_services",
				Help: "Services currently held in the in-memory store.",
			},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.scanImportsTotal,
		m.importedHostsTotal,
		m.importedPortsTotal,
		m.inventoryHosts,
		m.inventoryServices,
	)

	return m
}

// Handler returns an HTTP handler exposing the registry in Prometheus
// exposition format.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Registry) RecordHTTPRequest(method string, status int, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method).Observe(seconds)
}

// RecordImportSuccess records a successful scan import and its entity counts.
func (m *Registry) RecordImportSuccess(hosts, services int) {
	m.scanImportsTotal.WithLabelValues("success").Inc()
	m.importedHostsTotal.Add(float64(hosts))
	m.importedPortsTotal.Add(float64(services))
}

// RecordImportFailure records a failed scan import.
func (m *Registry) RecordImportFailure() {
	m.scanImportsTotal.WithLabelValues("failure").Inc()
}

// SetInventorySize updates the inventory gauges after a mutation.
func (m *Registry) SetInventorySize(hosts, services int) {
	m.inventoryHosts.Set(float64(hosts))
	m.inventoryServices.Set(float64(services))
}
