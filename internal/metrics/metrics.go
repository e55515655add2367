// Package metrics holds the Prometheus instruments used across the service.
// Collectors are registered with the default registry in init, so wiring
// promhttp.Handler on /metrics exposes all of them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"})

	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_generations_total",
			Help: "Content generation calls by result.",
		}, []string{"result"})

	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "site_generation_duration_seconds",
			Help:    "Latency of content generation calls.",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 90, 120},
		})

	SiteOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_operations_total",
			Help: "Site lifecycle operations (save, publish, unpublish) by result.",
		}, []string{"op", "result"})

	PartialWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_partial_writes_total",
			Help: "Multi-record operations that stopped after the first write, by op and failed stage.",
		}, []string{"op", "stage"})

	PanicsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Handler panics turned into 500 responses.",
		})

	PublicCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "public_site_cache_total",
			Help: "Public site cache lookups by result (hit, miss, error).",
		}, []string{"result"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		GenerationsTotal,
		GenerationDuration,
		SiteOperationsTotal,
		PartialWritesTotal,
		PanicsTotal,
		PublicCacheTotal,
	)
}

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
