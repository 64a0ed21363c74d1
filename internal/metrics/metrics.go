// Package metrics registers the service's Prometheus collectors and
// exposes the scrape handler mounted at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PipelineRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeopt_pipeline_runs_total",
		Help: "Total optimization pipeline runs",
	})
	PipelineFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeopt_pipeline_failures_total",
		Help: "Pipeline runs that ended in error, by stage",
	}, []string{"stage"})
	// Pipeline runs pace remote geocoding calls, so whole-run latency is
	// measured in seconds to minutes rather than milliseconds.
	PipelineDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "routeopt_pipeline_duration_ms",
		Help:    "End-to-end pipeline duration in milliseconds",
		Buckets: []float64{100, 500, 1000, 5000, 15000, 30000, 60000, 120000},
	})
	GeocodeLookupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeopt_geocode_lookups_total",
		Help: "Remote geocoder lookups issued",
	})
	GeocodeCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeopt_geocode_cache_hits_total",
		Help: "Geocode lookups served from cache",
	})
	GeocodeSkipsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeopt_geocode_skips_total",
		Help: "Addresses skipped because the geocoder found no match",
	})
	ORSRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeopt_ors_requests_total",
		Help: "OpenRouteService requests by endpoint",
	}, []string{"endpoint"})
	ORSDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "routeopt_ors_duration_ms",
		Help:    "OpenRouteService call duration in milliseconds",
		Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000, 10000},
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(PipelineRunsTotal)
	prometheus.MustRegister(PipelineFailuresTotal)
	prometheus.MustRegister(PipelineDurationMs)
	prometheus.MustRegister(GeocodeLookupsTotal)
	prometheus.MustRegister(GeocodeCacheHitsTotal)
	prometheus.MustRegister(GeocodeSkipsTotal)
	prometheus.MustRegister(ORSRequestsTotal)
	prometheus.MustRegister(ORSDurationMs)
}

// Handler returns the Prometheus scrape handler for the registered
// collectors.
func Handler() http.Handler { return promhttp.Handler() }
