package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an http.Handler exposing the registry's metrics in
// Prometheus exposition format. Mount it wherever the embedding
// application serves metrics:
//
//	mux.Handle("/metrics", metric.Handler(registry))
func Handler(registry *Registry) http.Handler {
	return promhttp.HandlerFor(registry.PrometheusRegistry(), promhttp.HandlerOpts{})
}
