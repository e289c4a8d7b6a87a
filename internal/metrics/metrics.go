// Package metrics exposes prometheus counters for the API. Counters are
// always incremented; they only become visible once Register is called
// and the /metrics route is mounted.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var generationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "passforge_generations_total",
		Help: "Total generation requests by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

var strengthChecksTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "passforge_strength_checks_total",
		Help: "Total strength check requests.",
	},
)

// Register registers all collectors with the default registry.
func Register() {
	prometheus.MustRegister(generationsTotal, strengthChecksTotal)
}

// Handler returns the prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveGeneration records one generation request. kind is "password"
// or "passphrase"; outcome is "ok" or "error".
func ObserveGeneration(kind, outcome string) {
	generationsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveStrengthCheck records one strength check request.
func ObserveStrengthCheck() {
	strengthChecksTotal.Inc()
}
