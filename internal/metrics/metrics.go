// Package metrics holds the prometheus instruments for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HealthChecks counts health aggregations by resulting status.
	HealthChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ironic_aio_health_checks_total",
		Help: "Health checks performed, labelled by resulting status.",
	}, []string{"status"})

	// ConnectivityFailures counts failed connection attempts to Ironic.
	// kind is "expected" (network/endpoint errors) or "unexpected".
	ConnectivityFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ironic_aio_connectivity_failures_total",
		Help: "Failed Ironic connection attempts, labelled by failure kind.",
	}, []string{"kind"})

	// ConnectDuration observes how long connection attempts take.
	ConnectDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ironic_aio_connect_duration_seconds",
		Help:    "Duration of Ironic connection attempts.",
		Buckets: prometheus.DefBuckets,
	})
)
