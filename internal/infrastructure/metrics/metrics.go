// Package metrics registers the Prometheus instruments for exchange
// operations. HTTP-level metrics live in the HTTP middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Account metrics
	AccountsRegistered prometheus.Counter
	RegisterConflicts  prometheus.Counter

	// Resolve cache metrics
	ResolveCacheHits   *prometheus.CounterVec
	ResolveCacheMisses *prometheus.CounterVec
	ResolveCacheErrors prometheus.Counter

	// Storage metrics
	StorageErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AccountsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "rse_accounts_registered_total",
			Help: "Total number of accounts registered",
		}),
		RegisterConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "rse_register_conflicts_total",
			Help: "Total registrations rejected because the identity was already linked",
		}),

		ResolveCacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rse_resolve_cache_hits_total",
				Help: "Total resolve lookups served from the cache",
			},
			[]string{"identity"},
		),
		ResolveCacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rse_resolve_cache_misses_total",
				Help: "Total resolve lookups that fell through to the database",
			},
			[]string{"identity"},
		),
		ResolveCacheErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "rse_resolve_cache_errors_total",
			Help: "Total cache operations that failed and were bypassed",
		}),

		StorageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rse_storage_errors_total",
				Help: "Total storage errors by operation",
			},
			[]string{"operation"},
		),
	}
}
