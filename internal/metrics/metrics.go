package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for a merge run. Scraped via the optional metrics server;
// useful when a capped run over thousands of objects takes minutes.

var (
	RPCCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinmerger",
		Subsystem: "rpc",
		Name:      "calls_total",
		Help:      "Total JSON-RPC calls by method and status",
	}, []string{"method", "status"})

	RPCRateLimitWaits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "coinmerger",
		Subsystem: "rpc",
		Name:      "rate_limit_waits_total",
		Help:      "Total submissions delayed by the inter-batch pacer",
	})

	ObjectsFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "coinmerger",
		Subsystem: "lister",
		Name:      "objects_fetched_total",
		Help:      "Total coin objects returned by listing pages",
	})

	BatchesSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "coinmerger",
		Subsystem: "merger",
		Name:      "batches_submitted_total",
		Help:      "Total merge transactions submitted successfully",
	})

	MergeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "coinmerger",
		Subsystem: "merger",
		Name:      "failures_total",
		Help:      "Total coin types whose merge run failed",
	})
)
