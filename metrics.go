package esadmin

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	invokesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "esadmin_client",
			Name:      "invokes_total",
			Help:      "Calls dispatched to the search-engine adapter.",
		},
		[]string{"operation"},
	)

	invokeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "esadmin_client",
			Name:      "invoke_failures_total",
			Help:      "Calls that ended in an api or network error.",
		},
		[]string{"operation", "kind"},
	)
)
