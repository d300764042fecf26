package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// dispatchesTotal counts dispatch invocations that passed validation.
	dispatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "istbyan",
			Subsystem: "messages",
			Name:      "dispatches_total",
			Help:      "Number of message dispatch invocations",
		},
	)

	// sendsTotal counts individual send attempts.
	// Labels:
	// - status: "sent" or "failed"
	// - service_type: the category label
	sendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "istbyan",
			Subsystem: "messages",
			Name:      "sends_total",
			Help:      "Number of per-customer send attempts by outcome",
		},
		[]string{"status", "service_type"},
	)

	// reportQueriesTotal counts report computations.
	// Labels:
	// - report: "daily" or "summary"
	reportQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "istbyan",
			Subsystem: "reports",
			Name:      "queries_total",
			Help:      "Number of report computations",
		},
		[]string{"report"},
	)
)

// ObserveDispatch records one dispatch invocation.
func ObserveDispatch() {
	dispatchesTotal.Inc()
}

// ObserveSend records one per-customer send attempt.
func ObserveSend(status, serviceType string) {
	sendsTotal.WithLabelValues(status, serviceType).Inc()
}

// ObserveReport records one report computation.
func ObserveReport(report string) {
	reportQueriesTotal.WithLabelValues(report).Inc()
}
