// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_questions_total",
			Help: "Total number of questions processed, by outcome",
		},
		[]string{"outcome"},
	)

	GenerationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_generation_requests_total",
			Help: "Total number of calls to the generation backend, by result",
		},
		[]string{"result"},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "assistant_generation_duration_seconds",
			Help: "Duration of generation backend round-trips in seconds",
		},
	)

	CatalogQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_catalog_queries_total",
			Help: "Total number of catalog queries issued, by query shape",
		},
		[]string{"query"},
	)
)

// Outcome label values for QuestionsTotal.
const (
	OutcomeAnswered = "answered"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Result label values for GenerationRequests.
const (
	ResultOK        = "ok"
	ResultTransport = "transport_error"
	ResultParse     = "parse_fallback"
)
