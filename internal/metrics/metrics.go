package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	RecordsAppended = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatrelay_records_appended_total",
		Help: "Interaction records handed to the store, by store and result",
	}, []string{"store", "result"})

	RecordedTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatrelay_recorded_tokens_total",
		Help: "Token counts reported by clients in recorded interactions",
	}, []string{"kind"})

	Completions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatrelay_completions_total",
		Help: "Completion relay calls, by provider and result",
	}, []string{"provider", "result"})

	CompletionTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatrelay_completion_tokens_total",
		Help: "Token usage reported by the completion provider",
	}, []string{"provider", "kind"})

	CompletionLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chatrelay_completion_duration_seconds",
		Help:    "Latency of the outbound completion call",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"provider"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chatrelay_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
