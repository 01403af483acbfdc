package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the chat core.
type Metrics struct {
	// Chat metrics
	MessagesHandled *prometheus.CounterVec
	EntriesRecorded prometheus.Counter
	ParseFailures   prometheus.Counter
	UndosApplied    prometheus.Counter

	// External interface metrics
	LedgersCleared    prometheus.Counter
	FeedbackSubmitted prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		MessagesHandled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auntiecount_messages_total",
				Help: "Inbound chat messages by routed kind",
			},
			[]string{"kind"},
		),
		EntriesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "auntiecount_entries_recorded_total",
			Help: "Total number of expense entries recorded",
		}),
		ParseFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "auntiecount_parse_failures_total",
			Help: "Messages that matched neither expense grammar",
		}),
		UndosApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "auntiecount_undos_total",
			Help: "Total number of undo operations applied",
		}),
		LedgersCleared: promauto.NewCounter(prometheus.CounterOpts{
			Name: "auntiecount_ledgers_cleared_total",
			Help: "Ledgers emptied through the clear-by-token interface",
		}),
		FeedbackSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "auntiecount_feedback_submitted_total",
			Help: "Total number of feedback records stored",
		}),
	}
}
