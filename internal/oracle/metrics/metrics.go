package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the oracle module.
type Metrics struct {
	// Verdict counts by outcome
	Verdicts *prometheus.CounterVec

	// Attestations issued by result
	Attestations *prometheus.CounterVec

	// Full evaluation latency including all upstream calls
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance with all oracle metrics registered.
func New() *Metrics {
	return &Metrics{
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "boostoracle_verdicts_total",
			Help: "Total evaluation verdicts by outcome",
		}, []string{"verdict"}),

		Attestations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "boostoracle_attestations_total",
			Help: "Total attestations issued by result",
		}, []string{"result"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "boostoracle_evaluate_duration_seconds",
			Help:    "Duration of full offer evaluation including upstream calls",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementVerdict records an evaluation verdict.
func (m *Metrics) IncrementVerdict(verdict string) {
	if m != nil {
		m.Verdicts.WithLabelValues(verdict).Inc()
	}
}

// IncrementAttestation records an issued attestation.
func (m *Metrics) IncrementAttestation(result bool) {
	if m != nil {
		label := "false"
		if result {
			label = "true"
		}
		m.Attestations.WithLabelValues(label).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
