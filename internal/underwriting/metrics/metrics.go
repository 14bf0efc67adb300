package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the underwriting module.
type Metrics struct {
	// Decision outcomes by decision and reason code
	Outcomes *prometheus.CounterVec

	// Evidence gathering latencies by source
	EvidenceLatency *prometheus.HistogramVec

	// Overall evaluation latency including evidence gathering
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance with all underwriting metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nbfc_underwriting_outcomes_total",
			Help: "Total underwriting outcomes by decision and reason",
		}, []string{"decision", "reason"}),

		EvidenceLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nbfc_underwriting_evidence_duration_seconds",
			Help:    "Duration of evidence gathering by source",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"source"}), // source: "directory", "bureau"

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "nbfc_underwriting_evaluate_duration_seconds",
			Help:    "Duration of full evaluation including evidence gathering",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}),
	}
}

// IncrementOutcome records a decision outcome.
func (m *Metrics) IncrementOutcome(decision, reason string) {
	if m != nil {
		m.Outcomes.WithLabelValues(decision, reason).Inc()
	}
}

// ObserveEvidenceLatency records the duration of one evidence fetch.
func (m *Metrics) ObserveEvidenceLatency(source string, d time.Duration) {
	if m != nil {
		m.EvidenceLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
