package triage

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for the triage subsystem.
type Metrics struct {
	TriagesTotal     *prometheus.CounterVec
	TriageDuration   prometheus.Histogram
	SymptomsMatched  prometheus.Histogram
	EmptyInputsTotal prometheus.Counter
}

// NewMetrics registers and returns triage metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TriagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petvet_triages_total",
			Help: "Total triage calls by resulting urgency level.",
		}, []string{"urgency"}),
		TriageDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "petvet_triage_duration_seconds",
			Help:    "Duration of triage calls in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us .. ~2.6s
		}),
		SymptomsMatched: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "petvet_triage_symptoms_matched",
			Help:    "Recognized symptoms per triage call.",
			Buckets: prometheus.LinearBuckets(0, 1, 8), // 0 .. 7
		}),
		EmptyInputsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petvet_triage_empty_inputs_total",
			Help: "Triage calls with empty or whitespace-only input.",
		}),
	}

	reg.MustRegister(
		m.TriagesTotal,
		m.TriageDuration,
		m.SymptomsMatched,
		m.EmptyInputsTotal,
	)

	return m
}

// Hooks returns a Hooks that increments the corresponding metrics.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnTriage: func(urgency UrgencyLevel, symptomCount int, duration float64) {
			m.TriagesTotal.WithLabelValues(urgency.String()).Inc()
			m.TriageDuration.Observe(duration)
			m.SymptomsMatched.Observe(float64(symptomCount))
		},
		OnEmptyInput: func() {
			m.EmptyInputsTotal.Inc()
		},
	}
}
