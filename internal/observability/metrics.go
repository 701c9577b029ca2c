package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the impact
// pipeline.
type Metrics struct {
	ImpactRequests prometheus.Counter
	ImpactDuration prometheus.Histogram

	// Source adapter metrics.
	SourceRequests *prometheus.CounterVec   // labels: source, outcome={success,error}
	SourceDuration *prometheus.HistogramVec // labels: source

	// Fallback resolution metrics.
	FallbackResolutions *prometheus.CounterVec // labels: source, origin={live,cached,synthetic}

	// Boundary collaborator metrics.
	NarrativeOutcomes  *prometheus.CounterVec // labels: outcome={generated,fallback}
	ClassifierOutcomes *prometheus.CounterVec // labels: outcome={classified,default}
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.ImpactRequests,
		m.ImpactDuration,
		m.SourceRequests,
		m.SourceDuration,
		m.FallbackResolutions,
		m.NarrativeOutcomes,
		m.ClassifierOutcomes,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ImpactRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flytip",
			Name:      "impact_requests_total",
			Help:      "Total impact assessments served.",
		}),
		ImpactDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flytip",
			Name:      "impact_request_duration_seconds",
			Help:      "End-to-end duration of one impact assessment.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SourceRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flytip",
			Name:      "source_requests_total",
			Help:      "Source adapter fetches by source and outcome.",
		}, []string{"source", "outcome"}),
		SourceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flytip",
			Name:      "source_request_duration_seconds",
			Help:      "Source adapter fetch duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"source"}),
		FallbackResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flytip",
			Name:      "fallback_resolutions_total",
			Help:      "Per-source resolutions by final value origin.",
		}, []string{"source", "origin"}),
		NarrativeOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flytip",
			Name:      "narrative_outcomes_total",
			Help:      "Narrative synthesis outcomes (generated vs templated fallback).",
		}, []string{"outcome"}),
		ClassifierOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flytip",
			Name:      "classifier_outcomes_total",
			Help:      "Waste classification outcomes (classified vs safe default).",
		}, []string{"outcome"}),
	}
}
