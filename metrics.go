package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"lg/nutrition-calculator-api/internal/nutrition"
)

// metrics counts calculator submissions. Registered on the registry handed
// to newMetrics so tests can use a private one.
type metrics struct {
	submissions *prometheus.CounterVec
	issues      *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nutrition",
				Name:      "submissions_total",
				Help:      "Count of calculator submissions by outcome state.",
			},
			[]string{"outcome"},
		),
		issues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nutrition",
				Name:      "validation_issues_total",
				Help:      "Count of validation issues by field.",
			},
			[]string{"field"},
		),
	}
	reg.MustRegister(m.submissions, m.issues)
	return m
}

// observe records one submission outcome.
func (m *metrics) observe(o nutrition.Outcome) {
	m.submissions.WithLabelValues(o.State.String()).Inc()
	for _, is := range o.Issues {
		field := is.Field
		if field == "" {
			field = "none"
		}
		m.issues.WithLabelValues(field).Inc()
	}
}
