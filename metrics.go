package affordance

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts interpolation jobs, state transitions and one-shot effects.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	jobs        *prometheus.CounterVec
	transitions *prometheus.CounterVec
	effects     *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg. A nil reg
// creates unregistered counters.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		jobs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "affordance",
				Name:      "tween_jobs_total",
				Help:      "Interpolation jobs by outcome.",
			},
			[]string{"outcome"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "affordance",
				Name:      "state_transitions_total",
				Help:      "State changes published by providers, by new state.",
			},
			[]string{"state"},
		),
		effects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "affordance",
				Name:      "oneshot_effects_total",
				Help:      "One-shot enter/exit effects by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.jobs, m.transitions, m.effects} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("affordance: register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) jobScheduled() {
	if m != nil {
		m.jobs.WithLabelValues("scheduled").Inc()
	}
}

func (m *Metrics) jobCompleted() {
	if m != nil {
		m.jobs.WithLabelValues("completed").Inc()
	}
}

func (m *Metrics) jobCancelled() {
	if m != nil {
		m.jobs.WithLabelValues("cancelled").Inc()
	}
}

func (m *Metrics) stateTransition(to StateIndex) {
	if m != nil {
		m.transitions.WithLabelValues(to.String()).Inc()
	}
}

func (m *Metrics) effect(kind string, fired bool) {
	if m == nil {
		return
	}
	outcome := "suppressed"
	if fired {
		outcome = "fired"
	}
	m.effects.WithLabelValues(kind, outcome).Inc()
}
