package affordance

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	return testutil.ToFloat64(c)
}

func TestNewMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetrics(reg); err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Error("registering twice should fail")
	}
}

func TestMetricsNilIsSafe(t *testing.T) {
	var m *Metrics
	m.jobScheduled()
	m.jobCompleted()
	m.jobCancelled()
	m.stateTransition(StateHovered)
	m.effect("enter", true)
}

func TestMetricsJobsAndTransitions(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	s := NewScheduler(SchedulerConfig{Metrics: m})

	kept := NewTweenableVariable(0.0, LerpFloat, s)
	kept.SetTarget(1)
	kept.Tick(0.5)
	dropped := NewTweenableVariable(0.0, LerpFloat, s)
	dropped.SetTarget(1)
	dropped.Tick(0.5)
	dropped.Dispose()
	s.Complete()

	if got := counterValue(t, m.jobs.WithLabelValues("scheduled")); got != 2 {
		t.Errorf("scheduled = %v, want 2", got)
	}
	if got := counterValue(t, m.jobs.WithLabelValues("completed")); got != 1 {
		t.Errorf("completed = %v, want 1", got)
	}
	if got := counterValue(t, m.jobs.WithLabelValues("cancelled")); got != 1 {
		t.Errorf("cancelled = %v, want 1", got)
	}

	p := NewStateProvider(nil)
	p.SetMetrics(m)
	p.Update(InteractionFlags{Hovering: true})
	p.Update(InteractionFlags{Hovering: true})
	p.Update(InteractionFlags{})
	if got := counterValue(t, m.transitions.WithLabelValues("hovered")); got != 1 {
		t.Errorf("hovered transitions = %v, want 1", got)
	}
	if got := counterValue(t, m.transitions.WithLabelValues("idle")); got != 1 {
		t.Errorf("idle transitions = %v, want 1", got)
	}
}
