package affordance

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestStageFrameBarrier(t *testing.T) {
	flags := InteractionFlags{}
	p := NewStateProvider(SignalFunc(func() InteractionFlags { return flags }))

	var published []float64
	r := NewFloatReceiver("scale", p, floatTheme(), SinkFunc[float64](func(v float64) { published = append(published, v) }))
	r.Tween = TweenConfig{Speed: 1000}

	st := NewStage(StageConfig{Workers: 2})
	st.AddProvider(p)
	if err := st.AddReceiver(r); err != nil {
		t.Fatal(err)
	}
	if r.Scheduler != st.Scheduler() {
		t.Error("AddReceiver should hand the stage scheduler to the receiver")
	}
	published = nil

	flags.Hovering = true
	st.Update(1.0 / 60)
	// The job for this frame is scheduled but not yet published.
	if len(published) != 0 {
		t.Fatalf("published during the scheduling frame: %v", published)
	}
	if st.Scheduler().Pending() != 1 {
		t.Errorf("Pending = %d, want 1", st.Scheduler().Pending())
	}

	st.Update(1.0 / 60)
	if len(published) != 1 || published[0] != 2 {
		t.Errorf("published %v, want [2] after the next frame's barrier", published)
	}

	st.Close()
	if r.Enabled() {
		t.Error("Close should disable receivers")
	}
	if st.Frame() != 2 {
		t.Errorf("Frame = %d, want 2", st.Frame())
	}
}

func TestStageAddReceiverError(t *testing.T) {
	st := NewStage(StageConfig{})
	r := NewFloatReceiver("broken", nil, nil, nil)
	if err := st.AddReceiver(r); !errors.Is(err, ErrMissingConfiguration) {
		t.Errorf("err = %v, want ErrMissingConfiguration", err)
	}
	// Disabled receivers are skipped.
	st.Update(0.1)
	st.RemoveReceiver(r)
	st.Close()
}

func TestStageRemoveReceiver(t *testing.T) {
	p := NewStateProvider(nil)
	st := NewStage(StageConfig{})
	st.AddProvider(p)
	r := NewFloatReceiver("scale", p, floatTheme(), SinkFunc[float64](func(float64) {}))
	if err := st.AddReceiver(r); err != nil {
		t.Fatal(err)
	}

	st.RemoveReceiver(r)
	if r.Enabled() {
		t.Error("RemoveReceiver should disable")
	}
	st.Update(0.1)
	if st.Scheduler().Pending() != 0 {
		t.Error("removed receiver still scheduled work")
	}
}

func TestStageSharesMetrics(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	flags := InteractionFlags{}
	p := NewStateProvider(SignalFunc(func() InteractionFlags { return flags }))
	st := NewStage(StageConfig{Metrics: m, Debug: true})
	st.AddProvider(p)

	cue := NewOneShotReceiver("cue", p, cueTheme(), OneShotFunc[string](func(string) {}))
	if err := st.AddReceiver(cue); err != nil {
		t.Fatal(err)
	}
	if cue.Metrics != m {
		t.Error("AddReceiver should attach stage metrics")
	}

	flags.Hovering = true
	st.Update(0.1)
	if got := counterValue(t, m.transitions.WithLabelValues("hovered")); got != 1 {
		t.Errorf("hovered transitions = %v, want 1", got)
	}
	if got := counterValue(t, m.effects.WithLabelValues("enter", "fired")); got != 1 {
		t.Errorf("fired enters = %v, want 1", got)
	}
	if stats := st.Stats(); stats.Frame != 1 || stats.Transitions != 1 {
		t.Errorf("Stats = %+v", stats)
	}
	st.Close()
}
