package affordance

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultTweenSpeed is the smoothing speed used when TweenConfig leaves both
// Speed and Duration unset.
const DefaultTweenSpeed = 8.0

// TweenConfig controls how fast a receiver's variable follows its target.
//
// With Duration > 0 every target change starts an eased Transition of that
// length. Otherwise the variable covers Speed*dt of the remaining distance
// each tick.
type TweenConfig struct {
	Speed    float64
	Duration float32
	Ease     ease.TweenFunc
}

// SpeedBlend returns the per-tick blend factor for smoothing at speed
// (fraction of remaining distance per second), clamped to [0, 1].
func SpeedBlend(dt, speed float64) float64 {
	return clamp01(dt * speed)
}

// Transition converts an eased 0→1 gween tween into incremental blend
// factors. Feeding each Step result to TweenableVariable.Tick reproduces the
// eased curve from the value at Reset to the target, even though the variable
// only knows "blend toward target by t".
//
// Easing functions that overshoot (OutBack, OutElastic) are clamped, since a
// blend outside [0, 1] has no meaning for a single lerp step.
type Transition struct {
	tween    *gween.Tween
	duration float32
	progress float64
	Done     bool
}

// NewTransition creates a Transition lasting duration seconds. A nil fn uses
// ease.Linear.
func NewTransition(duration float32, fn ease.TweenFunc) *Transition {
	if fn == nil {
		fn = ease.Linear
	}
	return &Transition{
		tween:    gween.New(0, 1, duration, fn),
		duration: duration,
	}
}

// Step advances the transition by dt seconds and returns the blend factor
// for this tick. Once done it always returns 1.
func (tr *Transition) Step(dt float32) float64 {
	if tr.Done {
		return 1
	}
	if tr.duration <= 0 {
		tr.Done = true
		tr.progress = 1
		return 1
	}

	val, finished := tr.tween.Update(dt)
	if finished {
		tr.Done = true
		tr.progress = 1
		return 1
	}

	p := float64(val)
	remaining := 1 - tr.progress
	blend := 1.0
	if remaining > 0 {
		blend = (p - tr.progress) / remaining
	}
	if p > tr.progress {
		tr.progress = p
	}
	return clamp01(blend)
}

// Reset restarts the transition from the beginning.
func (tr *Transition) Reset() {
	tr.tween.Reset()
	tr.progress = 0
	tr.Done = false
}

// tweenDriver turns frame time into blend factors according to a TweenConfig.
type tweenDriver struct {
	cfg        TweenConfig
	transition *Transition
}

func newTweenDriver(cfg TweenConfig) *tweenDriver {
	d := &tweenDriver{cfg: cfg}
	if cfg.Duration > 0 {
		d.transition = NewTransition(cfg.Duration, cfg.Ease)
		d.transition.Done = true
	} else if d.cfg.Speed <= 0 {
		d.cfg.Speed = DefaultTweenSpeed
	}
	return d
}

// restart is called whenever the target changes.
func (d *tweenDriver) restart() {
	if d.transition != nil {
		d.transition.Reset()
	}
}

func (d *tweenDriver) blend(dt float64) float64 {
	if d.transition != nil {
		return d.transition.Step(float32(dt))
	}
	return SpeedBlend(dt, d.cfg.Speed)
}
