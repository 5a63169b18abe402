package affordance

import (
	"context"
	"math"
	"sync"
)

// LerpFunc blends from a toward b by t in [0, 1].
type LerpFunc[T any] func(a, b T, t float64) T

// TweenableVariable holds a published current value that moves toward a
// target one Tick at a time. The blend itself runs on the Scheduler's
// workers; the new value is published to subscribers when the job is
// consumed, either by Scheduler.Complete or by this variable's next Tick.
//
// At most one job per variable is in flight. SetTarget never blocks: a target
// set while a job is running is picked up by the next Tick, and the running
// job cannot overwrite it because jobs only ever produce a new current.
type TweenableVariable[T comparable] struct {
	current *Bindable[T]
	lerp    LerpFunc[T]
	sched   *Scheduler

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	target   T
	inflight *job
	disposed bool
}

// NewTweenableVariable creates a variable whose current and target both start
// at initial. A nil sched uses DefaultScheduler.
func NewTweenableVariable[T comparable](initial T, lerp LerpFunc[T], sched *Scheduler) *TweenableVariable[T] {
	if sched == nil {
		sched = DefaultScheduler()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &TweenableVariable[T]{
		current: NewBindable(initial),
		lerp:    lerp,
		sched:   sched,
		ctx:     ctx,
		cancel:  cancel,
		target:  initial,
	}
}

// Value returns the last published current value.
func (v *TweenableVariable[T]) Value() T {
	return v.current.Value()
}

// Target returns the value the variable is moving toward.
func (v *TweenableVariable[T]) Target() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.target
}

// SetTarget changes the value the variable moves toward.
func (v *TweenableVariable[T]) SetTarget(t T) {
	v.mu.Lock()
	v.target = t
	v.mu.Unlock()
}

// Snap completes any in-flight job, then sets both target and current to t
// and publishes immediately.
func (v *TweenableVariable[T]) Snap(t T) {
	v.Complete()
	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return
	}
	v.target = t
	v.mu.Unlock()
	v.current.Set(t)
}

// Subscribe registers fn to be called with each newly published value.
func (v *TweenableVariable[T]) Subscribe(fn func(T)) SubscriptionHandle {
	return v.current.Subscribe(fn)
}

// SubscribeAndUpdate registers fn and calls it with the current value.
func (v *TweenableVariable[T]) SubscribeAndUpdate(fn func(T)) SubscriptionHandle {
	return v.current.SubscribeAndUpdate(fn)
}

// Tick schedules one blend step of the current value toward the target.
// blend is clamped to [0, 1]; 0 leaves the value unchanged and 1 snaps to the
// target. Any previous job of this variable is completed first.
func (v *TweenableVariable[T]) Tick(blend float64) {
	v.Complete()

	if math.IsNaN(blend) {
		blend = 0
	}
	blend = clamp01(blend)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return
	}

	from := v.current.Value()
	to := v.target
	lerp := v.lerp

	// next is this job's private result slot.
	var next T
	compute := func() {
		switch {
		case blend >= 1:
			next = to
		case blend <= 0 || lerp == nil:
			next = from
		default:
			next = lerp(from, to, blend)
		}
	}
	publish := func() {
		v.current.Set(next)
	}
	v.inflight = v.sched.schedule(v.ctx, compute, publish)
}

// Complete waits for this variable's in-flight job, if any, and publishes its
// result on the calling goroutine.
func (v *TweenableVariable[T]) Complete() {
	v.mu.Lock()
	j := v.inflight
	v.inflight = nil
	v.mu.Unlock()
	if j != nil {
		v.sched.consume(j)
	}
}

// InFlight reports whether a job has been scheduled and not yet consumed.
func (v *TweenableVariable[T]) InFlight() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inflight != nil && !v.inflight.consumed.Load()
}

// Dispose cancels the variable. It waits for an in-flight job, drops its
// result and removes all subscribers. The last published value is kept.
// Subsequent Ticks do nothing.
func (v *TweenableVariable[T]) Dispose() {
	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return
	}
	v.disposed = true
	j := v.inflight
	v.inflight = nil
	v.mu.Unlock()

	v.cancel()
	if j != nil {
		v.sched.discard(j)
	}
	v.current.ClearSubscribers()
}

// Disposed reports whether Dispose has been called.
func (v *TweenableVariable[T]) Disposed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.disposed
}
