package affordance

import (
	"fmt"
	"strings"
)

// Receiver is a component driven once per frame by a Stage.
// Receivers are not safe for concurrent use; drive them from the update
// goroutine.
type Receiver interface {
	Enable() error
	Disable()
	Enabled() bool
	Update(dt float64)
}

type transitionKey struct {
	from, to StateIndex
}

// Activated layers on Selected, and Selected layers on Hovered. Leaving the
// parent for its modifier is not an exit, and the hover press/release pair
// does not re-announce the state underneath.
var (
	exitSuppressed = map[transitionKey]bool{
		{StateSelected, StateActivated}: true,
		{StateHovered, StateSelected}:   true,
	}
	enterSuppressed = map[transitionKey]bool{
		{StateHovered, StateSelected}: true,
		{StateSelected, StateHovered}: true,
	}
)

// ExitSuppressed reports whether leaving prev for next must skip prev's exit
// effect.
func ExitSuppressed(prev, next StateIndex) bool {
	return exitSuppressed[transitionKey{prev, next}]
}

// EnterSuppressed reports whether entering next from prev must skip next's
// enter effect.
func EnterSuppressed(prev, next StateIndex) bool {
	return enterSuppressed[transitionKey{prev, next}]
}

// missingConfig logs and returns ErrMissingConfiguration listing the unset
// fields.
func missingConfig(kind, name string, fields []string) error {
	err := fmt.Errorf("%w: %s %q needs %s", ErrMissingConfiguration, kind, name, strings.Join(fields, ", "))
	Log().Warn().
		Str("receiver", name).
		Strs("missing", fields).
		Msgf("%s disabled: missing configuration", kind)
	return err
}

func warnUnconfiguredTheme(kind, name string) {
	Log().Warn().
		Str("receiver", name).
		Msgf("%s theme has no backing data; all lookups are empty", kind)
}

// --- Continuous receivers ---

// TweenReceiver drives a continuously applied sink. On each state change it
// sets its variable's target to the new state's steady value; Update ticks
// the variable, and published values flow to Sink.
//
// Modifier suppression does not apply here: every state has a steady value
// and the variable simply heads toward it.
type TweenReceiver[T comparable] struct {
	Name      string
	Provider  *StateProvider
	Theme     *ThemeTable[T]
	Sink      Sink[T]
	Lerp      LerpFunc[T]
	Tween     TweenConfig
	Scheduler *Scheduler
	// Initial is the value published before any themed state applies.
	Initial T

	enabled  bool
	variable *TweenableVariable[T]
	driver   *tweenDriver
	bindings BindingsGroup

	// Range entries follow the provider's weight while the state holds.
	ranged bool
	entry  ThemeEntry[T]
	weight float64
}

// NewTweenReceiver creates a disabled receiver. Call Enable (or add it to a
// Stage) to start it.
func NewTweenReceiver[T comparable](name string, provider *StateProvider, theme *ThemeTable[T], sink Sink[T], lerp LerpFunc[T]) *TweenReceiver[T] {
	return &TweenReceiver[T]{
		Name:     name,
		Provider: provider,
		Theme:    theme,
		Sink:     sink,
		Lerp:     lerp,
	}
}

// NewColorReceiver creates a TweenReceiver for colors.
func NewColorReceiver(name string, provider *StateProvider, theme *ThemeTable[Color], sink Sink[Color]) *TweenReceiver[Color] {
	r := NewTweenReceiver(name, provider, theme, sink, LerpColor)
	r.Initial = ColorWhite
	return r
}

// NewFloatReceiver creates a TweenReceiver for scalars.
func NewFloatReceiver(name string, provider *StateProvider, theme *ThemeTable[float64], sink Sink[float64]) *TweenReceiver[float64] {
	return NewTweenReceiver(name, provider, theme, sink, LerpFloat)
}

// NewRotationReceiver creates a TweenReceiver for rotations that snaps when
// the rotation to the target exceeds DefaultSnapThreshold.
func NewRotationReceiver(name string, provider *StateProvider, theme *ThemeTable[Quat], sink Sink[Quat]) *TweenReceiver[Quat] {
	r := NewTweenReceiver(name, provider, theme, sink, SlerpQuat(DefaultSnapThreshold))
	r.Initial = QuatIdentity
	return r
}

func (r *TweenReceiver[T]) setScheduler(s *Scheduler) {
	if r.Scheduler == nil {
		r.Scheduler = s
	}
}

// Enable validates configuration, creates the variable and subscribes to
// the provider. On missing configuration the receiver stays disabled and
// ErrMissingConfiguration is returned.
func (r *TweenReceiver[T]) Enable() error {
	if r.enabled {
		return nil
	}
	var missing []string
	if r.Provider == nil {
		missing = append(missing, "provider")
	}
	if r.Theme == nil {
		missing = append(missing, "theme")
	}
	if r.Sink == nil {
		missing = append(missing, "sink")
	}
	if r.Lerp == nil {
		missing = append(missing, "lerp")
	}
	if len(missing) > 0 {
		return missingConfig("tween receiver", r.Name, missing)
	}
	if !r.Theme.Configured() {
		warnUnconfiguredTheme("tween receiver", r.Name)
	}

	r.variable = NewTweenableVariable(r.Initial, r.Lerp, r.Scheduler)
	r.driver = newTweenDriver(r.Tween)
	r.ranged = false
	r.enabled = true

	r.bindings.Add(r.variable.SubscribeAndUpdate(r.Sink.Apply))
	r.bindings.Add(r.Provider.SubscribeAndUpdate(r.onStateUpdated))
	return nil
}

// Disable unsubscribes from the provider and disposes the variable,
// waiting for its in-flight job.
func (r *TweenReceiver[T]) Disable() {
	if !r.enabled {
		return
	}
	r.enabled = false
	r.bindings.Clear()
	r.variable.Dispose()
}

// Enabled reports whether the receiver is running.
func (r *TweenReceiver[T]) Enabled() bool {
	return r.enabled
}

// Value returns the last value published to the sink.
func (r *TweenReceiver[T]) Value() T {
	if r.variable == nil {
		return r.Initial
	}
	return r.variable.Value()
}

// Variable returns the variable created by the last Enable, or nil.
func (r *TweenReceiver[T]) Variable() *TweenableVariable[T] {
	return r.variable
}

func (r *TweenReceiver[T]) onStateUpdated(e StateEvent) {
	entry, ok := r.Theme.LookupOrFallback(e.Current)
	if !ok || !entry.HasValue {
		r.ranged = false
		return
	}
	r.entry = entry
	r.ranged = entry.HasRange
	r.weight = e.Weight

	target := entry.Resolve(e.Weight, r.Lerp)
	if e.Initial() {
		r.variable.Snap(target)
		return
	}
	r.variable.SetTarget(target)
	r.driver.restart()
}

// Update follows weight changes of range entries and schedules one tween
// step for this frame.
func (r *TweenReceiver[T]) Update(dt float64) {
	if !r.enabled {
		return
	}
	if r.ranged {
		if w := r.Provider.Weight(); w != r.weight {
			r.weight = w
			r.variable.SetTarget(r.entry.Resolve(w, r.Lerp))
		}
	}
	r.variable.Tick(r.driver.blend(dt))
}

// --- One-shot receivers ---

// OneShotReceiver fires discrete enter/exit payloads, such as audio clips,
// on state changes. Exit effects fire before enter effects. Transitions
// into a modifier state, or back from it, skip the effects listed by
// ExitSuppressed and EnterSuppressed. Absent entries and zero payloads do
// nothing.
type OneShotReceiver[T comparable] struct {
	Name     string
	Provider *StateProvider
	Theme    *ThemeTable[T]
	Sink     OneShotSink[T]
	Metrics  *Metrics

	enabled  bool
	bindings BindingsGroup
}

// NewOneShotReceiver creates a disabled receiver.
func NewOneShotReceiver[T comparable](name string, provider *StateProvider, theme *ThemeTable[T], sink OneShotSink[T]) *OneShotReceiver[T] {
	return &OneShotReceiver[T]{
		Name:     name,
		Provider: provider,
		Theme:    theme,
		Sink:     sink,
	}
}

// NewAudioReceiver creates a OneShotReceiver playing clips.
func NewAudioReceiver(name string, provider *StateProvider, theme *ThemeTable[*Clip], sink OneShotSink[*Clip]) *OneShotReceiver[*Clip] {
	return NewOneShotReceiver(name, provider, theme, sink)
}

func (r *OneShotReceiver[T]) setMetrics(m *Metrics) {
	if r.Metrics == nil {
		r.Metrics = m
	}
}

// Enable validates configuration and subscribes to the provider.
func (r *OneShotReceiver[T]) Enable() error {
	if r.enabled {
		return nil
	}
	var missing []string
	if r.Provider == nil {
		missing = append(missing, "provider")
	}
	if r.Theme == nil {
		missing = append(missing, "theme")
	}
	if r.Sink == nil {
		missing = append(missing, "sink")
	}
	if len(missing) > 0 {
		return missingConfig("one-shot receiver", r.Name, missing)
	}
	if !r.Theme.Configured() {
		warnUnconfiguredTheme("one-shot receiver", r.Name)
	}

	r.enabled = true
	r.bindings.Add(r.Provider.Subscribe(r.onStateUpdated))
	return nil
}

// Disable unsubscribes from the provider.
func (r *OneShotReceiver[T]) Disable() {
	if !r.enabled {
		return
	}
	r.enabled = false
	r.bindings.Clear()
}

// Enabled reports whether the receiver is running.
func (r *OneShotReceiver[T]) Enabled() bool {
	return r.enabled
}

// Update does nothing; one-shot effects fire from state events.
func (r *OneShotReceiver[T]) Update(float64) {}

func (r *OneShotReceiver[T]) onStateUpdated(e StateEvent) {
	if e.Initial() {
		return
	}
	prev, next := e.Previous, e.Current

	if exit, ok := r.Theme.Lookup(prev); ok && exit.HasExit {
		if ExitSuppressed(prev, next) {
			r.Metrics.effect("exit", false)
		} else {
			r.fire("exit", exit.Exit)
		}
	}
	if enter, ok := r.Theme.Lookup(next); ok && enter.HasEnter {
		if EnterSuppressed(prev, next) {
			r.Metrics.effect("enter", false)
		} else {
			r.fire("enter", enter.Enter)
		}
	}
}

func (r *OneShotReceiver[T]) fire(kind string, payload T) {
	var zero T
	if payload == zero {
		return
	}
	r.Sink.Play(payload)
	r.Metrics.effect(kind, true)
}
