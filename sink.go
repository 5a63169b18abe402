package affordance

import "github.com/hajimehoshi/ebiten/v2"

// Sink receives continuously applied values (color, scalar, vector).
type Sink[T any] interface {
	Apply(T)
}

// SinkFunc adapts a function to Sink.
type SinkFunc[T any] func(T)

// Apply calls f.
func (f SinkFunc[T]) Apply(v T) {
	f(v)
}

// OneShotSink receives discrete payloads such as audio clips.
type OneShotSink[T any] interface {
	Play(T)
}

// OneShotFunc adapts a function to OneShotSink.
type OneShotFunc[T any] func(T)

// Play calls f.
func (f OneShotFunc[T]) Play(v T) {
	f(v)
}

// FieldSink writes each value to *Target. A nil Target is ignored.
type FieldSink[T any] struct {
	Target *T
}

// Apply stores v.
func (s FieldSink[T]) Apply(v T) {
	if s.Target != nil {
		*s.Target = v
	}
}

// ColorScaleSink writes colors into an ebiten.ColorScale, typically the
// ColorScale of DrawImageOptions reused every frame.
type ColorScaleSink struct {
	Target *ebiten.ColorScale
}

// Apply replaces the scale with c, premultiplied.
func (s ColorScaleSink) Apply(c Color) {
	if s.Target == nil {
		return
	}
	a := clamp01(c.A)
	s.Target.Reset()
	s.Target.Scale(float32(clamp01(c.R)*a), float32(clamp01(c.G)*a), float32(clamp01(c.B)*a), float32(a))
}
