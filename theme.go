package affordance

import "sync/atomic"

// ThemeEntry is the output definition for one state.
//
// One-shot receivers read Enter and Exit. Continuous receivers read Value,
// optionally blended from Low by the state's weight when HasRange is set.
// Any part may be missing; receivers treat a missing part as "do nothing".
type ThemeEntry[T any] struct {
	Enter    T
	HasEnter bool
	Exit     T
	HasExit  bool

	Value    T
	HasValue bool
	Low      T
	HasRange bool
}

// SteadyEntry returns an entry holding a single steady value.
func SteadyEntry[T any](v T) ThemeEntry[T] {
	return ThemeEntry[T]{Value: v, HasValue: true}
}

// RangeEntry returns an entry whose steady value is lerp(low, high, weight).
func RangeEntry[T any](low, high T) ThemeEntry[T] {
	return ThemeEntry[T]{Low: low, Value: high, HasValue: true, HasRange: true}
}

// OneShotEntry returns an entry with enter and exit payloads.
func OneShotEntry[T any](enter, exit T) ThemeEntry[T] {
	return ThemeEntry[T]{Enter: enter, HasEnter: true, Exit: exit, HasExit: true}
}

// Resolve returns the steady value for the given weight.
func (e ThemeEntry[T]) Resolve(weight float64, lerp LerpFunc[T]) T {
	if e.HasRange && lerp != nil {
		return lerp(e.Low, e.Value, clamp01(weight))
	}
	return e.Value
}

// ThemeData maps states to entries, with an optional fallback entry.
//
// Treat a ThemeData as immutable once it is reachable from a ThemeTable or
// SharedTheme: build a new one and swap it in instead of editing in place.
type ThemeData[T any] struct {
	entries     [StateCount]ThemeEntry[T]
	present     [StateCount]bool
	fallback    ThemeEntry[T]
	hasFallback bool
}

// NewThemeData returns empty theme data.
func NewThemeData[T any]() *ThemeData[T] {
	return &ThemeData[T]{}
}

// Set stores the entry for s.
func (d *ThemeData[T]) Set(s StateIndex, e ThemeEntry[T]) error {
	if err := s.Validate(); err != nil {
		return err
	}
	d.entries[s] = e
	d.present[s] = true
	return nil
}

// SetFallback stores the entry used by LookupOrFallback for unthemed states.
func (d *ThemeData[T]) SetFallback(e ThemeEntry[T]) {
	d.fallback = e
	d.hasFallback = true
}

// Entry returns the entry for s, or false if s is unthemed or invalid.
func (d *ThemeData[T]) Entry(s StateIndex) (ThemeEntry[T], bool) {
	if d == nil || !s.Valid() || !d.present[s] {
		return ThemeEntry[T]{}, false
	}
	return d.entries[s], true
}

// Fallback returns the fallback entry, if one was set.
func (d *ThemeData[T]) Fallback() (ThemeEntry[T], bool) {
	if d == nil || !d.hasFallback {
		return ThemeEntry[T]{}, false
	}
	return d.fallback, true
}

// Clone returns a copy that can be edited and swapped in.
func (d *ThemeData[T]) Clone() *ThemeData[T] {
	if d == nil {
		return NewThemeData[T]()
	}
	c := *d
	return &c
}

// SharedTheme is a named theme asset that several tables can reference.
// Update replaces its data atomically; tables referencing it see the new
// data on their next lookup.
type SharedTheme[T any] struct {
	name string
	data atomic.Pointer[ThemeData[T]]
}

// NewSharedTheme creates a shared theme. data may be nil.
func NewSharedTheme[T any](name string, data *ThemeData[T]) *SharedTheme[T] {
	st := &SharedTheme[T]{name: name}
	st.data.Store(data)
	return st
}

// Name returns the asset name.
func (st *SharedTheme[T]) Name() string {
	return st.name
}

// Data returns the current data, possibly nil.
func (st *SharedTheme[T]) Data() *ThemeData[T] {
	if st == nil {
		return nil
	}
	return st.data.Load()
}

// Update swaps in new data.
func (st *SharedTheme[T]) Update(data *ThemeData[T]) {
	st.data.Store(data)
}

// ThemeSource is either inline data or a reference to a SharedTheme.
type ThemeSource[T any] struct {
	inline *ThemeData[T]
	shared *SharedTheme[T]
	isRef  bool
}

// InlineSource wraps data owned by a single table.
func InlineSource[T any](data *ThemeData[T]) ThemeSource[T] {
	return ThemeSource[T]{inline: data}
}

// SharedSource references a shared theme asset.
func SharedSource[T any](st *SharedTheme[T]) ThemeSource[T] {
	return ThemeSource[T]{shared: st, isRef: true}
}

// IsShared reports whether the source references a SharedTheme.
func (s ThemeSource[T]) IsShared() bool {
	return s.isRef
}

// Shared returns the referenced SharedTheme, or nil for inline sources.
func (s ThemeSource[T]) Shared() *SharedTheme[T] {
	return s.shared
}

func (s ThemeSource[T]) resolve() *ThemeData[T] {
	if s.isRef {
		return s.shared.Data()
	}
	return s.inline
}

// ThemeTable resolves theme entries for states through a swappable source.
//
// A nil table, an unset source, or a shared reference with no data yields
// absent for every state. Each lookup reads the source once, so a
// concurrent SetSource is observed either entirely or not at all.
type ThemeTable[T any] struct {
	src atomic.Pointer[ThemeSource[T]]
}

// NewThemeTable creates a table backed by src.
func NewThemeTable[T any](src ThemeSource[T]) *ThemeTable[T] {
	t := &ThemeTable[T]{}
	t.SetSource(src)
	return t
}

// NewInlineTheme is shorthand for NewThemeTable(InlineSource(data)).
func NewInlineTheme[T any](data *ThemeData[T]) *ThemeTable[T] {
	return NewThemeTable(InlineSource(data))
}

// SetSource swaps the backing source.
func (t *ThemeTable[T]) SetSource(src ThemeSource[T]) {
	t.src.Store(&src)
}

// Source returns the current backing source.
func (t *ThemeTable[T]) Source() ThemeSource[T] {
	if p := t.src.Load(); p != nil {
		return *p
	}
	return ThemeSource[T]{}
}

func (t *ThemeTable[T]) data() *ThemeData[T] {
	if t == nil {
		return nil
	}
	p := t.src.Load()
	if p == nil {
		return nil
	}
	return p.resolve()
}

// Configured reports whether lookups currently reach any data.
func (t *ThemeTable[T]) Configured() bool {
	return t.data() != nil
}

// Lookup returns the entry for s. A false result is a normal outcome.
func (t *ThemeTable[T]) Lookup(s StateIndex) (ThemeEntry[T], bool) {
	return t.data().Entry(s)
}

// LookupOrFallback returns the entry for s, or the data's fallback entry if
// s is unthemed.
func (t *ThemeTable[T]) LookupOrFallback(s StateIndex) (ThemeEntry[T], bool) {
	d := t.data()
	if e, ok := d.Entry(s); ok {
		return e, true
	}
	return d.Fallback()
}
