package affordance

import "sync"

// InteractionFlags are the per-tick signals a StateProvider turns into a
// state. Strength fields are optional continuous amounts in [0, 1]; zero
// means "use the state's default weight".
type InteractionFlags struct {
	Disabled      bool
	Hovering      bool
	HoverPriority bool
	Selecting     bool
	Activated     bool

	HoverStrength  float64
	SelectStrength float64
}

// ComputeState maps flags to a state. Disabled wins outright; otherwise the
// highest-ordered active flag wins.
func ComputeState(f InteractionFlags) StateIndex {
	switch {
	case f.Disabled:
		return StateDisabled
	case f.Activated:
		return StateActivated
	case f.Selecting:
		return StateSelected
	case f.HoverPriority:
		return StateHoveredPriority
	case f.Hovering:
		return StateHovered
	default:
		return StateIdle
	}
}

// weight returns the blend weight for s given these flags.
func (f InteractionFlags) weight(s StateIndex) float64 {
	switch s {
	case StateHovered, StateHoveredPriority:
		if f.HoverStrength > 0 {
			return clamp01(f.HoverStrength)
		}
	case StateSelected, StateActivated:
		if f.SelectStrength > 0 {
			return clamp01(f.SelectStrength)
		}
	}
	w, _ := StateWeight(s)
	return w
}

// StateEvent describes a state change. Previous equals Current only for the
// replay delivered by SubscribeAndUpdate.
type StateEvent struct {
	Previous StateIndex
	Current  StateIndex
	Weight   float64
}

// Initial reports whether e is a replay of the current state rather than a
// transition.
func (e StateEvent) Initial() bool {
	return e.Previous == e.Current
}

// SignalSource supplies interaction flags once per tick.
type SignalSource interface {
	Flags() InteractionFlags
}

// SignalFunc adapts a function to SignalSource.
type SignalFunc func() InteractionFlags

// Flags calls f.
func (f SignalFunc) Flags() InteractionFlags {
	return f()
}

// StateProvider computes the current state once per tick and notifies
// subscribers only when it changes.
type StateProvider struct {
	mu      sync.Mutex
	source  SignalSource
	state   StateIndex
	weight  float64
	metrics *Metrics
	subs    subscriberList[StateEvent]
}

// NewStateProvider creates a provider starting in StateIdle. source may be
// nil when flags are pushed with Update.
func NewStateProvider(source SignalSource) *StateProvider {
	return &StateProvider{
		source: source,
		state:  StateIdle,
		weight: defaultWeights[StateIdle],
	}
}

// SetSource replaces the signal source used by Poll.
func (p *StateProvider) SetSource(source SignalSource) {
	p.mu.Lock()
	p.source = source
	p.mu.Unlock()
}

// SetMetrics attaches transition counters. nil detaches.
func (p *StateProvider) SetMetrics(m *Metrics) {
	p.mu.Lock()
	p.metrics = m
	p.mu.Unlock()
}

// Poll reads the source and updates the state. Returns false when there is
// no source or the state did not change.
func (p *StateProvider) Poll() bool {
	p.mu.Lock()
	src := p.source
	p.mu.Unlock()
	if src == nil {
		return false
	}
	return p.Update(src.Flags())
}

// Update recomputes the state from flags. Subscribers are notified
// synchronously, and only if the state changed.
func (p *StateProvider) Update(flags InteractionFlags) bool {
	next := ComputeState(flags)
	return p.transition(next, flags.weight(next))
}

// Set forces the state to s with its default weight.
func (p *StateProvider) Set(s StateIndex) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	return p.transition(s, defaultWeights[s]), nil
}

func (p *StateProvider) transition(next StateIndex, weight float64) bool {
	p.mu.Lock()
	prev := p.state
	p.weight = weight
	if next == prev {
		p.mu.Unlock()
		return false
	}
	p.state = next
	m := p.metrics
	p.mu.Unlock()

	m.stateTransition(next)
	p.subs.notify(StateEvent{Previous: prev, Current: next, Weight: weight})
	return true
}

// State returns the current state.
func (p *StateProvider) State() StateIndex {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Weight returns the weight computed on the last update.
func (p *StateProvider) Weight() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.weight
}

// Subscribe registers fn for state changes.
func (p *StateProvider) Subscribe(fn func(StateEvent)) SubscriptionHandle {
	return p.subs.add(fn)
}

// SubscribeAndUpdate registers fn and immediately delivers the current state
// as an Initial event.
func (p *StateProvider) SubscribeAndUpdate(fn func(StateEvent)) SubscriptionHandle {
	h := p.subs.add(fn)
	p.mu.Lock()
	e := StateEvent{Previous: p.state, Current: p.state, Weight: p.weight}
	p.mu.Unlock()
	fn(e)
	return h
}

// SubscriberCount returns the number of registered callbacks.
func (p *StateProvider) SubscriberCount() int {
	return p.subs.len()
}
