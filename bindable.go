package affordance

import "sync"

// Binding is anything that can be released, typically a SubscriptionHandle.
type Binding interface {
	Unsubscribe()
}

type unsubscriber interface {
	unsubscribe(id uint32)
}

// SubscriptionHandle allows removing a registered callback.
// The zero value is valid and Unsubscribe on it does nothing.
type SubscriptionHandle struct {
	id  uint32
	reg unsubscriber
}

// Unsubscribe removes the callback. Safe to call more than once and safe to
// call from inside the callback itself.
func (h SubscriptionHandle) Unsubscribe() {
	if h.reg == nil {
		return
	}
	h.reg.unsubscribe(h.id)
}

type subscriber[E any] struct {
	id uint32
	fn func(E)
}

// subscriberList is a copy-on-write callback list. notify iterates over the
// slice captured at call time, so callbacks may subscribe or unsubscribe
// without disturbing the iteration in progress.
type subscriberList[E any] struct {
	mu     sync.Mutex
	subs   []subscriber[E]
	nextID uint32
}

func (l *subscriberList[E]) add(fn func(E)) SubscriptionHandle {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	// Appending never touches elements visible to an existing snapshot.
	l.subs = append(l.subs, subscriber[E]{id: id, fn: fn})
	l.mu.Unlock()
	return SubscriptionHandle{id: id, reg: l}
}

func (l *subscriberList[E]) unsubscribe(id uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.subs {
		if l.subs[i].id == id {
			// Fresh backing array: a snapshot held by notify must stay intact.
			subs := make([]subscriber[E], 0, len(l.subs)-1)
			subs = append(subs, l.subs[:i]...)
			l.subs = append(subs, l.subs[i+1:]...)
			return
		}
	}
}

func (l *subscriberList[E]) notify(e E) {
	l.mu.Lock()
	snapshot := l.subs
	l.mu.Unlock()
	for _, s := range snapshot {
		s.fn(e)
	}
}

func (l *subscriberList[E]) clear() {
	l.mu.Lock()
	l.subs = nil
	l.mu.Unlock()
}

func (l *subscriberList[E]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

// Bindable holds a value and notifies subscribers whenever it changes.
// Callbacks run synchronously on the goroutine that calls Set.
type Bindable[T comparable] struct {
	mu    sync.RWMutex
	value T
	subs  subscriberList[T]
}

// NewBindable creates a Bindable holding initial.
func NewBindable[T comparable](initial T) *Bindable[T] {
	return &Bindable[T]{value: initial}
}

// Value returns the current value.
func (b *Bindable[T]) Value() T {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.value
}

// Set stores v and notifies subscribers. Returns false (and notifies no one)
// when v equals the current value.
func (b *Bindable[T]) Set(v T) bool {
	b.mu.Lock()
	if b.value == v {
		b.mu.Unlock()
		return false
	}
	b.value = v
	b.mu.Unlock()
	b.subs.notify(v)
	return true
}

// Subscribe registers fn to be called with each new value.
func (b *Bindable[T]) Subscribe(fn func(T)) SubscriptionHandle {
	return b.subs.add(fn)
}

// SubscribeAndUpdate registers fn and immediately calls it with the current
// value.
func (b *Bindable[T]) SubscribeAndUpdate(fn func(T)) SubscriptionHandle {
	h := b.subs.add(fn)
	fn(b.Value())
	return h
}

// ClearSubscribers removes every callback.
func (b *Bindable[T]) ClearSubscribers() {
	b.subs.clear()
}

// SubscriberCount returns the number of registered callbacks.
func (b *Bindable[T]) SubscriberCount() int {
	return b.subs.len()
}

// BindingsGroup owns a set of bindings and releases them together, so a
// component can drop every callback it registered when it is disabled.
type BindingsGroup struct {
	mu       sync.Mutex
	bindings []Binding
}

// Add takes ownership of b.
func (g *BindingsGroup) Add(b Binding) {
	g.mu.Lock()
	g.bindings = append(g.bindings, b)
	g.mu.Unlock()
}

// Clear unsubscribes every owned binding and empties the group.
func (g *BindingsGroup) Clear() {
	g.mu.Lock()
	bindings := g.bindings
	g.bindings = nil
	g.mu.Unlock()
	for _, b := range bindings {
		b.Unsubscribe()
	}
}

// Len returns the number of owned bindings.
func (g *BindingsGroup) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.bindings)
}
