package ecs

import (
	"github.com/phanxgames/affordance"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StateChange is a provider state change addressed to an entity.
type StateChange struct {
	Entity donburi.Entity
	affordance.StateEvent
}

// StateChangeType is the Donburi event type for affordance state changes.
var StateChangeType = events.NewEventType[StateChange]()

// Interaction is a component holding an entity's state provider, so systems
// can read the current state without waiting for an event.
var Interaction = donburi.NewComponentType[InteractionData]()

// InteractionData is the Interaction component value.
type InteractionData struct {
	Provider *affordance.StateProvider
}

// DonburiBridge publishes provider state changes into a world.
type DonburiBridge struct {
	world    donburi.World
	bindings map[donburi.Entity]*affordance.BindingsGroup
}

// NewDonburiBridge creates a bridge for world.
func NewDonburiBridge(world donburi.World) *DonburiBridge {
	return &DonburiBridge{
		world:    world,
		bindings: make(map[donburi.Entity]*affordance.BindingsGroup),
	}
}

// Attach publishes every state change of p as a StateChange for entity. If
// the entity has an Interaction component its provider is set to p.
// Attaching again adds another provider for the same entity.
func (b *DonburiBridge) Attach(entity donburi.Entity, p *affordance.StateProvider) {
	if entry := b.world.Entry(entity); entry.Valid() && entry.HasComponent(Interaction) {
		Interaction.Get(entry).Provider = p
	}

	g, ok := b.bindings[entity]
	if !ok {
		g = &affordance.BindingsGroup{}
		b.bindings[entity] = g
	}
	g.Add(p.Subscribe(func(e affordance.StateEvent) {
		StateChangeType.Publish(b.world, StateChange{Entity: entity, StateEvent: e})
	}))
}

// Detach stops publishing for entity.
func (b *DonburiBridge) Detach(entity donburi.Entity) {
	if g, ok := b.bindings[entity]; ok {
		g.Clear()
		delete(b.bindings, entity)
	}
}

// Len returns the number of attached entities.
func (b *DonburiBridge) Len() int {
	return len(b.bindings)
}

// CurrentState returns the state of the entity's Interaction provider.
func CurrentState(entry *donburi.Entry) (affordance.StateIndex, bool) {
	if entry == nil || !entry.HasComponent(Interaction) {
		return 0, false
	}
	p := Interaction.Get(entry).Provider
	if p == nil {
		return 0, false
	}
	return p.State(), true
}
