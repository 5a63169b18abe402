package ecs

import (
	"testing"

	"github.com/phanxgames/affordance"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiBridge_PublishesChanges(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create(Interaction)
	p := affordance.NewStateProvider(nil)

	bridge := NewDonburiBridge(world)
	bridge.Attach(entity, p)

	var received []StateChange
	StateChangeType.Subscribe(world, func(w donburi.World, e StateChange) {
		received = append(received, e)
	})

	p.Update(affordance.InteractionFlags{Hovering: true})
	p.Update(affordance.InteractionFlags{Hovering: true})
	p.Update(affordance.InteractionFlags{Hovering: true, Selecting: true})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	StateChangeType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Entity != entity || e.Previous != affordance.StateIdle || e.Current != affordance.StateHovered {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Current != affordance.StateSelected {
		t.Errorf("event 1: %+v", e)
	}

	state, ok := CurrentState(world.Entry(entity))
	if !ok || state != affordance.StateSelected {
		t.Errorf("CurrentState = %v, %v", state, ok)
	}
}

func TestDonburiBridge_Detach(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create(Interaction)
	p := affordance.NewStateProvider(nil)

	bridge := NewDonburiBridge(world)
	bridge.Attach(entity, p)
	bridge.Detach(entity)
	if bridge.Len() != 0 || p.SubscriberCount() != 0 {
		t.Fatalf("Detach left %d entities, %d subscribers", bridge.Len(), p.SubscriberCount())
	}

	count := 0
	StateChangeType.Subscribe(world, func(w donburi.World, e StateChange) { count++ })
	p.Update(affordance.InteractionFlags{Hovering: true})
	events.ProcessAllEvents(world)
	if count != 0 {
		t.Errorf("detached provider published %d events", count)
	}
}

func TestCurrentState_NoComponent(t *testing.T) {
	world := donburi.NewWorld()
	type tag struct{}
	other := donburi.NewComponentType[tag]()
	entity := world.Create(other)

	if _, ok := CurrentState(world.Entry(entity)); ok {
		t.Error("entity without Interaction should report no state")
	}
	if _, ok := CurrentState(nil); ok {
		t.Error("nil entry should report no state")
	}
}
