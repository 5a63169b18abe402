// Package ecs bridges affordance state changes into a [Donburi] world.
//
// [NewDonburiBridge] subscribes to [affordance.StateProvider] values and
// publishes every change as a [StateChange] event tagged with the entity the
// provider belongs to. Subscribe to [StateChangeType] in your ECS systems.
//
// Usage:
//
//	bridge := ecs.NewDonburiBridge(world)
//	bridge.Attach(entity, provider)
//	// in a system:
//	ecs.StateChangeType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
