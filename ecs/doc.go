// Package ecs provides ECS adapters for carousel selection events.
//
// The primary adapter is [NewDonburiStore], which bridges carousel selection
// events (changes and settles) into a [Donburi] world as typed events.
// Subscribe to [SelectionEventType] in your ECS systems to receive them, or
// attach a [Tracker] to keep one [SelectionComponent] entity per carousel up
// to date.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	stage.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
