// Package ecs provides ECS adapters for the isometric engine.
//
// [NewDonburiSink] bridges session events (projection changes, entity
// transforms, overlay rebuilds) into a [Donburi] world as typed events.
// Subscribe to [EventType] in your ECS systems to receive them.
//
// [Token] and [Tile] components hold entity placements; a [Syncer] keeps a
// session's registry in step with the entities carrying them.
//
// Usage:
//
//	sess.SetEventSink(ecs.NewDonburiSink(world))
//	syncer := ecs.NewSyncer(sess)
//	// each frame, before sess.Update
//	syncer.Sync(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
