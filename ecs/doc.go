// Package ecs provides ECS adapters for tweener.
//
// [NewDonburiSink] forwards tween lifecycle events (complete, killed,
// dropped) into a [Donburi] world as typed events. Subscribe to
// [TweenEventType] in your ECS systems to receive them. [EntityTarget] ties a
// tween's lifetime to an entity, so removing the entity stops its tweens.
//
// Usage:
//
//	sched := tweener.NewScheduler(tweener.WithEventSink(ecs.NewDonburiSink(world)))
//	sched.FloatTo(get, set, 1, 0.5).SetTarget(ecs.EntityTarget(world, entity))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
