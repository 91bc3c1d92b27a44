package ecs

import (
	"github.com/phanxgames/tweener"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenEventType is the Donburi event type for tween lifecycle events.
var TweenEventType = events.NewEventType[tweener.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on TweenEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) tweener.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tweener.Event) {
	TweenEventType.Publish(s.world, event)
}

type entityTarget struct {
	world  donburi.World
	entity donburi.Entity
}

// EntityTarget returns a Target that reports disposed once entity has been
// removed from world.
func EntityTarget(world donburi.World, entity donburi.Entity) tweener.Target {
	return entityTarget{world: world, entity: entity}
}

func (t entityTarget) IsDisposed() bool {
	return !t.world.Valid(t.entity)
}
