package ecs

import (
	"github.com/phanxgames/isometric"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for session events.
var EventType = events.NewEventType[isometric.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to EventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) isometric.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event isometric.Event) {
	EventType.Publish(s.world, event)
}
