package isometric

// EventType identifies a kind of session event.
type EventType uint8

const (
	EventProjectionChanged EventType = iota // the scene switched between flat and isometric
	EventEntityTransformed                  // an entity received the isometric transform
	EventEntityReset                        // an entity was reset to its flat transform
	EventEntityRemoved                      // an entity and its derived render state were dropped
	EventOverlayRebuilt                     // the occlusion overlay was cleared and repopulated
)

var eventTypeNames = [...]string{
	EventProjectionChanged: "projection-changed",
	EventEntityTransformed: "entity-transformed",
	EventEntityReset:       "entity-reset",
	EventEntityRemoved:     "entity-removed",
	EventOverlayRebuilt:    "overlay-rebuilt",
}

// String returns the event type's name.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event carries a session notification for an optional host bridge.
type Event struct {
	Type     EventType
	EntityID string
	// Isometric reports the projection state after the event.
	Isometric bool
	// Count is the number of overlay entries for EventOverlayRebuilt.
	Count int
}

// EventSink is the interface for optional ECS or host integration.
// When set on a Session, events are forwarded as they happen.
type EventSink interface {
	EmitEvent(event Event)
}
