package flywheel

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can be
// registered in the EventBus.
const MaxEventTypes = 256

// EntityChanged is published by the World when an entity's liveness,
// archetype or hierarchy changed and it was re-evaluated against every
// system.
type EntityChanged struct {
	Entity Entity
}

// EntityDestroyed is published by the World when a destroyed entity has been
// removed from every system.
type EntityDestroyed struct {
	Entity Entity
}

// EventBus provides a simple, type-safe event bus for decoupled communication
// between systems. Handlers are called synchronously, in subscription order,
// on the goroutine that publishes.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]any
	nextEventTypeID uint16
}

// Subscribe registers a handler function to be called when an event of type
// T is published.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.getEventTypeID(reflect.TypeFor[T]())
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]any, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish broadcasts event to every handler subscribed to T. Publishing a type
// nobody subscribed to is a cheap no-op.
func Publish[T any](bus *EventBus, event T) {
	if bus.eventTypeMap == nil {
		return
	}
	if id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]; ok {
		for _, h := range bus.handlers[id] {
			h.(func(T))(event)
		}
	}
}

// HasSubscribers reports whether any handler is subscribed to T.
func HasSubscribers[T any](bus *EventBus) bool {
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	return ok && len(bus.handlers[id]) > 0
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if bus.nextEventTypeID >= MaxEventTypes {
		panic("ecs: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
