package flywheel

// World is the top-level scheduler. It owns the Manager, the engine-wide
// Resources, an EventBus and the ordered list of systems.
//
// Run executes one tick: every system runs in registration order, and after
// each run the change queue is drained so that the next system already sees
// membership reflecting every mutation made so far in the tick.
type World struct {
	manager   *Manager
	resources *Resources
	events    *EventBus
	systems   []*System
	ticks     uint64
}

// NewWorld creates an empty world with room for initialCapacity entities
// before its storage has to grow.
//
// Parameters:
//   - initialCapacity: number of entity slots to pre-allocate. Non-positive
//     values fall back to DefaultInitialCapacity.
//
// Returns:
//   - The newly created World.
func NewWorld(initialCapacity int) *World {
	return &World{
		manager:   NewManager(initialCapacity),
		resources: &Resources{},
		events:    &EventBus{},
	}
}

// Manager returns the entity/component manager of the world.
func (w *World) Manager() *Manager {
	return w.manager
}

// Resources returns the world's resource store.
func (w *World) Resources() *Resources {
	return w.resources
}

// Events returns the world's event bus. The world publishes EntityChanged and
// EntityDestroyed on it while draining the change queue.
func (w *World) Events() *EventBus {
	return w.events
}

// Systems returns the systems in execution order.
func (w *World) Systems() []*System {
	return w.systems
}

// Ticks returns how many times Run has completed.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// AddSystem appends s to the schedule and evaluates every live entity against
// it, so a system added mid-game starts with the right members.
func (w *World) AddSystem(s *System) {
	em := w.manager.entities
	for i := range em.records {
		r := &em.records[i]
		if r.alive {
			s.Evaluate(r.owner, &r.archetype)
		}
	}
	w.systems = append(w.systems, s)
}

// Run executes one tick.
func (w *World) Run() {
	for _, s := range w.systems {
		s.Run(w.manager, w.resources)
		w.Flush()
	}
	w.ticks++
}

// Flush drains the change queue without running any system. Destroyed
// entities are removed from every system and reported with EntityDestroyed
// first, then live changed entities are re-evaluated against every system.
// An ID destroyed and respawned since the last drain gets both treatments.
func (w *World) Flush() {
	notifyChanged := HasSubscribers[EntityChanged](w.events)
	notifyDestroyed := HasSubscribers[EntityDestroyed](w.events)
	for {
		if e, ok := w.manager.pollDestroyed(); ok {
			for _, s := range w.systems {
				s.Remove(e)
			}
			if notifyDestroyed {
				Publish(w.events, EntityDestroyed{Entity: e})
			}
			continue
		}
		e, ok := w.manager.pollDirty()
		if !ok {
			return
		}
		if arch, alive := w.manager.entities.Archetype(e); alive {
			for _, s := range w.systems {
				s.Evaluate(e, arch)
			}
			if notifyChanged {
				Publish(w.events, EntityChanged{Entity: e})
			}
		} else {
			for _, s := range w.systems {
				s.Remove(e)
			}
		}
	}
}
