package flywheel

// SystemBuilder assembles a System's predicate from component types and
// registers the result with a World.
//
// Example:
//
//	b := world.NewSystem("movement", move)
//	flywheel.With[Position](b)
//	flywheel.With[Velocity](b)
//	flywheel.Without[Frozen](b)
//	b.Build()
type SystemBuilder struct {
	world    *World
	fn       SystemFunc
	name     string
	required Archetype
	excluded Archetype
}

// NewSystem starts building a system named name running fn.
func (w *World) NewSystem(name string, fn SystemFunc) *SystemBuilder {
	return &SystemBuilder{world: w, name: name, fn: fn}
}

// Require adds component IDs an entity must hold.
func (b *SystemBuilder) Require(ids ...ComponentID) *SystemBuilder {
	for _, id := range ids {
		b.required.Add(id)
	}
	return b
}

// Exclude adds component IDs an entity must not hold.
func (b *SystemBuilder) Exclude(ids ...ComponentID) *SystemBuilder {
	for _, id := range ids {
		b.excluded.Add(id)
	}
	return b
}

// With requires component type T, registering it if needed.
func With[T any](b *SystemBuilder) *SystemBuilder {
	return b.Require(ComponentIDFor[T](b.world.manager))
}

// Without excludes component type T, registering it if needed.
func Without[T any](b *SystemBuilder) *SystemBuilder {
	return b.Exclude(ComponentIDFor[T](b.world.manager))
}

// Build creates the system and appends it to the world's schedule. The
// builder may be extended and built again; earlier systems keep the predicate
// they were built with.
func (b *SystemBuilder) Build() *System {
	s := NewSystem(b.name, b.required, b.excluded, b.fn)
	b.world.AddSystem(s)
	return s
}
