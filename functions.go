package flywheel

// ComponentIDFor returns the ComponentID of T in m, registering T on first
// use.
func ComponentIDFor[T any](m *Manager) ComponentID {
	return RegisterComponent[T](m.components)
}

// AddComponent attaches value to e.
//
// It returns false and changes nothing if e is not alive or already has a
// component of type T; the manager never overwrites. Remove the old component
// first to replace it.
func AddComponent[T any](m *Manager, e Entity, value T) bool {
	arch, ok := m.entities.Archetype(e)
	if !ok {
		return false
	}
	id := RegisterComponent[T](m.components)
	if !poolAt[T](m.components, id).Add(e, value) {
		return false
	}
	arch.Add(id)
	m.entities.markDirty(e)
	return true
}

// RemoveComponent detaches the component of type T from e and returns it.
// It is a no-op returning false if e is dead or lacks the component.
func RemoveComponent[T any](m *Manager, e Entity) (T, bool) {
	var zero T
	arch, ok := m.entities.Archetype(e)
	if !ok {
		return zero, false
	}
	id, ok := ComponentIDOf[T](m.components)
	if !ok || !arch.Has(id) {
		return zero, false
	}
	value, _ := poolAt[T](m.components, id).Remove(e)
	arch.Remove(id)
	m.entities.markDirty(e)
	return value, true
}

// GetComponent returns a pointer to the component of type T held by e, or nil
// if e is dead or has none. The pointer is invalidated by the next add or
// removal of a T component on any entity.
func GetComponent[T any](m *Manager, e Entity) *T {
	if !m.entities.IsAlive(e) {
		return nil
	}
	p := PoolOf[T](m.components)
	if p == nil {
		return nil
	}
	return p.Get(e)
}

// HasComponent reports whether e currently holds a component of type T.
func HasComponent[T any](m *Manager, e Entity) bool {
	arch, ok := m.entities.Archetype(e)
	if !ok {
		return false
	}
	id, ok := ComponentIDOf[T](m.components)
	return ok && arch.Has(id)
}

// Components returns the dense slice of all T components, parallel to
// Owners[T]. Elements may be modified in place.
func Components[T any](m *Manager) []T {
	p := PoolOf[T](m.components)
	if p == nil {
		return nil
	}
	return p.All()
}

// Owners returns the entities holding a T component, parallel to
// Components[T].
func Owners[T any](m *Manager) []Entity {
	p := PoolOf[T](m.components)
	if p == nil {
		return nil
	}
	return p.Owners()
}
