package flywheel

// Manager binds an EntityManager and a ComponentManager and is the only
// surface through which components are added or removed. It keeps the two
// sides consistent: an entity's archetype holds bit i if and only if the
// entity has a component in pool i. Every mutation queues the entity as
// changed so the World can resynchronize system membership.
type Manager struct {
	entities   *EntityManager
	components *ComponentManager
	destroyed  []Entity // scratch buffer for subtree destruction
}

// NewManager creates a Manager with room for initialCapacity entities.
func NewManager(initialCapacity int) *Manager {
	return &Manager{
		entities:   NewEntityManager(initialCapacity),
		components: NewComponentManager(),
	}
}

// Spawn creates a new entity with no components.
func (m *Manager) Spawn() Entity {
	return m.entities.Spawn()
}

// DestroyEntity destroys e and its whole subtree of descendants, purging all
// of their components. It reports whether e was alive.
func (m *Manager) DestroyEntity(e Entity) bool {
	m.destroyed = m.entities.Destroy(e, m.destroyed[:0])
	for _, d := range m.destroyed {
		m.components.RemoveAll(d)
	}
	return len(m.destroyed) > 0
}

// IsAlive reports whether e is a live entity.
func (m *Manager) IsAlive(e Entity) bool {
	return m.entities.IsAlive(e)
}

// Len returns the number of live entities.
func (m *Manager) Len() int {
	return m.entities.Len()
}

// Archetype returns the current archetype of e. It must not be modified.
func (m *Manager) Archetype(e Entity) (*Archetype, bool) {
	return m.entities.Archetype(e)
}

// Components exposes the component registry for type-erased inspection.
func (m *Manager) Components() *ComponentManager {
	return m.components
}

// Bind makes child a child of parent. See EntityManager.Bind.
func (m *Manager) Bind(parent, child Entity) error {
	return m.entities.Bind(parent, child)
}

// Unbind detaches child from its parent.
func (m *Manager) Unbind(child Entity) bool {
	return m.entities.Unbind(child)
}

// Parent returns the parent of e, if any.
func (m *Manager) Parent(e Entity) (Entity, bool) {
	return m.entities.Parent(e)
}

// Children returns the children of e. The slice is owned by the Manager.
func (m *Manager) Children(e Entity) []Entity {
	return m.entities.Children(e)
}

// Ancestors appends the ancestors of e to dst, nearest first.
func (m *Manager) Ancestors(e Entity, dst []Entity) []Entity {
	return m.entities.Ancestors(e, dst)
}

// IsEntitySubsetOf reports whether every component type of e is also held by
// other. ok is false if either entity is dead.
func (m *Manager) IsEntitySubsetOf(e, other Entity) (result, ok bool) {
	a, b, ok := m.archetypePair(e, other)
	if !ok {
		return false, false
	}
	return a.IsSubsetOf(b), true
}

// IsEntitySupersetOf reports whether e holds every component type of other.
// ok is false if either entity is dead.
func (m *Manager) IsEntitySupersetOf(e, other Entity) (result, ok bool) {
	a, b, ok := m.archetypePair(e, other)
	if !ok {
		return false, false
	}
	return a.IsSupersetOf(b), true
}

// EntityHasCommonWith reports whether e and other share a component type.
// ok is false if either entity is dead.
func (m *Manager) EntityHasCommonWith(e, other Entity) (result, ok bool) {
	a, b, ok := m.archetypePair(e, other)
	if !ok {
		return false, false
	}
	return a.HasCommonWith(b), true
}

func (m *Manager) archetypePair(e, other Entity) (*Archetype, *Archetype, bool) {
	a, ok := m.entities.Archetype(e)
	if !ok {
		return nil, nil, false
	}
	b, ok := m.entities.Archetype(other)
	if !ok {
		return nil, nil, false
	}
	return a, b, true
}

// pollDestroyed pops the next destroyed entity.
func (m *Manager) pollDestroyed() (Entity, bool) {
	return m.entities.PollDestroyed()
}

// pollDirty pops the next entity queued as changed.
func (m *Manager) pollDirty() (Entity, bool) {
	return m.entities.PollDirty()
}
