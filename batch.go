package flywheel

// Batch spawns entities that all start with a component of type T.
type Batch[T any] struct {
	manager *Manager
	id1     ComponentID
	pool    *ComponentPool[T]
}

// CreateBatch creates a Batch for T, registering T if needed.
func CreateBatch[T any](m *Manager) *Batch[T] {
	id := RegisterComponent[T](m.components)
	return &Batch[T]{
		manager: m,
		id1:     id,
		pool:    poolAt[T](m.components, id),
	}
}

// CreateEntities spawns count entities holding a zero T.
func (self *Batch[T]) CreateEntities(count int) []Entity {
	var zero T
	return self.CreateEntitiesWithComponentsTo(count, nil, zero)
}

// CreateEntitiesWithComponents spawns count entities holding a copy of c1.
func (self *Batch[T]) CreateEntitiesWithComponents(count int, c1 T) []Entity {
	return self.CreateEntitiesWithComponentsTo(count, nil, c1)
}

// CreateEntitiesWithComponentsTo spawns count entities holding a copy of c1
// and appends them to dst.
func (self *Batch[T]) CreateEntitiesWithComponentsTo(count int, dst []Entity, c1 T) []Entity {
	if count <= 0 {
		return dst
	}
	em := self.manager.entities
	startLen := len(dst)
	dst = extendSlice(dst, count)
	for i := range dst[startLen:] {
		e := em.Spawn()
		self.pool.Add(e, c1)
		em.record(e).archetype.Add(self.id1)
		dst[startLen+i] = e
	}
	return dst
}

// AddComponentBatch adds a copy of value to every entity in entities and
// returns how many were added. Dead entities and entities already holding a
// T are skipped.
func AddComponentBatch[T any](m *Manager, entities []Entity, value T) int {
	added := 0
	for _, e := range entities {
		if AddComponent(m, e, value) {
			added++
		}
	}
	return added
}

// RemoveComponentBatch removes T from every entity in entities and returns
// how many held one.
func RemoveComponentBatch[T any](m *Manager, entities []Entity) int {
	removed := 0
	for _, e := range entities {
		if _, ok := RemoveComponent[T](m, e); ok {
			removed++
		}
	}
	return removed
}
