package flywheel

// Filter is a cursor over every entity holding a component of type T. It
// walks the dense pool directly, so iteration order is pool order and no
// membership cache is involved.
//
// Components of type T must not be added or removed while a Filter is being
// advanced; call Reset after such changes.
type Filter[T any] struct {
	manager *Manager
	pool    *ComponentPool[T]
	scratch []Entity
	curIdx  int
}

// NewFilter creates a Filter over T, registering T if needed.
//
// Parameters:
//   - m: The Manager to query.
//
// Returns:
//   - A pointer to the newly created Filter[T], positioned before the first
//     entity.
func NewFilter[T any](m *Manager) *Filter[T] {
	id := RegisterComponent[T](m.components)
	return &Filter[T]{
		manager: m,
		pool:    poolAt[T](m.components, id),
		curIdx:  -1,
	}
}

// Reset rewinds the cursor to the beginning.
func (f *Filter[T]) Reset() {
	f.curIdx = -1
}

// Next advances to the next entity and reports whether there was one.
//
// Example:
//
//	query := flywheel.NewFilter[Position](m)
//	for query.Next() {
//	    p := query.Get()
//	    // ...
//	}
func (f *Filter[T]) Next() bool {
	f.curIdx++
	return f.curIdx < f.pool.Len()
}

// Entity returns the current entity. Only valid after Next returned true.
func (f *Filter[T]) Entity() Entity {
	return f.pool.entities[f.curIdx]
}

// Get returns the current entity's T. Only valid after Next returned true.
func (f *Filter[T]) Get() *T {
	return &f.pool.values[f.curIdx]
}

// Len returns the number of entities the filter visits.
func (f *Filter[T]) Len() int {
	return f.pool.Len()
}

// RemoveEntities destroys every entity holding a T, together with its
// descendants, and rewinds the filter.
func (f *Filter[T]) RemoveEntities() {
	f.scratch = append(f.scratch[:0], f.pool.Owners()...)
	for _, e := range f.scratch {
		f.manager.DestroyEntity(e)
	}
	f.Reset()
}

// Filter2 is a cursor over every entity holding both a T1 and a T2. It walks
// the T1 pool and skips entities lacking T2, so T1 should be the rarer type.
type Filter2[T1 any, T2 any] struct {
	manager *Manager
	pool1   *ComponentPool[T1]
	pool2   *ComponentPool[T2]
	scratch []Entity
	curIdx  int
	cur2    *T2
}

// NewFilter2 creates a Filter2 over T1 and T2, registering both if needed.
// It panics if T1 and T2 are the same type.
func NewFilter2[T1 any, T2 any](m *Manager) *Filter2[T1, T2] {
	id1 := RegisterComponent[T1](m.components)
	id2 := RegisterComponent[T2](m.components)
	if id1 == id2 {
		panic("ecs: duplicate component types in Filter2")
	}
	return &Filter2[T1, T2]{
		manager: m,
		pool1:   poolAt[T1](m.components, id1),
		pool2:   poolAt[T2](m.components, id2),
		curIdx:  -1,
	}
}

// Reset rewinds the cursor to the beginning.
func (f *Filter2[T1, T2]) Reset() {
	f.curIdx = -1
	f.cur2 = nil
}

// Next advances to the next entity holding both components.
func (f *Filter2[T1, T2]) Next() bool {
	for f.curIdx++; f.curIdx < f.pool1.Len(); f.curIdx++ {
		if f.cur2 = f.pool2.Get(f.pool1.entities[f.curIdx]); f.cur2 != nil {
			return true
		}
	}
	f.cur2 = nil
	return false
}

// Entity returns the current entity. Only valid after Next returned true.
func (f *Filter2[T1, T2]) Entity() Entity {
	return f.pool1.entities[f.curIdx]
}

// Get returns the current entity's components. Only valid after Next
// returned true.
func (f *Filter2[T1, T2]) Get() (*T1, *T2) {
	return &f.pool1.values[f.curIdx], f.cur2
}

// Entities appends every entity holding both components to dst.
func (f *Filter2[T1, T2]) Entities(dst []Entity) []Entity {
	for _, e := range f.pool1.entities {
		if f.pool2.Has(e) {
			dst = append(dst, e)
		}
	}
	return dst
}

// RemoveEntities destroys every entity holding both components, together
// with its descendants, and rewinds the filter.
func (f *Filter2[T1, T2]) RemoveEntities() {
	f.scratch = f.Entities(f.scratch[:0])
	for _, e := range f.scratch {
		f.manager.DestroyEntity(e)
	}
	f.Reset()
}
