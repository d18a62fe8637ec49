package flywheel

// componentPool is the type-erased view of a ComponentPool used by the
// ComponentManager to sweep entities without knowing the component type.
type componentPool interface {
	has(owner Entity) bool
	remove(owner Entity) bool
	owners() []Entity
	len() int
	clear()
}

// ComponentPool is a sparse-set store for components of type T.
//
// Values and their owners are packed in two parallel dense slices so game code
// can iterate them directly; a sparse slice indexed by entity ID locates an
// owner's slot in O(1). Removal swaps the last slot into the freed one, so the
// order of All and Owners changes as components are removed.
type ComponentPool[T any] struct {
	values   []T
	entities []Entity
	index    []int // index[id] is the dense slot of id + 1, 0 if absent
}

// NewComponentPool creates an empty pool.
func NewComponentPool[T any]() *ComponentPool[T] {
	return &ComponentPool[T]{}
}

// Add stores value for owner. If owner already has a component in the pool
// nothing changes and Add returns false; the caller keeps its value.
func (p *ComponentPool[T]) Add(owner Entity, value T) bool {
	if p.Has(owner) {
		return false
	}
	p.index = growTo(p.index, int(owner.id))
	p.values = append(p.values, value)
	p.entities = append(p.entities, owner)
	p.index[owner.id] = len(p.values)
	return true
}

// Has reports whether owner has a component in the pool.
func (p *ComponentPool[T]) Has(owner Entity) bool {
	id := int(owner.id)
	return id < len(p.index) && p.index[id] != 0
}

// Get returns a pointer to the component of owner, or nil if it has none.
// The pointer is invalidated by the next Add or Remove on the pool.
func (p *ComponentPool[T]) Get(owner Entity) *T {
	if !p.Has(owner) {
		return nil
	}
	return &p.values[p.index[owner.id]-1]
}

// Remove deletes the component of owner and returns it.
func (p *ComponentPool[T]) Remove(owner Entity) (T, bool) {
	var zero T
	if !p.Has(owner) {
		return zero, false
	}
	slot := p.index[owner.id] - 1
	removed := p.values[slot]
	last := len(p.values) - 1
	if slot != last {
		p.values[slot] = p.values[last]
		moved := p.entities[last]
		p.entities[slot] = moved
		p.index[moved.id] = slot + 1
	}
	p.values[last] = zero
	p.values = p.values[:last]
	p.entities = p.entities[:last]
	p.index[owner.id] = 0
	return removed, true
}

// All returns the dense slice of components. All()[i] belongs to Owners()[i].
func (p *ComponentPool[T]) All() []T {
	return p.values
}

// Owners returns the dense slice of entities holding a component.
func (p *ComponentPool[T]) Owners() []Entity {
	return p.entities
}

// Len returns the number of stored components.
func (p *ComponentPool[T]) Len() int {
	return len(p.values)
}

// Clear removes every component while keeping the allocated storage.
func (p *ComponentPool[T]) Clear() {
	for _, e := range p.entities {
		p.index[e.id] = 0
	}
	clear(p.values)
	p.values = p.values[:0]
	p.entities = p.entities[:0]
}

func (p *ComponentPool[T]) has(owner Entity) bool { return p.Has(owner) }

func (p *ComponentPool[T]) remove(owner Entity) bool {
	_, ok := p.Remove(owner)
	return ok
}

func (p *ComponentPool[T]) owners() []Entity { return p.entities }

func (p *ComponentPool[T]) len() int { return len(p.values) }

func (p *ComponentPool[T]) clear() { p.Clear() }
