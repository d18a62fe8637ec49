package flywheel

import "reflect"

// Resources is a type-keyed store for engine-wide singletons (a renderer
// handle, a clock, configuration) that systems read without going through
// entities. At most one value per type is held at a time.
//
// Values live in a slice addressed through a type→slot map; freed slots are
// reused so inserting and removing resources does not grow the store.
type Resources struct {
	items   []any // *T boxes, nil for free slots
	types   map[reflect.Type]int
	freeIds []int
}

// InsertResource stores value as the resource of type T. If a resource of
// type T was already present it is replaced and returned with true.
func InsertResource[T any](r *Resources, value T) (T, bool) {
	t := reflect.TypeFor[T]()
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if id, ok := r.types[t]; ok {
		box := r.items[id].(*T)
		prev := *box
		*box = value
		return prev, true
	}
	var id int
	if len(r.freeIds) > 0 {
		id = r.freeIds[len(r.freeIds)-1]
		r.freeIds = r.freeIds[:len(r.freeIds)-1]
		r.items[id] = &value
	} else {
		r.items = append(r.items, &value)
		id = len(r.items) - 1
	}
	r.types[t] = id
	var zero T
	return zero, false
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](r *Resources) bool {
	_, ok := r.types[reflect.TypeFor[T]()]
	return ok
}

// GetResource returns a pointer to the resource of type T. Writes through the
// pointer update the stored resource.
func GetResource[T any](r *Resources) (*T, bool) {
	id, ok := r.types[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.items[id].(*T), true
}

// RemoveResource deletes the resource of type T and returns it.
func RemoveResource[T any](r *Resources) (T, bool) {
	t := reflect.TypeFor[T]()
	id, ok := r.types[t]
	if !ok {
		var zero T
		return zero, false
	}
	value := *r.items[id].(*T)
	delete(r.types, t)
	r.items[id] = nil
	r.freeIds = append(r.freeIds, id)
	return value, true
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.types)
}

// Clear removes all resources, resetting the free list.
func (r *Resources) Clear() {
	for i := range r.items {
		r.items[i] = nil
	}
	r.items = r.items[:0]
	clear(r.types)
	r.freeIds = r.freeIds[:0]
}
