package flywheel

import (
	"fmt"
	"reflect"
)

// ComponentID is the index of a component type's pool inside a
// ComponentManager. It doubles as the component's bit in an Archetype.
type ComponentID uint32

// ComponentManager is the type-indexed registry of component pools. Each
// distinct component type gets exactly one pool, created on first use; the
// pool's ComponentID never changes afterwards.
type ComponentManager struct {
	typeToID map[reflect.Type]ComponentID
	idToType []reflect.Type
	pools    []componentPool
}

// NewComponentManager creates an empty registry.
func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		typeToID: make(map[reflect.Type]ComponentID, 16),
	}
}

// RegisterComponent returns the ComponentID of T, creating its pool if this is
// the first time T is seen.
func RegisterComponent[T any](cm *ComponentManager) ComponentID {
	t := reflect.TypeFor[T]()
	if id, ok := cm.typeToID[t]; ok {
		return id
	}
	id := ComponentID(len(cm.pools))
	cm.typeToID[t] = id
	cm.idToType = append(cm.idToType, t)
	cm.pools = append(cm.pools, NewComponentPool[T]())
	return id
}

// ComponentIDOf returns the ComponentID of T without registering it.
func ComponentIDOf[T any](cm *ComponentManager) (ComponentID, bool) {
	id, ok := cm.typeToID[reflect.TypeFor[T]()]
	return id, ok
}

// PoolOf returns the pool storing T, or nil if T has not been registered.
func PoolOf[T any](cm *ComponentManager) *ComponentPool[T] {
	id, ok := ComponentIDOf[T](cm)
	if !ok {
		return nil
	}
	return poolAt[T](cm, id)
}

// poolAt returns the typed pool for id. The registry guarantees the pool at id
// stores T, so a failed assertion is a bug.
func poolAt[T any](cm *ComponentManager, id ComponentID) *ComponentPool[T] {
	p, ok := cm.pools[id].(*ComponentPool[T])
	if !ok {
		panic(fmt.Sprintf("ecs: pool %d stores %s, not %s", id, cm.idToType[id], reflect.TypeFor[T]()))
	}
	return p
}

// Has reports whether e holds a component in the pool of id.
func (cm *ComponentManager) Has(id ComponentID, e Entity) bool {
	if int(id) >= len(cm.pools) {
		return false
	}
	return cm.pools[id].has(e)
}

// Remove deletes the component of e from the pool of id and reports whether
// there was one.
func (cm *ComponentManager) Remove(id ComponentID, e Entity) bool {
	if int(id) >= len(cm.pools) {
		return false
	}
	return cm.pools[id].remove(e)
}

// RemoveAll purges every component of e from every pool.
func (cm *ComponentManager) RemoveAll(e Entity) {
	for _, p := range cm.pools {
		p.remove(e)
	}
}

// OwnersOf returns the entities holding a component in the pool of id.
func (cm *ComponentManager) OwnersOf(id ComponentID) []Entity {
	if int(id) >= len(cm.pools) {
		return nil
	}
	return cm.pools[id].owners()
}

// CountOf returns the number of components stored in the pool of id.
func (cm *ComponentManager) CountOf(id ComponentID) int {
	if int(id) >= len(cm.pools) {
		return 0
	}
	return cm.pools[id].len()
}

// Type returns the Go type registered under id, or nil.
func (cm *ComponentManager) Type(id ComponentID) reflect.Type {
	if int(id) >= len(cm.idToType) {
		return nil
	}
	return cm.idToType[id]
}

// Len returns the number of registered component types.
func (cm *ComponentManager) Len() int {
	return len(cm.pools)
}

// Clear empties every pool. Registered types keep their IDs.
func (cm *ComponentManager) Clear() {
	for _, p := range cm.pools {
		p.clear()
	}
}
