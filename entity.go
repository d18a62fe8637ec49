package flywheel

// Entity is an opaque, recyclable identity for a game object. Once an entity
// is destroyed its ID returns to the free list and the next Spawn may hand the
// same value out again.
type Entity struct {
	id uint32
}

// NewEntity wraps a raw ID. It is meant for tests and tooling; entities used
// with a Manager should come from Manager.Spawn.
func NewEntity(id uint32) Entity {
	return Entity{id: id}
}

// ID returns the index of the entity.
func (e Entity) ID() uint32 {
	return e.id
}

// entityRecord stores the per-entity state kept by the EntityManager.
type entityRecord struct {
	archetype Archetype
	children  entitySet
	owner     Entity
	parent    Entity
	hasParent bool
	alive     bool
}

// newEntityRecord creates an empty record for owner.
func newEntityRecord(owner Entity) entityRecord {
	return entityRecord{owner: owner}
}

// setParent links the record to parent. It refuses to make the owner its own
// parent or to adopt one of its direct children as parent.
func (r *entityRecord) setParent(parent Entity) bool {
	if parent == r.owner || r.children.contains(parent) {
		return false
	}
	r.parent = parent
	r.hasParent = true
	return true
}

// clearParent drops the parent link.
func (r *entityRecord) clearParent() {
	r.parent = Entity{}
	r.hasParent = false
}

// insertChild adds child to the child set. It refuses the owner itself and
// the current parent.
func (r *entityRecord) insertChild(child Entity) bool {
	if child == r.owner || (r.hasParent && child == r.parent) {
		return false
	}
	r.children.insert(child)
	return true
}

func (r *entityRecord) removeChild(child Entity) {
	r.children.remove(child)
}

func (r *entityRecord) hasChild(child Entity) bool {
	return r.children.contains(child)
}

// reset clears the archetype and hierarchy in place, keeping allocated storage
// for the next entity that reuses this slot.
func (r *entityRecord) reset() {
	r.archetype.Reset()
	r.children.clear()
	r.clearParent()
}
