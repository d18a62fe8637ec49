package flywheel

import "fmt"

// EntityManager is the registry of entity identities. It recycles destroyed
// IDs through a LIFO free list, owns the per-entity records (archetype and
// hierarchy) and queues every entity whose liveness, archetype or hierarchy
// changed until the queue is drained with PollDirty.
type EntityManager struct {
	records   []entityRecord
	freeIDs   []uint32 // stack of recycled entity IDs
	queued    []bool   // queued[id] is true while the entity sits in dirty
	dirty     []Entity // change queue, drained from next
	stack     []Entity // scratch worklist for subtree destruction
	graves    []Entity // destroyed entities, drained from graveNext
	next      int
	graveNext int
	alive     int
}

// NewEntityManager creates an EntityManager with room for initialCapacity
// entities before its storage has to grow.
func NewEntityManager(initialCapacity int) *EntityManager {
	if initialCapacity <= 0 {
		initialCapacity = DefaultInitialCapacity
	}
	return &EntityManager{
		records: make([]entityRecord, 0, initialCapacity),
		queued:  make([]bool, 0, initialCapacity),
		dirty:   make([]Entity, 0, initialCapacity),
	}
}

// Spawn returns a live entity with an empty archetype and no hierarchy. The
// most recently destroyed ID is reused first.
func (em *EntityManager) Spawn() Entity {
	var e Entity
	if n := len(em.freeIDs); n > 0 {
		e = Entity{id: em.freeIDs[n-1]}
		em.freeIDs = em.freeIDs[:n-1]
		em.records[e.id].reset()
	} else {
		e = Entity{id: uint32(len(em.records))}
		em.records = append(em.records, newEntityRecord(e))
	}
	em.records[e.id].alive = true
	em.alive++
	em.markDirty(e)
	return e
}

// IsAlive reports whether e has been spawned and not destroyed since.
func (em *EntityManager) IsAlive(e Entity) bool {
	return em.record(e) != nil
}

// record returns the live record of e, or nil for a dead or unknown ID.
func (em *EntityManager) record(e Entity) *entityRecord {
	if int(e.id) >= len(em.records) {
		return nil
	}
	r := &em.records[e.id]
	if !r.alive {
		return nil
	}
	return r
}

// Destroy destroys e together with all of its descendants, detaching e from
// its parent first. Every destroyed entity is appended to destroyed, which is
// returned; nothing is appended if e is not alive.
func (em *EntityManager) Destroy(e Entity, destroyed []Entity) []Entity {
	r := em.record(e)
	if r == nil {
		return destroyed
	}
	if r.hasParent {
		em.records[r.parent.id].removeChild(e)
		em.markDirty(r.parent)
	}
	em.stack = append(em.stack[:0], e)
	for len(em.stack) > 0 {
		last := len(em.stack) - 1
		cur := em.stack[last]
		em.stack = em.stack[:last]
		cr := &em.records[cur.id]
		em.stack = append(em.stack, cr.children.dense...)
		cr.reset()
		cr.alive = false
		em.alive--
		em.freeIDs = append(em.freeIDs, cur.id)
		em.markDirty(cur)
		em.graves = append(em.graves, cur)
		destroyed = append(destroyed, cur)
	}
	return destroyed
}

// Bind makes child a child of parent. A previous parent of child is unlinked
// first. If parent currently descends from child, the ancestor of parent that
// hangs directly below child is detached and becomes a root, so the hierarchy
// stays a forest.
func (em *EntityManager) Bind(parent, child Entity) error {
	if parent == child {
		return ErrSelfParent
	}
	pr, cr := em.record(parent), em.record(child)
	if pr == nil || cr == nil {
		return ErrDeadEntity
	}
	if cr.hasParent {
		if cr.parent == parent {
			return nil
		}
		em.unlink(cr)
	}
	for cur := parent; ; {
		r := &em.records[cur.id]
		if !r.hasParent {
			break
		}
		if r.parent == child {
			em.unlink(r)
			break
		}
		cur = r.parent
	}
	if !cr.setParent(parent) || !pr.insertChild(child) {
		panic(fmt.Sprintf("ecs: hierarchy invariant violated binding %d under %d", child.id, parent.id))
	}
	em.markDirty(parent)
	em.markDirty(child)
	return nil
}

// Unbind detaches child from its parent and reports whether it had one.
func (em *EntityManager) Unbind(child Entity) bool {
	r := em.record(child)
	if r == nil || !r.hasParent {
		return false
	}
	em.unlink(r)
	return true
}

// unlink removes the edge between r and its parent.
func (em *EntityManager) unlink(r *entityRecord) {
	parent := r.parent
	em.records[parent.id].removeChild(r.owner)
	r.clearParent()
	em.markDirty(parent)
	em.markDirty(r.owner)
}

// Parent returns the parent of e, if e is alive and has one.
func (em *EntityManager) Parent(e Entity) (Entity, bool) {
	r := em.record(e)
	if r == nil || !r.hasParent {
		return Entity{}, false
	}
	return r.parent, true
}

// Children returns the children of e in no particular order. The slice is
// owned by the manager and is only valid until the next hierarchy change.
func (em *EntityManager) Children(e Entity) []Entity {
	r := em.record(e)
	if r == nil {
		return nil
	}
	return r.children.dense
}

// Ancestors appends the ancestors of e to dst, nearest first.
func (em *EntityManager) Ancestors(e Entity, dst []Entity) []Entity {
	r := em.record(e)
	for r != nil && r.hasParent {
		dst = append(dst, r.parent)
		r = &em.records[r.parent.id]
	}
	return dst
}

// Archetype returns the archetype of e. The archetype must not be modified
// through the returned pointer; use ArchetypeMut for that.
func (em *EntityManager) Archetype(e Entity) (*Archetype, bool) {
	r := em.record(e)
	if r == nil {
		return nil, false
	}
	return &r.archetype, true
}

// ArchetypeMut returns the archetype of e for modification and queues e as
// changed.
func (em *EntityManager) ArchetypeMut(e Entity) (*Archetype, bool) {
	r := em.record(e)
	if r == nil {
		return nil, false
	}
	em.markDirty(e)
	return &r.archetype, true
}

// markDirty queues e unless it is already waiting in the queue.
func (em *EntityManager) markDirty(e Entity) {
	em.queued = growTo(em.queued, int(e.id))
	if !em.queued[e.id] {
		em.queued[e.id] = true
		em.dirty = append(em.dirty, e)
	}
}

// PollDirty pops the next changed entity. Once the queue is exhausted it is
// reset and PollDirty reports false, so later changes queue afresh.
func (em *EntityManager) PollDirty() (Entity, bool) {
	if em.next >= len(em.dirty) {
		em.dirty = em.dirty[:0]
		em.next = 0
		return Entity{}, false
	}
	e := em.dirty[em.next]
	em.queued[e.id] = false
	em.next++
	return e, true
}

// PollDestroyed pops the next destroyed entity. Every destruction is reported
// once, even if the ID was handed out again by Spawn before the poll.
func (em *EntityManager) PollDestroyed() (Entity, bool) {
	if em.graveNext >= len(em.graves) {
		em.graves = em.graves[:0]
		em.graveNext = 0
		return Entity{}, false
	}
	e := em.graves[em.graveNext]
	em.graveNext++
	return e, true
}

// Len returns the number of live entities.
func (em *EntityManager) Len() int {
	return em.alive
}

// Cap returns the number of entity IDs issued so far, live or recycled.
func (em *EntityManager) Cap() int {
	return len(em.records)
}
