package flywheel

// entitySet is a sparse set of entities. The dense slice keeps members packed
// for iteration; sparse maps an entity ID to its dense index + 1, with 0
// meaning "not a member". Removal swaps the last member into the freed slot,
// so order is not preserved.
type entitySet struct {
	sparse []int
	dense  []Entity
}

// contains reports whether e is a member.
func (s *entitySet) contains(e Entity) bool {
	id := int(e.id)
	return id < len(s.sparse) && s.sparse[id] != 0
}

// insert adds e if it is not already a member and reports whether it was added.
func (s *entitySet) insert(e Entity) bool {
	if s.contains(e) {
		return false
	}
	s.sparse = growTo(s.sparse, int(e.id))
	s.dense = append(s.dense, e)
	s.sparse[e.id] = len(s.dense)
	return true
}

// remove evicts e if present and reports whether it was a member.
func (s *entitySet) remove(e Entity) bool {
	if !s.contains(e) {
		return false
	}
	index := s.sparse[e.id] - 1
	last := len(s.dense) - 1
	if index != last {
		moved := s.dense[last]
		s.dense[index] = moved
		s.sparse[moved.id] = index + 1
	}
	s.dense = s.dense[:last]
	s.sparse[e.id] = 0
	return true
}

// clear empties the set while keeping its storage.
func (s *entitySet) clear() {
	for _, e := range s.dense {
		s.sparse[e.id] = 0
	}
	s.dense = s.dense[:0]
}

func (s *entitySet) len() int {
	return len(s.dense)
}
