package flywheel

// SystemFunc is the behavior of a System. It receives the Manager, the
// world's Resources and the system's current members. The members slice is
// stable for the duration of the call; component changes made by fn are
// reflected in membership once fn returns.
type SystemFunc func(m *Manager, res *Resources, entities []Entity)

// System is a behavior unit plus an incrementally maintained cache of the
// entities whose archetype contains every required component and none of the
// excluded ones.
type System struct {
	fn       SystemFunc
	name     string
	required Archetype
	excluded Archetype // antitype
	members  entitySet
}

// NewSystem creates a system matching entities that hold every component in
// required and none in excluded. Both archetypes are copied, so later changes
// to them do not affect the system.
func NewSystem(name string, required, excluded Archetype, fn SystemFunc) *System {
	return &System{
		name:     name,
		required: required.Clone(),
		excluded: excluded.Clone(),
		fn:       fn,
	}
}

// Name returns the name given at construction.
func (s *System) Name() string {
	return s.name
}

// Required returns the archetype an entity must contain to be a member.
func (s *System) Required() *Archetype {
	return &s.required
}

// Excluded returns the archetype an entity must not intersect to be a member.
func (s *System) Excluded() *Archetype {
	return &s.excluded
}

// Matches reports whether an entity with the given archetype belongs in the
// system.
func (s *System) Matches(arch *Archetype) bool {
	return s.required.IsSubsetOf(arch) && !s.excluded.HasCommonWith(arch)
}

// Evaluate updates the membership of e after its archetype became arch.
func (s *System) Evaluate(e Entity, arch *Archetype) {
	if s.Matches(arch) {
		s.members.insert(e)
	} else {
		s.members.remove(e)
	}
}

// Remove evicts e without checking the predicate. It is used for destroyed
// entities.
func (s *System) Remove(e Entity) {
	s.members.remove(e)
}

// Contains reports whether e is currently a member.
func (s *System) Contains(e Entity) bool {
	return s.members.contains(e)
}

// Members returns the current members in no particular order. The slice is
// owned by the system and changes as membership is updated.
func (s *System) Members() []Entity {
	return s.members.dense
}

// Len returns the number of members.
func (s *System) Len() int {
	return s.members.len()
}

// Run invokes the behavior once with the current members.
func (s *System) Run(m *Manager, res *Resources) {
	if s.fn != nil {
		s.fn(m, res, s.members.dense)
	}
}
