package flywheel_test

import (
	"math/rand"
	"testing"

	"github.com/edwinsyarief/flywheel"
)

// --- Test Components ---
type Health struct{ Value int }
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type ComponentA struct{}
type ComponentB struct{}
type ComponentC struct{}

// --- Test Suite Setup ---
func setupManager(_ *testing.T) (*flywheel.Manager, flywheel.Entity, flywheel.Entity) {
	m := flywheel.NewManager(0)
	return m, m.Spawn(), m.Spawn()
}

// go test -run ^TestAddComponent$ . -count 1
func TestAddComponent(t *testing.T) {
	m, e0, e1 := setupManager(t)
	if !flywheel.AddComponent(m, e0, Health{1}) {
		t.Fatal("failed to add component")
	}
	if !flywheel.HasComponent[Health](m, e0) {
		t.Error("expected e0 to have Health")
	}
	if flywheel.HasComponent[Health](m, e1) {
		t.Error("expected e1 to lack Health")
	}
	if h := flywheel.GetComponent[Health](m, e0); h == nil || h.Value != 1 {
		t.Errorf("unexpected component %+v", h)
	}

	t.Run("Duplicate", func(t *testing.T) {
		if flywheel.AddComponent(m, e0, Health{2}) {
			t.Error("expected duplicate add to be rejected")
		}
		if h := flywheel.GetComponent[Health](m, e0); h.Value != 1 {
			t.Errorf("rejected add changed the stored value to %d", h.Value)
		}
	})

	t.Run("DeadEntity", func(t *testing.T) {
		dead := m.Spawn()
		m.DestroyEntity(dead)
		if flywheel.AddComponent(m, dead, Health{3}) {
			t.Error("expected add on a dead entity to be rejected")
		}
		if flywheel.HasComponent[Health](m, dead) || flywheel.GetComponent[Health](m, dead) != nil {
			t.Error("dead entity must not gain a component")
		}
	})
}

// go test -run ^TestRemoveComponent$ . -count 1
func TestRemoveComponent(t *testing.T) {
	m, e0, _ := setupManager(t)
	flywheel.AddComponent(m, e0, Health{1})
	flywheel.AddComponent(m, e0, Position{X: 1})

	v, ok := flywheel.RemoveComponent[Health](m, e0)
	if !ok || v.Value != 1 {
		t.Errorf("expected removed Health{1}, got %+v (%v)", v, ok)
	}
	if flywheel.HasComponent[Health](m, e0) {
		t.Error("expected Health to be gone")
	}
	if len(flywheel.Components[Health](m)) != 0 || len(flywheel.Owners[Health](m)) != 0 {
		t.Error("expected empty Health pool")
	}
	if !flywheel.HasComponent[Position](m, e0) {
		t.Error("Position must survive")
	}
	if _, ok := flywheel.RemoveComponent[Health](m, e0); ok {
		t.Error("second removal must be a no-op")
	}
	if _, ok := flywheel.RemoveComponent[Velocity](m, e0); ok {
		t.Error("removing an unregistered type must be a no-op")
	}
}

// go test -run ^TestDestroyEntity$ . -count 1
func TestDestroyEntity(t *testing.T) {
	m, e0, e1 := setupManager(t)
	flywheel.AddComponent(m, e0, Health{1})
	flywheel.AddComponent(m, e0, Position{})
	flywheel.AddComponent(m, e1, Health{2})

	if !m.DestroyEntity(e0) {
		t.Fatal("expected e0 to be destroyed")
	}
	if m.DestroyEntity(e0) {
		t.Error("destroying twice must report false")
	}
	if m.IsAlive(e0) || m.Len() != 1 {
		t.Error("expected only e1 alive")
	}
	if owners := flywheel.Owners[Health](m); len(owners) != 1 || owners[0] != e1 {
		t.Errorf("expected Health owners [e1], got %v", owners)
	}
	if len(flywheel.Owners[Position](m)) != 0 {
		t.Error("expected Position pool to be empty")
	}

	reused := m.Spawn()
	if reused != e0 {
		t.Fatalf("expected id %d to be reused, got %d", e0.ID(), reused.ID())
	}
	arch, _ := m.Archetype(reused)
	if !arch.IsEmpty() || flywheel.HasComponent[Health](m, reused) {
		t.Error("reused entity must start without components")
	}
	if _, ok := m.Parent(reused); ok || len(m.Children(reused)) != 0 {
		t.Error("reused entity must start without hierarchy")
	}
}

// go test -run ^TestDestroySubtree$ . -count 1
func TestDestroySubtree(t *testing.T) {
	m := flywheel.NewManager(0)
	p, c1, c2 := m.Spawn(), m.Spawn(), m.Spawn()
	if err := m.Bind(p, c1); err != nil {
		t.Fatal(err)
	}
	if err := m.Bind(p, c2); err != nil {
		t.Fatal(err)
	}
	flywheel.AddComponent(m, c1, Health{1})
	flywheel.AddComponent(m, c2, Health{2})

	m.DestroyEntity(p)
	for _, e := range []flywheel.Entity{p, c1, c2} {
		if m.IsAlive(e) {
			t.Errorf("expected %d to be destroyed with its parent", e.ID())
		}
	}
	if len(flywheel.Components[Health](m)) != 0 {
		t.Error("descendants' components must be purged")
	}
	seen := map[flywheel.Entity]bool{}
	for i := 0; i < 3; i++ {
		seen[m.Spawn()] = true
	}
	if !seen[p] || !seen[c1] || !seen[c2] {
		t.Error("expected all three ids to be reused")
	}
	for e := range seen {
		if flywheel.HasComponent[Health](m, e) || flywheel.GetComponent[Health](m, e) != nil {
			t.Errorf("reused id %d inherited a component", e.ID())
		}
	}
}

// go test -run ^TestBindBreaksCycle$ . -count 1
func TestBindBreaksCycle(t *testing.T) {
	m, e0, e1 := setupManager(t)
	m.Bind(e0, e1)
	m.Bind(e1, e0)
	if p, ok := m.Parent(e0); !ok || p != e1 {
		t.Error("expected e0.parent == e1")
	}
	if len(m.Children(e0)) != 0 {
		t.Error("expected e0 without children")
	}
	if _, ok := m.Parent(e1); ok {
		t.Error("expected e1 to be a root")
	}
	if ch := m.Children(e1); len(ch) != 1 || ch[0] != e0 {
		t.Errorf("expected e1.children == {e0}, got %v", ch)
	}
	if !m.Unbind(e0) || m.Unbind(e0) {
		t.Error("expected exactly one successful unbind")
	}
}

// go test -run ^TestEntityComparisons$ . -count 1
func TestEntityComparisons(t *testing.T) {
	m, e0, e1 := setupManager(t)
	flywheel.AddComponent(m, e0, Position{})
	flywheel.AddComponent(m, e1, Position{})
	flywheel.AddComponent(m, e1, Velocity{})

	if r, ok := m.IsEntitySubsetOf(e0, e1); !ok || !r {
		t.Error("expected e0 ⊆ e1")
	}
	if r, ok := m.IsEntitySupersetOf(e0, e1); !ok || r {
		t.Error("expected e0 not ⊇ e1")
	}
	if r, ok := m.EntityHasCommonWith(e0, e1); !ok || !r {
		t.Error("expected common Position")
	}
	m.DestroyEntity(e1)
	if _, ok := m.IsEntitySubsetOf(e0, e1); ok {
		t.Error("expected ok == false for a dead entity")
	}
}

// go test -run ^TestArchetypeMatchesPools$ . -count 1
func TestArchetypeMatchesPools(t *testing.T) {
	m := flywheel.NewManager(0)
	rng := rand.New(rand.NewSource(1))
	var live []flywheel.Entity
	for step := 0; step < 4000; step++ {
		switch op := rng.Intn(8); {
		case op == 0 || len(live) == 0:
			live = append(live, m.Spawn())
		case op == 1:
			i := rng.Intn(len(live))
			m.DestroyEntity(live[i])
		case op == 2:
			m.Bind(live[rng.Intn(len(live))], live[rng.Intn(len(live))])
		case op < 5:
			e := live[rng.Intn(len(live))]
			flywheel.AddComponent(m, e, Health{step})
			flywheel.AddComponent(m, e, Position{})
		default:
			e := live[rng.Intn(len(live))]
			flywheel.RemoveComponent[Health](m, e)
			if rng.Intn(2) == 0 {
				flywheel.RemoveComponent[Position](m, e)
			}
		}
		n := 0
		for _, e := range live {
			if m.IsAlive(e) {
				live[n] = e
				n++
			}
		}
		live = live[:n]
	}
	cm := m.Components()
	for _, e := range live {
		arch, _ := m.Archetype(e)
		for id := flywheel.ComponentID(0); int(id) < cm.Len(); id++ {
			if arch.Has(id) != cm.Has(id, e) {
				t.Fatalf("entity %d: archetype bit %d = %v but pool membership = %v", e.ID(), id, arch.Has(id), cm.Has(id, e))
			}
		}
	}
	for id := flywheel.ComponentID(0); int(id) < cm.Len(); id++ {
		for _, owner := range cm.OwnersOf(id) {
			if !m.IsAlive(owner) {
				t.Fatalf("dead entity %d still owns a component in pool %d", owner.ID(), id)
			}
		}
	}
}

// go test -run ^TestEachIteration$ . -count 1
func TestEachIteration(t *testing.T) {
	m := flywheel.NewManager(0)
	for i := 0; i < 10; i++ {
		e := m.Spawn()
		flywheel.AddComponent(m, e, Position{X: float32(i)})
		if i%2 == 0 {
			flywheel.AddComponent(m, e, Velocity{VX: 1})
		}
	}
	flywheel.Each2(m, func(_ flywheel.Entity, p *Position, v *Velocity) {
		p.X += v.VX
	})
	sum := float32(0)
	count := 0
	flywheel.Each(m, func(_ flywheel.Entity, p *Position) {
		sum += p.X
		count++
	})
	if count != 10 {
		t.Errorf("expected 10 positions, got %d", count)
	}
	if sum != 45+5 {
		t.Errorf("expected sum 50, got %v", sum)
	}
}

// go test -run ^TestWorldMembership$ . -count 1
func TestWorldMembership(t *testing.T) {
	w := flywheel.NewWorld(0)
	m := w.Manager()
	b := w.NewSystem("a-not-b", nil)
	flywheel.With[ComponentA](b)
	flywheel.Without[ComponentB](b)
	sys := b.Build()

	e := m.Spawn()
	flywheel.AddComponent(m, e, ComponentA{})
	w.Run()
	if !sys.Contains(e) {
		t.Fatal("expected e to be a member after one tick")
	}

	flywheel.AddComponent(m, e, ComponentB{})
	w.Flush()
	if sys.Contains(e) {
		t.Error("expected e to leave after gaining ComponentB")
	}

	flywheel.RemoveComponent[ComponentB](m, e)
	w.Flush()
	if !sys.Contains(e) {
		t.Error("expected e to rejoin after losing ComponentB")
	}

	m.DestroyEntity(e)
	w.Flush()
	if sys.Len() != 0 {
		t.Error("expected destroyed entity to be evicted")
	}
}

// go test -run ^TestWorldSeesEarlierSystemChanges$ . -count 1
func TestWorldSeesEarlierSystemChanges(t *testing.T) {
	w := flywheel.NewWorld(0)
	m := w.Manager()
	e := m.Spawn()
	flywheel.AddComponent(m, e, ComponentA{})
	w.Flush()

	// The first system tags its members with ComponentB; the second system
	// must see them in the same tick.
	tagger := w.NewSystem("tagger", func(m *flywheel.Manager, _ *flywheel.Resources, entities []flywheel.Entity) {
		for _, e := range entities {
			flywheel.AddComponent(m, e, ComponentB{})
		}
	})
	flywheel.With[ComponentA](tagger)
	tagger.Build()

	var seen []flywheel.Entity
	observer := w.NewSystem("observer", func(_ *flywheel.Manager, _ *flywheel.Resources, entities []flywheel.Entity) {
		seen = append(seen, entities...)
	})
	flywheel.With[ComponentB](observer)
	observer.Build()

	w.Run()
	if len(seen) != 1 || seen[0] != e {
		t.Errorf("expected observer to see %d in the same tick, got %v", e.ID(), seen)
	}
	if w.Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", w.Ticks())
	}
}

// go test -run ^TestWorldDestroyInsideSystem$ . -count 1
func TestWorldDestroyInsideSystem(t *testing.T) {
	w := flywheel.NewWorld(0)
	m := w.Manager()
	for i := 0; i < 4; i++ {
		e := m.Spawn()
		flywheel.AddComponent(m, e, Health{Value: i})
	}
	reaper := w.NewSystem("reaper", func(m *flywheel.Manager, _ *flywheel.Resources, entities []flywheel.Entity) {
		for _, e := range entities {
			if flywheel.GetComponent[Health](m, e).Value%2 == 0 {
				m.DestroyEntity(e)
			}
		}
	})
	flywheel.With[Health](reaper)
	sys := reaper.Build()

	destroyed := 0
	flywheel.Subscribe(w.Events(), func(flywheel.EntityDestroyed) { destroyed++ })

	w.Run()
	if sys.Len() != 2 {
		t.Errorf("expected 2 survivors, got %d", sys.Len())
	}
	if destroyed != 2 {
		t.Errorf("expected 2 destroy events, got %d", destroyed)
	}
	for _, e := range sys.Members() {
		if flywheel.GetComponent[Health](m, e).Value%2 == 0 {
			t.Errorf("entity %d should have been destroyed", e.ID())
		}
	}
}

// go test -run ^TestWorldLateSystem$ . -count 1
func TestWorldLateSystem(t *testing.T) {
	w := flywheel.NewWorld(0)
	m := w.Manager()
	e := m.Spawn()
	flywheel.AddComponent(m, e, Position{})
	w.Flush()

	b := w.NewSystem("late", nil)
	flywheel.With[Position](b)
	sys := b.Build()
	if !sys.Contains(e) {
		t.Error("a system added after spawning must pick up existing entities")
	}
	if len(w.Systems()) != 1 {
		t.Errorf("expected 1 system, got %d", len(w.Systems()))
	}
}

// go test -run ^TestWorldResources$ . -count 1
func TestWorldResources(t *testing.T) {
	type frameCounter struct{ frames int }
	w := flywheel.NewWorld(0)
	flywheel.InsertResource(w.Resources(), frameCounter{})
	w.NewSystem("count", func(_ *flywheel.Manager, res *flywheel.Resources, _ []flywheel.Entity) {
		fc, _ := flywheel.GetResource[frameCounter](res)
		fc.frames++
	}).Build()
	for i := 0; i < 3; i++ {
		w.Run()
	}
	if fc, _ := flywheel.GetResource[frameCounter](w.Resources()); fc.frames != 3 {
		t.Errorf("expected 3 frames, got %d", fc.frames)
	}
}

// go test -run ^TestWorldMembershipInvariant$ . -count 1
func TestWorldMembershipInvariant(t *testing.T) {
	w := flywheel.NewWorld(0)
	m := w.Manager()
	rng := rand.New(rand.NewSource(3))

	mutate := func(m *flywheel.Manager, _ *flywheel.Resources, entities []flywheel.Entity) {
		for _, e := range entities {
			switch rng.Intn(5) {
			case 0:
				flywheel.AddComponent(m, e, ComponentB{})
			case 1:
				flywheel.RemoveComponent[ComponentA](m, e)
			case 2:
				m.DestroyEntity(e)
			}
		}
		for i := 0; i < 3; i++ {
			e := m.Spawn()
			flywheel.AddComponent(m, e, ComponentA{})
			if rng.Intn(3) == 0 {
				flywheel.AddComponent(m, e, Velocity{})
			}
		}
	}
	b1 := w.NewSystem("a", mutate)
	flywheel.With[ComponentA](b1)
	b1.Build()

	b2 := w.NewSystem("b-not-vel", func(m *flywheel.Manager, _ *flywheel.Resources, entities []flywheel.Entity) {
		for _, e := range entities {
			if rng.Intn(4) == 0 {
				flywheel.RemoveComponent[ComponentB](m, e)
			}
		}
	})
	flywheel.With[ComponentB](b2)
	flywheel.Without[Velocity](b2)
	b2.Build()

	b3 := w.NewSystem("any", nil)
	flywheel.Without[ComponentB](b3)
	b3.Build()

	for tick := 0; tick < 50; tick++ {
		w.Run()
		for _, sys := range w.Systems() {
			for id := uint32(0); id < 512; id++ {
				e := flywheel.NewEntity(id)
				arch, alive := m.Archetype(e)
				want := alive && sys.Matches(arch)
				if sys.Contains(e) != want {
					t.Fatalf("tick %d, system %s: entity %d membership = %v, want %v", tick, sys.Name(), id, !want, want)
				}
			}
		}
	}
}

// go test -run ^TestBuilderReuse$ . -count 1
func TestBuilderReuse(t *testing.T) {
	w := flywheel.NewWorld(0)
	m := w.Manager()
	e := m.Spawn()
	flywheel.AddComponent(m, e, ComponentA{})
	w.Flush()

	b := w.NewSystem("reused", nil)
	flywheel.With[ComponentA](b)
	first := b.Build()
	flywheel.With[ComponentB](b)
	second := b.Build()

	idA := flywheel.ComponentIDFor[ComponentA](m)
	idB := flywheel.ComponentIDFor[ComponentB](m)
	if first.Required().Has(idB) || !first.Required().Has(idA) {
		t.Errorf("first system's predicate changed to %s", first.Required())
	}
	if !second.Required().Has(idA) || !second.Required().Has(idB) {
		t.Errorf("second system should require both, got %s", second.Required())
	}
	if !first.Contains(e) || second.Contains(e) {
		t.Error("expected e in the first system only")
	}

	flywheel.AddComponent(m, e, ComponentC{})
	w.Flush()
	if !first.Contains(e) {
		t.Error("first system lost e after an unrelated change")
	}
}

// go test -run ^TestWorldDestroyThenRespawn$ . -count 1
func TestWorldDestroyThenRespawn(t *testing.T) {
	w := flywheel.NewWorld(0)
	m := w.Manager()
	e := m.Spawn()
	flywheel.AddComponent(m, e, ComponentA{})
	w.Flush()

	var respawned flywheel.Entity
	b := w.NewSystem("recycle", func(m *flywheel.Manager, _ *flywheel.Resources, entities []flywheel.Entity) {
		for _, e := range entities {
			m.DestroyEntity(e)
		}
		respawned = m.Spawn()
		flywheel.AddComponent(m, respawned, ComponentB{})
	})
	flywheel.With[ComponentA](b)
	sys := b.Build()

	var destroyed []flywheel.Entity
	flywheel.Subscribe(w.Events(), func(ev flywheel.EntityDestroyed) {
		destroyed = append(destroyed, ev.Entity)
	})

	w.Run()
	if respawned != e {
		t.Fatalf("expected id %d to be reused, got %d", e.ID(), respawned.ID())
	}
	if len(destroyed) != 1 || destroyed[0] != e {
		t.Errorf("expected one destroy event for %d, got %v", e.ID(), destroyed)
	}
	if sys.Contains(respawned) {
		t.Error("respawned entity must not inherit the old membership")
	}
}
