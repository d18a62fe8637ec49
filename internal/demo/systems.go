package demo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/edwinsyarief/flywheel"
	"github.com/gdamore/tcell/v2"
)

var (
	cometStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	frozenStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	sparkStyle  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// NewWorld builds a sandbox world drawing to screen. The schedule is, in
// order: clock, spawner, movement, bounce, orbit, lifetime, render.
func NewWorld(screen tcell.Screen, audio Audio, cfg Config, seed int64) *flywheel.World {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultConfig().FPS
	}
	w := flywheel.NewWorld(cfg.MaxComets * (cfg.SparksPerComet + 1))
	res := w.Resources()

	term := Terminal{Screen: screen}
	term.Resize()
	flywheel.InsertResource(res, term)
	flywheel.InsertResource(res, Clock{Dt: 1 / float64(cfg.FPS), Rand: rand.New(rand.NewSource(seed))})
	flywheel.InsertResource(res, audio)
	flywheel.InsertResource(res, cfg)

	w.NewSystem("clock", tickClock).Build()

	spawner := w.NewSystem("spawner", spawnComets)
	flywheel.With[Comet](spawner)
	spawner.Build()

	movement := w.NewSystem("movement", move)
	flywheel.With[Position](movement)
	flywheel.With[Velocity](movement)
	flywheel.Without[Frozen](movement)
	movement.Build()

	bounce := w.NewSystem("bounce", bounceOffWalls)
	flywheel.With[Position](bounce)
	flywheel.With[Velocity](bounce)
	bounce.Build()

	orbit := w.NewSystem("orbit", followParent)
	flywheel.With[Position](orbit)
	flywheel.With[Orbit](orbit)
	orbit.Build()

	lifetime := w.NewSystem("lifetime", age)
	flywheel.With[Lifetime](lifetime)
	lifetime.Build()

	render := w.NewSystem("render", draw)
	flywheel.With[Position](render)
	flywheel.With[Glyph](render)
	render.Build()

	flywheel.Subscribe(w.Events(), func(flywheel.EntityDestroyed) {
		clock, _ := flywheel.GetResource[Clock](res)
		a, _ := flywheel.GetResource[Audio](res)
		a.Pop(clock.Frame)
	})
	return w
}

func tickClock(_ *flywheel.Manager, res *flywheel.Resources, _ []flywheel.Entity) {
	clock, _ := flywheel.GetResource[Clock](res)
	clock.Frame++
}

// spawnComets runs over the live comets and tops them up.
func spawnComets(m *flywheel.Manager, res *flywheel.Resources, comets []flywheel.Entity) {
	cfg, _ := flywheel.GetResource[Config](res)
	clock, _ := flywheel.GetResource[Clock](res)
	term, _ := flywheel.GetResource[Terminal](res)
	if len(comets) >= cfg.MaxComets || cfg.SpawnEvery <= 0 || clock.Frame%uint64(cfg.SpawnEvery) != 0 {
		return
	}
	if term.Width < 3 || term.Height < 3 {
		return
	}
	rng := clock.Rand
	comet := m.Spawn()
	flywheel.AddComponent(m, comet, Comet{})
	flywheel.AddComponent(m, comet, Position{
		X: 1 + rng.Float64()*float64(term.Width-2),
		Y: 1 + rng.Float64()*float64(term.Height-3),
	})
	angle := rng.Float64() * 2 * math.Pi
	speed := 4 + rng.Float64()*8
	flywheel.AddComponent(m, comet, Velocity{DX: speed * math.Cos(angle), DY: speed * math.Sin(angle) / 2})
	flywheel.AddComponent(m, comet, Glyph{Rune: '@', Style: cometStyle})
	flywheel.AddComponent(m, comet, Lifetime{Frames: cfg.CometLifetime})

	for i := range cfg.SparksPerComet {
		spark := m.Spawn()
		flywheel.AddComponent(m, spark, Position{})
		flywheel.AddComponent(m, spark, Glyph{Rune: '*', Style: sparkStyle})
		flywheel.AddComponent(m, spark, Orbit{
			Radius: 1.5 + float64(i),
			Angle:  2 * math.Pi * float64(i) / float64(cfg.SparksPerComet),
			Speed:  3 - float64(i),
		})
		if err := m.Bind(comet, spark); err != nil {
			m.DestroyEntity(spark)
		}
	}
}

func move(m *flywheel.Manager, res *flywheel.Resources, entities []flywheel.Entity) {
	clock, _ := flywheel.GetResource[Clock](res)
	for _, e := range entities {
		p := flywheel.GetComponent[Position](m, e)
		v := flywheel.GetComponent[Velocity](m, e)
		p.X += v.DX * clock.Dt
		p.Y += v.DY * clock.Dt
	}
}

func bounceOffWalls(m *flywheel.Manager, res *flywheel.Resources, entities []flywheel.Entity) {
	term, _ := flywheel.GetResource[Terminal](res)
	// The bottom row is reserved for the status line.
	maxX, maxY := float64(term.Width-1), float64(term.Height-2)
	for _, e := range entities {
		p := flywheel.GetComponent[Position](m, e)
		v := flywheel.GetComponent[Velocity](m, e)
		if p.X < 0 {
			p.X, v.DX = -p.X, -v.DX
		} else if p.X > maxX {
			p.X, v.DX = 2*maxX-p.X, -v.DX
		}
		if p.Y < 0 {
			p.Y, v.DY = -p.Y, -v.DY
		} else if p.Y > maxY {
			p.Y, v.DY = 2*maxY-p.Y, -v.DY
		}
		p.X = clamp(p.X, 0, maxX)
		p.Y = clamp(p.Y, 0, maxY)
	}
}

// followParent places orbiting entities around their parent. Orphans keep
// their last position.
func followParent(m *flywheel.Manager, res *flywheel.Resources, entities []flywheel.Entity) {
	clock, _ := flywheel.GetResource[Clock](res)
	for _, e := range entities {
		parent, ok := m.Parent(e)
		if !ok {
			continue
		}
		center := flywheel.GetComponent[Position](m, parent)
		if center == nil {
			continue
		}
		o := flywheel.GetComponent[Orbit](m, e)
		if !flywheel.HasComponent[Frozen](m, parent) {
			o.Angle = math.Mod(o.Angle+o.Speed*clock.Dt, 2*math.Pi)
		}
		p := flywheel.GetComponent[Position](m, e)
		p.X = center.X + o.Radius*math.Cos(o.Angle)
		p.Y = center.Y + o.Radius*math.Sin(o.Angle)/2
	}
}

// age counts lifetimes down. Comets stall for the last FreezeFrames and burst
// with all their sparks when the count reaches zero.
func age(m *flywheel.Manager, res *flywheel.Resources, entities []flywheel.Entity) {
	cfg, _ := flywheel.GetResource[Config](res)
	for _, e := range entities {
		l := flywheel.GetComponent[Lifetime](m, e)
		l.Frames--
		switch {
		case l.Frames <= 0:
			m.DestroyEntity(e)
		case l.Frames == cfg.FreezeFrames:
			flywheel.AddComponent(m, e, Frozen{})
			if g := flywheel.GetComponent[Glyph](m, e); g != nil {
				g.Style = frozenStyle
			}
		}
	}
}

func draw(m *flywheel.Manager, res *flywheel.Resources, entities []flywheel.Entity) {
	term, _ := flywheel.GetResource[Terminal](res)
	clock, _ := flywheel.GetResource[Clock](res)
	screen := term.Screen
	screen.Clear()
	for _, e := range entities {
		p := flywheel.GetComponent[Position](m, e)
		g := flywheel.GetComponent[Glyph](m, e)
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		if x < 0 || y < 0 || x >= term.Width || y >= term.Height-1 {
			continue
		}
		screen.SetContent(x, y, g.Rune, nil, g.Style)
	}
	status := fmt.Sprintf("frame %d  entities %d  esc to quit", clock.Frame, m.Len())
	for i, r := range status {
		if i >= term.Width {
			break
		}
		screen.SetContent(i, term.Height-1, r, nil, statusStyle)
	}
	screen.Show()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
