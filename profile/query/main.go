// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"flag"

	"github.com/edwinsyarief/flywheel"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type tag struct{}

func main() {
	mem := flag.Bool("mem", false, "profile allocations instead of CPU")
	flag.Parse()

	count := 10
	iters := 1000
	entities := 100000
	mode := profile.CPUProfile
	if *mem {
		mode = profile.MemProfileAllocs
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

// run ticks a world whose systems toggle a tag component, so membership is
// re-evaluated for a slice of the entities on every tick.
func run(rounds, iters, numEntities int) {
	for range rounds {
		w := flywheel.NewWorld(numEntities)
		m := w.Manager()
		for i := range numEntities {
			e := m.Spawn()
			flywheel.AddComponent(m, e, comp1{V: int64(i)})
			flywheel.AddComponent(m, e, comp2{V: 1, W: 1})
			if i%3 == 0 {
				flywheel.AddComponent(m, e, comp3{})
			}
		}

		sum := w.NewSystem("sum", func(m *flywheel.Manager, _ *flywheel.Resources, entities []flywheel.Entity) {
			for _, e := range entities {
				c1 := flywheel.GetComponent[comp1](m, e)
				c2 := flywheel.GetComponent[comp2](m, e)
				c1.V += c2.V
				c1.W += c2.W
			}
		})
		flywheel.With[comp1](sum)
		flywheel.With[comp2](sum)
		flywheel.Without[tag](sum)
		sum.Build()

		toggle := w.NewSystem("toggle", func(m *flywheel.Manager, _ *flywheel.Resources, entities []flywheel.Entity) {
			for i, e := range entities {
				if i%16 != 0 {
					continue
				}
				if _, ok := flywheel.RemoveComponent[tag](m, e); !ok {
					flywheel.AddComponent(m, e, tag{})
				}
			}
		})
		flywheel.With[comp3](toggle)
		toggle.Build()

		for range iters {
			w.Run()
		}
	}
}
