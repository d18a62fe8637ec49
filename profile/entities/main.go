// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

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

func main() {
	cpu := flag.Bool("cpu", false, "profile CPU instead of allocations")
	flag.Parse()

	count := 50
	iters := 1000
	entities := 1000
	mode := profile.MemProfileAllocs
	if *cpu {
		mode = profile.CPUProfile
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

// run churns spawn, bind and subtree destruction so that freed ids are
// recycled on every iteration.
func run(rounds, iters, numEntities int) {
	for range rounds {
		m := flywheel.NewManager(numEntities)
		batch := flywheel.CreateBatch[comp1](m)
		entities := make([]flywheel.Entity, 0, numEntities)
		roots := make([]flywheel.Entity, 0, numEntities/4)
		for range iters {
			entities = batch.CreateEntitiesWithComponentsTo(numEntities, entities[:0], comp1{V: 1})
			flywheel.AddComponentBatch(m, entities, comp2{W: 1})
			roots = roots[:0]
			for i, e := range entities {
				if i%4 == 0 {
					roots = append(roots, e)
				} else {
					m.Bind(roots[len(roots)-1], e)
				}
			}
			flywheel.Each2(m, func(_ flywheel.Entity, c1 *comp1, c2 *comp2) {
				c1.V += c2.V
				c1.W += c2.W
			})
			for _, e := range roots {
				m.DestroyEntity(e)
			}
		}
	}
}
