// Package flywheel implements the entity/component/system runtime of the
// Flywheel game engine.
//
// Features:
//   - Recyclable entity IDs with a LIFO free list.
//   - Sparse-set component pools with O(1) add, lookup and swap-removal.
//   - Growable archetype bitsets kept in sync with the pools.
//   - Parent/child hierarchies that stay a forest under any sequence of binds.
//   - Systems whose membership is maintained incrementally from a change
//     queue, drained after every system run so later systems observe the
//     mutations of earlier ones within the same tick.
//
// The runtime is single-threaded: a World and everything it owns must be
// driven from one goroutine at a time.
package flywheel

// ----------------------------------------
// Constants
// ----------------------------------------
const (
	bitsPerWord = 64
	// DefaultInitialCapacity is the number of entity slots NewWorld reserves
	// when it is given a non-positive capacity.
	DefaultInitialCapacity = 1024
)
