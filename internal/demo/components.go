// Package demo is a small terminal sandbox built on flywheel: comets drift
// across the screen dragging orbiting sparks, stall, and burst. It exercises
// hierarchy binding, subtree destruction, exclusion predicates and the event
// bus.
package demo

import "github.com/gdamore/tcell/v2"

// Position is a location in terminal cells. Y grows downwards.
type Position struct {
	X, Y float64
}

// Velocity is measured in cells per second.
type Velocity struct {
	DX, DY float64
}

// Glyph is what the render system draws at an entity's Position.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Lifetime counts the frames an entity has left.
type Lifetime struct {
	Frames int
}

// Frozen entities are skipped by the movement system.
type Frozen struct{}

// Comet tags the root entities created by the spawner.
type Comet struct{}

// Orbit keeps an entity circling its parent.
type Orbit struct {
	Radius float64
	Angle  float64 // radians
	Speed  float64 // radians per second
}
