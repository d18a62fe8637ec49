package demo

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// Config tunes the sandbox.
type Config struct {
	MaxComets      int // comets alive at once
	SparksPerComet int
	SpawnEvery     int // frames between spawns
	CometLifetime  int // frames
	FreezeFrames   int // frames a comet stalls before bursting
	FPS            int
}

// DefaultConfig returns the settings used by cmd/flywheel-demo.
func DefaultConfig() Config {
	return Config{
		MaxComets:      8,
		SparksPerComet: 3,
		SpawnEvery:     10,
		CometLifetime:  180,
		FreezeFrames:   30,
		FPS:            30,
	}
}

// Terminal wraps the screen the render system draws to.
type Terminal struct {
	Screen        tcell.Screen
	Width, Height int
}

// Resize refreshes the cached screen size.
func (t *Terminal) Resize() {
	t.Width, t.Height = t.Screen.Size()
}

// Clock tracks frame timing and owns the sandbox's random source.
type Clock struct {
	Frame uint64
	Dt    float64 // seconds per frame
	Rand  *rand.Rand
}
