package demo

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Audio plays a short pop whenever comets burst. A muted Audio still counts
// pops so the sandbox behaves the same without a sound device.
type Audio struct {
	mixer     *beep.Mixer
	enabled   bool
	lastFrame uint64
	pops      int
}

// NewAudio initializes the speaker when enabled is true. On failure the
// returned Audio is muted and the error is reported so the caller can carry
// on silently.
func NewAudio(enabled bool) (Audio, error) {
	a := Audio{mixer: &beep.Mixer{}}
	if !enabled {
		return a, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return a, err
	}
	speaker.Play(a.mixer)
	a.enabled = true
	return a, nil
}

// Enabled reports whether sound actually reaches the speaker.
func (a *Audio) Enabled() bool {
	return a.enabled
}

// Pops returns how many pops were triggered.
func (a *Audio) Pops() int {
	return a.pops
}

// Pop queues a pop for the given frame. At most one pop is played per frame;
// it reports whether this call produced one.
func (a *Audio) Pop(frame uint64) bool {
	if a.pops > 0 && frame == a.lastFrame {
		return false
	}
	a.lastFrame = frame
	a.pops++
	if a.enabled {
		speaker.Lock()
		a.mixer.Add(beep.Take(sampleRate.N(80*time.Millisecond), newPopGenerator(sampleRate, 660)))
		speaker.Unlock()
	}
	return true
}

// Close silences anything still playing and releases the speaker.
func (a *Audio) Close() {
	if !a.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	a.enabled = false
}

// popGenerator is a decaying sine chirp.
type popGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newPopGenerator(sr beep.SampleRate, freq float64) *popGenerator {
	return &popGenerator{sr: sr, freq: freq}
}

func (g *popGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		f := g.freq * (1 - 0.5*math.Min(t/0.08, 1))
		sample := 0.25 * math.Sin(2*math.Pi*f*t) * math.Exp(-t*30)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *popGenerator) Err() error {
	return nil
}
