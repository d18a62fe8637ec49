// Command flywheel-demo runs the comet sandbox in the terminal.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/edwinsyarief/flywheel"
	"github.com/edwinsyarief/flywheel/internal/demo"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := demo.DefaultConfig()
	flag.IntVar(&cfg.MaxComets, "comets", cfg.MaxComets, "maximum comets alive at once")
	flag.IntVar(&cfg.SparksPerComet, "sparks", cfg.SparksPerComet, "sparks orbiting each comet")
	flag.IntVar(&cfg.CometLifetime, "lifetime", cfg.CometLifetime, "comet lifetime in frames")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	mute := flag.Bool("mute", false, "disable sound")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	if cfg.FPS <= 0 {
		log.Fatalf("fps must be positive, got %d", cfg.FPS)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	audio, err := demo.NewAudio(!*mute)
	if err != nil {
		// Non-fatal, the sandbox runs without sound.
		log.Printf("Audio initialization failed: %v", err)
	}

	w := demo.NewWorld(screen, audio, cfg, *seed)
	run(w, screen, cfg.FPS)

	if a, ok := flywheel.GetResource[demo.Audio](w.Resources()); ok {
		a.Close()
	}
	screen.Fini()
	log.Printf("stopped after %d frames", w.Ticks())
}

func run(w *flywheel.World, screen tcell.Screen, fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, events, done)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				if term, ok := flywheel.GetResource[demo.Terminal](w.Resources()); ok {
					term.Resize()
				}
				screen.Sync()
			}
		case <-ticker.C:
			w.Run()
		}
	}
}

// pumpEvents forwards screen events until the screen is finalized or done is
// closed.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
