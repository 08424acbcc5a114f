// yoke-trace animates an orthogonal dual Scotch-yoke: two cranks on
// perpendicular axes drive sliders whose intersection traces a
// quasi-periodic path. The frequency ratio is the golden ratio, so the
// curve never exactly repeats, though playback replays the same precomputed
// frame set once the grid is exhausted.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/yoke-trace/audio"
	"github.com/lixenwraith/yoke-trace/engine"
	"github.com/lixenwraith/yoke-trace/mechanism"
	"github.com/lixenwraith/yoke-trace/parameter"
	"github.com/lixenwraith/yoke-trace/render"
)

type App struct {
	screen tcell.Screen
	scene  *render.Scene
	loop   *engine.Loop
	chimes *audio.Chimes

	frame  engine.Frame
	paused bool
}

func NewApp() (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	params := mechanism.DefaultParams()
	grid := mechanism.TimeGrid(parameter.Duration, parameter.FPS)

	w, h := screen.Size()
	a := &App{
		screen: screen,
		scene:  render.NewScene(params, w, h),
		loop:   engine.NewLoop(params, grid, parameter.TrailCap, parameter.LoopPlayback),
	}

	chimes, err := audio.Init()
	if err != nil {
		// Non-fatal, the animation runs silent
		log.Printf("audio init failed: %v", err)
	}
	a.chimes = chimes

	return a, nil
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			a.paused = !a.paused
			a.chimes.Pause()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			a.loop.Reset()
			a.frame = engine.Frame{}
			a.paused = false
		}
	case *tcell.EventResize:
		w, h := a.screen.Size()
		a.scene.Resize(w, h)
		a.screen.Sync()
	}
	return true
}

func (a *App) run() {
	ticker := time.NewTicker(time.Second / parameter.FPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
			a.scene.Draw(a.screen, a.frame, a.paused)

		case <-ticker.C:
			if a.paused {
				continue
			}
			f, wrapped, ok := a.loop.Advance()
			if !ok {
				// Loop playback off and the grid is exhausted
				return
			}
			if wrapped {
				a.chimes.Loop()
			}
			a.frame = f
			a.scene.Draw(a.screen, a.frame, a.paused)
		}
	}
}

func (a *App) cleanup() {
	a.chimes.Close()
	a.screen.Fini()
}

func main() {
	app, err := NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
