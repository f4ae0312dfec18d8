package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-life/audio"
	"github.com/lixenwraith/vi-life/config"
	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/parameter"
	"github.com/lixenwraith/vi-life/render"
	"github.com/lixenwraith/vi-life/status"
	"github.com/lixenwraith/vi-life/terminal"
	"github.com/lixenwraith/vi-life/visual"
)

// viewer is the interactive session: one engine and clock at a time,
// rebuilt on reseed since params are fixed per engine
type viewer struct {
	cfg       config.Config
	screen    tcell.Screen
	presenter *render.Presenter
	mapper    *visual.Mapper
	sonifier  *audio.Sonifier
	reg       *status.Registry

	width, height int
	seed          int64
	limit         uint64 // 0 runs until quit

	engine *engine.Engine
	clock  *engine.ClockScheduler

	statRate *status.AtomicFloat
	message  string
}

func newViewer(cfg config.Config, screen tcell.Screen, generations int) *viewer {
	palette := cfg.PaletteOrDefault()
	mode := terminal.ParseColorMode(cfg.Color)

	v := &viewer{
		cfg:       cfg,
		screen:    screen,
		presenter: render.NewPresenter(screen, mode, palette.Off),
		mapper:    visual.NewMapper(palette, cfg.Lifetime),
		reg:       status.NewRegistry(),
		seed:      resolveSeed(cfg.Seed),
		limit:     uint64(max(generations, 0)),
	}
	v.statRate = v.reg.Floats.Get(parameter.MetricStepsPerSec)

	cols, rows := v.presenter.Viewport()
	v.width, v.height = cfg.Width, cfg.Height
	if v.width <= 0 {
		v.width = max(cols, 1)
	}
	if v.height <= 0 {
		v.height = max(rows, 1)
	}
	log.Printf("viewer: %s color, viewport %dx%d, grid %dx%d", mode, cols, rows, v.width, v.height)
	return v
}

// rebuild replaces the engine and clock, keeping the paused state
func (v *viewer) rebuild() error {
	paused := false
	if v.clock != nil {
		paused = v.clock.Paused()
		v.clock.Stop()
	}
	if v.engine != nil {
		v.engine.Close()
	}

	e, err := newEngine(v.cfg, v.width, v.height, v.seed, v.reg)
	if err != nil {
		return err
	}
	v.engine = e
	v.clock = engine.NewClockScheduler(e, v.cfg.Interval.Duration, v.reg)
	if paused {
		v.clock.Pause()
	}
	v.clock.Start()
	v.message = ""
	return nil
}

func (v *viewer) close() {
	log.Printf("viewer: exit %s", v.reg)
	if v.clock != nil {
		v.clock.Stop()
	}
	if v.engine != nil {
		v.engine.Close()
	}
	if v.sonifier != nil {
		v.sonifier.Stop()
	}
}

// handleKey returns false when the session should end
func (v *viewer) handleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false, nil
	case tcell.KeyRune:
	default:
		return true, nil
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false, nil
	case ' ':
		v.clock.TogglePause()
	case 'n', 'N':
		if v.clock.Paused() {
			v.clock.StepOnce()
		}
	case 'r', 'R':
		v.seed++
		if err := v.rebuild(); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (v *viewer) draw() {
	s := v.engine.ReadCurrent()
	st := render.Status{
		Generation: s.Generation,
		Population: s.Population(),
		Rule:       v.engine.Rule().String(),
		Rate:       v.statRate.Load(),
		Paused:     v.clock.Paused(),
		Message:    v.message,
	}
	v.presenter.Present(v.mapper.Image(s), st)
}

// run is the event loop; simulation ticks arrive on the clock, redraws on the frame ticker
func (v *viewer) run() error {
	if err := v.rebuild(); err != nil {
		return err
	}
	defer v.close()

	if v.cfg.Sound {
		v.sonifier = audio.NewSonifier()
		if err := v.sonifier.Start(); err != nil {
			log.Printf("audio: %v", err)
			v.message = "no audio device"
			v.sonifier = nil
		}
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { v.screen.ChannelEvents(events, quit) })

	frame := time.NewTicker(v.cfg.FrameInterval.Duration)
	defer frame.Stop()

	dirty := true
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cont, err := v.handleKey(ev)
				if err != nil || !cont {
					return err
				}
				dirty = true
			case *tcell.EventResize:
				v.presenter.Resize()
				v.screen.Sync()
				dirty = true
			}

		case <-v.clock.Updates():
			dirty = true
			if err := v.clock.Err(); err != nil {
				log.Printf("viewer: %v", err)
				v.message = err.Error()
				continue
			}
			if v.sonifier != nil {
				pop := v.reg.Ints.Get(parameter.MetricPopulation).Load()
				v.sonifier.Pulse(int(pop), v.width*v.height)
			}
			if v.limit > 0 && v.engine.Generation() >= v.limit {
				v.clock.Pause()
			}

		case <-frame.C:
			if dirty {
				v.draw()
				dirty = false
			}
		}
	}
}

// runViewer owns the tcell screen for the session
func runViewer(cfg config.Config, generations int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	return newViewer(cfg, screen, generations).run()
}
