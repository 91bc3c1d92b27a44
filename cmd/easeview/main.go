// Easeview plots an ease curve in the terminal and plays a looping demo
// sequence that uses it. Left and right arrows cycle through the eases, space
// pauses the demo, r restarts it and q quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/tweener"
	"github.com/phanxgames/tweener/internal/termview"
	"go.uber.org/zap"
)

const (
	tickRate    = 60
	defaultLog  = "easeview.log"
	markerSpeed = 1.5 // seconds per sweep
)

func main() {
	easeName := flag.String("ease", tweener.DefaultEase.String(), "initial ease")
	configPath := flag.String("config", "", "TOML or YAML config file")
	presetName := flag.String("preset", "", "preset from the config to apply to the demo")
	flag.Parse()

	cfg := &tweener.Config{Logging: tweener.LoggingConfig{Level: "info", Format: "console"}}
	if *configPath != "" {
		var err error
		if cfg, err = tweener.LoadConfig(*configPath); err != nil {
			log.Fatalf("easeview: %v", err)
		}
	}
	// The terminal belongs to the plot.
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = defaultLog
	}
	logger, err := tweener.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("easeview: logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	preset := tweener.DefaultPreset()
	preset.Duration = 1
	if *presetName != "" {
		p, ok := cfg.Presets[*presetName]
		if !ok {
			log.Fatalf("easeview: unknown preset %q", *presetName)
		}
		preset = p
	} else if e, err := tweener.ParseEase(*easeName); err == nil {
		preset.Ease = e
	} else {
		log.Fatalf("easeview: %v", err)
	}

	var script *tweener.ScriptRunner
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			log.Fatalf("easeview: script: %v", err)
		}
		if script, err = tweener.LoadScript(data); err != nil {
			log.Fatalf("easeview: script: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("easeview: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("easeview: %v", err)
	}

	v := newViewer(screen, tweener.NewScheduler(tweener.WithLogger(logger)), preset)
	v.script = script
	v.run()
	screen.Fini()
	fmt.Printf("last ease: %s\n", v.ease())
}

type viewer struct {
	screen tcell.Screen
	sched  *tweener.Scheduler
	log    *zap.Logger
	preset tweener.Preset
	script *tweener.ScriptRunner

	eases []tweener.Ease
	index int

	playhead float64
	boxX     float64
	boxColor tweener.Color
	demo     *tweener.Sequence
}

func newViewer(screen tcell.Screen, s *tweener.Scheduler, preset tweener.Preset) *viewer {
	v := &viewer{
		screen:   screen,
		sched:    s,
		log:      s.Logger(),
		preset:   preset,
		eases:    tweener.Eases(),
		boxColor: tweener.ColorWhite,
	}
	for i, e := range v.eases {
		if e == preset.Ease {
			v.index = i
		}
	}
	s.FloatTo(func() float64 { return v.playhead }, func(x float64) { v.playhead = x }, 1, markerSpeed).
		SetName("playhead").
		SetEase(tweener.Linear).
		SetLoop(tweener.LoopYoyo, tweener.InfiniteLoops)
	v.rebuild()
	return v
}

func (v *viewer) ease() tweener.Ease { return v.eases[v.index] }

// rebuild replaces the demo sequence with one that uses the current ease.
func (v *viewer) rebuild() {
	if v.demo != nil {
		v.demo.Kill(false)
	}
	v.boxX = 0
	v.boxColor = tweener.ColorWhite

	d := v.preset.Duration
	if d <= 0 {
		d = 1
	}
	getX := func() float64 { return v.boxX }
	setX := func(x float64) { v.boxX = x }
	getC := func() tweener.Color { return v.boxColor }
	setC := func(c tweener.Color) { v.boxColor = c }

	v.demo = v.sched.CreateSequence()
	v.demo.Append(v.sched.FloatTo(getX, setX, 1, d).SetEase(v.ease())).
		Join(v.sched.ColorTo(getC, setC, tweener.Color{R: 1, G: 0.4, B: 0.2, A: 1}, d)).
		AppendInterval(0.25).
		Append(v.sched.FloatTo(getX, setX, 0, d).SetEase(v.ease())).
		Join(v.sched.ColorTo(getC, setC, tweener.ColorWhite, d)).
		AppendInterval(0.25)
	v.demo.SetName("demo").
		SetDelay(v.preset.Delay).
		SetLoop(tweener.LoopRestart, tweener.InfiniteLoops).
		OnCycleComplete(func() { v.log.Debug("demo cycle", zap.Stringer("ease", v.ease())) })
	v.log.Info("ease selected", zap.Stringer("ease", v.ease()))
}

func (v *viewer) run() {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()
	last := time.Now()

	v.draw()
	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case now := <-ticker.C:
			v.update(now.Sub(last).Seconds())
			last = now
			v.draw()
		}
	}
}

func (v *viewer) update(dt float64) {
	if v.script != nil && !v.script.Done() {
		v.script.Step(v.sched, v.demo)
		return
	}
	v.sched.Tick(dt)
}

// handle reacts to one terminal event and reports whether to keep running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.index = (v.index + len(v.eases) - 1) % len(v.eases)
			v.rebuild()
		case tcell.KeyRight:
			v.index = (v.index + 1) % len(v.eases)
			v.rebuild()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				if v.demo.IsPaused() {
					v.demo.Resume()
				} else {
					v.demo.Pause()
				}
			case 'r':
				v.demo.Restart()
			}
		}
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	style := tcell.StyleDefault

	title := fmt.Sprintf("%s  (%d/%d)  ←/→ ease  space pause  r restart  q quit",
		v.ease(), v.index+1, len(v.eases))
	termview.DrawText(v.screen, 1, 0, style.Bold(true), title)

	plot := termview.Rect{X: 1, Y: 2, W: min(w-2, 61), H: min(h-7, 21)}
	termview.PlotEase(v.screen, v.ease(), plot, style.Foreground(tcell.ColorAqua))
	k := v.ease().Func()(1, 0, v.playhead, 1)
	termview.DrawMarker(v.screen, plot, v.playhead, k, style.Foreground(tcell.ColorYellow))

	row := plot.Y + plot.H + 1
	termview.DrawBar(v.screen, termview.Rect{X: 1, Y: row, W: plot.W, H: 1}, v.demo.Progress(), style)
	c := v.boxColor.RGBA8()
	box := style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	x, _ := termview.Rect{X: 1, Y: row + 1, W: plot.W, H: 1}.Cell(v.boxX, 0)
	termview.DrawText(v.screen, x, row+1, box, "█")

	status := fmt.Sprintf("tweens %d  cycles %d", v.sched.Len(), v.demo.LoopCycleCount())
	if v.demo.IsPaused() {
		status += "  paused"
	}
	termview.DrawText(v.screen, 1, row+2, style.Dim(true), status)
	v.screen.Show()
}
