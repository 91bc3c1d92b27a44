package tweener

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures a Game window.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background fills the screen before the draw function runs. The zero
	// value leaves the screen as ebiten cleared it.
	Background Color
	// FixedStep, when positive, is the dt passed to the scheduler every
	// update instead of 1/TPS.
	FixedStep float64
}

// Game adapts a Scheduler to ebiten. Every ebiten Update ticks the scheduler
// once, then runs the optional update function.
type Game struct {
	sched  *Scheduler
	cfg    RunConfig
	update func() error
	draw   func(screen *ebiten.Image)
}

// NewGame creates a Game that ticks s.
func NewGame(s *Scheduler, cfg RunConfig) *Game {
	return &Game{sched: s, cfg: cfg}
}

// Scheduler returns the scheduler ticked by g.
func (g *Game) Scheduler() *Scheduler { return g.sched }

// SetUpdateFunc sets a function called every frame after the tick.
func (g *Game) SetUpdateFunc(fn func() error) { g.update = fn }

// SetDrawFunc sets the function that draws each frame.
func (g *Game) SetDrawFunc(fn func(screen *ebiten.Image)) { g.draw = fn }

// dt returns the time step of one update.
func (g *Game) dt() float64 {
	if g.cfg.FixedStep > 0 {
		return g.cfg.FixedStep
	}
	return 1.0 / float64(ebiten.TPS())
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.sched.Tick(g.dt())
	if g.update != nil {
		return g.update()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.Background.A > 0 {
		screen.Fill(g.cfg.Background.RGBA8())
	}
	if g.draw != nil {
		g.draw(screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\ntweens: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.sched.Len()))
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks until it is closed.
func Run(g *Game) error {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	}
	if g.cfg.Title != "" {
		ebiten.SetWindowTitle(g.cfg.Title)
	}
	return ebiten.RunGame(g)
}

var whitePixel *ebiten.Image

// FillRect draws a solid rectangle by scaling a 1x1 white image, the way
// sprites without a texture are drawn.
func FillRect(dst *ebiten.Image, x, y, w, h float64, c Color) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.RGBA8())
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA8())
	dst.DrawImage(whitePixel, &op)
}
