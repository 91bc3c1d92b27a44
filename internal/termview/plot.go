// Package termview draws ease curves and tween progress onto a tcell screen.
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/tweener"
)

const (
	plotRune   = '•'
	markerRune = '█'
	axisRune   = '·'
)

// Rect is a cell rectangle on the screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Cell maps a normalized point (u, v) in [0,1]² to a cell inside r. v grows
// upwards. Values outside the unit square are clamped to the border so
// overshooting eases stay visible.
func (r Rect) Cell(u, v float64) (int, int) {
	u = clamp01(u)
	v = clamp01(v)
	x := r.X + int(math.Round(u*float64(r.W-1)))
	y := r.Y + r.H - 1 - int(math.Round(v*float64(r.H-1)))
	return x, y
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Sample evaluates e at n evenly spaced points over [0,1].
func Sample(e tweener.Ease, n int) []float64 {
	if n < 2 {
		n = 2
	}
	fn := e.Func()
	out := make([]float64, n)
	for i := range out {
		out[i] = fn(1, 0, float64(i)/float64(n-1), 1)
	}
	return out
}

// PlotEase clears r and draws the curve of e inside it, one sample per
// column.
func PlotEase(screen tcell.Screen, e tweener.Ease, r Rect, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	Fill(screen, r, ' ', tcell.StyleDefault)

	axis := style.Dim(true)
	for x := r.X; x < r.X+r.W; x++ {
		screen.SetContent(x, r.Y+r.H-1, axisRune, nil, axis)
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		screen.SetContent(r.X, y, axisRune, nil, axis)
	}

	for i, v := range Sample(e, r.W) {
		x, y := r.Cell(float64(i)/float64(r.W-1), v)
		screen.SetContent(x, y, plotRune, nil, style)
	}
}

// DrawMarker places the playhead at time u with value v.
func DrawMarker(screen tcell.Screen, r Rect, u, v float64, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x, y := r.Cell(u, v)
	screen.SetContent(x, y, markerRune, nil, style)
}

// DrawBar draws a horizontal progress bar of width r.W on row r.Y.
func DrawBar(screen tcell.Screen, r Rect, progress float64, style tcell.Style) {
	filled := int(math.Round(clamp01(progress) * float64(r.W)))
	for i := 0; i < r.W; i++ {
		ch := '-'
		if i < filled {
			ch = '='
		}
		screen.SetContent(r.X+i, r.Y, ch, nil, style)
	}
}

// DrawText writes s starting at (x, y), clipped to the screen width.
func DrawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	w, _ := screen.Size()
	for _, ch := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Fill sets every cell of r to ch.
func Fill(screen tcell.Screen, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}
