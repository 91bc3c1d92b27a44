package termview

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/tweener"
)

func newScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestRectCell(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 11, H: 6}
	tests := []struct {
		u, v   float64
		cx, cy int
	}{
		{0, 0, 2, 6},
		{1, 1, 12, 1},
		{0.5, 0, 7, 6},
		{1.4, -0.2, 12, 6},
		{math.NaN(), 2, 2, 1},
	}
	for _, tt := range tests {
		x, y := r.Cell(tt.u, tt.v)
		if x != tt.cx || y != tt.cy {
			t.Errorf("Cell(%v, %v) = (%d, %d), want (%d, %d)", tt.u, tt.v, x, y, tt.cx, tt.cy)
		}
		if !r.Contains(x, y) {
			t.Errorf("Cell(%v, %v) escaped the rect", tt.u, tt.v)
		}
	}
}

func TestSample(t *testing.T) {
	s := Sample(tweener.Linear, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(s[i]-want[i]) > 1e-9 {
			t.Errorf("sample[%d] = %f, want %f", i, s[i], want[i])
		}
	}
	if n := len(Sample(tweener.OutBack, 0)); n != 2 {
		t.Errorf("minimum sample count = %d, want 2", n)
	}
}

func TestPlotEaseLinear(t *testing.T) {
	screen := newScreen(t)
	r := Rect{W: 11, H: 11}
	PlotEase(screen, tweener.Linear, r, tcell.StyleDefault)

	for i := 0; i < 11; i++ {
		if got := runeAt(screen, i, 10-i); got != plotRune {
			t.Errorf("cell (%d, %d) = %q, want curve", i, 10-i, got)
		}
	}
	if got := runeAt(screen, 3, 3); got != ' ' {
		t.Errorf("cell (3, 3) = %q, want blank", got)
	}
	if got := runeAt(screen, 0, 4); got != axisRune {
		t.Errorf("cell (0, 4) = %q, want axis", got)
	}
	if got := runeAt(screen, 20, 5); got == plotRune {
		t.Error("plot drew outside its rect")
	}
}

func TestPlotEaseTooSmall(t *testing.T) {
	screen := newScreen(t)
	PlotEase(screen, tweener.Linear, Rect{W: 1, H: 5}, tcell.StyleDefault)
	if got := runeAt(screen, 0, 0); got == plotRune || got == axisRune {
		t.Errorf("degenerate rect drew %q", got)
	}
}

func TestDrawMarkerAndBar(t *testing.T) {
	screen := newScreen(t)
	r := Rect{W: 11, H: 11}
	DrawMarker(screen, r, 0.5, 0.5, tcell.StyleDefault)
	if got := runeAt(screen, 5, 5); got != markerRune {
		t.Errorf("marker cell = %q", got)
	}

	DrawBar(screen, Rect{Y: 12, W: 10, H: 1}, 0.5, tcell.StyleDefault)
	for i := 0; i < 10; i++ {
		want := '-'
		if i < 5 {
			want = '='
		}
		if got := runeAt(screen, i, 12); got != want {
			t.Errorf("bar cell %d = %q, want %q", i, got, want)
		}
	}
}

func TestDrawTextClips(t *testing.T) {
	screen := newScreen(t)
	DrawText(screen, 77, 0, tcell.StyleDefault, "hello")
	if got := runeAt(screen, 77, 0); got != 'h' {
		t.Errorf("cell 77 = %q", got)
	}
	if got := runeAt(screen, 79, 0); got != 'l' {
		t.Errorf("cell 79 = %q", got)
	}
}
