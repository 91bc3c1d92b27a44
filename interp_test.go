package tweener

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestIntInterpRounds(t *testing.T) {
	tests := []struct {
		a, b int
		t    float64
		want int
	}{
		{0, 10, 0.24, 2},
		{0, 10, 0.26, 3},
		{10, 0, 0.5, 5},
		{-4, 4, 1, 4},
	}
	for _, tt := range tests {
		if got := (IntInterp{}).Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%d, %d, %v) = %d, want %d", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestVecInterp(t *testing.T) {
	v2 := (Vec2Interp{}).Lerp(Vec2{0, 10}, Vec2{10, 20}, 0.5)
	if v2 != (Vec2{5, 15}) {
		t.Errorf("Vec2 lerp = %+v", v2)
	}
	v3 := (Vec3Interp{}).Lerp(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 4, 6}, 0.5)
	if !v3.ApproxEqual(mgl64.Vec3{1, 2, 3}) {
		t.Errorf("Vec3 lerp = %v", v3)
	}
	v4 := (Vec4Interp{}).Rebase(mgl64.Vec4{1, 1, 1, 1}, mgl64.Vec4{0, 0, 0, 0}, mgl64.Vec4{1, 2, 3, 4})
	if !v4.ApproxEqual(mgl64.Vec4{2, 3, 4, 5}) {
		t.Errorf("Vec4 rebase = %v", v4)
	}
}

func TestColorInterp(t *testing.T) {
	c := (ColorInterp{}).Lerp(Color{1, 0, 0, 1}, Color{0, 1, 0.5, 0.5}, 0.5)
	want := Color{0.5, 0.5, 0.25, 0.75}
	if math.Abs(c.R-want.R) > eps || math.Abs(c.G-want.G) > eps ||
		math.Abs(c.B-want.B) > eps || math.Abs(c.A-want.A) > eps {
		t.Errorf("Color lerp = %+v, want %+v", c, want)
	}
}

func TestRGBAInterpClamps(t *testing.T) {
	a := color.RGBA{R: 0, G: 200, B: 100, A: 255}
	b := color.RGBA{R: 255, G: 250, B: 0, A: 255}

	mid := (RGBAInterp{}).Lerp(a, b, 0.5)
	if mid != (color.RGBA{R: 128, G: 225, B: 50, A: 255}) {
		t.Errorf("mid = %+v", mid)
	}
	over := (RGBAInterp{}).Lerp(a, b, 1.5)
	if over.R != 255 || over.B != 0 {
		t.Errorf("overshoot should saturate, got %+v", over)
	}
	next := (RGBAInterp{}).Rebase(b, a, b)
	if next.G != 255 || next.B != 0 {
		t.Errorf("rebase should saturate, got %+v", next)
	}
}

// quatNear reports whether a and b are the same rotation. q and -q are equal
// rotations.
func quatNear(a, b mgl64.Quat) bool {
	return math.Abs(a.Dot(b)) > 1-1e-9
}

func vec3Near(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestQuatInterp(t *testing.T) {
	a := mgl64.QuatIdent()
	b := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})

	if got := (QuatInterp{}).Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := (QuatInterp{}).Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(1) = %v", got)
	}
	mid := (QuatInterp{}).Lerp(a, b, 0.5)
	want := mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 0, 1})
	if !quatNear(mid, want) {
		t.Errorf("Lerp(0.5) = %v, want %v", mid, want)
	}

	// Rebasing composes the rotation delta: two quarter turns make a half.
	next := (QuatInterp{}).Rebase(b, a, b)
	half := mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 0, 1})
	if !quatNear(next, half) {
		t.Errorf("Rebase = %v, want %v", next, half)
	}
}

func TestTypedFactories(t *testing.T) {
	s := NewScheduler()

	var i int
	s.IntTo(func() int { return i }, func(v int) { i = v }, 100, 1).SetEase(Linear)

	var p Vec2
	s.Vec2To(func() Vec2 { return p }, func(v Vec2) { p = v }, Vec2{10, -10}, 1).SetEase(Linear)

	rot := mgl64.QuatIdent()
	end := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	s.QuatTo(func() mgl64.Quat { return rot }, func(q mgl64.Quat) { rot = q }, end, 1)

	c := color.RGBA{A: 255}
	s.RGBATo(func() color.RGBA { return c }, func(v color.RGBA) { c = v }, color.RGBA{R: 255, A: 255}, 1)

	s.Tick(0.5)
	if i != 50 {
		t.Errorf("int = %d, want 50", i)
	}
	if p != (Vec2{5, -5}) {
		t.Errorf("vec2 = %+v", p)
	}
	s.Tick(0.5)
	if !quatNear(rot, end) {
		t.Errorf("quat = %v, want %v", rot, end)
	}
	if c.R != 255 {
		t.Errorf("rgba = %+v", c)
	}
	if s.Len() != 0 {
		t.Errorf("live = %d, want 0", s.Len())
	}
}

func TestQuatIncremental(t *testing.T) {
	s := NewScheduler()
	rot := mgl64.QuatIdent()
	quarter := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	s.QuatTo(func() mgl64.Quat { return rot }, func(q mgl64.Quat) { rot = q }, quarter, 1).
		SetLoop(LoopIncremental, 2)

	s.Tick(1)
	s.Tick(1)
	got := rot.Rotate(mgl64.Vec3{1, 0, 0})
	if !vec3Near(got, mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("two incremental quarter turns rotate x to %v, want -x", got)
	}
}
