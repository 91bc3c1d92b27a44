package tweener

import (
	"errors"
	"math"
	"testing"
)

func TestKeyframeCurveEvaluate(t *testing.T) {
	c, err := NewKeyframeCurve(
		Keyframe{Time: 1, Value: 1, Ease: Linear},
		Keyframe{Time: 0, Value: 0, Ease: Linear},
		Keyframe{Time: 0.5, Value: 2, Ease: Linear},
	)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		t, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 1},
		{0.5, 2},
		{0.75, 1.5},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := c.Evaluate(tt.t); math.Abs(got-tt.want) > 1e-5 {
			t.Errorf("Evaluate(%v) = %f, want %f", tt.t, got, tt.want)
		}
	}

	keys := c.Keys()
	if len(keys) != 3 || keys[0].Time != 0 || keys[2].Time != 1 {
		t.Errorf("keys not sorted: %+v", keys)
	}
}

func TestKeyframeCurveSegmentEase(t *testing.T) {
	c, err := NewKeyframeCurve(
		Keyframe{Time: 0, Value: 0, Ease: InQuad},
		Keyframe{Time: 1, Value: 1},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Evaluate(0.5); math.Abs(got-0.25) > 1e-5 {
		t.Errorf("Evaluate(0.5) = %f, want 0.25", got)
	}
}

func TestKeyframeCurveStep(t *testing.T) {
	c, err := NewKeyframeCurve(
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 0},
		Keyframe{Time: 0.5, Value: 1},
		Keyframe{Time: 1, Value: 1},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Evaluate(0.25); got != 0 {
		t.Errorf("before step = %f, want 0", got)
	}
	if got := c.Evaluate(0.75); math.Abs(got-1) > 1e-6 {
		t.Errorf("after step = %f, want 1", got)
	}
}

func TestKeyframeCurveInvalid(t *testing.T) {
	if _, err := NewKeyframeCurve(); !errors.Is(err, ErrBadCurve) {
		t.Errorf("empty curve error = %v", err)
	}
	if _, err := NewKeyframeCurve(Keyframe{Time: math.NaN()}); !errors.Is(err, ErrBadCurve) {
		t.Errorf("NaN key error = %v", err)
	}
}

func TestTweenCurveEase(t *testing.T) {
	s := NewScheduler()
	var v float64
	curve := CurveFunc(func(t float64) float64 { return t * t })
	tw := s.FloatTo(func() float64 { return v }, func(x float64) { v = x }, 10, 1).SetCurve(curve)
	if tw.Ease() != EaseCurve {
		t.Fatalf("ease = %s, want curve", tw.Ease())
	}

	s.Tick(0.5)
	if math.Abs(v-2.5) > eps {
		t.Errorf("v = %f, want 2.5", v)
	}
	s.Tick(0.5)
	if v != 10 {
		t.Errorf("v = %f, want 10", v)
	}
}

func TestTweenNilCurveIsLinear(t *testing.T) {
	s := NewScheduler()
	var v float64
	s.FloatTo(func() float64 { return v }, func(x float64) { v = x }, 10, 1).SetCurve(nil)
	s.Tick(0.25)
	if math.Abs(v-2.5) > eps {
		t.Errorf("v = %f, want 2.5", v)
	}
}
