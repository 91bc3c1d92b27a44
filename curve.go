package tweener

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/tanema/gween"
)

// Curve is an easing curve asset. Evaluate maps normalized time t in [0, 1]
// to an interpolation factor, normally 0 at t = 0 and 1 at t = 1. Curves are
// compared by identity when configured on a tween.
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(t float64) float64

// Evaluate calls f.
func (f CurveFunc) Evaluate(t float64) float64 { return f(t) }

// Keyframe is one key of a KeyframeCurve. Ease shapes the segment that starts
// at this key.
type Keyframe struct {
	Time  float64 `json:"time" toml:"time" yaml:"time"`
	Value float64 `json:"value" toml:"value" yaml:"value"`
	Ease  Ease    `json:"ease" toml:"ease" yaml:"ease"`
}

// KeyframeCurve is a piecewise curve through a list of keys. Each segment is
// a gween tween between two consecutive keys.
type KeyframeCurve struct {
	keys     []Keyframe
	segments []*gween.Tween
}

// NewKeyframeCurve builds a curve from keys. Keys are sorted by time; at
// least one key is required and times must be finite.
func NewKeyframeCurve(keys ...Keyframe) (*KeyframeCurve, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("new keyframe curve: no keys: %w", ErrBadCurve)
	}
	sorted := slices.Clone(keys)
	for _, k := range sorted {
		if math.IsNaN(k.Time) || math.IsInf(k.Time, 0) || math.IsNaN(k.Value) {
			return nil, fmt.Errorf("new keyframe curve: key at %v: %w", k.Time, ErrBadCurve)
		}
	}
	slices.SortStableFunc(sorted, func(a, b Keyframe) int { return cmp.Compare(a.Time, b.Time) })

	c := &KeyframeCurve{keys: sorted, segments: make([]*gween.Tween, len(sorted)-1)}
	for i := 0; i+1 < len(sorted); i++ {
		a, b := sorted[i], sorted[i+1]
		span := b.Time - a.Time
		if span <= 0 {
			continue // step: the later key wins
		}
		fn := easeTable[Linear]
		if a.Ease < EaseCurve {
			fn = easeTable[a.Ease]
		}
		c.segments[i] = gween.New(float32(a.Value), float32(b.Value), float32(span), fn)
	}
	return c, nil
}

// Keys returns a copy of the sorted keys.
func (c *KeyframeCurve) Keys() []Keyframe {
	return slices.Clone(c.keys)
}

// Evaluate returns the curve value at t. Before the first key and after the
// last key the curve holds the boundary value.
func (c *KeyframeCurve) Evaluate(t float64) float64 {
	keys := c.keys
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := len(keys) - 1
	if t >= keys[last].Time {
		return keys[last].Value
	}
	// First key strictly after t; the segment starts one before it.
	i, _ := slices.BinarySearchFunc(keys, t, func(k Keyframe, t float64) int {
		if k.Time <= t {
			return -1
		}
		return 1
	})
	seg := c.segments[i-1]
	if seg == nil {
		return keys[i].Value
	}
	v, _ := seg.Set(float32(t - keys[i-1].Time))
	return float64(v)
}
