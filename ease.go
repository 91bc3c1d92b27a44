package tweener

import (
	"fmt"
	"math"
	"strings"

	"github.com/tanema/gween/ease"
)

// EaseFunc maps elapsed time t over duration d to a value that moves from
// base (at t = 0) to base+change (at t = d). Implementations are pure.
type EaseFunc func(change, base, t, d float64) float64

// Ease selects an easing curve. The zero value is Linear. Ease values are
// plain comparable integers, so configuring the same ease twice is a no-op.
type Ease uint8

const (
	Linear Ease = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InSine
	OutSine
	InOutSine
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InElastic
	OutElastic
	InOutElastic
	InBack
	OutBack
	InOutBack
	InBounce
	OutBounce
	InOutBounce
	// EaseCurve evaluates the tween's Curve asset. Without a curve it falls
	// back to Linear.
	EaseCurve

	easeCount
)

// DefaultEase is the ease of a freshly created tween.
const DefaultEase = OutCubic

var easeNames = [easeCount]string{
	"linear",
	"inQuad", "outQuad", "inOutQuad",
	"inCubic", "outCubic", "inOutCubic",
	"inQuart", "outQuart", "inOutQuart",
	"inSine", "outSine", "inOutSine",
	"inExpo", "outExpo", "inOutExpo",
	"inCirc", "outCirc", "inOutCirc",
	"inElastic", "outElastic", "inOutElastic",
	"inBack", "outBack", "inOutBack",
	"inBounce", "outBounce", "inOutBounce",
	"curve",
}

// gween curves, indexed by Ease. EaseCurve has no entry of its own.
var easeTable = [easeCount]ease.TweenFunc{
	ease.Linear,
	ease.InQuad, ease.OutQuad, ease.InOutQuad,
	ease.InCubic, ease.OutCubic, ease.InOutCubic,
	ease.InQuart, ease.OutQuart, ease.InOutQuart,
	ease.InSine, ease.OutSine, ease.InOutSine,
	ease.InExpo, ease.OutExpo, ease.InOutExpo,
	ease.InCirc, ease.OutCirc, ease.InOutCirc,
	ease.InElastic, ease.OutElastic, ease.InOutElastic,
	ease.InBack, ease.OutBack, ease.InOutBack,
	ease.InBounce, ease.OutBounce, ease.InOutBounce,
	ease.Linear,
}

// Unit curves evaluated in float64. They replace the gween entry of the same
// index; the remaining families keep gween's float32 precision (about 1e-7
// relative).
var exactTable = [easeCount]func(x float64) float64{
	Linear:     func(x float64) float64 { return x },
	InQuad:     func(x float64) float64 { return x * x },
	OutQuad:    func(x float64) float64 { return 1 - (1-x)*(1-x) },
	InOutQuad:  inOut(2),
	InCubic:    func(x float64) float64 { return x * x * x },
	OutCubic:   func(x float64) float64 { return 1 - math.Pow(1-x, 3) },
	InOutCubic: inOut(3),
	InQuart:    func(x float64) float64 { return x * x * x * x },
	OutQuart:   func(x float64) float64 { return 1 - math.Pow(1-x, 4) },
	InOutQuart: inOut(4),
	InSine:     func(x float64) float64 { return 1 - math.Cos(x*math.Pi/2) },
	OutSine:    func(x float64) float64 { return math.Sin(x * math.Pi / 2) },
	InOutSine:  func(x float64) float64 { return -(math.Cos(math.Pi*x) - 1) / 2 },
	EaseCurve:  func(x float64) float64 { return x },
}

// inOut is the symmetric in-out polynomial of degree n.
func inOut(n float64) func(x float64) float64 {
	return func(x float64) float64 {
		if x < 0.5 {
			return math.Pow(2, n-1) * math.Pow(x, n)
		}
		return 1 - math.Pow(-2*x+2, n)/2
	}
}

var easeFuncs [easeCount]EaseFunc

func init() {
	for i, fn := range easeTable {
		if exact := exactTable[i]; exact != nil {
			easeFuncs[i] = wrapUnit(exact)
			continue
		}
		easeFuncs[i] = wrapGween(fn)
	}
}

// wrapUnit adapts a unit curve on [0,1] to EaseFunc with the same endpoint
// and zero-duration handling as wrapGween.
func wrapUnit(fn func(x float64) float64) EaseFunc {
	return func(change, base, t, d float64) float64 {
		if d <= 0 || t >= d {
			return base + change
		}
		if t <= 0 {
			return base
		}
		return base + change*fn(t/d)
	}
}

// wrapGween adapts a gween curve to EaseFunc. The endpoints are pinned so
// float32 rounding inside gween never leaks into the first or last frame, and
// a zero duration resolves to the end value without dividing by zero.
func wrapGween(fn ease.TweenFunc) EaseFunc {
	return func(change, base, t, d float64) float64 {
		if d <= 0 || t >= d {
			return base + change
		}
		if t <= 0 {
			return base
		}
		// gween evaluates in float32; evaluate the unit curve and scale in
		// float64 to keep large bases precise.
		k := fn(float32(t/d), 0, 1, 1)
		return base + change*float64(k)
	}
}

// Func returns the easing function for e. Unknown values and EaseCurve
// resolve to Linear.
func (e Ease) Func() EaseFunc {
	if e >= easeCount {
		return easeFuncs[Linear]
	}
	return easeFuncs[e]
}

// Valid reports whether e names a known curve.
func (e Ease) Valid() bool { return e < easeCount }

// String returns the ease name, e.g. "inOutQuad".
func (e Ease) String() string {
	if e < easeCount {
		return easeNames[e]
	}
	return fmt.Sprintf("Ease(%d)", uint8(e))
}

// MarshalText implements encoding.TextMarshaler.
func (e Ease) MarshalText() ([]byte, error) {
	if e >= easeCount {
		return nil, fmt.Errorf("marshal ease %d: %w", uint8(e), ErrUnknownEase)
	}
	return []byte(easeNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively, so "InOutQuad" and "inoutquad" both work.
func (e *Ease) UnmarshalText(text []byte) error {
	v, err := ParseEase(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseEase resolves an ease by name.
func ParseEase(name string) (Ease, error) {
	n := strings.TrimSpace(name)
	for i, candidate := range easeNames {
		if strings.EqualFold(candidate, n) {
			return Ease(i), nil
		}
	}
	return Linear, fmt.Errorf("parse ease %q: %w", name, ErrUnknownEase)
}

// Eases returns every selectable ease in declaration order.
func Eases() []Ease {
	out := make([]Ease, 0, easeCount)
	for i := Ease(0); i < easeCount; i++ {
		out = append(out, i)
	}
	return out
}

// curveFunc turns a curve asset into an EaseFunc. A nil curve falls back to
// Linear.
func curveFunc(c Curve) EaseFunc {
	if c == nil {
		return easeFuncs[Linear]
	}
	return func(change, base, t, d float64) float64 {
		if d <= 0 {
			return base + change
		}
		if t >= d {
			return base + change*c.Evaluate(1)
		}
		if t <= 0 {
			return base + change*c.Evaluate(0)
		}
		return base + change*c.Evaluate(t/d)
	}
}
