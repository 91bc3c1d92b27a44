package tweener

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Interpolator supplies the arithmetic a Tween needs for one value type.
//
// Lerp blends a toward b by factor t. t is the eased progress and may leave
// [0, 1] for overshooting curves such as Back or Elastic.
//
// Rebase applies the change from origStart to origEnd onto from. Incremental
// loops use it at every cycle boundary to compute the next end value, so the
// same delta is reapplied cycle after cycle. Additive types add the
// difference; rotations compose it multiplicatively.
type Interpolator[T any] interface {
	Lerp(a, b T, t float64) T
	Rebase(from, origStart, origEnd T) T
}

// FloatInterp interpolates float64 values.
type FloatInterp struct{}

// Lerp returns a + (b-a)*t.
func (FloatInterp) Lerp(a, b float64, t float64) float64 { return a + (b-a)*t }

// Rebase adds the original change to from.
func (FloatInterp) Rebase(from, origStart, origEnd float64) float64 {
	return from + (origEnd - origStart)
}

// IntInterp interpolates integers, rounding to the nearest whole value.
type IntInterp struct{}

// Lerp blends in float64 and rounds half away from zero.
func (IntInterp) Lerp(a, b int, t float64) int {
	return int(math.Round(float64(a) + float64(b-a)*t))
}

// Rebase adds the original change to from.
func (IntInterp) Rebase(from, origStart, origEnd int) int {
	return from + (origEnd - origStart)
}

// Vec2Interp interpolates Vec2 values componentwise.
type Vec2Interp struct{}

// Lerp blends each component independently.
func (Vec2Interp) Lerp(a, b Vec2, t float64) Vec2 { return a.Add(b.Sub(a).Scale(t)) }

// Rebase translates from by the original displacement.
func (Vec2Interp) Rebase(from, origStart, origEnd Vec2) Vec2 {
	return from.Add(origEnd.Sub(origStart))
}

// Vec3Interp interpolates mgl64.Vec3 values componentwise.
type Vec3Interp struct{}

// Lerp blends each component independently.
func (Vec3Interp) Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 { return a.Add(b.Sub(a).Mul(t)) }

// Rebase translates from by the original displacement.
func (Vec3Interp) Rebase(from, origStart, origEnd mgl64.Vec3) mgl64.Vec3 {
	return from.Add(origEnd.Sub(origStart))
}

// Vec4Interp interpolates mgl64.Vec4 values componentwise.
type Vec4Interp struct{}

// Lerp blends each component independently.
func (Vec4Interp) Lerp(a, b mgl64.Vec4, t float64) mgl64.Vec4 { return a.Add(b.Sub(a).Mul(t)) }

// Rebase translates from by the original displacement.
func (Vec4Interp) Rebase(from, origStart, origEnd mgl64.Vec4) mgl64.Vec4 {
	return from.Add(origEnd.Sub(origStart))
}

// ColorInterp interpolates floating colors channel by channel without
// clamping.
type ColorInterp struct{}

// Lerp blends each channel, alpha included. Channels are not clamped.
func (ColorInterp) Lerp(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Rebase shifts every channel by its original change.
func (ColorInterp) Rebase(from, origStart, origEnd Color) Color {
	return Color{
		R: from.R + origEnd.R - origStart.R,
		G: from.G + origEnd.G - origStart.G,
		B: from.B + origEnd.B - origStart.B,
		A: from.A + origEnd.A - origStart.A,
	}
}

// RGBAInterp interpolates 8-bit colors. Channels are rounded and clamped to
// [0, 255], so overshooting curves saturate instead of wrapping.
type RGBAInterp struct{}

// Lerp blends each channel and saturates to [0, 255].
func (RGBAInterp) Lerp(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

// Rebase shifts every channel by its original change, saturating.
func (RGBAInterp) Rebase(from, origStart, origEnd color.RGBA) color.RGBA {
	return color.RGBA{
		R: shift8(from.R, origStart.R, origEnd.R),
		G: shift8(from.G, origStart.G, origEnd.G),
		B: shift8(from.B, origStart.B, origEnd.B),
		A: shift8(from.A, origStart.A, origEnd.A),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return clamp8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func shift8(from, origStart, origEnd uint8) uint8 {
	return clamp8(float64(int(from) + int(origEnd) - int(origStart)))
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// QuatInterp interpolates rotations with spherical linear interpolation.
// Incremental loops compose the rotation delta multiplicatively.
type QuatInterp struct{}

// Lerp slerps from a to b. t of exactly 0 or 1 returns a or b unchanged.
func (QuatInterp) Lerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return mgl64.QuatSlerp(a, b, t)
}

// Rebase applies the rotation origEnd * origStart⁻¹ to from and normalizes.
func (QuatInterp) Rebase(from, origStart, origEnd mgl64.Quat) mgl64.Quat {
	delta := origEnd.Mul(origStart.Inverse())
	return delta.Mul(from).Normalize()
}
