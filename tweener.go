package tweener

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents an RGBA color with floating point components, usually in
// [0, 1]. Not premultiplied. This is the floating color value category; byte
// colors use color.RGBA directly.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA8 converts c to an 8-bit color, clamping each channel to [0, 1].
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for positions, offsets, sizes and directions.
// Three and four component vectors use mgl64.Vec3 and mgl64.Vec4.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LoopType selects how consecutive cycles of a tween chain together.
type LoopType uint8

const (
	LoopOnce        LoopType = iota // single cycle, then complete
	LoopRestart                     // every cycle replays start -> end
	LoopYoyo                        // direction flips every cycle
	LoopIncremental                 // each cycle continues from the previous end
)

// InfiniteLoops is the loop count that never completes. Not accepted for
// sequence children.
const InfiniteLoops = -1

var loopNames = [...]string{
	LoopOnce:        "once",
	LoopRestart:     "restart",
	LoopYoyo:        "yoyo",
	LoopIncremental: "incremental",
}

// String returns the lower-case loop name.
func (l LoopType) String() string {
	if int(l) < len(loopNames) {
		return loopNames[l]
	}
	return fmt.Sprintf("LoopType(%d)", uint8(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l LoopType) MarshalText() ([]byte, error) {
	if int(l) >= len(loopNames) {
		return nil, fmt.Errorf("marshal loop %d: %w", uint8(l), ErrUnknownLoop)
	}
	return []byte(loopNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively.
func (l *LoopType) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range loopNames {
		if n == name {
			*l = LoopType(i)
			return nil
		}
	}
	return fmt.Errorf("parse loop %q: %w", text, ErrUnknownLoop)
}

// Kind distinguishes the driver behind a Tween.
type Kind uint8

const (
	KindValue      Kind = iota // interpolates a bound value
	KindSequence               // drives child tweens on a timeline
	KindVirtual                // no value, callbacks only
	KindFrameDelay             // completes after a number of ticks
	KindUpdateCall             // runs every tick until killed
)

var kindNames = [...]string{
	KindValue:      "value",
	KindSequence:   "sequence",
	KindVirtual:    "virtual",
	KindFrameDelay: "frameDelay",
	KindUpdateCall: "updateCall",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// hasSpan reports whether tweens of this kind have a fixed, predictable
// duration and can therefore be placed in a Sequence.
func (k Kind) hasSpan() bool {
	return k == KindValue || k == KindSequence
}

// EventType identifies a lifecycle event delivered to an EventSink.
type EventType uint8

const (
	EventComplete EventType = iota // a top-level entry finished normally
	EventKilled                    // a top-level entry was killed
	EventDropped                   // an entry was removed after its target became invalid or it panicked
)

// Event carries lifecycle data for top-level scheduler entries.
type Event struct {
	Type    EventType
	TweenID uint64
	Name    string
	Kind    Kind
	Cycles  int
}

// EventSink is the interface for optional lifecycle event forwarding, for
// instance into an ECS world. When set on a Scheduler, events are emitted as
// top-level entries leave the live list.
type EventSink interface {
	EmitEvent(event Event)
}

// Target is implemented by objects whose lifetime bounds a tween. When a
// tween's target reports disposed, the tween stops and is removed on its next
// step without touching the getter or setter again.
type Target interface {
	IsDisposed() bool
}

// TargetFunc adapts a plain function to Target.
type TargetFunc func() bool

// IsDisposed calls f.
func (f TargetFunc) IsDisposed() bool { return f() }
