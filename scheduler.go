package tweener

import (
	"fmt"
	"image/color"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

const defaultLiveCap = 64

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger routes scheduler diagnostics to log. The default discards them.
func WithLogger(log *zap.Logger) Option {
	return func(s *Scheduler) {
		if log != nil {
			s.log = log
		}
	}
}

// WithEventSink forwards lifecycle events of top-level entries to sink.
func WithEventSink(sink EventSink) Option {
	return func(s *Scheduler) { s.sink = sink }
}

// WithDebug enables per-tick statistics at debug level.
func WithDebug(enabled bool) Option {
	return func(s *Scheduler) { s.debug = enabled }
}

// Scheduler owns the live tweens of one context and steps them once per
// Tick. It is not safe for concurrent use: create, control and tick tweens
// from the goroutine that owns the scheduler.
//
// Tweens may be created, killed or completed from inside callbacks during a
// Tick. Entries created during a pass are first stepped on the next Tick;
// entries killed during a pass are not stepped again.
type Scheduler struct {
	live []*Tween
	log  *zap.Logger
	sink EventSink

	updates    []tickUpdate
	nextUpdate int
	nextID     uint64

	ticking  bool
	disabled bool
	debug    bool
	closed   bool
	frame    uint64
}

type tickUpdate struct {
	id int
	fn func(dt float64)
}

// NewScheduler creates an empty scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		live: make([]*Tween, 0, defaultLiveCap),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetEventSink sets or clears the lifecycle event sink.
func (s *Scheduler) SetEventSink(sink EventSink) { s.sink = sink }

// SetDebugMode toggles per-tick statistics logging.
func (s *Scheduler) SetDebugMode(enabled bool) { s.debug = enabled }

// Logger returns the scheduler's logger.
func (s *Scheduler) Logger() *zap.Logger { return s.log }

// Len returns the number of live top-level entries.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.live {
		if t.live && !t.killed {
			n++
		}
	}
	return n
}

// --- Factories ---

// To creates a tween that interpolates the value behind get/set toward end
// over duration seconds using interp. The start value is read from get when
// the delay has passed.
func To[T any](s *Scheduler, get func() T, set func(T), end T, duration float64, interp Interpolator[T]) *Tween {
	d := &valueDriver[T]{get: get, set: set, interp: interp, end: end, origEnd: end}
	return s.add(newTween(s, d, duration))
}

// FloatTo tweens a float64.
func (s *Scheduler) FloatTo(get func() float64, set func(float64), end, duration float64) *Tween {
	return To[float64](s, get, set, end, duration, FloatInterp{})
}

// IntTo tweens an int, rounding every frame.
func (s *Scheduler) IntTo(get func() int, set func(int), end int, duration float64) *Tween {
	return To[int](s, get, set, end, duration, IntInterp{})
}

// Vec2To tweens a Vec2.
func (s *Scheduler) Vec2To(get func() Vec2, set func(Vec2), end Vec2, duration float64) *Tween {
	return To[Vec2](s, get, set, end, duration, Vec2Interp{})
}

// Vec3To tweens an mgl64.Vec3.
func (s *Scheduler) Vec3To(get func() mgl64.Vec3, set func(mgl64.Vec3), end mgl64.Vec3, duration float64) *Tween {
	return To[mgl64.Vec3](s, get, set, end, duration, Vec3Interp{})
}

// Vec4To tweens an mgl64.Vec4.
func (s *Scheduler) Vec4To(get func() mgl64.Vec4, set func(mgl64.Vec4), end mgl64.Vec4, duration float64) *Tween {
	return To[mgl64.Vec4](s, get, set, end, duration, Vec4Interp{})
}

// ColorTo tweens a floating Color.
func (s *Scheduler) ColorTo(get func() Color, set func(Color), end Color, duration float64) *Tween {
	return To[Color](s, get, set, end, duration, ColorInterp{})
}

// RGBATo tweens an 8-bit color.RGBA.
func (s *Scheduler) RGBATo(get func() color.RGBA, set func(color.RGBA), end color.RGBA, duration float64) *Tween {
	return To[color.RGBA](s, get, set, end, duration, RGBAInterp{})
}

// QuatTo tweens a rotation with spherical interpolation.
func (s *Scheduler) QuatTo(get func() mgl64.Quat, set func(mgl64.Quat), end mgl64.Quat, duration float64) *Tween {
	return To[mgl64.Quat](s, get, set, end, duration, QuatInterp{})
}

// VirtualTo creates a tween with no value. It only runs the timeline and
// fires callbacks.
func (s *Scheduler) VirtualTo(duration float64) *Tween {
	return s.add(newTween(s, virtualDriver{}, duration))
}

// DelayCall runs fn once after delay seconds.
func (s *Scheduler) DelayCall(delay float64, fn func()) *Tween {
	return s.VirtualTo(delay).OnComplete(fn)
}

// DelayFrameCall runs fn once after frames ticks, independent of dt.
func (s *Scheduler) DelayFrameCall(frames int, fn func()) *Tween {
	if frames < 1 {
		frames = 1
	}
	d := &frameDriver{frames: frames, remaining: frames}
	return s.add(newTween(s, d, 0)).OnComplete(fn)
}

// UpdateCall runs fn with the tick's dt on every tick until the returned
// tween is killed.
func (s *Scheduler) UpdateCall(fn func(dt float64)) *Tween {
	return s.add(newTween(s, &updateDriver{fn: fn}, 0))
}

// CreateSequence creates an empty sequence. Sequences ease their timeline
// linearly unless configured otherwise.
func (s *Scheduler) CreateSequence() *Sequence {
	seq := &Sequence{}
	t := newTween(s, seq, 0)
	t.ease = Linear
	t.easeFn = Linear.Func()
	seq.Tween = t
	s.add(t)
	return seq
}

func (s *Scheduler) add(t *Tween) *Tween {
	if s.closed {
		s.log.Warn("tween created on a closed scheduler; it will never run",
			zap.Uint64("id", t.id), zap.Stringer("kind", t.Kind()))
		return t
	}
	t.live = true
	s.live = append(s.live, t)
	return t
}

// detach removes t from the live list without killing it. Used when a
// sequence adopts t.
func (s *Scheduler) detach(t *Tween) {
	if !t.live {
		return
	}
	t.live = false
	if s.ticking {
		// The pass skips non-live entries and compacts them away.
		return
	}
	if i := slices.Index(s.live, t); i >= 0 {
		s.live = slices.Delete(s.live, i, i+1)
	}
}

// --- Control ---

// IsTweening reports whether t is a live, unkilled top-level entry of s.
func (s *Scheduler) IsTweening(t Animation) bool {
	if t == nil {
		return false
	}
	tw := t.tween()
	return tw != nil && tw.sched == s && tw.live && !tw.killed && !tw.finished
}

// KillIfTweening kills t when it is live in s. It returns whether a kill
// happened.
func (s *Scheduler) KillIfTweening(t Animation, callComplete bool) bool {
	if !s.IsTweening(t) {
		return false
	}
	t.tween().Kill(callComplete)
	return true
}

// Remove takes t out of the scheduler without firing callbacks or events.
func (s *Scheduler) Remove(t Animation) {
	if t == nil {
		return
	}
	tw := t.tween()
	if tw == nil || tw.sched != s {
		return
	}
	tw.killed = true
	s.detach(tw)
}

// KillAll kills every entry live at the time of the call. With callComplete
// each entry's OnComplete runs first; callbacks may remove or create entries.
func (s *Scheduler) KillAll(callComplete bool) {
	for _, t := range slices.Clone(s.live) {
		if t.live {
			t.Kill(callComplete)
		}
	}
	if s.ticking {
		return
	}
	s.sweep()
}

// sweep drops killed and detached entries outside a pass.
func (s *Scheduler) sweep() {
	w := 0
	for _, t := range s.live {
		if !t.live {
			continue
		}
		if t.killed || t.finished {
			s.dispose(t)
			continue
		}
		s.live[w] = t
		w++
	}
	clear(s.live[w:])
	s.live = s.live[:w]
}

// OnTickUpdate registers fn to run after every Tick. It returns an id for
// RemoveTickUpdate.
func (s *Scheduler) OnTickUpdate(fn func(dt float64)) int {
	s.nextUpdate++
	s.updates = append(s.updates, tickUpdate{id: s.nextUpdate, fn: fn})
	return s.nextUpdate
}

// RemoveTickUpdate unregisters a function added with OnTickUpdate.
func (s *Scheduler) RemoveTickUpdate(id int) {
	for i, u := range s.updates {
		if u.id == id {
			s.updates = append(s.updates[:i:i], s.updates[i+1:]...)
			return
		}
	}
}

// DisableTick makes Tick a no-op until EnableTick. ManualTick still works.
func (s *Scheduler) DisableTick() { s.disabled = true }

// EnableTick re-enables Tick.
func (s *Scheduler) EnableTick() { s.disabled = false }

// TickEnabled reports whether Tick advances tweens.
func (s *Scheduler) TickEnabled() bool { return !s.disabled }

// Close kills every entry without callbacks or events and stops accepting
// new tweens.
func (s *Scheduler) Close() {
	for _, t := range s.live {
		t.killed = true
		t.live = false
	}
	clear(s.live)
	s.live = s.live[:0]
	s.updates = nil
	s.closed = true
}

// --- Tick ---

// Tick advances every live entry by dt seconds, unless ticking is disabled.
func (s *Scheduler) Tick(dt float64) {
	if s.disabled {
		return
	}
	s.tick(dt)
}

// ManualTick advances every live entry by dt even while ticking is disabled.
func (s *Scheduler) ManualTick(dt float64) {
	s.tick(dt)
}

func (s *Scheduler) tick(dt float64) {
	if s.closed {
		return
	}
	if s.ticking {
		s.log.Warn("reentrant tick ignored")
		return
	}
	var stats tickStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.ticking = true
	s.frame++
	n := len(s.live)
	w := 0
	for i := 0; i < n; i++ {
		t := s.live[i]
		if !t.live {
			stats.removed++
			continue
		}
		if s.step(t, dt) {
			s.live[w] = t
			w++
			continue
		}
		s.dispose(t)
		stats.removed++
	}
	stats.stepped = n
	// Keep entries registered by callbacks during this pass.
	w += copy(s.live[w:], s.live[n:])
	clear(s.live[w:])
	s.live = s.live[:w]
	s.ticking = false

	for _, u := range s.updates {
		s.broadcast(u, dt)
	}

	if s.debug {
		stats.live = len(s.live)
		stats.elapsed = time.Since(t0)
		s.debugLog(stats)
	}
}

// step advances one entry and converts a panic in user code into a drop.
func (s *Scheduler) step(t *Tween, dt float64) (alive bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("tween step panicked, dropping entry",
				zap.Uint64("id", t.id),
				zap.String("name", t.name),
				zap.Stringer("kind", t.Kind()),
				zap.String("panic", fmt.Sprint(r)))
			t.killed = true
			t.invalid = true
			alive = false
		}
	}()
	return t.Advance(dt)
}

func (s *Scheduler) broadcast(u tickUpdate, dt float64) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("tick update panicked", zap.Int("id", u.id), zap.String("panic", fmt.Sprint(r)))
		}
	}()
	u.fn(dt)
}

// dispose finalizes an entry leaving the live list and emits its event.
func (s *Scheduler) dispose(t *Tween) {
	t.live = false
	ev := Event{TweenID: t.id, Name: t.name, Kind: t.Kind(), Cycles: t.cycles}
	switch {
	case t.invalid:
		ev.Type = EventDropped
		s.log.Warn("tween dropped",
			zap.Uint64("id", t.id), zap.String("name", t.name), zap.Stringer("kind", t.Kind()))
	case t.finished:
		ev.Type = EventComplete
	default:
		ev.Type = EventKilled
	}
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
}
