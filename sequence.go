package tweener

import (
	"cmp"
	"math"
	"slices"

	"go.uber.org/zap"
)

// Sequence is a Tween whose value is a timeline of child animations. Children
// are placed at offsets with Append, Insert, Join, Prepend and the interval
// variants; the sequence's duration grows to cover them. A child handed to a
// sequence is owned by it and leaves its scheduler.
//
// Composition is only accepted before the sequence starts. Children must
// have a finite, known span: frame delays, update calls, virtual waits and
// children with parents are rejected and logged.
type Sequence struct {
	*Tween

	children []*Tween // composition order
	active   []*Tween
	done     []*Tween

	anchor   float64 // start time of the last inserted child, used by Join
	mirrored bool
}

// Children returns the children in composition order.
func (s *Sequence) Children() []*Tween {
	return slices.Clone(s.children)
}

// Append places child at the current end of the sequence.
func (s *Sequence) Append(child Animation) *Sequence {
	return s.Insert(s.duration, child)
}

// AppendInterval extends the sequence by an empty gap.
func (s *Sequence) AppendInterval(interval float64) *Sequence {
	if !s.composable("append interval") || !s.validInterval(interval) {
		return s
	}
	s.duration += interval
	return s
}

// Insert places child at time at. The sequence grows when the child ends
// after the current duration.
func (s *Sequence) Insert(at float64, child Animation) *Sequence {
	c := s.accept("insert", child)
	if c == nil {
		return s
	}
	if at < 0 || math.IsNaN(at) {
		at = 0
	}
	s.bind(c, at)
	s.children = append(s.children, c)
	s.anchor = at
	s.duration = math.Max(s.duration, c.delay+c.span())
	return s
}

// Join places child at the start time of the previously inserted child, so
// both play together.
func (s *Sequence) Join(child Animation) *Sequence {
	return s.Insert(s.anchor, child)
}

// Prepend places child at time 0 and shifts every existing child later by
// the child's span.
func (s *Sequence) Prepend(child Animation) *Sequence {
	c := s.accept("prepend", child)
	if c == nil {
		return s
	}
	shift := c.delay + c.span()
	s.shift(shift)
	s.bind(c, 0)
	s.children = slices.Insert(s.children, 0, c)
	s.anchor = 0
	s.duration += shift
	return s
}

// PrependInterval inserts an empty gap at time 0, shifting every child.
func (s *Sequence) PrependInterval(interval float64) *Sequence {
	if !s.composable("prepend interval") || !s.validInterval(interval) {
		return s
	}
	s.shift(interval)
	s.anchor += interval
	s.duration += interval
	return s
}

func (s *Sequence) shift(by float64) {
	for _, c := range s.children {
		c.delay += by
	}
}

// bind transfers ownership of c to s and places it at offset.
func (s *Sequence) bind(c *Tween, offset float64) {
	if c.sched != nil {
		c.sched.detach(c)
	}
	c.delay += offset
	c.parent = s
	s.active = append(s.active, c)
}

func (s *Sequence) composable(op string) bool {
	switch {
	case s.started || s.elapsed > 0 || s.killed || s.finished:
		s.reject(op, "sequence already running", nil)
		return false
	case s.parent != nil:
		s.reject(op, "sequence is a child of another sequence", nil)
		return false
	}
	return true
}

func (s *Sequence) validInterval(interval float64) bool {
	if interval < 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
		s.logger().Error("sequence: invalid interval",
			zap.Uint64("sequence", s.id), zap.Float64("interval", interval))
		return false
	}
	return true
}

// accept validates a child before composition and returns its Tween, or nil
// when it is rejected. Infinite children are clamped to one cycle here, before
// any caller reads their span.
func (s *Sequence) accept(op string, child Animation) *Tween {
	if !s.composable(op) {
		return nil
	}
	if child == nil {
		s.reject(op, "nil child", nil)
		return nil
	}
	c := child.tween()
	switch {
	case c == nil:
		s.reject(op, "nil child", nil)
	case c == s.Tween:
		s.reject(op, "sequence cannot contain itself", c)
	case c.parent != nil:
		s.reject(op, "child already belongs to a sequence", c)
	case !c.Kind().hasSpan():
		s.reject(op, "child has no fixed span", c)
	case c.started || c.elapsed > 0:
		s.reject(op, "child already started", c)
	case c.killed || c.finished:
		s.reject(op, "child already finished", c)
	default:
		if c.loopCount() == InfiniteLoops {
			s.logger().Warn("infinite child clamped to one cycle",
				zap.Uint64("sequence", s.id), zap.Uint64("child", c.id))
			c.maxLoops = 1
		}
		return c
	}
	return nil
}

func (s *Sequence) reject(op, reason string, c *Tween) {
	fields := []zap.Field{zap.String("op", op), zap.Uint64("sequence", s.id)}
	if c != nil {
		fields = append(fields, zap.Uint64("child", c.id), zap.Stringer("kind", c.Kind()))
	}
	s.logger().Error("sequence: "+reason, fields...)
}

func (s *Sequence) logger() *zap.Logger {
	if s.sched != nil {
		return s.sched.log
	}
	return zap.NewNop()
}

// --- Driver ---

func (s *Sequence) driverKind() Kind { return KindSequence }

func (s *Sequence) captureStart(*Tween) {}

func (s *Sequence) applyFactor(t *Tween, k float64) {
	at := k * t.duration
	n := len(s.active)
	w := 0
	for i := 0; i < n; i++ {
		c := s.active[i]
		c.silent = t.silent
		if c.AdvanceToElapsed(at) {
			s.active[w] = c
			w++
			continue
		}
		s.done = append(s.done, c)
	}
	clear(s.active[w:n])
	s.active = s.active[:w]
}

func (s *Sequence) prepareCycle(_ *Tween, loop LoopType) {
	switch loop {
	case LoopYoyo:
		s.mirror()
	case LoopRestart:
		s.restoreChildren()
	case LoopIncremental:
		for _, c := range s.children {
			c.drv.prepareCycle(c, LoopIncremental)
		}
	}
	s.rearm()
}

func (s *Sequence) restoreOrigin(*Tween) {
	if s.mirrored {
		s.mirror()
	}
	s.restoreChildren()
	s.rearm()
}

// restoreChildren puts every child back to its captured origin. Later
// children are restored first so earlier children, which usually own the
// earlier state of a shared value, win.
func (s *Sequence) restoreChildren() {
	order := slices.Clone(s.children)
	slices.SortStableFunc(order, func(a, b *Tween) int { return cmp.Compare(b.delay, a.delay) })
	for _, c := range order {
		c.drv.restoreOrigin(c)
		c.baseReverse = false
	}
}

// mirror reflects every child on the timeline for a yoyo pass. A child that
// ends at time e is moved to start at duration - e and plays in the opposite
// direction. A yoyo child with an even number of cycles is its own mirror
// image and keeps its direction.
func (s *Sequence) mirror() {
	for _, c := range s.children {
		c.delay = s.duration - c.delay - c.span()
		if nested, ok := c.drv.(*Sequence); ok {
			nested.mirror()
			continue
		}
		if c.loop == LoopYoyo && c.loopCount()%2 == 0 {
			continue
		}
		c.baseReverse = !c.baseReverse
	}
	s.mirrored = !s.mirrored
}

// rearm makes every live child pending again at the start of a new cycle.
func (s *Sequence) rearm() {
	clear(s.active)
	clear(s.done)
	s.active = s.active[:0]
	s.done = s.done[:0]
	for _, c := range s.children {
		if c.killed {
			s.done = append(s.done, c)
			continue
		}
		c.elapsed = 0
		c.cycles = 0
		c.finished = false
		c.completeFired = false
		c.reverse = c.baseReverse
		if nested, ok := c.drv.(*Sequence); ok {
			nested.rearm()
		}
		s.active = append(s.active, c)
	}
}
