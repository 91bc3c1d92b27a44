package tweener

import "math"

// Animation is implemented by *Tween and *Sequence. Sequence builders accept
// any Animation so sequences can be nested.
type Animation interface {
	tween() *Tween
}

// driver supplies the kind-specific half of a Tween: what "start value",
// "apply progress" and "next cycle" mean for it.
type driver interface {
	driverKind() Kind
	// captureStart reads the start value. Called once when the delay first
	// passes.
	captureStart(t *Tween)
	// applyFactor writes the state for eased factor k of the current cycle.
	applyFactor(t *Tween, k float64)
	// prepareCycle re-bases the driver for the cycle that follows a loop
	// boundary.
	prepareCycle(t *Tween, loop LoopType)
	// restoreOrigin puts values back where they were captured.
	restoreOrigin(t *Tween)
}

// stepper is implemented by span-less drivers that replace the time-based
// state machine with their own per-tick behavior.
type stepper interface {
	step(t *Tween, dt float64) bool
}

// Tween is one time-driven animation. Create tweens through a Scheduler; the
// zero value is not usable.
//
// Configuration (SetEase, SetDelay, SetLoop, SetCurve, SetDuration) is only
// honored while the tween is idle or delaying; afterwards the calls are
// silently ignored so callers never need to special-case timing.
type Tween struct {
	id    uint64
	name  string
	sched *Scheduler
	drv   driver

	duration float64
	delay    float64
	elapsed  float64

	ease   Ease
	curve  Curve
	easeFn EaseFunc

	loop        LoopType
	maxLoops    int
	cycles      int
	reverse     bool
	baseReverse bool

	started       bool
	paused        bool
	killed        bool
	finished      bool
	invalid       bool
	completeFired bool
	silent        bool
	startPending  bool // started by Goto; OnStart waits for the next step

	target Target
	live   bool
	parent *Sequence

	onStart         func()
	onUpdate        func(progress float64)
	onCycleStart    func()
	onCycleComplete func()
	onComplete      func()
}

func newTween(s *Scheduler, d driver, duration float64) *Tween {
	if duration < 0 || math.IsNaN(duration) {
		duration = 0
	}
	t := &Tween{
		sched:    s,
		drv:      d,
		duration: duration,
		ease:     DefaultEase,
		easeFn:   DefaultEase.Func(),
		maxLoops: 1,
	}
	if s != nil {
		s.nextID++
		t.id = s.nextID
	}
	return t
}

func (t *Tween) tween() *Tween { return t }

// ID returns the scheduler-unique identifier of t.
func (t *Tween) ID() uint64 { return t.id }

// Name returns the optional debug name.
func (t *Tween) Name() string { return t.name }

// SetName sets a debug name used in diagnostics and events.
func (t *Tween) SetName(name string) *Tween {
	t.name = name
	return t
}

// Kind reports which driver backs t.
func (t *Tween) Kind() Kind { return t.drv.driverKind() }

// configurable reports whether setup calls are still honored.
func (t *Tween) configurable() bool {
	return !t.started && !t.killed && !t.finished && t.parent == nil
}

// SetEase selects the easing curve.
func (t *Tween) SetEase(e Ease) *Tween {
	if !t.configurable() || !e.Valid() {
		return t
	}
	t.ease = e
	t.easeFn = t.resolveEase()
	return t
}

// SetCurve selects a curve asset and switches the ease to EaseCurve. A nil
// curve animates linearly.
func (t *Tween) SetCurve(c Curve) *Tween {
	if !t.configurable() {
		return t
	}
	t.curve = c
	t.ease = EaseCurve
	t.easeFn = t.resolveEase()
	return t
}

func (t *Tween) resolveEase() EaseFunc {
	if t.ease == EaseCurve {
		return curveFunc(t.curve)
	}
	return t.ease.Func()
}

// SetDelay sets the wait before the first cycle. Negative values are ignored.
func (t *Tween) SetDelay(delay float64) *Tween {
	if !t.configurable() || delay < 0 || math.IsNaN(delay) {
		return t
	}
	t.delay = delay
	return t
}

// SetDuration changes the length of one cycle. Negative values are ignored.
// Sequences derive their duration from their children and ignore this call.
func (t *Tween) SetDuration(d float64) *Tween {
	if !t.configurable() || d < 0 || math.IsNaN(d) || t.Kind() == KindSequence {
		return t
	}
	t.duration = d
	return t
}

// SetLoop sets the loop policy and the number of cycles. count is ignored for
// LoopOnce; InfiniteLoops (-1) never completes; any other count below 1 means
// one cycle.
func (t *Tween) SetLoop(loop LoopType, count int) *Tween {
	if !t.configurable() || loop > LoopIncremental {
		return t
	}
	t.loop = loop
	switch {
	case loop == LoopOnce:
		t.maxLoops = 1
	case count == InfiniteLoops:
		t.maxLoops = InfiniteLoops
	case count < 1:
		t.maxLoops = 1
	default:
		t.maxLoops = count
	}
	return t
}

// SetTarget binds t to the lifetime of target. Once target reports disposed
// the tween stops without calling its getter or setter again.
func (t *Tween) SetTarget(target Target) *Tween {
	t.target = target
	return t
}

// OnStart registers fn to run once, when the delay has passed.
func (t *Tween) OnStart(fn func()) *Tween {
	t.onStart = fn
	return t
}

// OnUpdate registers fn to run every frame the value changes, with the
// progress of the current cycle in [0, 1].
func (t *Tween) OnUpdate(fn func(progress float64)) *Tween {
	t.onUpdate = fn
	return t
}

// OnCycleStart registers fn to run at the start of every cycle.
func (t *Tween) OnCycleStart(fn func()) *Tween {
	t.onCycleStart = fn
	return t
}

// OnCycleComplete registers fn to run at the end of every cycle.
func (t *Tween) OnCycleComplete(fn func()) *Tween {
	t.onCycleComplete = fn
	return t
}

// OnComplete registers fn to run once, when the last cycle finishes or the
// tween is killed with callComplete.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

// --- Queries ---

// Duration returns the length of one cycle. For a Sequence this is the total
// timeline length.
func (t *Tween) Duration() float64 { return t.duration }

// Delay returns the configured delay. For sequence children it includes the
// child's offset in the sequence.
func (t *Tween) Delay() float64 { return t.delay }

// Elapsed returns the time accumulated since creation or the last restart,
// delay included.
func (t *Tween) Elapsed() float64 { return t.elapsed }

// Ease returns the configured ease.
func (t *Tween) Ease() Ease { return t.ease }

// Loop returns the loop policy and maximum number of cycles.
func (t *Tween) Loop() (LoopType, int) { return t.loop, t.maxLoops }

// LoopCycleCount returns the number of completed cycles.
func (t *Tween) LoopCycleCount() int { return t.cycles }

// IsStarted reports whether the delay has passed.
func (t *Tween) IsStarted() bool { return t.started }

// IsPaused reports whether time advancement is suspended.
func (t *Tween) IsPaused() bool { return t.paused }

// IsKilled reports whether t was killed or force-completed.
func (t *Tween) IsKilled() bool { return t.killed }

// IsFinished reports whether t ran its last cycle to completion.
func (t *Tween) IsFinished() bool { return t.finished }

// Progress returns the progress of the current cycle in [0, 1].
func (t *Tween) Progress() float64 {
	switch {
	case t.finished:
		return 1
	case !t.started:
		return 0
	case t.duration <= 0:
		return 1
	}
	local := t.elapsed - t.delay - float64(t.cycles)*t.duration
	return math.Min(math.Max(local/t.duration, 0), 1)
}

// loopCount returns the number of cycles t runs, InfiniteLoops for endless.
func (t *Tween) loopCount() int {
	if t.loop == LoopOnce {
		return 1
	}
	return t.maxLoops
}

// span is the time t takes after its delay; +Inf for infinite loops.
func (t *Tween) span() float64 {
	n := t.loopCount()
	if n < 0 {
		return math.Inf(1)
	}
	return t.duration * float64(n)
}

// --- Control ---

// Pause suspends time advancement.
func (t *Tween) Pause() { t.paused = true }

// Resume continues after Pause.
func (t *Tween) Resume() { t.paused = false }

// Kill stops t. When callComplete is true the OnComplete callback runs
// synchronously first. Killing twice has no further effect, and OnComplete
// never runs more than once.
func (t *Tween) Kill(callComplete bool) {
	if t.killed || t.finished {
		return
	}
	t.killed = true
	if callComplete {
		t.fireComplete()
	}
}

// ForceComplete jumps to the end value, fires OnUpdate(1) and OnComplete, and
// then behaves as killed.
func (t *Tween) ForceComplete() {
	if t.killed || t.finished {
		return
	}
	if t.targetGone() {
		return
	}
	t.killed = true
	if !t.started {
		t.started = true
		t.drv.captureStart(t)
	}
	t.elapsed = t.delay + t.duration*float64(t.cycles+1)
	t.drv.applyFactor(t, 1)
	t.fireUpdate(1)
	t.fireComplete()
}

// Restart returns the value to where it was captured and replays from
// elapsed 0. The start value is captured again when the delay passes.
func (t *Tween) Restart() {
	if t.killed || t.finished {
		return
	}
	t.paused = false
	if !t.started && t.elapsed == 0 {
		return
	}
	if t.targetGone() {
		return
	}
	t.resetPristine()
	t.started = false
	t.startPending = false
}

// Goto scrubs to timePoint, measured from the end of the delay. The point is
// clamped to [0, duration × loop count]. The resulting state is a pure
// function of timePoint: t is reset and replayed silently, then OnUpdate runs
// once with the resulting progress. Span-less tweens ignore Goto.
//
// Goto on a tween that has not started captures its start value; OnStart and
// OnCycleStart then run on the next step instead. Infinite loops ignore time
// points more than 2^53 cycles away.
func (t *Tween) Goto(timePoint float64) {
	if t.killed || t.finished {
		return
	}
	if _, ok := t.drv.(stepper); ok {
		return
	}
	if t.targetGone() {
		return
	}
	if math.IsNaN(timePoint) || timePoint < 0 {
		timePoint = 0
	}
	timePoint = math.Min(timePoint, t.span())
	if t.endless(t.delay + timePoint) {
		return
	}
	if !t.started {
		t.started = true
		t.startPending = true
		t.drv.captureStart(t)
	}
	t.resetPristine()
	t.silent = true
	t.advanceTo(t.delay + timePoint)
	t.silent = false
	t.fireUpdate(t.Progress())
}

// resetPristine rewinds t to its cycle-0 state without re-capturing.
func (t *Tween) resetPristine() {
	t.drv.restoreOrigin(t)
	t.elapsed = 0
	t.cycles = 0
	t.reverse = t.baseReverse
	t.finished = false
	t.completeFired = false
}

// --- Stepping ---

// Advance adds dt to the elapsed time and steps the state machine. It
// returns false once t has finished or been killed, telling the owner to drop
// it.
func (t *Tween) Advance(dt float64) bool {
	if t.killed || t.finished {
		return false
	}
	if t.targetGone() {
		return false
	}
	if t.paused {
		return true
	}
	if st, ok := t.drv.(stepper); ok {
		return st.step(t, dt)
	}
	return t.advanceTo(t.elapsed + dt)
}

// AdvanceToElapsed is Advance with an absolute elapsed time. Sequences drive
// their children through it with sequence-relative time.
func (t *Tween) AdvanceToElapsed(elapsed float64) bool {
	if t.killed || t.finished {
		return false
	}
	if t.targetGone() {
		return false
	}
	if t.paused {
		return true
	}
	if _, ok := t.drv.(stepper); ok {
		return true
	}
	return t.advanceTo(elapsed)
}

// targetGone marks t invalid and killed once its target is disposed.
func (t *Tween) targetGone() bool {
	if t.invalid {
		return true
	}
	if t.target == nil || !t.target.IsDisposed() {
		return false
	}
	t.invalid = true
	t.killed = true
	return true
}

func (t *Tween) advanceTo(elapsed float64) bool {
	if math.IsNaN(elapsed) || t.endless(elapsed) {
		return !t.killed
	}
	t.elapsed = elapsed
	if !t.started {
		if elapsed <= t.delay {
			return true
		}
		t.started = true
		t.startPending = true
		t.drv.captureStart(t)
	}
	if t.startPending && !t.silent {
		t.startPending = false
		t.fire(t.onStart)
		t.fire(t.onCycleStart)
		if t.killed {
			return false
		}
	}
	if elapsed < t.delay {
		// Re-armed sequence child waiting for its offset.
		return true
	}

	for {
		local := elapsed - t.delay - float64(t.cycles)*t.duration
		if local < t.duration {
			t.render(math.Max(local, 0))
			return !t.killed
		}

		t.render(t.duration)
		if t.killed {
			return false
		}
		t.cycles++
		t.fire(t.onCycleComplete)
		if t.killed {
			return false
		}
		if n := t.loopCount(); n >= 0 && t.cycles >= n {
			if t.silent {
				// Scrubbing holds the last frame instead of completing.
				t.cycles--
				return true
			}
			t.finished = true
			t.fireComplete()
			return false
		}

		t.cycles += t.skipCycles(elapsed)
		t.fire(t.onCycleStart)
		if t.killed {
			return false
		}
		if t.duration <= 0 {
			// Zero-length infinite loops run one cycle per step.
			return true
		}
	}
}

// skipCycles prepares the next cycle. When elapsed lies more than one cycle
// ahead, the whole cycles in between are jumped over without rendering or
// firing their callbacks, and the number jumped is returned. Restart and Yoyo
// jump in constant time; Incremental still rebases once per skipped cycle.
func (t *Tween) skipCycles(elapsed float64) int {
	skip := 0
	if t.duration > 0 {
		extra := math.Floor((elapsed - t.delay - float64(t.cycles)*t.duration) / t.duration)
		if n := t.loopCount(); n >= 0 {
			extra = math.Min(extra, float64(n-t.cycles-1))
		}
		if extra > 0 {
			skip = int(extra)
		}
		if skip > 0 && t.Kind() == KindSequence {
			// Children the next partial cycle has not reached yet must hold
			// the end state of the cycle before it, so that one is played.
			skip--
		}
	}

	passes := 1
	switch t.loop {
	case LoopIncremental:
		passes += skip
	case LoopYoyo:
		passes += skip % 2
	}
	for range passes {
		if t.loop == LoopYoyo && t.Kind() != KindSequence {
			t.reverse = !t.reverse
		}
		t.drv.prepareCycle(t, t.loop)
	}
	return skip
}

// endless reports whether elapsed is out of reach for an infinite loop: more
// cycles away than a float64 can count.
func (t *Tween) endless(elapsed float64) bool {
	if t.loopCount() != InfiniteLoops || t.duration <= 0 {
		return false
	}
	return !((elapsed-t.delay)/t.duration < maxCycles)
}

// maxCycles bounds the cycle index of infinite loops.
const maxCycles = 1 << 53

// render applies the value for local time in the current cycle and reports
// the progress.
func (t *Tween) render(local float64) {
	x := local
	if t.reverse {
		x = t.duration - local
	}
	t.drv.applyFactor(t, t.easeFn(1, 0, x, t.duration))
	if t.duration <= 0 {
		t.fireUpdate(1)
		return
	}
	t.fireUpdate(local / t.duration)
}

func (t *Tween) fire(fn func()) {
	if fn != nil && !t.silent {
		fn()
	}
}

func (t *Tween) fireUpdate(progress float64) {
	if t.onUpdate != nil && !t.silent {
		t.onUpdate(progress)
	}
}

func (t *Tween) fireComplete() {
	if t.completeFired {
		return
	}
	t.completeFired = true
	if t.onComplete != nil && !t.silent {
		t.onComplete()
	}
}
