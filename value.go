package tweener

// valueDriver interpolates a value reached through a getter/setter pair. A
// nil getter or setter turns the tween into a timed no-op.
type valueDriver[T any] struct {
	get    func() T
	set    func(T)
	interp Interpolator[T]

	start, end         T
	origStart, origEnd T
	captured           bool
}

func (d *valueDriver[T]) driverKind() Kind { return KindValue }

func (d *valueDriver[T]) bound() bool { return d.get != nil && d.set != nil }

func (d *valueDriver[T]) captureStart(*Tween) {
	if !d.bound() {
		return
	}
	d.start = d.get()
	d.origStart = d.start
	d.end = d.origEnd
	d.captured = true
}

func (d *valueDriver[T]) applyFactor(_ *Tween, k float64) {
	if !d.captured {
		return
	}
	d.set(d.interp.Lerp(d.start, d.end, k))
}

func (d *valueDriver[T]) prepareCycle(_ *Tween, loop LoopType) {
	if loop != LoopIncremental || !d.captured {
		return
	}
	d.start = d.end
	d.end = d.interp.Rebase(d.start, d.origStart, d.origEnd)
}

func (d *valueDriver[T]) restoreOrigin(*Tween) {
	if !d.captured {
		return
	}
	d.start, d.end = d.origStart, d.origEnd
	d.set(d.origStart)
}

// virtualDriver has no value. It only runs the timeline and its callbacks.
type virtualDriver struct{}

func (virtualDriver) driverKind() Kind              { return KindVirtual }
func (virtualDriver) captureStart(*Tween)           {}
func (virtualDriver) applyFactor(*Tween, float64)   {}
func (virtualDriver) prepareCycle(*Tween, LoopType) {}
func (virtualDriver) restoreOrigin(*Tween)          {}

// frameDriver completes after a fixed number of steps, regardless of dt.
type frameDriver struct {
	frames    int
	remaining int
}

func (d *frameDriver) driverKind() Kind              { return KindFrameDelay }
func (d *frameDriver) captureStart(*Tween)           {}
func (d *frameDriver) applyFactor(*Tween, float64)   {}
func (d *frameDriver) prepareCycle(*Tween, LoopType) {}
func (d *frameDriver) restoreOrigin(*Tween)          { d.remaining = d.frames }

func (d *frameDriver) step(t *Tween, dt float64) bool {
	t.elapsed += dt
	if !t.started {
		t.started = true
		t.fire(t.onStart)
		if t.killed {
			return false
		}
	}
	d.remaining--
	if d.remaining > 0 {
		return true
	}
	t.cycles = 1
	t.finished = true
	t.fireComplete()
	return false
}

// updateDriver calls fn every step until the tween is killed.
type updateDriver struct {
	fn func(dt float64)
}

func (d *updateDriver) driverKind() Kind              { return KindUpdateCall }
func (d *updateDriver) captureStart(*Tween)           {}
func (d *updateDriver) applyFactor(*Tween, float64)   {}
func (d *updateDriver) prepareCycle(*Tween, LoopType) {}
func (d *updateDriver) restoreOrigin(*Tween)          {}

func (d *updateDriver) step(t *Tween, dt float64) bool {
	t.elapsed += dt
	if !t.started {
		t.started = true
		t.fire(t.onStart)
	}
	if d.fn != nil && !t.killed {
		d.fn(dt)
	}
	return !t.killed
}
