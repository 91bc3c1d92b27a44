// Package tweener is a time-driven tweening engine for games and tools.
//
// A [Scheduler] owns a set of live animations and advances them every time
// [Scheduler.Tick] is called with the frame's delta time. Each animation
// interpolates a value through a getter/setter pair over a duration, shaped by
// an [Ease], and reports its lifecycle through callbacks.
//
// # Quick start
//
//	s := tweener.NewScheduler()
//	x := 0.0
//	s.FloatTo(func() float64 { return x }, func(v float64) { x = v }, 100, 0.5).
//		SetEase(tweener.OutBack).
//		SetLoop(tweener.LoopYoyo, 2).
//		OnComplete(func() { fmt.Println("done") })
//
//	for s.Len() > 0 {
//		s.Tick(1.0 / 60)
//	}
//
// Typed factories exist for float64, int, [Vec2], mgl64 vectors and
// quaternions, [Color] and [color.RGBA]. [To] accepts any type with a custom
// [Interpolator]. [Scheduler.VirtualTo], [Scheduler.DelayCall],
// [Scheduler.DelayFrameCall] and [Scheduler.UpdateCall] create animations that
// drive no value of their own.
//
// # Loops
//
// [LoopRestart] replays from the start value, [LoopYoyo] alternates direction
// and [LoopIncremental] rebases each cycle onto the previous end value. Pass
// [InfiniteLoops] to loop until killed.
//
// # Sequences
//
// A [Sequence] composes animations on a shared timeline with
// [Sequence.Append], [Sequence.Join], [Sequence.Insert] and
// [Sequence.Prepend]. A sequence is itself an animation: it can be eased,
// looped, paused, scrubbed with [Tween.Goto] and nested in another sequence.
// Children handed to a sequence leave the scheduler and are driven by their
// parent only.
//
// # Control
//
// Animations can be paused, resumed, restarted, force-completed or killed at
// any time, including from inside their own callbacks. [Tween.Goto] jumps to
// an absolute time deterministically: the result depends only on the target
// time, never on the path taken to get there.
//
// # Integration
//
// [Game] runs a scheduler inside an Ebitengine window. [Host] keeps one
// scheduler per context so a whole context can be torn down at once. Presets
// load from TOML or YAML with [LoadPresets], and the tweener/ecs module
// forwards lifecycle [Event]s into a Donburi world.
//
// Diagnostics go through a [go.uber.org/zap] logger supplied with
// [WithLogger]; without one the scheduler is silent.
package tweener
