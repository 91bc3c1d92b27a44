package tweener

import (
	"time"

	"go.uber.org/zap"
)

// tickStats holds per-tick metrics. Only populated when debug mode is on.
type tickStats struct {
	stepped int
	removed int
	live    int
	elapsed time.Duration
}

// debugLog writes tick stats at debug level.
func (s *Scheduler) debugLog(stats tickStats) {
	if !s.debug {
		return
	}
	s.log.Debug("tick",
		zap.Uint64("frame", s.frame),
		zap.Int("stepped", stats.stepped),
		zap.Int("removed", stats.removed),
		zap.Int("live", stats.live),
		zap.Duration("elapsed", stats.elapsed))
	if stats.live > debugMaxLive {
		s.log.Warn("live tween count above threshold",
			zap.Int("live", stats.live), zap.Int("threshold", debugMaxLive))
	}
}

// debugMaxLive is the live-entry count above which debug mode warns, a sign
// of tweens that are created every frame and never finish.
const debugMaxLive = 10000
