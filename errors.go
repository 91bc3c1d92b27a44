package tweener

import "errors"

var (
	// ErrUnknownEase is returned when an ease name cannot be resolved.
	ErrUnknownEase = errors.New("unknown ease")
	// ErrUnknownLoop is returned when a loop type name cannot be resolved.
	ErrUnknownLoop = errors.New("unknown loop type")
	// ErrEmptyScript is returned when a playback script has no steps.
	ErrEmptyScript = errors.New("no steps")
	// ErrBadCurve is returned for keyframe curves that cannot be evaluated.
	ErrBadCurve = errors.New("invalid curve")
)
