package tweener

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a playback script.
type scriptStep struct {
	Action   string  `json:"action"`
	Frames   int     `json:"frames,omitempty"`
	Time     float64 `json:"time,omitempty"`
	DT       float64 `json:"dt,omitempty"`
	Complete bool    `json:"complete,omitempty"`
}

// script is the top-level JSON structure for a playback script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON script of control actions against one tween,
// one step per frame. It is used to drive tweens deterministically from
// tools and tests:
//
//	{"steps": [
//	    {"action": "tick", "dt": 0.25, "frames": 2},
//	    {"action": "pause"},
//	    {"action": "wait", "frames": 3},
//	    {"action": "goto", "time": 0.5},
//	    {"action": "kill", "complete": true}
//	]}
//
// Actions: tick (advance the scheduler by dt, frames times), wait (idle for
// frames), goto, pause, resume, restart, complete (ForceComplete) and kill.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	tickCount int
	tickDT    float64
	done      bool
}

// LoadScript parses a JSON playback script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "tick", "wait", "goto", "pause", "resume", "restart", "complete", "kill":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step executes the script for one frame. Tick actions advance s; every other
// action controls target.
func (r *ScriptRunner) Step(s *Scheduler, target Animation) {
	if r.done {
		return
	}
	if r.tickCount > 0 {
		r.tickCount--
		s.Tick(r.tickDT)
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	var t *Tween
	if target != nil {
		t = target.tween()
	}
	switch st.Action {
	case "tick":
		frames := max(st.Frames, 1)
		r.tickDT = st.DT
		r.tickCount = frames - 1 // this frame counts as one
		s.Tick(st.DT)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "goto":
		if t != nil {
			t.Goto(st.Time)
		}
	case "pause":
		if t != nil {
			t.Pause()
		}
	case "resume":
		if t != nil {
			t.Resume()
		}
	case "restart":
		if t != nil {
			t.Restart()
		}
	case "complete":
		if t != nil {
			t.ForceComplete()
		}
	case "kill":
		if t != nil {
			t.Kill(st.Complete)
		}
	}
	r.checkDone()
}

func (r *ScriptRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.tickCount == 0 {
		r.done = true
	}
}
