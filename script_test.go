package tweener

import (
	"errors"
	"math"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "tick", "dt": 0.25, "frames": 2},
			{"action": "pause"},
			{"action": "wait", "frames": 3},
			{"action": "goto", "time": 0.75}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "tick" || runner.steps[0].DT != 0.25 || runner.steps[0].Frames != 2 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[3].Action != "goto" || runner.steps[3].Time != 0.75 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := LoadScript([]byte(`{"steps": []}`)); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("empty script error = %v", err)
	}
	if _, err := LoadScript([]byte(`{"steps": [{"action": "dance"}]}`)); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestScriptRunnerPlayback(t *testing.T) {
	s := NewScheduler()
	v := 0.0
	tw := floatTween(s, &v, 10, 2)

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "tick", "dt": 0.25, "frames": 2},
		{"action": "pause"},
		{"action": "tick", "dt": 0.5},
		{"action": "resume"},
		{"action": "goto", "time": 1.5},
		{"action": "kill", "complete": true}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	completed := 0
	tw.OnComplete(func() { completed++ })

	runner.Step(s, tw) // tick 1
	runner.Step(s, tw) // tick 2
	if math.Abs(v-2.5) > eps {
		t.Errorf("after ticks: v = %f, want 2.5", v)
	}
	runner.Step(s, tw) // pause
	runner.Step(s, tw) // paused tick
	if math.Abs(v-2.5) > eps {
		t.Errorf("paused tween moved: v = %f", v)
	}
	runner.Step(s, tw) // resume
	runner.Step(s, tw) // goto
	if math.Abs(v-7.5) > eps {
		t.Errorf("after goto: v = %f, want 7.5", v)
	}
	if runner.Done() {
		t.Fatal("runner finished early")
	}
	runner.Step(s, tw) // kill
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if completed != 1 || !tw.IsKilled() {
		t.Errorf("completed = %d, killed = %v", completed, tw.IsKilled())
	}
}

func TestScriptRunnerWait(t *testing.T) {
	s := NewScheduler()
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		runner.Step(s, nil)
		if runner.Done() {
			t.Fatalf("done after %d frames", i+1)
		}
	}
	runner.Step(s, nil)
	if !runner.Done() {
		t.Error("runner should be done after 3 frames")
	}
}
