package tweener

import "testing"

func TestDebugModeOffIsSilent(t *testing.T) {
	s, logs := observedScheduler()
	s.VirtualTo(0.5)
	s.Tick(1)
	if n := logs.FilterMessage("tick").Len(); n != 0 {
		t.Errorf("tick logs with debug off = %d", n)
	}
}

func TestDebugLiveThreshold(t *testing.T) {
	s, logs := observedScheduler()
	s.SetDebugMode(true)
	s.debugLog(tickStats{live: debugMaxLive})
	if n := logs.FilterMessage("live tween count above threshold").Len(); n != 0 {
		t.Errorf("warned at the threshold itself")
	}
	s.debugLog(tickStats{live: debugMaxLive + 1})
	entries := logs.FilterMessage("live tween count above threshold").All()
	if len(entries) != 1 {
		t.Fatalf("threshold warnings = %d, want 1", len(entries))
	}
	if entries[0].ContextMap()["live"] != int64(debugMaxLive+1) {
		t.Errorf("fields = %v", entries[0].ContextMap())
	}
}
