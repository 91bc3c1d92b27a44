package tweener

import (
	"math"
	"testing"
)

func TestHostContexts(t *testing.T) {
	h := NewHost[string]()
	world := h.ContextCreated("world")
	if h.ContextCreated("world") != world {
		t.Error("ContextCreated should return the existing scheduler")
	}
	ui := h.Scheduler("ui")
	if h.Len() != 2 {
		t.Fatalf("contexts = %d, want 2", h.Len())
	}

	var a, b float64
	floatTween(world, &a, 10, 1)
	floatTween(ui, &b, 10, 1)
	h.Tick(0.5)
	if math.Abs(a-5) > eps || math.Abs(b-5) > eps {
		t.Errorf("a = %f, b = %f", a, b)
	}

	completed := false
	world.VirtualTo(1).OnComplete(func() { completed = true })
	h.ContextDestroyed("world")
	h.Tick(0.5)
	if completed {
		t.Error("destroyed context fired callbacks")
	}
	if math.Abs(a-5) > eps {
		t.Errorf("destroyed context kept ticking: a = %f", a)
	}
	if b != 10 {
		t.Errorf("live context stopped: b = %f", b)
	}
	if _, ok := h.Lookup("world"); ok {
		t.Error("destroyed context still registered")
	}
	h.ContextDestroyed("missing")
	if h.Len() != 1 {
		t.Errorf("contexts = %d, want 1", h.Len())
	}
}

func TestHostAppliesOptions(t *testing.T) {
	sink := &recordingSink{}
	h := NewHost[int](WithEventSink(sink))
	s := h.Scheduler(1)
	s.VirtualTo(0.1)
	h.Tick(1)
	if len(sink.events) != 1 || sink.events[0].Type != EventComplete {
		t.Errorf("events = %+v", sink.events)
	}
}
