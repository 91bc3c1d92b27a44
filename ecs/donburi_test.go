package ecs

import (
	"testing"

	"github.com/phanxgames/tweener"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []tweener.Event
	TweenEventType.Subscribe(world, func(w donburi.World, e tweener.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(tweener.Event{Type: tweener.EventComplete, TweenID: 7, Name: "fade"})
	sink.EmitEvent(tweener.Event{Type: tweener.EventKilled, TweenID: 8})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	TweenEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != tweener.EventComplete || received[0].TweenID != 7 || received[0].Name != "fade" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != tweener.EventKilled {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_SchedulerLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	s := tweener.NewScheduler(tweener.WithEventSink(NewDonburiSink(world)))

	var types []tweener.EventType
	TweenEventType.Subscribe(world, func(w donburi.World, e tweener.Event) {
		types = append(types, e.Type)
	})

	v := 0.0
	s.FloatTo(func() float64 { return v }, func(x float64) { v = x }, 1, 0.5)
	killed := s.VirtualTo(5)
	s.Tick(0.25)
	killed.Kill(false)
	s.Tick(0.25)
	TweenEventType.ProcessEvents(world)

	if len(types) != 2 || types[0] != tweener.EventComplete || types[1] != tweener.EventKilled {
		t.Errorf("types = %v", types)
	}
}

type spriteData struct {
	X, Y float64
}

var sprite = donburi.NewComponentType[spriteData]()

func TestEntityTarget(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create(sprite)
	s := tweener.NewScheduler(tweener.WithEventSink(NewDonburiSink(world)))

	var dropped int
	TweenEventType.Subscribe(world, func(w donburi.World, e tweener.Event) {
		if e.Type == tweener.EventDropped {
			dropped++
		}
	})

	v, sets := 0.0, 0
	tw := s.FloatTo(func() float64 { return v }, func(x float64) { v = x; sets++ }, 1, 1).
		SetTarget(EntityTarget(world, entity))

	s.Tick(0.25)
	if sets != 1 {
		t.Fatalf("sets = %d, want 1", sets)
	}
	world.Remove(entity)
	s.Tick(0.25)
	TweenEventType.ProcessEvents(world)

	if sets != 1 || s.IsTweening(tw) {
		t.Errorf("tween kept running after entity removal: sets=%d", sets)
	}
	if dropped != 1 {
		t.Errorf("dropped events = %d, want 1", dropped)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	var sink tweener.EventSink = NewDonburiSink(donburi.NewWorld())
	_ = sink // compile-time interface check
}
