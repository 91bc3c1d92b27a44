package tweener

// Host keeps one Scheduler per context key, such as a world, a level or a
// window. It replaces a process-wide manager: context lifetimes are explicit
// and tearing a context down drops its tweens without firing callbacks.
type Host[K comparable] struct {
	scheds map[K]*Scheduler
	order  []K
	opts   []Option
}

// NewHost creates a host. opts are applied to every scheduler it creates.
func NewHost[K comparable](opts ...Option) *Host[K] {
	return &Host[K]{
		scheds: make(map[K]*Scheduler),
		opts:   opts,
	}
}

// ContextCreated registers key and returns its scheduler. Calling it again
// for a live key returns the existing scheduler.
func (h *Host[K]) ContextCreated(key K) *Scheduler {
	if s, ok := h.scheds[key]; ok {
		return s
	}
	s := NewScheduler(h.opts...)
	h.scheds[key] = s
	h.order = append(h.order, key)
	return s
}

// ContextDestroyed closes the scheduler of key. Its tweens are dropped
// without callbacks or events.
func (h *Host[K]) ContextDestroyed(key K) {
	s, ok := h.scheds[key]
	if !ok {
		return
	}
	s.Close()
	delete(h.scheds, key)
	for i, k := range h.order {
		if k == key {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Scheduler returns the scheduler of key, creating it when needed.
func (h *Host[K]) Scheduler(key K) *Scheduler {
	return h.ContextCreated(key)
}

// Lookup returns the scheduler of key without creating one.
func (h *Host[K]) Lookup(key K) (*Scheduler, bool) {
	s, ok := h.scheds[key]
	return s, ok
}

// Len returns the number of live contexts.
func (h *Host[K]) Len() int { return len(h.order) }

// Tick advances every context's scheduler by dt, in creation order.
func (h *Host[K]) Tick(dt float64) {
	for i := 0; i < len(h.order); i++ {
		if s, ok := h.scheds[h.order[i]]; ok {
			s.Tick(dt)
		}
	}
}
