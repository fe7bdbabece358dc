package flight

import "sync"

type searchSlot struct {
	latest   uint64
	inflight int
}

// searchGenerations tracks the newest search per session so a slow response
// cannot replace the result of a search the user started later.
type searchGenerations struct {
	mu    sync.Mutex
	slots map[string]*searchSlot
}

func newSearchGenerations() *searchGenerations {
	return &searchGenerations{slots: make(map[string]*searchSlot)}
}

// begin registers a new search for key and returns its generation.
// An empty key is never guarded.
func (g *searchGenerations) begin(key string) uint64 {
	if key == "" {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	slot, ok := g.slots[key]
	if !ok {
		slot = &searchSlot{}
		g.slots[key] = slot
	}
	slot.latest++
	slot.inflight++
	return slot.latest
}

// finish reports whether gen is still the newest search for key.
func (g *searchGenerations) finish(key string, gen uint64) bool {
	if key == "" {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	slot, ok := g.slots[key]
	if !ok {
		return true
	}
	current := gen == slot.latest
	slot.inflight--
	if slot.inflight <= 0 {
		delete(g.slots, key)
	}
	return current
}
