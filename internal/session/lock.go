package session

import "sync"

type lockSlot struct {
	mu   sync.Mutex
	refs int
}

// keyedLock serializes work per session ID inside one process. Slots are
// dropped once no goroutine holds or waits for them.
type keyedLock struct {
	mu    sync.Mutex
	slots map[string]*lockSlot
}

func newKeyedLock() *keyedLock {
	return &keyedLock{slots: make(map[string]*lockSlot)}
}

// lock blocks until key is free and returns the matching unlock.
func (l *keyedLock) lock(key string) func() {
	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = &lockSlot{}
		l.slots[key] = slot
	}
	slot.refs++
	l.mu.Unlock()

	slot.mu.Lock()
	return func() {
		slot.mu.Unlock()
		l.mu.Lock()
		slot.refs--
		if slot.refs == 0 {
			delete(l.slots, key)
		}
		l.mu.Unlock()
	}
}
