// Package events provides the in-process change-notification bus for the
// meetings storage slot. Notifications are fire-and-forget and carry no
// payload: listeners are expected to re-load the collection rather than
// trust any event data.
package events

import "sync"

// Bus fans one notification out to every subscriber.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func())}
}

// Subscribe registers a callback and returns its unsubscribe function.
// Callbacks run synchronously on the publishing goroutine and should be
// cheap; the expected work is a reload of a small collection.
func (b *Bus) Subscribe(fn func()) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish notifies every current subscriber.
func (b *Bus) Publish() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
