package events

import "testing"

func TestBusFanOutAndUnsubscribe(t *testing.T) {
	b := NewBus()

	var a, c int
	unsubA := b.Subscribe(func() { a++ })
	b.Subscribe(func() { c++ })

	b.Publish()
	if a != 1 || c != 1 {
		t.Fatalf("after first publish: a=%d c=%d", a, c)
	}

	unsubA()
	b.Publish()
	if a != 1 || c != 2 {
		t.Fatalf("after unsubscribe: a=%d c=%d", a, c)
	}

	// unsubscribing twice is harmless
	unsubA()
	b.Publish()
	if c != 3 {
		t.Fatalf("after third publish: c=%d", c)
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	NewBus().Publish()
}
