package realtime

import (
	"testing"
	"time"
)

func TestHub_PublishSubscribe(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(Event{Kind: EventOrderCreated, OrderID: "abc", InvoiceNo: "INV-260828-1234"})

	select {
	case e := <-ch:
		if e.Kind != EventOrderCreated || e.InvoiceNo != "INV-260828-1234" {
			t.Fatalf("unexpected event: %+v", e)
		}
		if e.At.IsZero() {
			t.Fatal("publish must stamp the event time")
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestHub_FanOut(t *testing.T) {
	hub := NewHub()
	a, cancelA := hub.Subscribe()
	b, cancelB := hub.Subscribe()
	defer cancelA()
	defer cancelB()

	if hub.SubscriberCount() != 2 {
		t.Fatalf("subscriber count = %d, want 2", hub.SubscriberCount())
	}

	hub.Publish(Event{Kind: EventStatusChanged})
	for _, ch := range []<-chan Event{a, b} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("fan-out missed a subscriber")
		}
	}
}

func TestHub_CancelIdempotent(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()

	cancel()
	cancel() // must not panic on double close

	if hub.SubscriberCount() != 0 {
		t.Fatalf("subscriber count = %d, want 0 after cancel", hub.SubscriberCount())
	}
	if _, ok := <-ch; ok {
		t.Fatal("channel must be closed after cancel")
	}

	// Publishing to an empty hub is a no-op.
	hub.Publish(Event{Kind: EventPaymentSet})
}

func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	// Overfill the buffer; publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(Event{Kind: EventStatusChanged})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The buffered portion is still readable.
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("buffered events lost")
	}
}
