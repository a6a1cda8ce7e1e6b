package realtime

import (
	"sync"
	"time"
)

// Event is a lightweight notification pushed to connected POS screens
// whenever an order changes. Clients refetch detail on receipt, so the
// payload carries identifiers only.
type Event struct {
	Kind      string    `json:"kind"`
	OrderID   string    `json:"order_id"`
	InvoiceNo string    `json:"invoice_no"`
	Status    string    `json:"status,omitempty"`
	At        time.Time `json:"at"`
}

// Event kinds.
const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
	EventPaymentSet    = "payment_confirmed"
)

// Publisher is the side of the hub services see.
type Publisher interface {
	Publish(e Event)
}

// Hub fans events out to subscribers. Publish never blocks: a
// subscriber that cannot keep up has the event dropped rather than
// stalling the order flow.
type Hub struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Publish delivers e to every subscriber with room in its buffer.
func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel plus a
// cancel function. Cancel is idempotent and closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	ch := make(chan Event, 16)
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// SubscriberCount reports how many subscribers are attached.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
