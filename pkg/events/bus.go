package events

import (
	"sync"
	"time"
)

// Event types published by the stock ledger mutators.
const (
	TypeIngredientStock = "stock.ingredient"
	TypeFeedStock       = "stock.feed"
	TypeEggStock        = "stock.egg"
	TypeLowStock        = "stock.low"
)

// Event represents a single stock-change notification.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	At      time.Time   `json:"at"`
}

// Bus is an in-process publish/subscribe bus used to push stock changes to
// listeners (SSE clients, the low-stock scanner) instead of having them poll.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan Event
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a new listener and returns its channel together with an
// unsubscribe function. The channel is closed on unsubscribe.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, 16)
	b.subs[id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

// Publish delivers an event to every subscriber. Slow subscribers with a full
// buffer miss the event rather than blocking the publishing mutator.
func (b *Bus) Publish(eventType string, payload interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	evt := Event{Type: eventType, Payload: payload, At: time.Now().UTC()}
	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
