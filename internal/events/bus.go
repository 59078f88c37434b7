// Package events carries storefront change notifications between handlers
// and open pages. Mutating a cart or wishlist publishes to the bus; the
// live-update stream relays the events so navbar badges refresh without a
// reload.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topic names a class of storefront change.
type Topic string

const (
	TopicCart       Topic = "cart"
	TopicWishlist   Topic = "wishlist"
	TopicCategories Topic = "categories"
)

// Event is one published change. ProductIDs carries the affected products
// when the topic concerns specific items.
type Event struct {
	ID         string    `json:"id"`
	Topic      Topic     `json:"topic"`
	ProductIDs []int64   `json:"productIds,omitempty"`
	At         time.Time `json:"at"`
}

// Bus is an in-process publish/subscribe fan-out. Publishing never blocks:
// a subscriber that cannot keep up misses events rather than stalling the
// request that published them.
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

const subscriberBuffer = 16

// NewBus builds an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Publish delivers an event to every current subscriber.
func (b *Bus) Publish(topic Topic, productIDs ...int64) Event {
	ev := Event{
		ID:         uuid.NewString(),
		Topic:      topic,
		ProductIDs: productIDs,
		At:         time.Now().UTC(),
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	return ev
}

// Subscribe registers a listener. The cancel function must be called when the
// listener goes away; it closes the channel.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers reports the current listener count.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
