package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	ch1, cancel1 := bus.Subscribe()
	ch2, cancel2 := bus.Subscribe()
	defer cancel1()
	defer cancel2()

	sent := bus.Publish(TopicCart, 42)

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, sent.ID, got.ID)
			assert.Equal(t, TopicCart, got.Topic)
			assert.Equal(t, []int64{42}, got.ProductIDs)
			assert.False(t, got.At.IsZero())
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// far beyond the subscriber buffer, with nobody draining
		for i := 0; i < subscriberBuffer*4; i++ {
			bus.Publish(TopicWishlist, int64(i))
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe()
	require.Equal(t, 1, bus.Subscribers())

	cancel()
	assert.Equal(t, 0, bus.Subscribers())
	cancel() // second cancel is a no-op

	bus.Publish(TopicCategories)
	_, open := <-ch
	assert.False(t, open, "channel closes on cancel")
}
