package eventbus

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisBus implements Bus on Redis pub/sub. Redis delivers each published
// message to every subscriber, which is exactly the broadcast semantics the
// fan-out needs; delivery is at-least-once from this core's point of view.
type RedisBus struct {
	rdb *redis.Client
}

func NewRedisBus(rdb *redis.Client) *RedisBus {
	return &RedisBus{rdb: rdb}
}

func (b *RedisBus) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, event.Channel, data).Err()
}

// Subscribe starts a goroutine draining the Redis subscription into the
// returned channel. The goroutine finishes delivering an event it has
// already received before honoring cancellation, then closes the channel.
func (b *RedisBus) Subscribe(ctx context.Context, channel string) (<-chan Event, error) {
	pubsub := b.rdb.Subscribe(ctx, channel)
	// force the SUBSCRIBE round-trip so a broken broker fails here,
	// not silently inside the loop
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("ERROR: dropping malformed event on %q: %v", channel, err)
					continue
				}
				out <- event
			}
		}
	}()
	return out, nil
}
