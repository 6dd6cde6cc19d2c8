package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultChannel = "hireme:events"

// RedisBus fans events out through Redis Pub/Sub so that every instance
// delivers to its own connected users.
type RedisBus struct {
	client  *redis.Client
	channel string
	target  Deliverer
	log     *zap.Logger
}

func NewRedisBus(client *redis.Client, target Deliverer, log *zap.Logger) *RedisBus {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisBus{client: client, channel: DefaultChannel, target: target, log: log}
}

func (b *RedisBus) Publish(ctx context.Context, e Event) error {
	if len(e.Recipients) == 0 {
		return nil
	}
	w, err := encode(e)
	if err != nil {
		return err
	}
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

// Run subscribes to the events channel and blocks until ctx is done.
// ready, when non-nil, is closed once the subscription is confirmed.
func (b *RedisBus) Run(ctx context.Context, ready chan<- struct{}) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", b.channel, err)
	}
	if ready != nil {
		close(ready)
	}
	b.log.Info("redis event bus subscribed", zap.String("channel", b.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.handle(msg.Payload)
		}
	}
}

func (b *RedisBus) handle(payload string) {
	var w wireEvent
	if err := json.Unmarshal([]byte(payload), &w); err != nil {
		b.log.Warn("drop malformed event", zap.Error(err))
		return
	}
	data, err := w.frame()
	if err != nil {
		b.log.Warn("drop unencodable event", zap.String("type", string(w.Type)), zap.Error(err))
		return
	}
	b.target.Deliver(w.Recipients, data)
}
