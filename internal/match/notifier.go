package match

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher is the part of *redis.Client used to fan events out.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes every event as JSON on a redis channel.
type RedisNotifier struct {
	rdb     Publisher
	channel string
}

func NewRedisNotifier(rdb Publisher, channel string) *RedisNotifier {
	return &RedisNotifier{
		rdb:     rdb,
		channel: channel,
	}
}

func (n *RedisNotifier) Notify(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", e.Type, err)
	}
	if err := n.rdb.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", e.Type, err)
	}
	return nil
}
