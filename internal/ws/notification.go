package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	wsPkg "github.com/krishanu7/sea-battle/pkg/websocket"
	"github.com/redis/go-redis/v9"
)

// NotificationWorker relays match events published on redis to the
// spectators connected to this process.
type NotificationWorker struct {
	RedisClient *redis.Client
	Hub         *wsPkg.Hub
	Channel     string
}

func NewNotificationWorker(rdb *redis.Client, hub *wsPkg.Hub, channel string) *NotificationWorker {
	return &NotificationWorker{
		RedisClient: rdb,
		Hub:         hub,
		Channel:     channel,
	}
}

// Run blocks until ctx is cancelled or the subscription closes.
func (w *NotificationWorker) Run(ctx context.Context) error {
	log.Printf("Notification worker subscribing to %s", w.Channel)
	pubsub := w.RedisClient.Subscribe(ctx, w.Channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", w.Channel, err)
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := w.Dispatch(msg.Payload); err != nil {
				log.Printf("Dropping notification: %v", err)
			}
		}
	}
}

// Dispatch forwards one published payload to the room of its match.
func (w *NotificationWorker) Dispatch(payload string) error {
	var notification struct {
		Type    string `json:"type"`
		MatchID string `json:"matchId"`
	}
	if err := json.Unmarshal([]byte(payload), &notification); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	if notification.MatchID == "" {
		return fmt.Errorf("notification %q has no match id", notification.Type)
	}
	w.Hub.Broadcast(notification.MatchID, []byte(payload))
	return nil
}
