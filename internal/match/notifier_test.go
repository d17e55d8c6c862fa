package match

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
)

type fakePublisher struct {
	channel string
	payload []byte
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.payload, _ = message.([]byte)
	return redis.NewIntResult(1, f.err)
}

func TestRedisNotifierPublishesJSON(t *testing.T) {
	pub := &fakePublisher{}
	n := NewRedisNotifier(pub, "notifications")

	err := n.Notify(context.Background(), Event{Type: EventShot, MatchID: "m1", Player: "A", Outcome: "HIT"})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if pub.channel != "notifications" {
		t.Fatalf("expected channel notifications, got %q", pub.channel)
	}

	var got Event
	if err := json.Unmarshal(pub.payload, &got); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if got.Type != EventShot || got.MatchID != "m1" || got.Outcome != "HIT" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestRedisNotifierWrapsErrors(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection refused")}
	err := NewRedisNotifier(pub, "notifications").Notify(context.Background(), Event{Type: EventTurn})
	if err == nil || !errors.Is(err, pub.err) {
		t.Fatalf("expected wrapped publish error, got %v", err)
	}
}
