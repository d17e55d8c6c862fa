package ws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/krishanu7/sea-battle/internal/match"
	wsPkg "github.com/krishanu7/sea-battle/pkg/websocket"
)

// Broadcaster delivers match events to the spectators of the same process.
type Broadcaster struct {
	Hub *wsPkg.Hub
}

func NewBroadcaster(hub *wsPkg.Hub) *Broadcaster {
	return &Broadcaster{Hub: hub}
}

func (b *Broadcaster) Notify(_ context.Context, e match.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", e.Type, err)
	}
	b.Hub.Broadcast(e.MatchID, payload)
	return nil
}
