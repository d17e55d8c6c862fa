package match

import (
	"context"
	"log"

	"github.com/krishanu7/sea-battle/internal/game"
)

type EventType string

const (
	EventMatchStarted EventType = "match_started"
	EventTurn         EventType = "turn"
	EventShot         EventType = "shot"
	EventShotRejected EventType = "shot_rejected"
	EventMatchOver    EventType = "match_over"
)

// Event is emitted to every Notifier as the match progresses.
type Event struct {
	Type    EventType        `json:"type"`
	MatchID string           `json:"matchId"`
	Player  string           `json:"player,omitempty"`
	Target  *game.Coordinate `json:"target,omitempty"`
	Outcome string           `json:"outcome,omitempty"`
	Reason  string           `json:"reason,omitempty"`
	Winner  string           `json:"winner,omitempty"`
	Loser   string           `json:"loser,omitempty"`
	Sunk    int              `json:"sunk"`
	Shots   int              `json:"shots"`
}

// Notifier is a sink for match events: the console, spectators, a broker.
type Notifier interface {
	Notify(ctx context.Context, e Event) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, e Event) error

func (f NotifierFunc) Notify(ctx context.Context, e Event) error {
	return f(ctx, e)
}

func (s *Service) notify(ctx context.Context, e Event) {
	e.MatchID = s.ID
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, e); err != nil {
			log.Printf("Failed to deliver %s event for match %s: %v", e.Type, s.ID, err)
		}
	}
}
