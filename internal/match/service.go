package match

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/krishanu7/sea-battle/internal/game"
	"github.com/krishanu7/sea-battle/internal/player"
)

// ErrMatchOver is returned by Step once a result has been decided.
var ErrMatchOver = errors.New("match is over")

type Result struct {
	MatchID string
	Winner  *player.Player
	Loser   *player.Player
	Shots   int
}

// Service runs the turn loop between two players whose boards are cross-wired:
// each player's Enemy is the other's Own board.
type Service struct {
	ID        string
	players   [2]*player.Player
	turnIndex int
	shots     int
	result    *Result
	notifiers []Notifier

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewService prepares a match in which first moves first.
func NewService(first, second *player.Player, notifiers ...Notifier) *Service {
	s := &Service{
		ID:        uuid.NewString(),
		players:   [2]*player.Player{first, second},
		notifiers: notifiers,
	}
	s.storeSnapshot()
	return s
}

// TurnIndex counts completed turns. It does not advance while a player keeps
// hitting.
func (s *Service) TurnIndex() int {
	return s.turnIndex
}

// Active is the player whose move is next.
func (s *Service) Active() *player.Player {
	return s.players[s.turnIndex%2]
}

func (s *Service) Shots() int {
	return s.shots
}

func (s *Service) Result() *Result {
	return s.result
}

// Run plays until one fleet is destroyed.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	s.notify(ctx, Event{Type: EventMatchStarted, Player: s.Active().Name})
	log.Printf("Match %s started: %s vs %s", s.ID, s.players[0].Name, s.players[1].Name)
	for {
		res, err := s.Step(ctx)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
}

// Step plays one accepted shot of the active player. It returns the result
// once a board is complete.
func (s *Service) Step(ctx context.Context) (*Result, error) {
	if s.result != nil {
		return s.result, ErrMatchOver
	}

	active := s.Active()
	s.notify(ctx, Event{Type: EventTurn, Player: active.Name, Shots: s.shots})

	extra, err := active.Move(ctx, observer{ctx: ctx, s: s})
	if err != nil {
		return nil, err
	}
	s.shots++

	for i, p := range s.players {
		if p.Own.IsComplete() {
			s.finish(ctx, s.players[1-i], p)
			return s.result, nil
		}
	}

	if !extra {
		s.turnIndex++
	}
	s.storeSnapshot()
	return nil, nil
}

func (s *Service) finish(ctx context.Context, winner, loser *player.Player) {
	s.result = &Result{
		MatchID: s.ID,
		Winner:  winner,
		Loser:   loser,
		Shots:   s.shots,
	}
	s.storeSnapshot()
	s.notify(ctx, Event{
		Type:   EventMatchOver,
		Winner: winner.Name,
		Loser:  loser.Name,
		Sunk:   loser.Own.SunkCount(),
		Shots:  s.shots,
	})
	log.Printf("Match %s over after %d shots: %s beat %s", s.ID, s.shots, winner.Name, loser.Name)
}

// observer turns player callbacks into match events.
type observer struct {
	ctx context.Context
	s   *Service
}

func (o observer) ShotRejected(p *player.Player, target game.Coordinate, err error) {
	o.s.notify(o.ctx, Event{
		Type:   EventShotRejected,
		Player: p.Name,
		Target: &target,
		Reason: game.ErrorTag(err),
		Shots:  o.s.shots,
	})
}

func (o observer) ShotFired(p *player.Player, target game.Coordinate, outcome game.Outcome) {
	o.s.notify(o.ctx, Event{
		Type:    EventShot,
		Player:  p.Name,
		Target:  &target,
		Outcome: outcome.String(),
		Sunk:    p.Enemy.SunkCount(),
		Shots:   o.s.shots + 1,
	})
}
