// Package player turns target selection into accepted shots.
//
// A Player owns a board and fires at its enemy's board through a Combatant.
// Rejected targets (off the board or already used) are reported and the
// Combatant is asked again until a shot lands.
package player

import (
	"context"
	"fmt"

	"github.com/krishanu7/sea-battle/internal/game"
)

// Combatant chooses where to fire next.
type Combatant interface {
	SelectTarget(ctx context.Context, opponent *game.Board) (game.Coordinate, error)
}

// Observer receives every shot a Player makes, accepted or not.
type Observer interface {
	ShotRejected(p *Player, target game.Coordinate, err error)
	ShotFired(p *Player, target game.Coordinate, outcome game.Outcome)
}

type Player struct {
	Name      string
	Own       *game.Board
	Enemy     *game.Board
	combatant Combatant
}

func New(name string, own, enemy *game.Board, c Combatant) *Player {
	return &Player{
		Name:      name,
		Own:       own,
		Enemy:     enemy,
		combatant: c,
	}
}

// Move fires until the enemy board accepts a shot and reports whether the
// player earned another turn. Only selection failures and board invariant
// violations are returned.
func (p *Player) Move(ctx context.Context, obs Observer) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		target, err := p.combatant.SelectTarget(ctx, p.Enemy)
		if err != nil {
			return false, fmt.Errorf("failed to select target for %s: %w", p.Name, err)
		}

		outcome, err := p.Enemy.Shoot(target)
		if err != nil {
			if !game.Retryable(err) {
				return false, err
			}
			if obs != nil {
				obs.ShotRejected(p, target, err)
			}
			continue
		}
		if obs != nil {
			obs.ShotFired(p, target, outcome)
		}
		return outcome.ExtraTurn(), nil
	}
}
