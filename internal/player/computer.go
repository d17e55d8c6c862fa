package player

import (
	"context"

	"github.com/krishanu7/sea-battle/internal/game"
)

// Computer fires at uniformly random cells. It keeps no memory of its shots;
// repeats are rejected by the board and Move asks again.
type Computer struct {
	rng game.Rand
}

func NewComputer(rng game.Rand) *Computer {
	return &Computer{rng: rng}
}

func (c *Computer) SelectTarget(_ context.Context, opponent *game.Board) (game.Coordinate, error) {
	size := opponent.Size()
	return game.NewCoordinate(c.rng.Intn(size), c.rng.Intn(size)), nil
}
