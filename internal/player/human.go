package player

import (
	"context"

	"github.com/krishanu7/sea-battle/internal/game"
)

// InputSource supplies 1-based row and column numbers typed by a person.
// Malformed input is handled by the source itself.
type InputSource interface {
	ReadTarget(ctx context.Context) (row, col int, err error)
}

type Human struct {
	input InputSource
}

func NewHuman(input InputSource) *Human {
	return &Human{input: input}
}

func (h *Human) SelectTarget(ctx context.Context, _ *game.Board) (game.Coordinate, error) {
	row, col, err := h.input.ReadTarget(ctx)
	if err != nil {
		return game.Coordinate{}, err
	}
	return game.FromLabel(row, col), nil
}
