package console

import (
	"fmt"
	"strings"

	"github.com/krishanu7/sea-battle/internal/game"
)

var placementTags = []string{game.TagOutOfBounds, game.TagCellConflict}

// PlacementTally counts refused placement attempts by tag. Its Reject method
// is meant for game.Placer.OnReject.
type PlacementTally struct {
	counts map[string]int
}

func NewPlacementTally() *PlacementTally {
	return &PlacementTally{counts: make(map[string]int)}
}

func (t *PlacementTally) Reject(_ game.Coordinate, _ int, err error) {
	t.counts[game.ErrorTag(err)]++
}

func (t *PlacementTally) Count(tag string) int {
	return t.counts[tag]
}

func (t *PlacementTally) Reset() {
	clear(t.counts)
}

// String lists the placement tags in a fixed order, e.g. "OUT_OF_BOUNDS 3, CELL_CONFLICT 9".
func (t *PlacementTally) String() string {
	parts := make([]string, 0, len(placementTags))
	for _, tag := range placementTags {
		parts = append(parts, fmt.Sprintf("%s %d", tag, t.counts[tag]))
	}
	return strings.Join(parts, ", ")
}
