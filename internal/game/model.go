package game

import (
	"fmt"
)

const (
	// GridSize is the width and height of every board.
	GridSize = 6
	// MaxPlacementAttempts bounds random fleet placement across the whole fleet.
	MaxPlacementAttempts = 2000
)

// Fleet lists the vessel sizes placed on every board.
type Fleet []int

// DefaultFleet is one 3-cell, two 2-cell and four 1-cell vessels.
var DefaultFleet = Fleet{3, 2, 2, 1, 1, 1, 1}

// Vessels is the number of vessels in the fleet; a board is complete once this many are sunk.
func (f Fleet) Vessels() int {
	return len(f)
}

// Cells is the total number of occupied cells of the fleet.
func (f Fleet) Cells() int {
	total := 0
	for _, size := range f {
		total += size
	}
	return total
}

// Cell is the visible state of a single board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellShip
	CellHit
	CellMiss
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Outcome classifies an accepted shot.
type Outcome uint8

const (
	Miss Outcome = iota
	Hit
	Sunk
)

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "MISS"
	case Hit:
		return "HIT"
	case Sunk:
		return "SUNK"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// ExtraTurn reports whether the shooter acts again.
func (o Outcome) ExtraTurn() bool {
	return o == Hit || o == Sunk
}

// Orientation is the direction a vessel extends from its anchor.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Phase is the lifecycle stage of a board.
type Phase uint8

const (
	PhaseEmpty Phase = iota
	PhasePopulating
	PhaseInPlay
	PhaseFleetDestroyed
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "EMPTY"
	case PhasePopulating:
		return "POPULATING"
	case PhaseInPlay:
		return "IN_PLAY"
	case PhaseFleetDestroyed:
		return "FLEET_DESTROYED"
	default:
		return "UNKNOWN"
	}
}

// Rand is the random source used for placement and the computer player.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
