package game

import (
	"errors"
	"fmt"
	"log"
)

// PlacementStats counts the random placement attempts of one Place call.
type PlacementStats struct {
	Attempts    int
	OutOfBounds int
	Conflicts   int
}

// RejectFunc is told about every attempt the board refused, with an error
// that ErrorTag maps to OUT_OF_BOUNDS or CELL_CONFLICT.
type RejectFunc func(anchor Coordinate, size int, err error)

// Placer populates boards with a fleet at random positions.
type Placer struct {
	rng         Rand
	fleet       Fleet
	size        int
	maxAttempts int

	// OnReject, when set, receives each refused attempt.
	OnReject RejectFunc
}

func NewPlacer(rng Rand) *Placer {
	return &Placer{
		rng:         rng,
		fleet:       DefaultFleet,
		size:        GridSize,
		maxAttempts: MaxPlacementAttempts,
	}
}

// Place adds every vessel of the fleet to b. The attempt budget is shared by
// the whole fleet; once it runs out b is left partially populated and must be
// discarded.
func (p *Placer) Place(b *Board) (PlacementStats, error) {
	var stats PlacementStats
	for _, size := range p.fleet {
		for {
			if stats.Attempts >= p.maxAttempts {
				return stats, fmt.Errorf("%w: %d attempts, %d of %d vessels placed",
					ErrPlacementExhausted, stats.Attempts, len(b.vessels), len(p.fleet))
			}
			stats.Attempts++

			orientation := Horizontal
			if p.rng.Intn(2) == 1 {
				orientation = Vertical
			}
			anchor := NewCoordinate(p.rng.Intn(b.Size()), p.rng.Intn(b.Size()))

			err := b.AddVessel(LayVessel(anchor, size, orientation))
			if err == nil {
				break
			}
			switch {
			case errors.Is(err, ErrOutOfBounds):
				stats.OutOfBounds++
			case errors.Is(err, ErrCellConflict):
				stats.Conflicts++
			default:
				return stats, err
			}
			if p.OnReject != nil {
				p.OnReject(anchor, size, err)
			}
		}
	}
	return stats, nil
}

// RandomBoard keeps placing the fleet on fresh boards until one succeeds and
// returns it ready for play.
func (p *Placer) RandomBoard() *Board {
	for {
		b := NewBoard(p.size, p.fleet)
		stats, err := p.Place(b)
		if err != nil {
			log.Printf("Fleet placement failed after %d attempts, restarting on a fresh board: %v", stats.Attempts, err)
			continue
		}
		b.Begin()
		return b
	}
}
