package game

import "fmt"

// Vessel is a straight run of occupied cells with its own hit points.
type Vessel struct {
	cells       []Coordinate
	orientation Orientation
	lives       int
}

// NewVessel builds a vessel from its cells in bow-to-stern order.
func NewVessel(orientation Orientation, cells ...Coordinate) *Vessel {
	dots := make([]Coordinate, len(cells))
	copy(dots, cells)
	return &Vessel{
		cells:       dots,
		orientation: orientation,
		lives:       len(dots),
	}
}

// LayVessel extends a vessel of the given size from anchor along orientation.
func LayVessel(anchor Coordinate, size int, orientation Orientation) *Vessel {
	cells := make([]Coordinate, 0, size)
	for i := 0; i < size; i++ {
		if orientation == Vertical {
			cells = append(cells, anchor.Add(i, 0))
		} else {
			cells = append(cells, anchor.Add(0, i))
		}
	}
	return NewVessel(orientation, cells...)
}

// Dots returns the occupied coordinates in placement order.
func (v *Vessel) Dots() []Coordinate {
	out := make([]Coordinate, len(v.cells))
	copy(out, v.cells)
	return out
}

func (v *Vessel) Size() int {
	return len(v.cells)
}

func (v *Vessel) Orientation() Orientation {
	return v.orientation
}

// Lives is the remaining health.
func (v *Vessel) Lives() int {
	return v.lives
}

func (v *Vessel) IsSunk() bool {
	return v.lives == 0
}

func (v *Vessel) Occupies(c Coordinate) bool {
	for _, d := range v.cells {
		if d == c {
			return true
		}
	}
	return false
}

// ApplyHit removes one point of health.
func (v *Vessel) ApplyHit() error {
	if v.lives == 0 {
		return fmt.Errorf("%w: hit on sunk vessel %v", ErrInvariantViolation, v.cells)
	}
	v.lives--
	return nil
}
