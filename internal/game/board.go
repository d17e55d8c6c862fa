package game

// Board is one player's hidden grid and fleet.
//
// During placement the blocked set holds every occupied cell plus its safety
// margin, so AddVessel rejects touching vessels. Begin clears it; from then on
// it holds fired-upon cells and the revealed margins of sunk vessels.
type Board struct {
	size      int
	fleetSize int
	cells     [][]Cell
	vessels   []*Vessel
	occupied  map[Coordinate]*Vessel
	blocked   map[Coordinate]struct{}
	sunk      int
	concealed bool
	phase     Phase
}

// NewBoard returns an empty size×size board that is complete once every vessel of fleet is sunk.
func NewBoard(size int, fleet Fleet) *Board {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Board{
		size:      size,
		fleetSize: fleet.Vessels(),
		cells:     cells,
		occupied:  make(map[Coordinate]*Vessel),
		blocked:   make(map[Coordinate]struct{}),
		phase:     PhaseEmpty,
	}
}

// NewDefaultBoard is a GridSize board for the DefaultFleet.
func NewDefaultBoard() *Board {
	return NewBoard(GridSize, DefaultFleet)
}

func (b *Board) Size() int {
	return b.size
}

// FleetSize is the number of sunk vessels that completes the board.
func (b *Board) FleetSize() int {
	return b.fleetSize
}

func (b *Board) Phase() Phase {
	return b.phase
}

// Out reports whether c lies outside the grid.
func (b *Board) Out(c Coordinate) bool {
	return c.Row < 0 || c.Row >= b.size || c.Col < 0 || c.Col >= b.size
}

func (b *Board) IsBlocked(c Coordinate) bool {
	_, ok := b.blocked[c]
	return ok
}

// AddVessel places v. Nothing is mutated when it fails.
func (b *Board) AddVessel(v *Vessel) error {
	for _, d := range v.cells {
		if b.Out(d) {
			return errOutOfBounds(d)
		}
		if b.IsBlocked(d) {
			return errCellConflict(d)
		}
	}
	for _, d := range v.cells {
		b.cells[d.Row][d.Col] = CellShip
		b.blocked[d] = struct{}{}
		b.occupied[d] = v
	}
	b.vessels = append(b.vessels, v)
	b.contour(v, false)
	if b.phase == PhaseEmpty {
		b.phase = PhasePopulating
	}
	return nil
}

// contour blocks the safety margin of v. When revealed, newly blocked margin cells are marked MISS.
func (b *Board) contour(v *Vessel, revealed bool) {
	for _, d := range v.cells {
		for _, n := range d.Neighbours() {
			if b.Out(n) || b.IsBlocked(n) {
				continue
			}
			if revealed {
				b.cells[n.Row][n.Col] = CellMiss
			}
			b.blocked[n] = struct{}{}
		}
	}
}

// Begin ends the placement phase. Placement reservations are dropped so that
// only fired-upon cells count as blocked from here on.
func (b *Board) Begin() {
	b.blocked = make(map[Coordinate]struct{})
	if b.phase != PhaseFleetDestroyed {
		b.phase = PhaseInPlay
	}
}

// Shoot fires at target and classifies the result.
func (b *Board) Shoot(target Coordinate) (Outcome, error) {
	if b.Out(target) {
		return Miss, errOutOfBounds(target)
	}
	if b.IsBlocked(target) {
		return Miss, errAlreadyTargeted(target)
	}
	b.blocked[target] = struct{}{}

	v, ok := b.occupied[target]
	if !ok {
		b.cells[target.Row][target.Col] = CellMiss
		return Miss, nil
	}

	if err := v.ApplyHit(); err != nil {
		return Miss, err
	}
	b.cells[target.Row][target.Col] = CellHit
	if !v.IsSunk() {
		return Hit, nil
	}

	if b.sunk < b.fleetSize {
		b.sunk++
	}
	b.contour(v, true)
	if b.IsComplete() {
		b.phase = PhaseFleetDestroyed
	}
	return Sunk, nil
}

// IsComplete reports whether the whole fleet has been sunk.
func (b *Board) IsComplete() bool {
	return b.sunk == b.fleetSize
}

func (b *Board) SunkCount() int {
	return b.sunk
}

// Vessels returns the placed vessels in placement order.
func (b *Board) Vessels() []*Vessel {
	out := make([]*Vessel, len(b.vessels))
	copy(out, b.vessels)
	return out
}

// Cell returns the state at c. Out-of-bounds coordinates read as empty.
func (b *Board) Cell(c Coordinate) Cell {
	if b.Out(c) {
		return CellEmpty
	}
	return b.cells[c.Row][c.Col]
}

// Grid returns a copy of the cell matrix, row-major.
func (b *Board) Grid() [][]Cell {
	out := make([][]Cell, b.size)
	for i, row := range b.cells {
		out[i] = make([]Cell, len(row))
		copy(out[i], row)
	}
	return out
}

// Conceal hides ship markers from renderers.
func (b *Board) Conceal() {
	b.concealed = true
}

func (b *Board) Concealed() bool {
	return b.concealed
}
