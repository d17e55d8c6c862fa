package game

import "fmt"

// Coordinate is a zero-based board position. Bounds are checked by Board.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Add offsets the coordinate by dr rows and dc columns.
func (c Coordinate) Add(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Label formats the coordinate the way players type it: 1-based "row col".
func (c Coordinate) Label() string {
	return fmt.Sprintf("%d %d", c.Row+1, c.Col+1)
}

// FromLabel converts 1-based row and column numbers into a Coordinate.
func FromLabel(row, col int) Coordinate {
	return Coordinate{Row: row - 1, Col: col - 1}
}

// marginOffsets are the 8 Chebyshev neighbours that keep vessels from touching.
var marginOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbours returns the 8 surrounding coordinates, unfiltered by bounds.
func (c Coordinate) Neighbours() []Coordinate {
	out := make([]Coordinate, 0, len(marginOffsets))
	for _, off := range marginOffsets {
		out = append(out, c.Add(off[0], off[1]))
	}
	return out
}
