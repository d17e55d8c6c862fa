package game

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate is off the board")
	// ErrCellConflict indicates a placement touching an occupied or reserved cell.
	ErrCellConflict = errors.New("cell is already reserved")
	// ErrAlreadyTargeted indicates a shot at a cell that can no longer be targeted.
	ErrAlreadyTargeted = errors.New("cell was already used")
	// ErrPlacementExhausted indicates the placement attempt ceiling was reached.
	ErrPlacementExhausted = errors.New("fleet placement attempts exhausted")
	// ErrInvariantViolation indicates internal state that a correct board never reaches.
	ErrInvariantViolation = errors.New("board invariant violated")
)

// Error tags reported to the presentation layer.
const (
	TagOutOfBounds        = "OUT_OF_BOUNDS"
	TagCellConflict       = "CELL_CONFLICT"
	TagAlreadyTargeted    = "ALREADY_TARGETED"
	TagPlacementExhausted = "PLACEMENT_EXHAUSTED"
	TagInvariantViolation = "INVARIANT_VIOLATION"
	TagUnknown            = "UNKNOWN"
)

// ErrorTag maps an error returned by this package to its presentation tag.
func ErrorTag(err error) string {
	switch {
	case errors.Is(err, ErrOutOfBounds):
		return TagOutOfBounds
	case errors.Is(err, ErrCellConflict):
		return TagCellConflict
	case errors.Is(err, ErrAlreadyTargeted):
		return TagAlreadyTargeted
	case errors.Is(err, ErrPlacementExhausted):
		return TagPlacementExhausted
	case errors.Is(err, ErrInvariantViolation):
		return TagInvariantViolation
	default:
		return TagUnknown
	}
}

// Retryable reports whether a shot error should send the shooter back to target selection.
func Retryable(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrAlreadyTargeted)
}

func errOutOfBounds(c Coordinate) error {
	return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
}

func errCellConflict(c Coordinate) error {
	return fmt.Errorf("%w: %s", ErrCellConflict, c)
}

func errAlreadyTargeted(c Coordinate) error {
	return fmt.Errorf("%w: %s", ErrAlreadyTargeted, c)
}
