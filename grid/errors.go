package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrInvalidGrid indicates non-positive dimensions or a malformed clue slice.
	ErrInvalidGrid = errors.New("grid: invalid puzzle dimensions or clues")
	// ErrInvalidClue indicates a clue value outside {0,1,2,3,Absent}.
	ErrInvalidClue = errors.New("grid: clue out of range")
)
