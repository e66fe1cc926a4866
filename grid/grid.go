package grid

import "fmt"

// Clue is a per-cell edge-count constraint: an integer in {0,1,2,3}, or Absent
// when the cell carries no constraint.
type Clue int8

// Absent marks a cell with no clue.
const Absent Clue = -1

// Valid reports whether c is a legal clue value.
func (c Clue) Valid() bool {
	return c == Absent || (c >= 0 && c <= 3)
}

// Grid is an immutable R×C puzzle: a dense, row-major array of Clue values.
// Once constructed, a Grid is never mutated; GraphBuilder and the solver read
// it by value semantics only.
type Grid struct {
	Rows, Cols int
	clues      []Clue // row-major, length Rows*Cols
}

// New constructs a Grid from row-major clues. It deep-copies clues so the
// caller's backing array may be reused or mutated afterward.
//
// Returns ErrInvalidGrid if rows or cols is non-positive, or if
// len(clues) != rows*cols. Returns ErrInvalidClue if any entry is out of range.
func New(rows, cols int, clues []Clue) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrInvalidGrid, rows, cols)
	}
	if len(clues) != rows*cols {
		return nil, fmt.Errorf("%w: expected %d clues, got %d", ErrInvalidGrid, rows*cols, len(clues))
	}
	cp := make([]Clue, len(clues))
	for i, c := range clues {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: cell %d has value %d", ErrInvalidClue, i, c)
		}
		cp[i] = c
	}

	return &Grid{Rows: rows, Cols: cols, clues: cp}, nil
}

// At returns the clue at row r, column c. Panics if (r,c) is out of bounds,
// matching the teacher corpus's convention of panicking on programmer error
// for index accessors (as opposed to ErrInvalidGrid for construction-time
// input validation).
func (g *Grid) At(r, c int) Clue {
	return g.clues[r*g.Cols+c]
}

// Cells returns the row-major clue slice. Callers must not mutate it; it
// aliases the Grid's internal storage for allocation-free iteration.
func (g *Grid) Cells() []Clue {
	return g.clues
}

// NumClueCells returns the count of cells with a clue present.
func (g *Grid) NumClueCells() int {
	n := 0
	for _, c := range g.clues {
		if c != Absent {
			n++
		}
	}

	return n
}

// Density returns the fraction of cells bearing a clue, in [0,1].
func (g *Grid) Density() float64 {
	total := g.Rows * g.Cols
	if total == 0 {
		return 0
	}

	return float64(g.NumClueCells()) / float64(total)
}
