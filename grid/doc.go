// Package grid defines the immutable puzzle input consumed by the solver core:
// a rectangular dot-grid of cells, each bearing an edge-count clue in {0,1,2,3}
// or no clue at all.
//
// Grid is the narrow contract between the out-of-scope puzzle-file parser and
// the rest of the core (graph.Build, search.Solve). This package owns no
// parsing, no rendering, and no solving logic — only the data shape and its
// validation.
//
// Errors:
//
//	ErrInvalidGrid: non-positive rows/cols, or a clue slice of the wrong length.
//	ErrInvalidClue: a clue value outside {0,1,2,3,Absent}.
package grid
