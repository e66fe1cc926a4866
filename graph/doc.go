// Package graph implements the GraphBuilder component: it derives the
// edge-indexed planar graph (points, edges, incidence lists) from a grid.Grid
// in one pass. The result is immutable and shared read-only by every worker
// of the search.
//
// Graph is an arena-with-indices structure: points, edges, and cells are
// referred to by integer index into flat arrays, never by pointer. This keeps
// the structure trivially shareable across goroutines and cheap to reason
// about — no ownership cycles, no GC pressure from pointer chasing.
//
// Complexity: Build is O(R*C) time and memory.
//
// Errors:
//
//	ErrNilGrid: Build was called with a nil grid.Grid. Dimension and clue
//	validation happens earlier, in grid.New.
package graph
