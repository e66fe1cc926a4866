package state

import "github.com/katalvlaran/slither/graph"

// State is the mutable per-branch search state: a tri-value assignment for
// every edge of the shared Graph, plus the point- and cell-level counters
// Assign maintains incrementally.
type State struct {
	g *graph.Graph

	Edge []Value // per edge-id

	PointOnDegree      []int16 // per point-id
	PointUnknownDegree []int16

	CellOnCount      []int16 // per cell-id
	CellUnknownCount []int16

	UnknownEdges int // count of edges still Unknown; decremented by every committing Assign
}

// New builds the initial State for g: every edge Unknown, point_unknown_degree
// seeded from incidence-list length, cell_unknown_count seeded from 4 (fewer
// on cells with fewer bordering edges — never the case on a rectangular grid,
// but the loop below makes no such assumption).
func New(g *graph.Graph) *State {
	s := &State{
		g:                  g,
		Edge:               make([]Value, g.NumEdges()),
		PointOnDegree:      make([]int16, g.NumPoints()),
		PointUnknownDegree: make([]int16, g.NumPoints()),
		CellOnCount:        make([]int16, g.NumCells()),
		CellUnknownCount:   make([]int16, g.NumCells()),
		UnknownEdges:       g.NumEdges(),
	}
	for p := 0; p < g.NumPoints(); p++ {
		s.PointUnknownDegree[p] = int16(len(g.PointEdges[p]))
	}
	for c := 0; c < g.NumCells(); c++ {
		s.CellUnknownCount[c] = int16(len(g.CellEdgeList[c]))
	}

	return s
}

// Clone returns an independent copy of s. The clone aliases the shared,
// read-only Graph but no mutable storage; mutating the clone never affects s.
//
// Complexity: O(edges + points + cells).
func (s *State) Clone() *State {
	return &State{
		g:                  s.g,
		Edge:               append([]Value(nil), s.Edge...),
		PointOnDegree:      append([]int16(nil), s.PointOnDegree...),
		PointUnknownDegree: append([]int16(nil), s.PointUnknownDegree...),
		CellOnCount:        append([]int16(nil), s.CellOnCount...),
		CellUnknownCount:   append([]int16(nil), s.CellUnknownCount...),
		UnknownEdges:       s.UnknownEdges,
	}
}

// Graph returns the shared, read-only Graph this State was built from.
func (s *State) Graph() *graph.Graph {
	return s.g
}

// Assign sets edge e to v (which must be On or Off). If edge[e] already
// equals v, Assign is a no-op that returns nil (L2: assigning the current
// decided value never mutates counters). If edge[e] holds the opposite
// decided value, Assign returns ErrContradiction without mutating anything.
// Otherwise it commits the assignment, updates the counters for e's two
// endpoints and up to two bordering cells, and checks I2/I3 locally at every
// touched site. On local-invariant failure it returns ErrContradiction; s is
// then poisoned and must be discarded by the caller.
func (s *State) Assign(e int, v Value) error {
	cur := s.Edge[e]
	if cur == v {
		return nil
	}
	if cur != Unknown {
		return ErrContradiction
	}

	s.Edge[e] = v
	s.UnknownEdges--
	edge := s.g.Edges[e]

	s.touchPoint(edge.U, v)
	s.touchPoint(edge.V, v)
	if edge.Left != graph.NoCell {
		s.touchCell(edge.Left, v)
	}
	if edge.Right != graph.NoCell {
		s.touchCell(edge.Right, v)
	}

	if !s.pointFeasible(edge.U) || !s.pointFeasible(edge.V) {
		return ErrContradiction
	}
	if edge.Left != graph.NoCell && !s.cellFeasible(edge.Left) {
		return ErrContradiction
	}
	if edge.Right != graph.NoCell && !s.cellFeasible(edge.Right) {
		return ErrContradiction
	}

	return nil
}

// touchPoint updates the on/unknown degree counters at point p for a newly
// committed assignment of value v.
func (s *State) touchPoint(p int, v Value) {
	s.PointUnknownDegree[p]--
	if v == On {
		s.PointOnDegree[p]++
	}
}

// touchCell updates the on/unknown count counters at cell c for a newly
// committed assignment of value v.
func (s *State) touchCell(c int, v Value) {
	s.CellUnknownCount[c]--
	if v == On {
		s.CellOnCount[c]++
	}
}

// pointFeasible checks I3 at point p: on-degree never exceeds 2, and a
// degree-1 point always retains at least one undecided incident edge (a
// degree-1 point with zero unknown edges can never close to degree 2).
func (s *State) pointFeasible(p int) bool {
	if s.PointOnDegree[p] > 2 {
		return false
	}
	if s.PointOnDegree[p] == 1 && s.PointUnknownDegree[p] == 0 {
		return false
	}

	return true
}

// cellFeasible checks I2 at cell c, when c carries a clue: on-count never
// exceeds the clue, and on-count plus unknown-count never falls short of it.
// Cells with no clue are unconstrained.
func (s *State) cellFeasible(c int) bool {
	clue := s.g.CellClue[c]
	if clue < 0 {
		return true
	}
	k := int16(clue)

	return s.CellOnCount[c] <= k && s.CellOnCount[c]+s.CellUnknownCount[c] >= k
}
