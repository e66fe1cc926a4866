package propagate

import (
	"github.com/katalvlaran/slither/graph"
	"github.com/katalvlaran/slither/state"
)

// Init seeds propagation from every clue cell and every point — used once,
// against the initial all-Unknown State, since construction-time clues (most
// notably a clue of 0) can already force edges before any branching decision
// is made.
func Init(g *graph.Graph, s *state.State) error {
	cells := make([]int, len(g.ClueCells))
	copy(cells, g.ClueCells)
	points := make([]int, g.NumPoints())
	for p := range points {
		points[p] = p
	}

	return Run(g, s, cells, points)
}

// AfterAssign seeds propagation from the sites touched by a just-committed
// edge assignment: the edge's two endpoint points and up to two bordering
// cells.
func AfterAssign(g *graph.Graph, s *state.State, edgeID int) error {
	e := g.Edges[edgeID]
	cells := make([]int, 0, 2)
	if e.Left != graph.NoCell {
		cells = append(cells, e.Left)
	}
	if e.Right != graph.NoCell {
		cells = append(cells, e.Right)
	}

	return Run(g, s, cells, []int{e.U, e.V})
}

// Run drains the cell and point work queues (seeded from dirtyCells and
// dirtyPoints) to fixpoint, applying rules R1–R5 at each popped site. It
// returns state.ErrContradiction as soon as any forced assignment fails, and
// mutates s in place regardless of outcome.
//
// Complexity: linear in the number of assignments produced plus the size of
// their neighborhoods.
func Run(g *graph.Graph, s *state.State, dirtyCells, dirtyPoints []int) error {
	cellQ := newSiteQueue(g.NumCells())
	pointQ := newSiteQueue(g.NumPoints())
	for _, c := range dirtyCells {
		cellQ.push(c)
	}
	for _, p := range dirtyPoints {
		pointQ.push(p)
	}

	for !cellQ.empty() || !pointQ.empty() {
		for !cellQ.empty() {
			if err := applyCellRules(g, s, cellQ.pop(), cellQ, pointQ); err != nil {
				return err
			}
		}
		for !pointQ.empty() {
			if err := applyPointRules(g, s, pointQ.pop(), cellQ, pointQ); err != nil {
				return err
			}
		}
	}

	return nil
}

// applyCellRules applies R1 (cell-cap) and R2 (cell-floor) at cell c.
func applyCellRules(g *graph.Graph, s *state.State, c int, cellQ, pointQ *siteQueue) error {
	clue := g.CellClue[c]
	if clue < 0 {
		return nil
	}
	k := int16(clue)

	atCap := s.CellOnCount[c] == k
	atFloor := s.CellOnCount[c]+s.CellUnknownCount[c] == k
	if !atCap && !atFloor {
		return nil
	}

	for _, e := range g.CellEdgeList[c] {
		if s.Edge[e] != state.Unknown {
			continue
		}
		var v state.Value
		switch {
		case atCap:
			v = state.Off
		case atFloor:
			v = state.On
		default:
			continue
		}
		if err := s.Assign(e, v); err != nil {
			return err
		}
		markDirty(g, e, cellQ, pointQ)
	}

	return nil
}

// applyPointRules applies R3 (point-cap), R4 (point-floor), and R5
// (isolated-point) at point p.
func applyPointRules(g *graph.Graph, s *state.State, p int, cellQ, pointQ *siteQueue) error {
	onDeg := s.PointOnDegree[p]
	unkDeg := s.PointUnknownDegree[p]

	switch {
	case onDeg == 2:
		for _, e := range g.PointEdges[p] {
			if s.Edge[e] != state.Unknown {
				continue
			}
			if err := s.Assign(e, state.Off); err != nil {
				return err
			}
			markDirty(g, e, cellQ, pointQ)
		}
	case onDeg == 1 && unkDeg == 1:
		e := soleUnknown(g, s, p)
		if err := s.Assign(e, state.On); err != nil {
			return err
		}
		markDirty(g, e, cellQ, pointQ)
	case onDeg == 0 && unkDeg == 1:
		e := soleUnknown(g, s, p)
		if err := s.Assign(e, state.Off); err != nil {
			return err
		}
		markDirty(g, e, cellQ, pointQ)
	}

	return nil
}

// soleUnknown returns the single Unknown edge incident to p. Callers only
// invoke it when PointUnknownDegree[p] == 1, so exactly one such edge exists.
func soleUnknown(g *graph.Graph, s *state.State, p int) int {
	for _, e := range g.PointEdges[p] {
		if s.Edge[e] == state.Unknown {
			return e
		}
	}

	panic("propagate: soleUnknown called with no Unknown incident edge")
}

// markDirty re-enqueues the sites touched by the just-assigned edge e.
func markDirty(g *graph.Graph, e int, cellQ, pointQ *siteQueue) {
	edge := g.Edges[e]
	pointQ.push(edge.U)
	pointQ.push(edge.V)
	if edge.Left != graph.NoCell {
		cellQ.push(edge.Left)
	}
	if edge.Right != graph.NoCell {
		cellQ.push(edge.Right)
	}
}
