package heuristic

import (
	"github.com/katalvlaran/slither/graph"
	"github.com/katalvlaran/slither/state"
)

// AllDecided is returned by Select when no Unknown edge remains.
const AllDecided = -1

// Select scans every Unknown edge of s and returns the one to branch on next,
// or AllDecided if none remain.
//
// For each candidate it simulates assign(e, Off) and assign(e, On) against
// the local feasibility checks (I2, I3) without mutating s. An edge that
// survives zero values is returned immediately (the search will discover the
// contradiction on the next decision); an edge that survives exactly one
// value is returned immediately too (it is a forced move). Only when every
// scanned candidate so far survives both values does Select fall back to
// scoring; the highest-scoring edge wins, ties broken by edge index (the
// natural order of the scan).
func Select(g *graph.Graph, s *state.State) int {
	best := AllDecided
	bestScore := -1

	for e := 0; e < g.NumEdges(); e++ {
		if s.Edge[e] != state.Unknown {
			continue
		}

		offOK := wouldSurvive(g, s, e, state.Off)
		onOK := wouldSurvive(g, s, e, state.On)
		branches := 0
		if offOK {
			branches++
		}
		if onOK {
			branches++
		}
		if branches <= 1 {
			return e
		}

		if score := scoreEdge(g, s, e); score > bestScore {
			bestScore = score
			best = e
		}
	}

	return best
}

// wouldSurvive reports whether assigning e to v would satisfy I2 and I3 at
// e's touched points and cells, without mutating s.
func wouldSurvive(g *graph.Graph, s *state.State, e int, v state.Value) bool {
	edge := g.Edges[e]
	if !wouldPointSurvive(s, edge.U, v) || !wouldPointSurvive(s, edge.V, v) {
		return false
	}
	if edge.Left != graph.NoCell && !wouldCellSurvive(g, s, edge.Left, v) {
		return false
	}
	if edge.Right != graph.NoCell && !wouldCellSurvive(g, s, edge.Right, v) {
		return false
	}

	return true
}

func wouldPointSurvive(s *state.State, p int, v state.Value) bool {
	onDeg := s.PointOnDegree[p]
	unkDeg := s.PointUnknownDegree[p] - 1
	if v == state.On {
		onDeg++
	}
	if onDeg > 2 {
		return false
	}

	return !(onDeg == 1 && unkDeg == 0)
}

func wouldCellSurvive(g *graph.Graph, s *state.State, c int, v state.Value) bool {
	clue := g.CellClue[c]
	if clue < 0 {
		return true
	}
	k := int16(clue)
	on := s.CellOnCount[c]
	unk := s.CellUnknownCount[c] - 1
	if v == state.On {
		on++
	}

	return on <= k && on+unk >= k
}

// scoreEdge implements the additive scoring scheme from the specification.
func scoreEdge(g *graph.Graph, s *state.State, e int) int {
	edge := g.Edges[e]
	score := 0

	if s.PointOnDegree[edge.U] == 1 || s.PointOnDegree[edge.V] == 1 {
		score += 10000
	}

	var cells []int
	if edge.Left != graph.NoCell {
		cells = append(cells, edge.Left)
	}
	if edge.Right != graph.NoCell {
		cells = append(cells, edge.Right)
	}

	for _, c := range cells {
		if g.CellClue[c] >= 0 && s.CellUnknownCount[c] == 1 {
			score += 5000

			break
		}
	}

	for _, c := range cells {
		clue := g.CellClue[c]
		if clue < 0 {
			continue
		}
		need := int16(clue) - s.CellOnCount[c]
		u := s.CellUnknownCount[c]
		switch {
		case u == 0:
			// contributes nothing
		case need == u || need == 0:
			score += 2000
		case u == 1:
			score += 1500
		case u <= 2:
			score += 1000
		default:
			d := int(2*need - u)
			if d < 0 {
				d = -d
			}
			if v := 100 - d; v > 0 {
				score += v
			}
		}
	}

	return score
}
