package validate

import (
	"fmt"

	"github.com/katalvlaran/slither/graph"
	"github.com/katalvlaran/slither/state"
)

// Point is a dot coordinate on the (R+1)x(C+1) lattice.
type Point struct {
	Row, Col int
}

// Check runs the four ordered checks (clue exactness, degree closure,
// non-emptiness, single-cycle connectivity) against a fully-decided s and, on
// success, returns the closed cyclic sequence of points forming the loop —
// length equal to the number of On edges plus one, since the start vertex
// appears at both ends.
//
// Ordering of the walk is deterministic given the chosen start point; the
// start point itself is arbitrary (the first point encountered with
// On-degree 2).
func Check(g *graph.Graph, s *state.State) ([]Point, error) {
	if err := checkClues(g, s); err != nil {
		return nil, err
	}
	if err := checkDegrees(g, s); err != nil {
		return nil, err
	}

	onEdges := countOn(s)
	if onEdges == 0 {
		return nil, ErrEmptyLoop
	}

	return walkCycle(g, s, onEdges)
}

func checkClues(g *graph.Graph, s *state.State) error {
	for _, c := range g.ClueCells {
		if s.CellOnCount[c] != int16(g.CellClue[c]) {
			return fmt.Errorf("%w: cell %d", ErrClueViolation, c)
		}
	}

	return nil
}

func checkDegrees(g *graph.Graph, s *state.State) error {
	for p := 0; p < g.NumPoints(); p++ {
		d := s.PointOnDegree[p]
		if d != 0 && d != 2 {
			return fmt.Errorf("%w: point %d", ErrPointDegreeViolation, p)
		}
	}

	return nil
}

func countOn(s *state.State) int {
	n := 0
	for _, v := range s.Edge {
		if v == state.On {
			n++
		}
	}

	return n
}

// onNeighbors returns, for every point, the list of points it connects to via
// an On edge (length 0 or 2 once degree closure has been checked).
func onNeighbors(g *graph.Graph, s *state.State) [][]int {
	out := make([][]int, g.NumPoints())
	for id, e := range g.Edges {
		if s.Edge[id] != state.On {
			continue
		}
		out[e.U] = append(out[e.U], e.V)
		out[e.V] = append(out[e.V], e.U)
	}

	return out
}

// walkCycle walks the single On-edge cycle starting from any degree-2 point.
// It fails with ErrMultipleCycles if the walk closes before consuming every
// On edge, or if any degree-2 point is left unvisited.
func walkCycle(g *graph.Graph, s *state.State, onEdges int) ([]Point, error) {
	nbrs := onNeighbors(g, s)

	start := -1
	for p, n := range nbrs {
		if len(n) == 2 {
			start = p

			break
		}
	}
	if start < 0 {
		// onEdges > 0 but no point reached degree 2: impossible once degree
		// closure already passed, guarded defensively.
		return nil, ErrDanglingEndpoint
	}

	visited := make([]bool, g.NumPoints())
	visited[start] = true
	path := []Point{coord(g, start)}

	prev, cur := -1, start
	walked := 0
	for {
		n := nbrs[cur]
		if len(n) != 2 {
			return nil, fmt.Errorf("%w: point %d", ErrDanglingEndpoint, cur)
		}
		next := n[0]
		if next == prev {
			next = n[1]
		}
		walked++
		prev, cur = cur, next
		if cur == start {
			path = append(path, coord(g, start))

			break
		}
		if visited[cur] {
			return nil, ErrMultipleCycles
		}
		visited[cur] = true
		path = append(path, coord(g, cur))
	}

	if walked != onEdges {
		return nil, ErrMultipleCycles
	}
	for p, n := range nbrs {
		if len(n) == 2 && !visited[p] {
			return nil, ErrMultipleCycles
		}
	}

	return path, nil
}

func coord(g *graph.Graph, p int) Point {
	r, c := g.PointCoord(p)

	return Point{Row: r, Col: c}
}
