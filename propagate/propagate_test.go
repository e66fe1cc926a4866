package propagate

import (
	"testing"

	"github.com/katalvlaran/slither/graph"
	"github.com/katalvlaran/slither/grid"
	"github.com/katalvlaran/slither/state"
)

func build(t *testing.T, rows, cols int, clues []grid.Clue) (*graph.Graph, *state.State) {
	t.Helper()
	g, err := grid.New(rows, cols, clues)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	gr, err := graph.Build(g)
	if err != nil {
		t.Fatalf("graph.Build: %v", err)
	}

	return gr, state.New(gr)
}

// TestInit_CellCapZero verifies R1: a clue-0 cell forces all four of its
// edges Off on the very first propagation pass.
func TestInit_CellCapZero(t *testing.T) {
	gr, s := build(t, 1, 1, []grid.Clue{0})
	if err := Init(gr, s); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for _, e := range gr.CellEdgeList[0] {
		if s.Edge[e] != state.Off {
			t.Errorf("edge %d = %v; want Off", e, s.Edge[e])
		}
	}
}

// TestInit_AdjacentZeroAndThree exercises B3: a clue-0 cell adjacent to a
// clue-3 cell should saturate the clue-3 cell's three free edges to On
// without any branching. The pair sits in the middle row of a 3x3 grid so
// both endpoints of the shared edge are interior points; with the pair on a
// boundary the puzzle has no solution and Init reports a contradiction.
func TestInit_AdjacentZeroAndThree(t *testing.T) {
	a := grid.Absent
	gr, s := build(t, 3, 3, []grid.Clue{a, a, a, 0, 3, a, a, a, a})
	if err := Init(gr, s); err != nil {
		t.Fatalf("Init: %v", err)
	}
	shared := gr.CellEdgeList[3][graph.Right]
	if s.Edge[shared] != state.Off {
		t.Fatalf("shared edge = %v; want Off (forced by clue-0 cell)", s.Edge[shared])
	}
	for _, e := range gr.CellEdgeList[4] {
		if e == shared {
			continue
		}
		if s.Edge[e] != state.On {
			t.Errorf("clue-3 cell edge %d = %v; want On", e, s.Edge[e])
		}
	}
}

// TestRun_Idempotent verifies L1: re-running propagation on an already fixed
// point State changes nothing and returns nil.
func TestRun_Idempotent(t *testing.T) {
	gr, s := build(t, 1, 1, []grid.Clue{2})
	if err := Init(gr, s); err != nil {
		t.Fatalf("Init: %v", err)
	}
	before := append([]state.Value(nil), s.Edge...)
	if err := Run(gr, s, gr.ClueCells, allPoints(gr)); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	for e, v := range before {
		if s.Edge[e] != v {
			t.Fatalf("edge %d changed on idempotent re-run: %v -> %v", e, v, s.Edge[e])
		}
	}
}

// TestAfterAssign_PointFloor verifies R4: forcing a point to on-degree 1 with
// a single remaining Unknown edge forces that edge On.
func TestAfterAssign_PointFloor(t *testing.T) {
	gr, s := build(t, 1, 1, []grid.Clue{grid.Absent})
	corner := gr.PointID(0, 0)
	edges := gr.PointEdges[corner]
	if len(edges) != 2 {
		t.Fatalf("expected corner degree 2, got %d", len(edges))
	}
	if err := s.Assign(edges[0], state.On); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := AfterAssign(gr, s, edges[0]); err != nil {
		t.Fatalf("AfterAssign: %v", err)
	}
	if s.Edge[edges[1]] != state.On {
		t.Fatalf("R4 did not force the sole remaining edge On: %v", s.Edge[edges[1]])
	}
}

// TestAfterAssign_IsolatedPoint verifies R5: a degree-0 point with a single
// remaining Unknown edge forces that edge Off.
func TestAfterAssign_IsolatedPoint(t *testing.T) {
	gr, s := build(t, 1, 1, []grid.Clue{grid.Absent})
	corner := gr.PointID(1, 1) // opposite corner, degree 2
	edges := gr.PointEdges[corner]
	if len(edges) != 2 {
		t.Fatalf("expected corner degree 2, got %d", len(edges))
	}
	if err := s.Assign(edges[0], state.Off); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := AfterAssign(gr, s, edges[0]); err != nil {
		t.Fatalf("AfterAssign: %v", err)
	}
	if s.Edge[edges[1]] != state.Off {
		t.Fatalf("R5 did not force the sole remaining edge Off: %v", s.Edge[edges[1]])
	}
}

// TestRun_Contradiction verifies a forced contradiction surfaces as an error:
// Top On saturates the clue-1 cell, R1 then forces its other edges Off, and
// Left Off strands point (0,0) at on-degree 1 with nothing undecided.
func TestRun_Contradiction(t *testing.T) {
	gr, s := build(t, 1, 1, []grid.Clue{1})
	top := gr.CellEdgeList[0][graph.Top]
	if err := s.Assign(top, state.On); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := AfterAssign(gr, s, top); err != state.ErrContradiction {
		t.Fatalf("AfterAssign = %v; want ErrContradiction", err)
	}
}

func allPoints(g *graph.Graph) []int {
	pts := make([]int, g.NumPoints())
	for i := range pts {
		pts[i] = i
	}

	return pts
}
