package state

import (
	"testing"

	"github.com/katalvlaran/slither/grid"

	"github.com/katalvlaran/slither/graph"
)

func build2x2(t *testing.T, clues []grid.Clue) *graph.Graph {
	t.Helper()
	g, err := grid.New(2, 2, clues)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	gr, err := graph.Build(g)
	if err != nil {
		t.Fatalf("graph.Build: %v", err)
	}

	return gr
}

// TestNew_InitialCounters verifies the initial State matches a re-scan.
func TestNew_InitialCounters(t *testing.T) {
	gr := build2x2(t, []grid.Clue{3, 3, 3, 3})
	s := New(gr)
	if s.UnknownEdges != gr.NumEdges() {
		t.Errorf("UnknownEdges = %d; want %d", s.UnknownEdges, gr.NumEdges())
	}
	for p := 0; p < gr.NumPoints(); p++ {
		if s.PointOnDegree[p] != 0 {
			t.Errorf("PointOnDegree[%d] = %d; want 0", p, s.PointOnDegree[p])
		}
		if int(s.PointUnknownDegree[p]) != len(gr.PointEdges[p]) {
			t.Errorf("PointUnknownDegree[%d] = %d; want %d", p, s.PointUnknownDegree[p], len(gr.PointEdges[p]))
		}
	}
	for c := 0; c < gr.NumCells(); c++ {
		if s.CellOnCount[c] != 0 {
			t.Errorf("CellOnCount[%d] = %d; want 0", c, s.CellOnCount[c])
		}
		if s.CellUnknownCount[c] != 4 {
			t.Errorf("CellUnknownCount[%d] = %d; want 4", c, s.CellUnknownCount[c])
		}
	}
}

// TestAssign_NoopOnSameValue verifies L2: re-assigning the current value
// changes no counters.
func TestAssign_NoopOnSameValue(t *testing.T) {
	gr := build2x2(t, []grid.Clue{grid.Absent, grid.Absent, grid.Absent, grid.Absent})
	s := New(gr)
	if err := s.Assign(0, On); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	before := append([]int16(nil), s.PointOnDegree...)
	beforeUnknown := s.UnknownEdges
	if err := s.Assign(0, On); err != nil {
		t.Fatalf("repeat Assign: %v", err)
	}
	if s.UnknownEdges != beforeUnknown {
		t.Fatalf("UnknownEdges changed on no-op re-assign: %d != %d", s.UnknownEdges, beforeUnknown)
	}
	for p, v := range before {
		if s.PointOnDegree[p] != v {
			t.Fatalf("PointOnDegree[%d] changed on no-op re-assign", p)
		}
	}
}

// TestAssign_Contradiction verifies assigning the opposite of a decided
// value fails without panicking.
func TestAssign_Contradiction(t *testing.T) {
	gr := build2x2(t, []grid.Clue{grid.Absent, grid.Absent, grid.Absent, grid.Absent})
	s := New(gr)
	if err := s.Assign(0, On); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := s.Assign(0, Off); err != ErrContradiction {
		t.Fatalf("Assign(0, Off) = %v; want ErrContradiction", err)
	}
}

// TestAssign_CellCapViolation verifies I2: exceeding a clue-cell's on-count
// is rejected.
func TestAssign_CellCapViolation(t *testing.T) {
	gr := build2x2(t, []grid.Clue{0, grid.Absent, grid.Absent, grid.Absent})
	s := New(gr)
	top := gr.CellEdgeList[0][graph.Top]
	if err := s.Assign(top, On); err != ErrContradiction {
		t.Fatalf("Assign(top, On) on a clue-0 cell = %v; want ErrContradiction", err)
	}
}

// TestAssign_PointDegreeCapViolation verifies I3: a third On edge at a point
// is rejected.
func TestAssign_PointDegreeCapViolation(t *testing.T) {
	gr := build2x2(t, []grid.Clue{grid.Absent, grid.Absent, grid.Absent, grid.Absent})
	s := New(gr)
	center := gr.PointID(1, 1)
	edges := gr.PointEdges[center]
	if len(edges) != 4 {
		t.Fatalf("expected center degree 4, got %d", len(edges))
	}
	if err := s.Assign(edges[0], On); err != nil {
		t.Fatalf("Assign 1: %v", err)
	}
	if err := s.Assign(edges[1], On); err != nil {
		t.Fatalf("Assign 2: %v", err)
	}
	if err := s.Assign(edges[2], On); err != ErrContradiction {
		t.Fatalf("third On edge at a point = %v; want ErrContradiction", err)
	}
}

// TestClone_Independence verifies Clone produces an independent copy.
func TestClone_Independence(t *testing.T) {
	gr := build2x2(t, []grid.Clue{grid.Absent, grid.Absent, grid.Absent, grid.Absent})
	s := New(gr)
	clone := s.Clone()
	if err := clone.Assign(0, On); err != nil {
		t.Fatalf("Assign on clone: %v", err)
	}
	if s.Edge[0] != Unknown {
		t.Fatalf("mutating clone affected original: s.Edge[0] = %v", s.Edge[0])
	}
}
