package graph

import (
	"testing"

	"github.com/katalvlaran/slither/grid"
)

// TestBuild_Counts verifies edge/point/cell counts on a 2x2 grid match the
// closed-form sizes from the specification.
func TestBuild_Counts(t *testing.T) {
	g, err := grid.New(2, 2, []grid.Clue{3, 3, 3, 3})
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	gr, err := Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got, want := gr.NumEdges(), 2*2*2+2+2; got != want {
		t.Fatalf("NumEdges() = %d; want %d", got, want)
	}
	if got, want := gr.NumPoints(), 9; got != want {
		t.Fatalf("NumPoints() = %d; want %d", got, want)
	}
	if got, want := gr.NumCells(), 4; got != want {
		t.Fatalf("NumCells() = %d; want %d", got, want)
	}
	if got, want := len(gr.ClueCells), 4; got != want {
		t.Fatalf("len(ClueCells) = %d; want %d", got, want)
	}
}

// TestBuild_PointDegrees verifies corner, edge, and center point degrees on a
// 2x2 grid: corners have degree 2, edge-midpoints degree 3, the center has
// degree 4.
func TestBuild_PointDegrees(t *testing.T) {
	g, _ := grid.New(2, 2, []grid.Clue{grid.Absent, grid.Absent, grid.Absent, grid.Absent})
	gr, _ := Build(g)

	corner := gr.PointID(0, 0)
	if got := len(gr.PointEdges[corner]); got != 2 {
		t.Errorf("corner degree = %d; want 2", got)
	}
	edgeMid := gr.PointID(0, 1)
	if got := len(gr.PointEdges[edgeMid]); got != 3 {
		t.Errorf("edge-midpoint degree = %d; want 3", got)
	}
	center := gr.PointID(1, 1)
	if got := len(gr.PointEdges[center]); got != 4 {
		t.Errorf("center degree = %d; want 4", got)
	}
}

// TestBuild_CellEdges verifies each cell has exactly four bordering edges and
// that adjacent cells share an edge.
func TestBuild_CellEdges(t *testing.T) {
	g, _ := grid.New(2, 2, []grid.Clue{grid.Absent, grid.Absent, grid.Absent, grid.Absent})
	gr, _ := Build(g)

	cell00 := gr.CellEdgeList[0]
	cell01 := gr.CellEdgeList[1]
	if cell00[Right] != cell01[Left] {
		t.Fatalf("adjacent cells should share the edge between them: %d != %d", cell00[Right], cell01[Left])
	}
}

// TestBuild_NilGrid verifies the defensive nil check.
func TestBuild_NilGrid(t *testing.T) {
	if _, err := Build(nil); err != ErrNilGrid {
		t.Fatalf("Build(nil) error = %v; want ErrNilGrid", err)
	}
}
