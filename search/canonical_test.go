package search

import (
	"testing"

	"github.com/katalvlaran/slither/graph"
	"github.com/katalvlaran/slither/grid"
	"github.com/katalvlaran/slither/state"
)

// TestIsCanonical_MirrorPairsDisagree verifies that for an asymmetric
// edge-assignment vector and its horizontal mirror, exactly one of the pair
// is canonical — the deduplication condition the search engine relies on.
func TestIsCanonical_MirrorPairsDisagree(t *testing.T) {
	g, err := grid.New(1, 2, []grid.Clue{grid.Absent, grid.Absent})
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	gr, err := graph.Build(g)
	if err != nil {
		t.Fatalf("graph.Build: %v", err)
	}

	edges := make([]state.Value, gr.NumEdges())
	edges[0] = state.On
	edges[gr.MirrorHorizontal(0)] = state.Off

	mirrored := make([]state.Value, gr.NumEdges())
	for e, v := range edges {
		mirrored[gr.MirrorHorizontal(e)] = v
	}

	canonA := isCanonical(gr, edges)
	canonB := isCanonical(gr, mirrored)
	if canonA == canonB {
		t.Fatalf("isCanonical(edges) = %v, isCanonical(mirrored) = %v; want exactly one canonical", canonA, canonB)
	}
}

// TestIsCanonical_SelfSymmetric verifies a perfectly mirror-symmetric
// assignment (all-Unknown here) is trivially its own canonical representative.
func TestIsCanonical_SelfSymmetric(t *testing.T) {
	g, err := grid.New(1, 2, []grid.Clue{grid.Absent, grid.Absent})
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	gr, err := graph.Build(g)
	if err != nil {
		t.Fatalf("graph.Build: %v", err)
	}

	edges := make([]state.Value, gr.NumEdges())
	if !isCanonical(gr, edges) {
		t.Fatal("isCanonical(all-Unknown) = false; want true")
	}
}
