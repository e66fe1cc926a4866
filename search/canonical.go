package search

import (
	"github.com/katalvlaran/slither/graph"
	"github.com/katalvlaran/slither/state"
)

// isCanonical reports whether edges is its own lexicographically-smallest
// representative under horizontal reflection. Only one of a mirrored pair of
// solutions passes; the other is suppressed as a duplicate. This covers one
// of a rectangular grid's up-to-eight symmetries (horizontal reflection);
// full dihedral-group deduplication is not attempted.
func isCanonical(g *graph.Graph, edges []state.Value) bool {
	for e, v := range edges {
		m := g.MirrorHorizontal(e)
		mv := edges[m]
		if mv != v {
			return v < mv
		}
	}

	// A perfectly self-symmetric solution compares equal edge-by-edge;
	// it is its own unique representative.
	return true
}
