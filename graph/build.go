package graph

import "github.com/katalvlaran/slither/grid"

// Build materializes the Graph for g in one pass: point indices are assigned
// row-major, horizontal edges are emitted row-by-row followed by vertical
// edges, and the per-point and per-cell incidence lists are populated by a
// single additional sweep over the emitted edges.
//
// Build is pure and allocates once; the returned Graph is safe to share
// read-only across goroutines.
//
// Complexity: O(R*C) time and memory.
func Build(g *grid.Grid) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	rows, cols := g.Rows, g.Cols
	numH := (rows + 1) * cols
	numV := rows * (cols + 1)
	out := &Graph{
		Rows:     rows,
		Cols:     cols,
		Edges:    make([]Edge, 0, numH+numV),
		CellClue: make([]int8, rows*cols),
	}

	horizID := func(r, c int) int { return r*cols + c }
	vertID := func(r, c int) int { return numH + r*(cols+1) + c }

	// Horizontal edges: row r in [0,rows], col c in [0,cols-1], connecting
	// point (r,c) to point (r,c+1). Bordering cells: above = (r-1,c), below = (r,c).
	for r := 0; r <= rows; r++ {
		for c := 0; c < cols; c++ {
			above, below := NoCell, NoCell
			if r > 0 {
				above = (r-1)*cols + c
			}
			if r < rows {
				below = r*cols + c
			}
			out.Edges = append(out.Edges, Edge{
				U: out.PointID(r, c), V: out.PointID(r, c+1),
				Left: above, Right: below,
			})
		}
	}

	// Vertical edges: row r in [0,rows-1], col c in [0,cols], connecting
	// point (r,c) to point (r+1,c). Bordering cells: left = (r,c-1), right = (r,c).
	for r := 0; r < rows; r++ {
		for c := 0; c <= cols; c++ {
			left, right := NoCell, NoCell
			if c > 0 {
				left = r*cols + c - 1
			}
			if c < cols {
				right = r*cols + c
			}
			out.Edges = append(out.Edges, Edge{
				U: out.PointID(r, c), V: out.PointID(r+1, c),
				Left: left, Right: right,
			})
		}
	}

	// Per-point incidence: iterate all edges once, append each to both endpoints.
	out.PointEdges = make([][]int, out.NumPoints())
	for id, e := range out.Edges {
		out.PointEdges[e.U] = append(out.PointEdges[e.U], id)
		out.PointEdges[e.V] = append(out.PointEdges[e.V], id)
	}

	// Per-cell incidence and clues.
	out.CellEdgeList = make([]CellEdges, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := r*cols + c
			out.CellClue[cell] = int8(g.At(r, c))
			out.CellEdgeList[cell] = CellEdges{
				Top:    horizID(r, c),
				Bottom: horizID(r+1, c),
				Left:   vertID(r, c),
				Right:  vertID(r, c+1),
			}
			if g.At(r, c) != grid.Absent {
				out.ClueCells = append(out.ClueCells, cell)
			}
		}
	}

	return out, nil
}
