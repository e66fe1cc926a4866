package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/slither/graph"
	"github.com/katalvlaran/slither/search"
	"github.com/katalvlaran/slither/state"
)

// printingSink renders every accepted solution to w as an ASCII dot lattice,
// synchronizing since Offer may be called concurrently by multiple branches.
type printingSink struct {
	w io.Writer
	g *graph.Graph

	mu sync.Mutex
}

func (s *printingSink) Offer(sol search.Solution) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, "\nsolution #%d (%s):\n", sol.Seq, sol.ID)
	fmt.Fprint(s.w, renderSolution(s.g, sol.Edges))
}

// renderSolution draws the (Rows+1)x(Cols+1) dot lattice for g, with '-' and
// '|' marking On edges and the clue digit (or '.') centered in each cell.
func renderSolution(g *graph.Graph, edges []state.Value) string {
	hLines := make([][]bool, g.Rows+1)
	for r := range hLines {
		hLines[r] = make([]bool, g.Cols)
	}
	vLines := make([][]bool, g.Rows)
	for r := range vLines {
		vLines[r] = make([]bool, g.Cols+1)
	}

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			ce := g.CellEdgeList[r*g.Cols+c]
			hLines[r][c] = edges[ce[graph.Top]] == state.On
			hLines[r+1][c] = edges[ce[graph.Bottom]] == state.On
			vLines[r][c] = edges[ce[graph.Left]] == state.On
			vLines[r][c+1] = edges[ce[graph.Right]] == state.On
		}
	}

	var out []byte
	for r := 0; r <= g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			out = append(out, '+')
			if hLines[r][c] {
				out = append(out, '-', '-', '-')
			} else {
				out = append(out, ' ', ' ', ' ')
			}
		}
		out = append(out, '+', '\n')

		if r == g.Rows {
			break
		}
		for c := 0; c < g.Cols; c++ {
			if vLines[r][c] {
				out = append(out, '|')
			} else {
				out = append(out, ' ')
			}
			out = append(out, ' ', clueGlyph(g.CellClue[r*g.Cols+c]), ' ')
		}
		if vLines[r][g.Cols] {
			out = append(out, '|')
		} else {
			out = append(out, ' ')
		}
		out = append(out, '\n')
	}

	return string(out)
}

func clueGlyph(clue int8) byte {
	if clue < 0 {
		return '.'
	}

	return byte('0' + clue)
}
