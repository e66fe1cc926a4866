package search

// computeParallelDepth derives the fork-depth threshold from grid size and
// clue density when the caller has not overridden it. Larger grids afford
// a deeper parallel region; sparse grids (fewer clues to constrain early
// branches) get a bonus since their early subtrees stay large for longer.
func computeParallelDepth(totalCells, clueCells int) int {
	base := baseDepth(totalCells)
	base += densityBonus(totalCells, clueCells)

	return clamp(base, 10, 45)
}

func baseDepth(totalCells int) int {
	switch {
	case totalCells <= 25:
		return 8
	case totalCells <= 49:
		return 12
	case totalCells <= 64:
		return 14
	case totalCells <= 100:
		return 20
	case totalCells <= 225:
		return 30
	default:
		return 36
	}
}

func densityBonus(totalCells, clueCells int) int {
	if totalCells == 0 {
		return 0
	}
	d := float64(clueCells) / float64(totalCells)
	switch {
	case d < 0.3:
		return 6
	case d < 0.6:
		return 3
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// forkSizeThreshold is the minimum count of still-Unknown edges below which
// a branch runs sequentially even inside the parallel-depth region: forking
// a subtree that small costs more in goroutine/clone overhead than it could
// ever recover in parallelism.
const forkSizeThreshold = 10
