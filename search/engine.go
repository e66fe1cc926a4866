package search

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/slither/graph"
	"github.com/katalvlaran/slither/grid"
	"github.com/katalvlaran/slither/heuristic"
	"github.com/katalvlaran/slither/internal/taskpool"
	"github.com/katalvlaran/slither/propagate"
	"github.com/katalvlaran/slither/state"
	"github.com/katalvlaran/slither/validate"
)

// Solve builds the puzzle graph from g and explores its solution space
// according to cfg, delivering every accepted solution to sink. The only
// escalated error is an invalid grid; anything else Solve reports through
// the returned Outcome.
func Solve(ctx context.Context, g *grid.Grid, cfg SolverConfig, sink SolutionSink) (Outcome, error) {
	gr, err := graph.Build(g)
	if err != nil {
		return Outcome{}, err
	}

	eng := newEngine(gr, cfg, sink)

	if cfg.Timeout > 0 {
		timer := time.AfterFunc(cfg.Timeout, func() {
			if eng.cancelled.CompareAndSwap(false, true) {
				eng.timedOut.Store(true)
			}
		})
		defer timer.Stop()
	}

	root := state.New(gr)
	if err := propagate.Init(gr, root); err != nil {
		// The grid contradicts itself before a single branch decision;
		// report a clean, solution-free Completed rather than escalating.
		return eng.outcome(), nil
	}

	eng.pool.Go(func() { eng.enter(ctx, root, 0) })
	eng.pool.Wait()

	return eng.outcome(), nil
}

// engine holds everything shared, read-only or atomically/mutex-guarded,
// across every branch task of one Solve call.
type engine struct {
	g    *graph.Graph
	cfg  SolverConfig
	sink SolutionSink
	pool *taskpool.Pool

	parallelDepth int

	cancelled atomic.Bool
	timedOut  atomic.Bool
	capped    atomic.Bool

	mu       sync.Mutex
	count    int
	explored int64
}

func newEngine(g *graph.Graph, cfg SolverConfig, sink SolutionSink) *engine {
	depth := cfg.ParallelDepth
	if depth <= 0 {
		depth = computeParallelDepth(g.NumCells(), len(g.ClueCells))
	}

	return &engine{
		g:             g,
		cfg:           cfg,
		sink:          sink,
		pool:          taskpool.New(workerCount(cfg)),
		parallelDepth: depth,
	}
}

// workerCount bounds the pool to the lesser of the requested worker count
// and the configured fraction of hardware parallelism.
func workerCount(cfg SolverConfig) int {
	frac := cfg.ParallelFraction
	if frac <= 0 || frac > 1 {
		frac = 1.0
	}
	limit := int(float64(runtime.GOMAXPROCS(0)) * frac)
	if limit < 1 {
		limit = 1
	}
	if cfg.WorkerCount > 0 && cfg.WorkerCount < limit {
		limit = cfg.WorkerCount
	}

	return limit
}

// enter is the per-branch driving loop: poll for cancellation, apply the
// cheap structural guard, either accept a fully-decided branch or hand its
// one chosen edge to decide.
func (e *engine) enter(ctx context.Context, s *state.State, depth int) {
	atomic.AddInt64(&e.explored, 1)

	if e.cancelled.Load() {
		return
	}
	select {
	case <-ctx.Done():
		e.cancelled.Store(true)

		return
	default:
	}

	if isDefinitelyUnsolvable(e.g, s) {
		return
	}

	edgeID := heuristic.Select(e.g, s)
	if edgeID == heuristic.AllDecided {
		e.acceptIfValid(s)

		return
	}

	e.decide(ctx, s, edgeID, depth)
}

// decide constructs the two children of edgeID: Off on a clone, On in place
// on s. A branch that contradicts during assignment or propagation is
// silently dropped. When both survive, the clone is dispatched to the pool
// (or run inline past the parallel-depth region) while the caller continues
// with the in-place branch — no second clone is ever taken.
func (e *engine) decide(ctx context.Context, s *state.State, edgeID int, depth int) {
	offState := s.Clone()
	offErr := assignAndPropagate(e.g, offState, edgeID, state.Off)
	onErr := assignAndPropagate(e.g, s, edgeID, state.On)

	offOK := offErr == nil
	onOK := onErr == nil

	switch {
	case offOK && onOK:
		if e.shouldFork(depth, s) {
			e.pool.Go(func() { e.enter(ctx, offState, depth+1) })
		} else {
			e.enter(ctx, offState, depth+1)
		}
		e.enter(ctx, s, depth+1)
	case offOK:
		e.enter(ctx, offState, depth+1)
	case onOK:
		e.enter(ctx, s, depth+1)
	}
}

func assignAndPropagate(g *graph.Graph, s *state.State, edgeID int, v state.Value) error {
	if err := s.Assign(edgeID, v); err != nil {
		return err
	}

	return propagate.AfterAssign(g, s, edgeID)
}

// shouldFork reports whether the Off child should be dispatched to the task
// pool rather than explored inline by the caller.
func (e *engine) shouldFork(depth int, s *state.State) bool {
	return depth < e.parallelDepth && s.UnknownEdges > forkSizeThreshold
}

// isDefinitelyUnsolvable is a cheap structural guard beyond what assign
// already enforces locally: it scans every point and clue cell for a
// residue left by propagation that makes the branch unsolvable regardless
// of how remaining Unknown edges are decided.
func isDefinitelyUnsolvable(g *graph.Graph, s *state.State) bool {
	for p := 0; p < g.NumPoints(); p++ {
		on, unk := s.PointOnDegree[p], s.PointUnknownDegree[p]
		if on == 1 && unk == 0 {
			return true
		}
	}
	for c := 0; c < g.NumCells(); c++ {
		clue := g.CellClue[c]
		if clue < 0 {
			continue
		}
		k := int16(clue)
		if s.CellOnCount[c] > k || s.CellOnCount[c]+s.CellUnknownCount[c] < k {
			return true
		}
	}

	return false
}

// acceptIfValid runs the validator on a fully-decided branch and, on
// success, delivers the solution to the sink subject to canonical-form
// filtering, the solution cap, and first-solution cancellation.
func (e *engine) acceptIfValid(s *state.State) {
	cycle, err := validate.Check(e.g, s)
	if err != nil {
		return
	}
	if e.cfg.CanonicalOnly && !isCanonical(e.g, s.Edge) {
		return
	}

	sol := Solution{
		ID:    uuid.New(),
		Cycle: cycle,
		Edges: append([]state.Value(nil), s.Edge...),
	}

	// The sink's lock (here, the engine's own mutex) is held for exactly
	// one append plus the cancellation check that follows it — never
	// across a fork or a propagation step.
	e.mu.Lock()
	if e.cancelled.Load() || (e.cfg.MaxSolutions > 0 && e.count >= e.cfg.MaxSolutions) {
		e.mu.Unlock()

		return
	}
	e.count++
	sol.Seq = e.count
	e.sink.Offer(sol)
	stopNow := !e.cfg.FindAll
	capNow := e.cfg.MaxSolutions > 0 && e.count >= e.cfg.MaxSolutions
	e.mu.Unlock()

	if stopNow {
		e.cancelled.Store(true)
	}
	if capNow {
		e.capped.Store(true)
		e.cancelled.Store(true)
	}
}

func (e *engine) outcome() Outcome {
	e.mu.Lock()
	count := e.count
	e.mu.Unlock()

	kind := Completed
	switch {
	case !e.cfg.FindAll && count > 0:
		kind = StoppedByFirst
	case e.capped.Load():
		kind = Capped
	case e.timedOut.Load():
		kind = Timeout
	}

	return Outcome{Kind: kind, SolutionsFound: count, Explored: atomic.LoadInt64(&e.explored)}
}
