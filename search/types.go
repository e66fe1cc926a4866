package search

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/slither/state"
	"github.com/katalvlaran/slither/validate"
)

// SolverConfig enumerates every recognized solver option. The zero value is
// not directly usable as a worker count or parallel fraction; callers
// should start from DefaultConfig.
type SolverConfig struct {
	FindAll          bool          // false: stop after the first solution
	MaxSolutions     int           // hard cap in enumerate mode; 0 = unlimited
	WorkerCount      int           // absolute worker count; 0 = auto from hardware
	ParallelFraction float64       // fraction of hardware parallelism, (0,1]; default 1.0
	ParallelDepth    int           // override fork-depth threshold; 0 = auto from size/density
	CanonicalOnly    bool          // suppress horizontal-reflection duplicates in enumerate mode
	Timeout          time.Duration // wall-clock deadline; 0 = none
}

// DefaultConfig returns a SolverConfig with every option at its documented
// default: enumerate a single solution, auto-sized workers, full hardware
// parallelism, auto fork depth, no dedup, no timeout.
func DefaultConfig() SolverConfig {
	return SolverConfig{ParallelFraction: 1.0}
}

// Solution is one accepted loop: its closed cyclic sequence of lattice
// points, the full edge-assignment snapshot it was extracted from, a
// monotonic sequence number, and a generated UUID the sink/CLI can use to
// name or dedupe emitted solutions out-of-band.
type Solution struct {
	ID    uuid.UUID
	Seq   int
	Cycle []validate.Point
	Edges []state.Value
}

// SolutionSink receives accepted solutions. Offer may be called
// concurrently from multiple search branches; implementations must
// synchronize internally.
type SolutionSink interface {
	Offer(sol Solution)
}

// OutcomeKind classifies how a Solve call ended.
type OutcomeKind int

const (
	// Completed means the search exhausted the space (enumerate mode) or
	// found no solution at all.
	Completed OutcomeKind = iota
	// StoppedByFirst means a solution was found in non-find-all mode.
	StoppedByFirst
	// Capped means MaxSolutions was reached before exhaustion.
	Capped
	// Timeout means the configured wall-clock deadline elapsed first.
	Timeout
)

// String renders the outcome kind for logs and test failures.
func (k OutcomeKind) String() string {
	switch k {
	case Completed:
		return "Completed"
	case StoppedByFirst:
		return "StoppedByFirst"
	case Capped:
		return "Capped"
	case Timeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// Outcome reports how Solve ended and how much work it did.
type Outcome struct {
	Kind           OutcomeKind
	SolutionsFound int
	Explored       int64 // number of enter() invocations, for diagnostics
}
