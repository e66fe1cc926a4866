package validate

import "errors"

// Sentinel error kinds returned (wrapped with offending-site context) by Check.
var (
	// ErrClueViolation indicates a clue cell's On-edge count does not equal
	// its clue.
	ErrClueViolation = errors.New("validate: clue violation")
	// ErrPointDegreeViolation indicates a point's On-degree is neither 0 nor 2.
	ErrPointDegreeViolation = errors.New("validate: point degree violation")
	// ErrEmptyLoop indicates no edge is On.
	ErrEmptyLoop = errors.New("validate: empty loop")
	// ErrMultipleCycles indicates the On edges form more than one disjoint cycle.
	ErrMultipleCycles = errors.New("validate: multiple disjoint cycles")
	// ErrDanglingEndpoint indicates the cycle walk reached a point without
	// exactly two On-neighbors, which should be impossible once degree
	// closure has already been checked; surfaced defensively.
	ErrDanglingEndpoint = errors.New("validate: dangling endpoint during cycle walk")
)
