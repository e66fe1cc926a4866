// Package validate implements the Validator component: the final-state
// checker confirming a fully-decided state.State encodes one valid
// Slitherlink loop, and the cycle extractor that recovers its point sequence.
//
// Checks run in order, failing fast on the first violation: clue exactness,
// point degree closure (every point has On-degree 0 or 2), non-emptiness (at
// least one On edge), and single-cycle connectivity (the On edges form
// exactly one simple cycle, not a union of disjoint cycles).
//
// Precondition: every edge in s is decided (no state.Unknown remains). Check
// does not itself verify this; calling it on a partially-decided State yields
// unspecified results.
package validate
