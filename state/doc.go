// Package state implements the State component: the mutable per-branch
// search state carrying tri-value edge assignments and the counters derived
// from them.
//
// State is exclusively owned by the task currently mutating it; parallel
// forks clone it (Clone is O(edges+points+cells) and aliases no mutable
// storage), never share it. All counters are redundant with Edge but
// maintained incrementally by Assign — correctness of every later decision
// depends on the invariant that the counters equal what a full re-scan of
// Edge would produce.
//
// Errors:
//
//	ErrContradiction: Assign was asked to set an edge to the value opposite
//	its already-decided value, or the assignment violates a local invariant
//	(I2 cell feasibility, I3 point degree bound). The enclosing State must be
//	discarded by the caller; it is not rolled back in place.
package state
