// Package propagate implements the Propagator component: unit-propagation of
// the five local deduction rules (R1 cell-cap, R2 cell-floor, R3 point-cap,
// R4 point-floor, R5 isolated-point) to fixpoint or contradiction.
//
// Propagation uses a FIFO work queue per site kind (cells, points) paired
// with a dense membership flag to avoid duplicate entries — cache-friendly
// and duplicate-free, in place of a set-based queue. Run drains both queues,
// alternating until neither can produce further work; each successful forced
// assignment re-enqueues the sites it touches, so the loop terminates only at
// a true fixpoint or the first contradiction.
//
// The five rules are each locally complete over the neighborhood they
// examine; together they are not required to be globally complete. Residual
// branching after Run returns Ok is expected and is the search engine's
// responsibility.
package propagate
