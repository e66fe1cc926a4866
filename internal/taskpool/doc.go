// Package taskpool provides a bounded fork/join pool for the search engine's
// depth-gated branch dispatch.
//
// Go submits a function for concurrent execution when a semaphore slot is
// free; when the pool is saturated it runs the function inline on the
// calling goroutine instead of blocking, so a caller never stalls waiting
// for capacity it granted to someone else. Wait blocks until every
// dispatched function, inline or spawned, has returned.
//
// Unlike a general-purpose worker pool, taskpool has no dynamic scaling, no
// per-task statistics, and no deadlock detector: a recursive fork/join
// search already knows its own depth and subtree size, so none of that
// machinery earns its keep here.
package taskpool
