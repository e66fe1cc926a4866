package taskpool

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of concurrently executing fork/join branches.
// The zero value is not usable; construct with New.
type Pool struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// New returns a Pool that runs at most workers functions concurrently. A
// non-positive workers is treated as 1.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}

	return &Pool{sem: semaphore.NewWeighted(int64(workers))}
}

// Go runs fn, either on a freshly spawned goroutine if a slot is immediately
// available or, when the pool is saturated, inline on the calling goroutine.
// Go never blocks waiting for a slot.
func (p *Pool) Go(fn func()) {
	if p.sem.TryAcquire(1) {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			defer p.sem.Release(1)
			fn()
		}()

		return
	}

	fn()
}

// Wait blocks until every function dispatched via Go, spawned or inline,
// has returned.
func (p *Pool) Wait() {
	p.wg.Wait()
}
