// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting bulk
// lane-wise arithmetic across goroutines. A Pool is created once and reused
// across many calls, so large slice kernels do not pay goroutine spawn cost
// per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(dst), hwy.MaxLanes[float32](), func(start, end int) {
//	    arith.Unary(dst[start:end], src[start:end], arith.Abs[float32])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu guards closed and keeps Close from closing workC while
	// ParallelFor is still sending to it.
	mu     sync.RWMutex
	closed bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a worker pool with numWorkers goroutines.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. It may run
// concurrently with ParallelFor but must not be called from fn.
// Calling Close multiple times is safe; later ParallelFor calls run inline.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// chunks splits [0, n) into at most p.numWorkers contiguous ranges whose
// boundaries are multiples of grain, so only the final range carries a
// partial vector.
func (p *Pool) chunks(n, grain int) [][2]int {
	if grain <= 0 {
		grain = 1
	}
	groups := (n + grain - 1) / grain
	workers := min(p.numWorkers, groups)
	if workers <= 1 {
		return [][2]int{{0, n}}
	}

	perWorker := (groups + workers - 1) / workers * grain
	out := make([][2]int, 0, workers)
	for start := 0; start < n; start += perWorker {
		out = append(out, [2]int{start, min(start+perWorker, n)})
	}
	return out
}

// ParallelFor calls fn over contiguous sub-ranges covering [0, n) and
// blocks until all of them complete. Range boundaries are aligned to grain
// (typically hwy.MaxLanes of the element type).
func (p *Pool) ParallelFor(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	ranges := p.chunks(n, grain)
	if len(ranges) == 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		p.workC <- workItem{
			fn:      func() { fn(r[0], r[1]) },
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelForContext is ParallelFor with cancellation. Ranges that have not
// started when ctx is done are skipped and ctx.Err() is returned. If every
// range ran, the result is complete and the error is nil.
func (p *Pool) ParallelForContext(ctx context.Context, n, grain int, fn func(start, end int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var skipped atomic.Bool
	p.ParallelFor(n, grain, func(start, end int) {
		if ctx.Err() != nil {
			skipped.Store(true)
			return
		}
		fn(start, end)
	})
	if skipped.Load() {
		return ctx.Err()
	}
	return nil
}
