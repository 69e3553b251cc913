// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, 8, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAlignedRanges(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var mu sync.Mutex
	var starts []int
	pool.ParallelFor(100, 8, func(start, end int) {
		mu.Lock()
		starts = append(starts, start)
		mu.Unlock()
	})

	if len(starts) != 4 {
		t.Fatalf("got %d ranges, want 4", len(starts))
	}
	for _, s := range starts {
		if s%8 != 0 {
			t.Errorf("range start %d not aligned to 8", s)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, 1, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, 4, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestParallelForContextCanceled(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	err := pool.ParallelForContext(ctx, 64, 4, func(start, end int) {
		called.Store(true)
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if called.Load() {
		t.Error("fn should not run after cancellation")
	}
}

func TestParallelForContextCanceledAfterLastRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := 64
	var done atomic.Int64
	err := pool.ParallelForContext(ctx, n, 4, func(start, end int) {
		if done.Add(int64(end-start)) == int64(n) {
			cancel()
		}
	})
	if err != nil {
		t.Errorf("err = %v, want nil once every range ran", err)
	}
	if got := done.Load(); got != int64(n) {
		t.Errorf("covered %d elements, want %d", got, n)
	}
}

func TestCloseDuringParallelFor(t *testing.T) {
	pool := New(2)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				var count atomic.Int64
				pool.ParallelFor(32, 1, func(start, end int) {
					count.Add(int64(end - start))
				})
				if count.Load() != 32 {
					t.Errorf("covered %d elements, want 32", count.Load())
					return
				}
			}
		}()
	}
	pool.Close()
	wg.Wait()
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, 4, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	data := make([]float32, 1<<16)
	b.ResetTimer()
	for range b.N {
		pool.ParallelFor(len(data), 16, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}
