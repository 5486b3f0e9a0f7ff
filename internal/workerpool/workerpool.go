// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool evaluates batches of an index range on a fixed set
// of goroutines and gathers what each batch returns.
//
// A Pool is created once and reused, so sweeping every bf16 bit pattern
// for several identities does not respawn goroutines:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	bad := workerpool.Collect(pool, 1<<16, 1024, func(lo, hi int) []uint16 { ... })
package workerpool

import (
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers fed from a job queue.
type Pool struct {
	workers int
	jobs    chan func()
	once    sync.Once
	closed  atomic.Bool
}

// New starts a pool with the given number of workers, or GOMAXPROCS
// workers if n <= 0.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{workers: n, jobs: make(chan func())}
	for range n {
		go func() {
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers. It is safe to call more than once. Collect on
// a closed pool evaluates every batch on the calling goroutine.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// Collect cuts [0, n) into batches of batch indices, calls fn once per
// batch on the pool and concatenates the returned slices in batch order.
// The result is therefore ordered as if the batches ran sequentially.
// Each batch writes only its own result slot.
func Collect[T any](p *Pool, n, batch int, fn func(lo, hi int) []T) []T {
	if n <= 0 {
		return nil
	}
	batch = max(batch, 1)
	parts := make([][]T, (n+batch-1)/batch)

	if len(parts) == 1 || p.closed.Load() {
		for i := range parts {
			lo := i * batch
			parts[i] = fn(lo, min(lo+batch, n))
		}
		return slices.Concat(parts...)
	}

	var wg sync.WaitGroup
	wg.Add(len(parts))
	for i := range parts {
		lo := i * batch
		hi := min(lo+batch, n)
		p.jobs <- func() {
			defer wg.Done()
			parts[i] = fn(lo, hi)
		}
	}
	wg.Wait()
	return slices.Concat(parts...)
}
