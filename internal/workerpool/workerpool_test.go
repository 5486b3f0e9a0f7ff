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

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(3)
	defer pool.Close()
	if pool.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", pool.Workers())
	}

	def := New(0)
	defer def.Close()
	if def.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() = %d, want %d", def.Workers(), runtime.GOMAXPROCS(0))
	}
}

// indices returns every index of the batch, so a correct Collect yields
// 0..n-1 in order.
func indices(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}

func checkSequence(t *testing.T, got []int, n int) {
	t.Helper()
	if len(got) != n {
		t.Fatalf("len = %d, want %d", len(got), n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("result[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestCollectOrder(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	tests := []struct {
		name     string
		n, batch int
	}{
		{"Empty", 0, 8},
		{"Negative", -5, 8},
		{"Single", 1, 8},
		{"OneBatch", 8, 8},
		{"Ragged", 1000, 7},
		{"BatchZero", 50, 0},
		{"Patterns", 1 << 16, 1024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collect(pool, tt.n, tt.batch, indices)
			checkSequence(t, got, max(tt.n, 0))
		})
	}
}

func TestCollectBatchBounds(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var calls atomic.Int32
	Collect(pool, 100, 30, func(lo, hi int) []int {
		calls.Add(1)
		if lo%30 != 0 || hi-lo > 30 || hi > 100 {
			t.Errorf("unexpected batch [%d, %d)", lo, hi)
		}
		return nil
	})
	if calls.Load() != 4 {
		t.Errorf("fn called %d times, want 4", calls.Load())
	}
}

func TestCollectSparse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// Most batches return nothing; the survivors keep their order.
	got := Collect(pool, 10000, 64, func(lo, hi int) []int {
		var out []int
		for i := lo; i < hi; i++ {
			if i%997 == 0 {
				out = append(out, i)
			}
		}
		return out
	})
	want := []int{0, 997, 1994, 2991, 3988, 4985, 5982, 6979, 7976, 8973, 9970}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestClosedRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	got := Collect(pool, 100, 10, indices)
	checkSequence(t, got, 100)
}

func TestReuse(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	for range 50 {
		checkSequence(t, Collect(pool, 1000, 64, indices), 1000)
	}
}

func BenchmarkCollect(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	for i := 0; i < b.N; i++ {
		Collect(pool, 1<<16, 1024, func(lo, hi int) []int { return nil })
	}
}
