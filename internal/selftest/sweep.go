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

package selftest

import (
	"github.com/ajroetker/go-softbf16/bf16"
	"github.com/ajroetker/go-softbf16/internal/workerpool"
)

// Patterns is the number of distinct bf16 values.
const Patterns = 1 << 16

const sweepBatch = 1024

// Identity is a property checked for every bf16 pattern. Want returns the
// expected result for x; Got computes it through the emulation.
type Identity struct {
	Name string
	Got  func(x bf16.BF16) bf16.BF16
	Want func(x bf16.BF16) bf16.BF16
}

func same(x bf16.BF16) bf16.BF16 { return x }

// Identities returns the per-pattern properties the emulation guarantees.
func Identities() []Identity {
	return []Identity{
		{
			Name: "codec",
			Got:  func(x bf16.BF16) bf16.BF16 { return bf16.Encode(bf16.Decode(x)) },
			Want: same,
		},
		{
			Name: "fp32",
			Got:  func(x bf16.BF16) bf16.BF16 { return bf16.FromFloat32(x.Float32()) },
			Want: same,
		},
		{
			Name: "mul_one",
			Got:  func(x bf16.BF16) bf16.BF16 { return bf16.Mul(x, bf16.One) },
			Want: same,
		},
		{
			// A zero sum is always canonical, so -0 + 0 is +0.
			Name: "add_zero",
			Got:  func(x bf16.BF16) bf16.BF16 { return bf16.Add(x, bf16.Zero) },
			Want: func(x bf16.BF16) bf16.BF16 {
				if x.IsZero() {
					return bf16.Zero
				}
				return x
			},
		},
		{
			Name: "sub_self",
			Got:  func(x bf16.BF16) bf16.BF16 { return bf16.Sub(x, x) },
			Want: func(bf16.BF16) bf16.BF16 { return bf16.Zero },
		},
	}
}

// Mismatch is a pattern that broke an identity.
type Mismatch struct {
	Identity string
	In       uint32
	Got      uint32
	Want     uint32
}

// Sweep checks every identity against all bf16 patterns on pool and
// returns the mismatches ordered by identity, then by input.
func Sweep(pool *workerpool.Pool, ids []Identity) []Mismatch {
	// Index i covers identity i/Patterns and pattern i%Patterns. Patterns
	// is a multiple of sweepBatch, so no batch spans two identities.
	return workerpool.Collect(pool, len(ids)*Patterns, sweepBatch, func(lo, hi int) []Mismatch {
		id := ids[lo/Patterns]
		var bad []Mismatch
		for i := lo; i < hi; i++ {
			x := bf16.FromHalf(uint16(i % Patterns))
			got, want := id.Got(x), id.Want(x)
			if got.Bits() != want.Bits() {
				bad = append(bad, Mismatch{Identity: id.Name, In: x.Bits(), Got: got.Bits(), Want: want.Bits()})
			}
		}
		return bad
	})
}
