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

// Package selftest holds the literal bit-pattern fixtures for the bf16
// emulation and runs them the way an embedded target would: each suite
// returns 0 on success or the 1-based index of the first failing case.
package selftest

import (
	"math"

	"github.com/ajroetker/go-softbf16/bf16"
	bfmath "github.com/ajroetker/go-softbf16/bf16/contrib/math"
)

// Case is a single fixture. In holds the operand bit patterns; integer
// operands are stored as their two's complement pattern.
type Case struct {
	Op   string
	In   []uint32
	Want uint32
	eval func() uint32
}

// Eval computes the case and returns the result bit pattern. A Case not
// built by one of the suite constructors has no operation; its result is
// the complement of Want so it always fails.
func (c Case) Eval() uint32 {
	if c.eval == nil {
		return ^c.Want
	}
	return c.eval()
}

// Observer is called after each evaluated case. index is 1-based.
type Observer func(suite string, index int, c Case, got uint32)

// Suite is an ordered list of fixtures.
type Suite struct {
	Name  string
	Cases []Case
}

// Run evaluates the cases in order and returns 0 if all pass, or the
// 1-based index of the first failure. obs may be nil.
func (s Suite) Run(obs Observer) int {
	for i, c := range s.Cases {
		got := c.Eval()
		if obs != nil {
			obs(s.Name, i+1, c, got)
		}
		if got != c.Want {
			return i + 1
		}
	}
	return 0
}

func binary(op string, a, b, want uint32, f func(x, y bf16.BF16) bf16.BF16) Case {
	return Case{
		Op:   op,
		In:   []uint32{a, b},
		Want: want,
		eval: func() uint32 {
			return f(bf16.FromBits(a), bf16.FromBits(b)).Bits()
		},
	}
}

// AddSubSuite returns the addition and subtraction fixtures.
func AddSubSuite() Suite {
	return Suite{
		Name: "add_sub",
		Cases: []Case{
			// a > 0, b > 0, exp_a == exp_b, exponent carry
			binary("add", 0x3F9A0000, 0x3FB30000, 0x40260000, bf16.Add),
			// a > 0, b > 0, exp_a < exp_b, no carry
			binary("add", 0x3F9A0000, 0x40140000, 0x40610000, bf16.Add),
			// a > 0, b > 0, exp_a > exp_b, exponent carry
			binary("add", 0x40410000, 0x3FFF0000, 0x40A00000, bf16.Add),
			// a < 0, b > 0, a + b < 0, exponent decreases
			binary("add", 0xC0410000, 0x3FFF0000, 0xBF840000, bf16.Add),
			// a == b
			binary("sub", 0x40000000, 0x40000000, 0x00000000, bf16.Sub),
			// a > 0, b > 0, a - b > 0, no carry
			binary("sub", 0x40450000, 0x3F7F0000, 0x40060000, bf16.Sub),
			// a < 0, b > 0, exp_a < exp_b, exponent carry
			binary("sub", 0xBFC00000, 0x40400000, 0xC0900000, bf16.Sub),
		},
	}
}

// MulSuite returns the multiplication fixtures.
func MulSuite() Suite {
	return Suite{
		Name: "mul",
		Cases: []Case{
			binary("mul", 0x3F800000, 0x3F800000, 0x3F800000, bf16.Mul),
			// 0.5 * 4 = 2
			binary("mul", 0x3F000000, 0x40800000, 0x40000000, bf16.Mul),
			// a < 0, b > 0, mantissa carries
			binary("mul", 0xBF400000, 0x40B00000, 0xC0840000, bf16.Mul),
		},
	}
}

func fromFloat(in, want uint32) Case {
	return Case{
		Op:   "fp32->bf16",
		In:   []uint32{in},
		Want: want,
		eval: func() uint32 {
			return bf16.FromFloat32(math.Float32frombits(in)).Bits()
		},
	}
}

// FloatSuite returns the float32 conversion fixtures.
func FloatSuite() Suite {
	return Suite{
		Name: "fp32_bf16",
		Cases: []Case{
			fromFloat(0x40807FFF, 0x40800000), // round down
			fromFloat(0xC0808000, 0xC0810000), // round up
			{
				Op:   "bf16->fp32",
				In:   []uint32{0xC0FF0000},
				Want: 0xC0FF0000,
				eval: func() uint32 {
					return math.Float32bits(bf16.FromBits(0xC0FF0000).Float32())
				},
			},
		},
	}
}

func fromInt(in int32, want uint32) Case {
	return Case{
		Op:   "i32->bf16",
		In:   []uint32{uint32(in)},
		Want: want,
		eval: func() uint32 {
			return bf16.FromInt32(in).Bits()
		},
	}
}

func toInt(in uint32, want int32) Case {
	return Case{
		Op:   "bf16->i32",
		In:   []uint32{in},
		Want: uint32(want),
		eval: func() uint32 {
			return uint32(bf16.FromBits(in).Int32())
		},
	}
}

// IntSuite returns the int32 conversion fixtures.
func IntSuite() Suite {
	return Suite{
		Name: "i32_bf16",
		Cases: []Case{
			fromInt(0, 0x00000000),
			fromInt(1, 0x3F800000),
			fromInt(255, 0x437F0000),
			fromInt(-256, 0xC3800000),
			fromInt(-257, 0xC3800000), // floored onto -256
			toInt(0x00000000, 0),
			toInt(0x3F800000, 1),
			toInt(0x40100000, 2), // 2.25
			toInt(0x43810000, 258),
		},
	}
}

func logCase(in, want uint32) Case {
	return Case{
		Op:   "ln",
		In:   []uint32{in},
		Want: want,
		eval: func() uint32 {
			return bfmath.Log(bf16.FromBits(in)).Bits()
		},
	}
}

// LogSuite returns the logarithm fixtures. The expected patterns are the
// exact outputs of the truncating polynomial, not the rounded true value.
func LogSuite() Suite {
	return Suite{
		Name: "ln_bf16",
		Cases: []Case{
			logCase(0x3F800000, 0x3C000000), // ln(1) = 0, off by 2^-7
			logCase(0x40000000, 0x3F330000), // ln(2) = 0.693
			logCase(0x3F000000, 0xBF2F0000), // ln(0.5) = -0.693
			logCase(0x3DCD0000, 0xC0120000), // ln(0.1) = -2.302
			logCase(0x00000000, 0xFF800000), // ln(0) = -Inf
		},
	}
}

// Suites returns every suite in dependency order.
func Suites() []Suite {
	return []Suite{
		FloatSuite(),
		IntSuite(),
		AddSubSuite(),
		MulSuite(),
		LogSuite(),
	}
}

// Result is the return code of one suite.
type Result struct {
	Suite string
	Code  int
}

// Passed reports whether the suite returned 0.
func (r Result) Passed() bool {
	return r.Code == 0
}

// All runs every suite and collects the return codes.
func All(obs Observer) []Result {
	suites := Suites()
	results := make([]Result, 0, len(suites))
	for _, s := range suites {
		results = append(results, Result{Suite: s.Name, Code: s.Run(obs)})
	}
	return results
}

// Failed reports whether any result is non-zero.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed() {
			return true
		}
	}
	return false
}
