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

package bf16

import "testing"

func TestAddSub(t *testing.T) {
	tests := []struct {
		name string
		a, b BF16
		sub  bool
		want BF16
	}{
		{"SameExpCarry", 0x3F9A0000, 0x3FB30000, false, 0x40260000},
		{"SmallerA", 0x3F9A0000, 0x40140000, false, 0x40610000},
		{"LargerACarry", 0x40410000, 0x3FFF0000, false, 0x40A00000},
		{"NegativeResultExpDrops", 0xC0410000, 0x3FFF0000, false, 0xBF840000},
		{"EqualSubtract", 0x40000000, 0x40000000, true, Zero},
		{"SubPositive", 0x40450000, 0x3F7F0000, true, 0x40060000},
		{"SubNegativeCarry", 0xBFC00000, 0x40400000, true, 0xC0900000},
		{"OppositeSignsCancel", 0x40490000, 0xC0490000, false, Zero},
		{"ZeroPlusX", Zero, 0x40490000, false, 0x40490000},
		{"XPlusZero", 0xC0490000, Zero, false, 0xC0490000},
		{"ZeroPlusZero", Zero, Zero, false, Zero},
		{"ZeroMinusX", Zero, 0x40490000, true, 0xC0490000},
		{"DirtyLowBits", 0x3F9AFFFF, 0x3FB31234, false, 0x40260000},
		{"ShiftedOut", 0x4B000000, One, false, 0x4B000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got BF16
			if tt.sub {
				got = Sub(tt.a, tt.b)
			} else {
				got = Add(tt.a, tt.b)
			}
			if got != tt.want {
				t.Errorf("(0x%08X, 0x%08X, sub=%v): got 0x%08X (%s), want 0x%08X (%s)",
					uint32(tt.a), uint32(tt.b), tt.sub, uint32(got), got.BinaryString(), uint32(tt.want), tt.want.BinaryString())
			}
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b BF16
		want BF16
	}{
		{"OneTimesOne", One, One, One},
		{"HalfTimesFour", 0x3F000000, 0x40800000, 0x40000000},
		{"NegativeCarry", 0xBF400000, 0x40B00000, 0xC0840000},
		{"NegTimesNeg", NegOne, 0xC0400000, 0x40400000},
		{"ZeroOperand", Zero, 0x40490000, Zero},
		{"NegativeZeroProduct", Zero, 0xC0490000, NegZero},
		{"MaxMantissa", 0x3FFF0000, 0x3FFF0000, 0x407E0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mul(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Mul(0x%08X, 0x%08X): got 0x%08X (%s), want 0x%08X (%s)",
					uint32(tt.a), uint32(tt.b), uint32(got), got.BinaryString(), uint32(tt.want), tt.want.BinaryString())
			}
		})
	}
}

// normals returns every finite, non-zero BF16 whose pattern is a multiple of step.
func normals(step int) []BF16 {
	var out []BF16
	for h := 0; h <= 0xFFFF; h += step {
		b := FromHalf(uint16(h))
		exp := (h >> 7) & 0xFF
		if exp == 0 || exp == 0xFF {
			continue
		}
		out = append(out, b)
	}
	return out
}

func TestSubSelfIsZero(t *testing.T) {
	for _, a := range normals(1) {
		if got := Sub(a, a); got.Bits() != 0 {
			t.Fatalf("Sub(0x%08X, itself) = 0x%08X, want 0", uint32(a), uint32(got))
		}
	}
}

func TestCommutative(t *testing.T) {
	xs := normals(97)
	ys := normals(89)
	for _, a := range xs {
		for _, b := range ys {
			if ab, ba := Add(a, b), Add(b, a); ab != ba {
				t.Fatalf("Add(0x%08X, 0x%08X) = 0x%08X but reversed = 0x%08X", uint32(a), uint32(b), uint32(ab), uint32(ba))
			}
			if ab, ba := Mul(a, b), Mul(b, a); ab != ba {
				t.Fatalf("Mul(0x%08X, 0x%08X) = 0x%08X but reversed = 0x%08X", uint32(a), uint32(b), uint32(ab), uint32(ba))
			}
		}
	}
}

func TestMulSign(t *testing.T) {
	xs := normals(101)
	for _, a := range xs {
		for _, b := range xs {
			r := Mul(a, b)
			if r.IsZero() {
				continue
			}
			if want := a.IsNegative() != b.IsNegative(); r.IsNegative() != want {
				t.Fatalf("Mul(0x%08X, 0x%08X) = 0x%08X, sign should be %v", uint32(a), uint32(b), uint32(r), want)
			}
		}
	}
}

// TestSmallIntegersExact checks that sums and products of small integers
// lose nothing to the alignment and carry shifts.
func TestSmallIntegersExact(t *testing.T) {
	for i := int32(-40); i <= 40; i++ {
		for j := int32(-40); j <= 40; j++ {
			got := Add(FromInt32(i), FromInt32(j)).Int32()
			if got != i+j {
				t.Fatalf("Add(%d, %d) = %d", i, j, got)
			}
			got = Mul(FromInt32(i), FromInt32(j)).Int32()
			if i*j <= 255 && i*j >= -255 && got != i*j {
				t.Fatalf("Mul(%d, %d) = %d", i, j, got)
			}
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	x, y := BF16(0x3F9A0000), BF16(0xC0140000)
	for i := 0; i < b.N; i++ {
		x = Add(x, y)
	}
	_ = x
}

func BenchmarkMul(b *testing.B) {
	x, y := BF16(0x3F9A0000), BF16(0x3F810000)
	for i := 0; i < b.N; i++ {
		x = Mul(x, y)
	}
	_ = x
}
