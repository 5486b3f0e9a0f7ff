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

// Triple is the decoded form of a BF16 used inside the arithmetic.
//
// Sign is 0 or 1. Exp is the unbiased exponent. Mant is the 8-bit
// significand with the implicit leading bit set (0x80 <= Mant <= 0xFF).
type Triple struct {
	Sign uint32
	Exp  int32
	Mant int32
}

// Decode splits b into sign, unbiased exponent and significand.
//
// The implicit bit is forced on even for the zero pattern, so callers
// must check IsZero before trusting Mant.
func Decode(b BF16) Triple {
	w := uint32(b)
	return Triple{
		Sign: w >> 31,
		Exp:  int32((w&expMask)>>expShift) - ExpBias,
		Mant: int32((w&mantissaMask)>>mantissaShift) | implicitBit,
	}
}

// Encode packs t back into a BF16 with the lower 16 bits cleared.
// The implicit bit of Mant is dropped. An exponent outside the biased
// range wraps modulo 256.
func Encode(t Triple) BF16 {
	s := (t.Sign & 1) << 31
	e := (uint32(t.Exp+ExpBias) & 0xFF) << expShift
	m := (uint32(t.Mant) & 0x7F) << mantissaShift
	return BF16(s | e | m)
}

// significand returns the significand of b for arithmetic: the decoded
// Mant, or 0 when b is zero.
func significand(b BF16, t Triple) int32 {
	if b.IsZero() {
		return 0
	}
	return t.Mant
}
