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

// Add returns a + b.
func Add(a, b BF16) BF16 {
	return addSub(a, b, false)
}

// Sub returns a - b.
func Sub(a, b BF16) BF16 {
	return addSub(a, b, true)
}

// addSub adds or subtracts two BF16 values using only integer operations.
//
// Algorithm:
//  1. Decode both operands into 8-bit significands
//  2. Shift the significand with the smaller exponent right by the difference
//  3. Apply the signs and add, so |m| <= 0x1FE
//  4. Fold a carry into the exponent, or shift left after cancellation
//  5. Re-encode
//
// The signs must be applied after the alignment shift. Shifting a
// negated significand floors toward -Inf instead of toward zero and
// leaves the result one ulp off.
func addSub(a, b BF16, sub bool) BF16 {
	ta, tb := Decode(a), Decode(b)
	ma, mb := significand(a, ta), significand(b, tb)
	ea, eb := ta.Exp, tb.Exp
	if ma == 0 {
		ea = zeroExp
	}
	if mb == 0 {
		eb = zeroExp
	}

	var e int32
	if ea >= eb {
		e = ea
		mb >>= uint(ea - eb)
	} else {
		e = eb
		ma >>= uint(eb - ea)
	}

	if ta.Sign != 0 {
		ma = -ma
	}
	if tb.Sign != 0 {
		mb = -mb
	}
	if sub {
		mb = -mb
	}
	m := ma + mb

	var s uint32
	if m < 0 {
		m = -m
		s = 1
	}

	if m&carryBit != 0 {
		m >>= 1
		e++
	}

	if m == 0 {
		return Zero
	}
	for m < implicitBit {
		e--
		m <<= 1
	}

	return Encode(Triple{Sign: s, Exp: e, Mant: m})
}

// Mul returns a * b.
//
// Both significands carry 7 fraction bits, so their product is shifted
// right by 7. For normal operands the product lies in [0x4000, 0xFE01],
// which leaves at most one carry to fold into the exponent.
func Mul(a, b BF16) BF16 {
	ta, tb := Decode(a), Decode(b)
	ma, mb := significand(a, ta), significand(b, tb)

	s := ta.Sign ^ tb.Sign
	e := ta.Exp + tb.Exp
	m := (ma * mb) >> MantissaBits

	if m&carryBit != 0 {
		m >>= 1
		e++
	}

	if m == 0 {
		e = zeroExp
	}

	return Encode(Triple{Sign: s, Exp: e, Mant: m})
}
