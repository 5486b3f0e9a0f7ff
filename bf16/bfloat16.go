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

// BF16 is a bfloat16 value held in the upper half of a 32-bit word.
//
// Format of the upper 16 bits: Sign (1 bit) | Exponent (8 bits) | Mantissa (7 bits)
//
//	S | EEEEEEEE | MMMMMMM | (16 bits ignored)
//
// The lower 16 bits are zero in canonical form, but producers may leave
// garbage there, so every reader masks them off. Because the upper half
// is laid out exactly like a float32, a BF16 can be reinterpreted as a
// float32 once the lower half is cleared.
//
// Properties:
//   - Exponent bits: 8 (bias: 127)
//   - Mantissa bits: 7 (plus an implicit leading 1)
//   - Exponent field 0 with mantissa 0 is signed zero
type BF16 uint32

// BF16 constants for special values.
const (
	Zero      BF16 = 0x00000000 // Positive zero
	NegZero   BF16 = 0x80000000 // Negative zero
	One       BF16 = 0x3F800000 // 1.0
	NegOne    BF16 = 0xBF800000 // -1.0
	MaxValue  BF16 = 0x7F7F0000 // ~3.39e38 (max finite value)
	MinNormal BF16 = 0x00800000 // ~1.18e-38 (smallest normal)
	Inf       BF16 = 0x7F800000 // Positive infinity
	NegInf    BF16 = 0xFF800000 // Negative infinity
	NaN       BF16 = 0x7FC00000 // Quiet NaN (canonical)
)

// Field layout of the 32-bit container.
const (
	ExpBias      = 127
	MantissaBits = 7

	signMask      uint32 = 0x80000000
	expMask       uint32 = 0x7F800000
	mantissaMask  uint32 = 0x007F0000
	magMask       uint32 = 0x7FFF0000
	valueMask     uint32 = 0xFFFF0000
	expShift             = 23
	mantissaShift        = 16

	implicitBit = 0x80
	carryBit    = 0x100

	// zeroExp is the unbiased exponent of the canonical zero.
	zeroExp = -ExpBias
)

// FromBits returns the BF16 stored in the raw 32-bit word w.
// The lower 16 bits are kept as-is; readers mask them.
func FromBits(w uint32) BF16 {
	return BF16(w)
}

// Bits returns the canonical 32-bit pattern with the lower half cleared.
func (b BF16) Bits() uint32 {
	return uint32(b) & valueMask
}

// FromHalf widens the 16-bit storage form of a bfloat16 to a BF16.
func FromHalf(h uint16) BF16 {
	return BF16(uint32(h) << 16)
}

// Half returns the 16-bit storage form (the upper half of the word).
func (b BF16) Half() uint16 {
	return uint16(uint32(b) >> 16)
}

// IsZero returns true if b is positive or negative zero.
func (b BF16) IsZero() bool {
	return uint32(b)&magMask == 0
}

// IsNegative returns true if the sign bit is set.
func (b BF16) IsNegative() bool {
	return uint32(b)&signMask != 0
}

// IsInf returns true if b is positive or negative infinity.
func (b BF16) IsInf() bool {
	return uint32(b)&expMask == expMask && uint32(b)&mantissaMask == 0
}

// IsNaN returns true if b is a NaN value.
func (b BF16) IsNaN() bool {
	return uint32(b)&expMask == expMask && uint32(b)&mantissaMask != 0
}

// IsDenormal returns true if b is a denormalized number.
// The arithmetic treats such values as if the implicit bit were set.
func (b BF16) IsDenormal() bool {
	return uint32(b)&expMask == 0 && uint32(b)&mantissaMask != 0
}

// Neg flips the sign bit.
func (b BF16) Neg() BF16 {
	return BF16(b.Bits() ^ signMask)
}

// Abs clears the sign bit.
func (b BF16) Abs() BF16 {
	return BF16(b.Bits() &^ signMask)
}
