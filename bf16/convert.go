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

import "math"

// ToFloat32 converts a BF16 to float32.
// The lower 16 bits are cleared and the word is reinterpreted as is.
func ToFloat32(b BF16) float32 {
	return math.Float32frombits(b.Bits())
}

// FromFloat32 converts a float32 to BF16, rounding to nearest.
//
// Zero, infinity and NaN keep their upper 16 bits. A NaN whose payload
// sits entirely in the dropped bits gets the quiet bit so it does not
// turn into an infinity.
//
// For everything else the rounding is done by float32 addition: half a
// BF16 ulp (the value's own power of two divided by 256) is added to f
// and the sum is truncated. Ties round away from zero.
func FromFloat32(f float32) BF16 {
	bits := math.Float32bits(f)
	exp := bits & expMask
	man := bits & 0x007FFFFF

	if exp == 0 && man == 0 {
		return BF16(bits & valueMask)
	}
	if exp == expMask {
		if man != 0 && man&mantissaMask == 0 {
			return BF16((bits & valueMask) | 0x00400000)
		}
		return BF16(bits & valueMask)
	}

	// r has the sign and exponent of f and an empty mantissa.
	r := math.Float32frombits(bits & 0xFF800000)
	r /= 0x100
	y := f + r

	return BF16(math.Float32bits(y) & valueMask)
}

// Float32 converts this BF16 to float32.
func (b BF16) Float32() float32 {
	return ToFloat32(b)
}

// Float64 converts this BF16 to float64.
func (b BF16) Float64() float64 {
	return float64(ToFloat32(b))
}

// FromFloat64 creates a BF16 from a float64 value.
// The value is narrowed to float32 first.
func FromFloat64(f float64) BF16 {
	return FromFloat32(float32(f))
}

// FromInt32 converts an int32 to BF16.
//
// Bits below the 7-bit mantissa are dropped, so large magnitudes are
// floored: -257 and -256 both become -256.
func FromInt32(x int32) BF16 {
	if x == 0 {
		return Zero
	}

	var s uint32
	m := uint32(x)
	if x < 0 {
		s = 1
		m = uint32(-int64(x))
	}

	e := int32(MantissaBits)
	for m < implicitBit {
		e--
		m <<= 1
	}
	for m >= carryBit {
		e++
		m >>= 1
	}

	return Encode(Triple{Sign: s, Exp: e, Mant: int32(m)})
}

// ToInt32 converts a BF16 to int32, truncating toward zero.
//
// Magnitudes of 2^31 and above, infinities and NaN saturate to
// 0x7FFFFFFF before the sign is applied, so negative overflow gives
// -0x7FFFFFFF.
func ToInt32(b BF16) int32 {
	if b.IsZero() {
		return 0
	}

	t := Decode(b)
	shift := t.Exp - MantissaBits
	r := t.Mant
	switch {
	case shift < 0:
		r >>= uint(-shift)
	case shift >= 24:
		r = math.MaxInt32
	case shift > 0:
		r <<= uint(shift)
	}

	if t.Sign != 0 {
		r = -r
	}
	return r
}

// Int32 converts this BF16 to int32. See ToInt32.
func (b BF16) Int32() int32 {
	return ToInt32(b)
}

// FromFloat32s converts src into dst and returns the number converted,
// which is the shorter of the two lengths.
func FromFloat32s(dst []BF16, src []float32) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = FromFloat32(src[i])
	}
	return n
}

// ToFloat32s converts src into dst and returns the number converted,
// which is the shorter of the two lengths.
func ToFloat32s(dst []float32, src []BF16) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = ToFloat32(src[i])
	}
	return n
}
