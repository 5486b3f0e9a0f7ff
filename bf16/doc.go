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

// Package bf16 emulates bfloat16 arithmetic with integer bit operations.
//
// A BF16 lives in the upper 16 bits of a 32-bit word. Every operation
// decodes its operands into a sign, an unbiased exponent and an 8-bit
// significand, combines them with shifts and integer adds, and packs
// the result back:
//
//	a := bf16.FromFloat32(1.5)
//	b := bf16.FromInt32(3)
//	c := bf16.Mul(bf16.Add(a, b), a) // (1.5 + 3) * 1.5
//	fmt.Println(c, c.BinaryString())
//
// # Conversions
//
//   - FromFloat32 rounds to nearest; ToFloat32 clears the lower half
//   - FromInt32 floors bits past the 7-bit mantissa
//   - ToInt32 truncates toward zero and saturates at 0x7FFFFFFF
//
// # Arithmetic
//
// Add, Sub and Mul truncate instead of rounding, have no denormals, and
// raise no flags. Exponents that leave the 8-bit range wrap. Equal
// values subtract to the canonical zero 0x00000000.
//
// All functions are pure and safe for concurrent use.
//
// The natural logarithm lives in the contrib/math subpackage.
package bf16
