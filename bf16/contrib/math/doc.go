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

// Package math provides transcendental functions over emulated bfloat16.
// This package corresponds to Highway's hwy/contrib/math directory, with
// every operation built from bf16.Add and bf16.Mul instead of SIMD lanes.
//
// # Logarithm
//
//	y := math.Log(bf16.FromFloat32(0.1))   // bf16 in, bf16 out
//	f := math.Log32(0.1)                    // same polynomial on float32
//
// Both reduce x = 2^e * m with m in [1, 2), evaluate a cubic Remez fit of
// ln(m), and add e*ln(2). Log32 keeps full-precision coefficients and is
// the reference used to measure Log.
//
// # Slice Functions
//
//   - BaseLog(src, dst []bf16.BF16)
//   - BaseLog32(src, dst []float32)
package math
