package math

import (
	stdmath "math"

	"github.com/ajroetker/go-softbf16/bf16"
)

// Log computes an approximation of ln(x) using only bf16 arithmetic.
//
// Algorithm:
//  1. Extract the unbiased exponent e from the masked exponent field
//  2. Zero returns the -Inf pattern
//  3. Force the exponent field to the bias so m = 1.mantissa lies in [1, 2)
//  4. Evaluate the cubic c0 + m*(c1 + m*(c2 + m*c3)) with bf16.Add/bf16.Mul
//  5. Add ln2 * e, with e converted by bf16.FromInt32
//
// Only positive normal inputs are meaningful. The sign bit is never read,
// so a negative input yields the approximation for its magnitude.
func Log(x bf16.BF16) bf16.BF16 {
	bits := x.Bits()
	e := bf16.FromInt32(int32((bits&logExpMask)>>23) - logExpBias)

	if bits == 0 {
		return bf16.BF16(logNegInfBits)
	}

	m := bf16.FromBits(logOneBits | (bits & logMantMaskBF16))

	t := Poly3(m, logC0_bf16, logC1_bf16, logC2_bf16, logC3_bf16)
	return bf16.Add(t, bf16.Mul(logLn2_bf16, e))
}

// Log32 computes the same approximation as Log on native float32.
// It is the higher-precision reference for Log.
//
// The sign is discarded before range reduction. Zero returns -Inf.
func Log32(x float32) float32 {
	bits := stdmath.Float32bits(x)
	if bits == 0 {
		return stdmath.Float32frombits(logNegInfBits)
	}

	bits &^= logSignMask
	e := int32(bits>>23) - logExpBias
	m := stdmath.Float32frombits(logOneBits | (bits & logMantMask32))

	return logC0_f32 + (logC1_f32+(logC2_f32+logC3_f32*m)*m)*m + logLn2_f32*float32(e)
}

// BaseLog computes Log for each element of src into dst.
// Only the overlapping prefix of the two slices is processed.
func BaseLog(src, dst []bf16.BF16) {
	size := min(len(src), len(dst))
	for i := 0; i < size; i++ {
		dst[i] = Log(src[i])
	}
}

// BaseLog32 computes Log32 for each element of src into dst.
// Only the overlapping prefix of the two slices is processed.
func BaseLog32(src, dst []float32) {
	size := min(len(src), len(dst))
	for i := 0; i < size; i++ {
		dst[i] = Log32(src[i])
	}
}
