package math

import "github.com/ajroetker/go-softbf16/bf16"

// =============================================================================
// Constants for Log
// =============================================================================

// Cubic minimax (Remez) fit of ln(m) on [1, 2), rounded to bf16.
const (
	logC0_bf16  bf16.BF16 = 0xBFBF0000 // -1.49
	logC1_bf16  bf16.BF16 = 0x40070000 // 2.11
	logC2_bf16  bf16.BF16 = 0xBF3B0000 // -0.73
	logC3_bf16  bf16.BF16 = 0x3DE10000 // 0.109
	logLn2_bf16 bf16.BF16 = 0x3F310000 // 0.69
)

// Same fit at float32 precision.
const (
	logC0_f32  float32 = -1.49278
	logC1_f32  float32 = 2.11263
	logC2_f32  float32 = -0.729104
	logC3_f32  float32 = 0.10969
	logLn2_f32 float32 = 0.6931471806
)

// Bit fields used for range reduction.
const (
	logSignMask     uint32 = 0x80000000
	logExpMask      uint32 = 0x7F800000
	logMantMask32   uint32 = 0x007FFFFF
	logMantMaskBF16 uint32 = 0x007F0000
	logOneBits      uint32 = 0x3F800000
	logNegInfBits   uint32 = 0xFF800000
	logExpBias             = 127
)
