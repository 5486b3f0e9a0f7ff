package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-softbf16/bf16"
)

func TestLog_Exact(t *testing.T) {
	tests := []struct {
		name  string
		input bf16.BF16
		want  bf16.BF16
	}{
		{"One", bf16.One, 0x3C000000},    // 0.0078125
		{"Two", 0x40000000, 0x3F330000},  // 0.69921875
		{"Half", 0x3F000000, 0xBF2F0000}, // -0.68359375
		{"Zero", bf16.Zero, bf16.NegInf}, // -Inf pattern
		{"ZeroDirty", 0x0000ABCD, bf16.NegInf},
		// The sign bit is never read.
		{"NegOne", bf16.NegOne, 0x3C000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Log(tt.input)
			if got != tt.want {
				t.Errorf("Log(0x%08X): got 0x%08X (%v), want 0x%08X (%v)",
					uint32(tt.input), uint32(got), got, uint32(tt.want), tt.want)
			}
		})
	}
}

func TestLog_Values(t *testing.T) {
	tests := []struct {
		x   float32
		tol float64
	}{
		{0.1, 0.05},
		{0.25, 0.05},
		{0.75, 0.05},
		{1.5, 0.05},
		{3.0, 0.05},
		{10.0, 0.06},
		{100.0, 0.1},
	}

	for _, tt := range tests {
		x := bf16.FromFloat32(tt.x)
		got := Log(x).Float64()
		want := stdmath.Log(x.Float64())
		if stdmath.Abs(got-want) > tt.tol {
			t.Errorf("Log(%v) = %v, want %v (tol %v)", tt.x, got, want, tt.tol)
		}
	}
}

// TestLog_ErrorBound samples x = 0.05, 0.10, ..., 2.00 like the reference harness.
func TestLog_ErrorBound(t *testing.T) {
	const n = 40
	var sum, worst float64
	for i := 1; i <= n; i++ {
		x := bf16.FromFloat64(float64(i) * 2 / n)
		err := stdmath.Abs(Log(x).Float64() - stdmath.Log(x.Float64()))
		sum += err
		worst = max(worst, err)
	}

	if mean := sum / n; mean > 0.02 {
		t.Errorf("mean error %v exceeds 0.02", mean)
	}
	if worst > 0.05 {
		t.Errorf("max error %v exceeds 0.05", worst)
	}
}

func TestLog32(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float64
		tol  float64
	}{
		{"One", 1, 0, 0.001},
		{"Two", 2, stdmath.Ln2, 0.002},
		{"E", stdmath.E, 1, 0.005},
		{"Tenth", 0.1, stdmath.Log(0.1), 0.005},
		{"Large", 1e6, stdmath.Log(1e6), 0.005},
		{"Negative", -2, stdmath.Ln2, 0.002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float64(Log32(tt.x))
			if stdmath.Abs(got-tt.want) > tt.tol {
				t.Errorf("Log32(%v) = %v, want %v (tol %v)", tt.x, got, tt.want, tt.tol)
			}
		})
	}

	if got := Log32(0); !stdmath.IsInf(float64(got), -1) {
		t.Errorf("Log32(0) = %v, want -Inf", got)
	}
}

// TestLog32_ErrorBound checks the polynomial itself over a dense grid of [1/64, 64).
func TestLog32_ErrorBound(t *testing.T) {
	for x := 1.0 / 64; x < 64; x *= 1.01 {
		got := float64(Log32(float32(x)))
		want := stdmath.Log(float64(float32(x)))
		if stdmath.Abs(got-want) > 0.005 {
			t.Fatalf("Log32(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestBaseLog(t *testing.T) {
	src := []bf16.BF16{bf16.One, 0x40000000, 0x3F000000, bf16.Zero}
	dst := make([]bf16.BF16, 3)
	BaseLog(src, dst)
	for i := range dst {
		if want := Log(src[i]); dst[i] != want {
			t.Errorf("BaseLog[%d]: got 0x%08X, want 0x%08X", i, uint32(dst[i]), uint32(want))
		}
	}

	src32 := []float32{1, 2, 0.5}
	dst32 := make([]float32, 4)
	BaseLog32(src32, dst32)
	for i := range src32 {
		if want := Log32(src32[i]); dst32[i] != want {
			t.Errorf("BaseLog32[%d]: got %v, want %v", i, dst32[i], want)
		}
	}
	if dst32[3] != 0 {
		t.Errorf("BaseLog32 wrote past src: %v", dst32[3])
	}
}

func TestPoly3(t *testing.T) {
	// 1 + 2x + 0x^2 + 1x^3 at x = 2 is 13, exact in bf16.
	got := Poly3(0x40000000, bf16.One, 0x40000000, bf16.Zero, bf16.One)
	if got.Int32() != 13 {
		t.Errorf("Poly3 at 2: got %v, want 13", got)
	}

	// A constant polynomial returns c0.
	got = Poly3(0x40490000, 0x3FC00000, bf16.Zero, bf16.Zero, bf16.Zero)
	if got != 0x3FC00000 {
		t.Errorf("constant Poly3: got %v, want 1.5", got)
	}
}

func BenchmarkLog(b *testing.B) {
	x := bf16.FromFloat32(0.3)
	var r bf16.BF16
	for i := 0; i < b.N; i++ {
		r = Log(x)
	}
	_ = r
}

func BenchmarkLog32(b *testing.B) {
	var r float32
	for i := 0; i < b.N; i++ {
		r = Log32(0.3)
	}
	_ = r
}
