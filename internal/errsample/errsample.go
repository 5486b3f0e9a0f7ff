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

// Package errsample measures the logarithm approximations against
// math.Log over an evenly spaced sample.
package errsample

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-softbf16/bf16"
	bfmath "github.com/ajroetker/go-softbf16/bf16/contrib/math"
)

// ErrInvalidConfig is returned when a Config cannot produce a sample.
var ErrInvalidConfig = errors.New("errsample: invalid config")

// Config describes the sample x_i = Lo + i*(Hi-Lo)/N for i = 1..N.
// Lo itself is excluded so the default range (0, 2] never hits ln(0).
type Config struct {
	Lo float64
	Hi float64
	N  int
}

// DefaultConfig is the 40-point sample over (0, 2].
func DefaultConfig() Config {
	return Config{Lo: 0, Hi: 2, N: 40}
}

// Validate checks that the range is ordered, non-negative and finite,
// and that N is positive. The smallest and largest samples must also
// quantize to finite non-zero bf16 values, otherwise ln has no finite
// reference and the error would be NaN or infinite.
func (c Config) Validate() error {
	switch {
	case c.N <= 0:
		return fmt.Errorf("%w: N must be positive, got %d", ErrInvalidConfig, c.N)
	case math.IsNaN(c.Lo) || math.IsNaN(c.Hi) || math.IsInf(c.Lo, 0) || math.IsInf(c.Hi, 0):
		return fmt.Errorf("%w: range must be finite, got (%v, %v]", ErrInvalidConfig, c.Lo, c.Hi)
	case c.Lo < 0:
		return fmt.Errorf("%w: Lo must be non-negative, got %v", ErrInvalidConfig, c.Lo)
	case c.Hi <= c.Lo:
		return fmt.Errorf("%w: Hi must exceed Lo, got (%v, %v]", ErrInvalidConfig, c.Lo, c.Hi)
	}

	x0 := c.Lo + (c.Hi-c.Lo)/float64(c.N)
	if bf16.FromFloat64(x0).IsZero() {
		return fmt.Errorf("%w: first sample %v quantizes to zero", ErrInvalidConfig, x0)
	}
	if last := bf16.FromFloat64(c.Hi); last.IsInf() || last.IsNaN() {
		return fmt.Errorf("%w: Hi %v overflows bf16", ErrInvalidConfig, c.Hi)
	}
	return nil
}

// Row is one sampled point.
type Row struct {
	X     bf16.BF16 // input, quantized to bf16
	True  float64   // math.Log of the quantized input
	Log   bf16.BF16 // bf16 approximation
	Log32 float32   // float32 approximation
	Err   float64   // |Log - True|
	Err32 float64   // |Log32 - True|
}

// Stats summarizes the absolute error of one approximation.
type Stats struct {
	Mean   float64
	Max    float64
	WorstX float64
}

// Report is the result of a sampling run.
type Report struct {
	Config Config
	BF16   Stats
	FP32   Stats
}

// Rows evaluates every sample point.
func Rows(cfg Config) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	step := (cfg.Hi - cfg.Lo) / float64(cfg.N)
	rows := make([]Row, 0, cfg.N)
	for i := 1; i <= cfg.N; i++ {
		x := bf16.FromFloat64(cfg.Lo + float64(i)*step)
		want := math.Log(x.Float64())
		ln := bfmath.Log(x)
		ln32 := bfmath.Log32(x.Float32())
		rows = append(rows, Row{
			X:     x,
			True:  want,
			Log:   ln,
			Log32: ln32,
			Err:   math.Abs(ln.Float64() - want),
			Err32: math.Abs(float64(ln32) - want),
		})
	}
	return rows, nil
}

// Run samples cfg and summarizes the errors of Log and Log32.
func Run(cfg Config) (Report, error) {
	rows, err := Rows(cfg)
	if err != nil {
		return Report{}, err
	}
	return Summarize(cfg, rows), nil
}

// Summarize computes the report for rows already produced by Rows.
func Summarize(cfg Config, rows []Row) Report {
	r := Report{Config: cfg}
	if len(rows) == 0 {
		return r
	}

	var sum, sum32 float64
	for _, row := range rows {
		x := row.X.Float64()
		sum += row.Err
		sum32 += row.Err32
		r.BF16.observe(row.Err, x)
		r.FP32.observe(row.Err32, x)
	}
	n := float64(len(rows))
	r.BF16.Mean = sum / n
	r.FP32.Mean = sum32 / n
	return r
}

func (s *Stats) observe(err, x float64) {
	if err > s.Max {
		s.Max = err
		s.WorstX = x
	}
}
