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

// Command bf16check validates the bf16 emulation on the current machine.
//
// Usage:
//
//	bf16check                                  # self-tests and the 40-point log sample
//	bf16check -debug                           # also trace every fixture in binary
//	bf16check -selftest=false -n 400 -hi 8     # denser log sample over (0, 8]
//	bf16check -dataset ln.csv                  # write every sample point as CSV
//	bf16check -sweep -workers 8                # check identities on all 65536 patterns
//
// It runs the literal fixture suites, each reporting the index of its first
// failing case, then measures the bf16 and float32 logarithms against
// math.Log. With -sweep it also checks round-trip and arithmetic
// identities on every bf16 bit pattern. The exit code is 1 if any suite
// or identity fails or the mean bf16 log error exceeds -threshold.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-softbf16/bf16"
	"github.com/ajroetker/go-softbf16/internal/errsample"
	"github.com/ajroetker/go-softbf16/internal/selftest"
	"github.com/ajroetker/go-softbf16/internal/workerpool"
)

// errCheckFailed marks a run whose results did not meet expectations.
var errCheckFailed = errors.New("check failed")

type options struct {
	selfTest  bool
	sample    bool
	n         int
	lo        float64
	hi        float64
	threshold float64
	dataset   string
	sweep     bool
	workers   int
	debug     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := errsample.DefaultConfig()
	var opts options

	fs := flag.NewFlagSet("bf16check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.selfTest, "selftest", true, "Run the literal fixture suites")
	fs.BoolVar(&opts.sample, "sample", true, "Measure log error against math.Log")
	fs.IntVar(&opts.n, "n", def.N, "Number of sample points")
	fs.Float64Var(&opts.lo, "lo", def.Lo, "Exclusive lower bound of the sample range")
	fs.Float64Var(&opts.hi, "hi", def.Hi, "Inclusive upper bound of the sample range")
	fs.Float64Var(&opts.threshold, "threshold", 0.02, "Maximum accepted mean bf16 log error")
	fs.StringVar(&opts.dataset, "dataset", "", "Write sample rows as CSV to this file")
	fs.BoolVar(&opts.sweep, "sweep", false, "Check identities on every bf16 bit pattern")
	fs.IntVar(&opts.workers, "workers", 0, "Sweep workers (0 = GOMAXPROCS)")
	fs.BoolVar(&opts.debug, "debug", false, "Log every fixture and sample in binary form")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return cfg.Build()
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain returns the process exit code so deferred cleanup, such as
// flushing the logger, runs before os.Exit.
func realMain(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		return 2
	}

	logger, err := newLogger(opts.debug)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := run(opts, stdout, logger); err != nil {
		logger.Error("bf16check failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(opts options, stdout io.Writer, logger *zap.Logger) error {
	logger.Info("bf16 emulation", zap.Stringer("native", bf16.Native()))

	failed := false
	if opts.selfTest {
		if !runSelfTests(stdout, logger) {
			failed = true
		}
	}

	if opts.sweep {
		if !runSweep(opts.workers, stdout, logger) {
			failed = true
		}
	}

	if opts.sample || opts.dataset != "" {
		ok, err := runSample(opts, stdout, logger)
		if err != nil {
			return err
		}
		if !ok {
			failed = true
		}
	}

	if failed {
		return errCheckFailed
	}
	return nil
}

func runSelfTests(stdout io.Writer, logger *zap.Logger) bool {
	trace := func(suite string, index int, c selftest.Case, got uint32) {
		if ce := logger.Check(zap.DebugLevel, "case"); ce != nil {
			operands := make([]string, len(c.In))
			for i, in := range c.In {
				operands[i] = bf16.FromBits(in).BinaryString()
			}
			ce.Write(
				zap.String("suite", suite),
				zap.Int("index", index),
				zap.String("op", c.Op),
				zap.Strings("in", operands),
				zap.String("got", fmt.Sprintf("0x%08X", got)),
				zap.String("want", fmt.Sprintf("0x%08X", c.Want)),
			)
		}
	}

	results := selftest.All(trace)
	for _, r := range results {
		if r.Passed() {
			fmt.Fprintf(stdout, "Test for %s passed.\n", r.Suite)
		} else {
			fmt.Fprintf(stdout, "Test %d for %s failed.\n", r.Code, r.Suite)
		}
	}
	return !selftest.Failed(results)
}

// maxReported caps how many sweep mismatches are logged per identity.
const maxReported = 8

func runSweep(workers int, stdout io.Writer, logger *zap.Logger) bool {
	pool := workerpool.New(workers)
	defer pool.Close()

	ids := selftest.Identities()
	mismatches := selftest.Sweep(pool, ids)

	count := make(map[string]int, len(ids))
	for _, m := range mismatches {
		count[m.Identity]++
		if count[m.Identity] <= maxReported {
			logger.Warn("identity broken",
				zap.String("identity", m.Identity),
				zap.String("in", bf16.FromBits(m.In).BinaryString()),
				zap.String("got", fmt.Sprintf("0x%08X", m.Got)),
				zap.String("want", fmt.Sprintf("0x%08X", m.Want)),
			)
		}
	}
	for _, id := range ids {
		if n := count[id.Name]; n > 0 {
			fmt.Fprintf(stdout, "Sweep %s: %d of %d patterns failed.\n", id.Name, n, selftest.Patterns)
		} else {
			fmt.Fprintf(stdout, "Sweep %s passed.\n", id.Name)
		}
	}
	logger.Debug("sweep done", zap.Int("workers", pool.Workers()), zap.Int("mismatches", len(mismatches)))
	return len(mismatches) == 0
}

func runSample(opts options, stdout io.Writer, logger *zap.Logger) (bool, error) {
	cfg := errsample.Config{Lo: opts.lo, Hi: opts.hi, N: opts.n}
	rows, err := errsample.Rows(cfg)
	if err != nil {
		return false, err
	}

	for _, r := range rows {
		logger.Debug("sample",
			zap.String("x", r.X.HexString()),
			zap.String("ln_bf16", r.Log.HexString()),
			zap.String("bits", r.Log.BinaryString()),
			zap.Float32("ln_fp32", r.Log32),
			zap.Float64("ln", r.True),
		)
	}

	if opts.dataset != "" {
		if err := writeDataset(opts.dataset, rows); err != nil {
			return false, err
		}
		logger.Info("dataset written", zap.String("path", opts.dataset), zap.Int("rows", len(rows)))
	}

	report := errsample.Summarize(cfg, rows)
	fmt.Fprintf(stdout, "ln error over (%g, %g], %d points:\n", cfg.Lo, cfg.Hi, cfg.N)
	fmt.Fprintf(stdout, "  bf16: mean %.6f  max %.6f at x=%g\n", report.BF16.Mean, report.BF16.Max, report.BF16.WorstX)
	fmt.Fprintf(stdout, "  fp32: mean %.6f  max %.6f at x=%g\n", report.FP32.Mean, report.FP32.Max, report.FP32.WorstX)

	if !opts.sample {
		return true, nil
	}
	if !withinThreshold(report.BF16.Mean, opts.threshold) {
		logger.Warn("mean bf16 log error above threshold",
			zap.Float64("mean", report.BF16.Mean),
			zap.Float64("threshold", opts.threshold))
		return false, nil
	}
	return true, nil
}

// withinThreshold reports whether mean is a number no larger than
// threshold. A NaN mean never passes.
func withinThreshold(mean, threshold float64) bool {
	return mean <= threshold
}

func writeDataset(path string, rows []errsample.Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close dataset: %w", cerr)
		}
	}()
	return errsample.WriteCSV(f, rows)
}
