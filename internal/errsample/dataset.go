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

package errsample

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader names the columns written by WriteCSV.
var csvHeader = []string{"x", "x_bits", "ln_true", "ln_bf16", "ln_bf16_bits", "ln_fp32", "err_bf16", "err_fp32"}

// WriteCSV writes rows as a dataset with one header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("errsample: write header: %w", err)
	}

	for i, r := range rows {
		rec := []string{
			formatFloat(r.X.Float64()),
			fmt.Sprintf("0x%08X", r.X.Bits()),
			formatFloat(r.True),
			formatFloat(r.Log.Float64()),
			fmt.Sprintf("0x%08X", r.Log.Bits()),
			formatFloat(float64(r.Log32)),
			formatFloat(r.Err),
			formatFloat(r.Err32),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("errsample: write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("errsample: flush: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 8, 64)
}
