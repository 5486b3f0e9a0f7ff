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

import (
	"fmt"
	"strconv"
)

// String implements fmt.Stringer using the shortest float32 form.
func (b BF16) String() string {
	return strconv.FormatFloat(b.Float64(), 'g', -1, 32)
}

// BinaryString renders the sign, exponent and mantissa bit groups,
// e.g. "1 10000001 0000001".
func (b BF16) BinaryString() string {
	h := b.Half()
	var buf [18]byte
	n := 0
	for i := 15; i >= 0; i-- {
		if i == 14 || i == 6 {
			buf[n] = ' '
			n++
		}
		buf[n] = '0' + byte((h>>uint(i))&1)
		n++
	}
	return string(buf[:n])
}

// HexString renders the upper 16 bits in hex followed by the decimal
// value, e.g. "c081 -4.031250".
func (b BF16) HexString() string {
	return fmt.Sprintf("%04x %.6f", b.Half(), b.Float32())
}
