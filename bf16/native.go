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
	"os"
	"strconv"
)

// Support identifies native bfloat16 hardware on the running CPU.
type Support int

const (
	// SupportNone indicates no native bf16 instructions were detected.
	SupportNone Support = iota

	// SupportAVX512BF16 indicates x86 AVX-512 BF16 (Cooper Lake+).
	SupportAVX512BF16

	// SupportARMBF16 indicates ARM FEAT_BF16 (Apple M2+, Neoverse V1+).
	SupportARMBF16
)

// String returns a human-readable name for the support level.
func (s Support) String() string {
	switch s {
	case SupportNone:
		return "none"
	case SupportAVX512BF16:
		return "avx512bf16"
	case SupportARMBF16:
		return "arm-bf16"
	default:
		return "unknown"
	}
}

// native is set by init() in native_*.go files.
var native Support

// Native reports the native bf16 support of this CPU.
//
// The package always uses integer emulation; this only tells callers
// whether emulation is actually required on this machine.
func Native() Support {
	if ForceSoftEnv() {
		return SupportNone
	}
	return native
}

// ForceSoftEnv checks if the BF16_FORCE_SOFT environment variable is set.
// When set, Native reports SupportNone regardless of CPU capabilities.
func ForceSoftEnv() bool {
	val := os.Getenv("BF16_FORCE_SOFT")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
