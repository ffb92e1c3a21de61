// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package confutil

import (
	"time"

	"github.com/docker/go-units"
)

// P returns a pointer to any value, for populating the pointer fields of config structs
func P[T any](v T) *T {
	return &v
}

func Int(iVal *int, def int) int {
	if iVal == nil {
		return def
	}
	return *iVal
}

// IntMin returns the configured value, or the default if unset or below min
func IntMin(iVal *int, min int, def int) int {
	if iVal == nil || *iVal < min {
		return def
	}
	return *iVal
}

func Bool(bVal *bool, def bool) bool {
	if bVal == nil {
		return def
	}
	return *bVal
}

func StringNotEmpty(sVal *string, def string) string {
	if sVal == nil || *sVal == "" {
		return def
	}
	return *sVal
}

func StringOrEmpty(sVal *string, def string) string {
	if sVal == nil {
		return def
	}
	return *sVal
}

// DurationMin parses a Go duration string, falling back to the default if the
// value is unset, unparsable, or below min
func DurationMin(sVal *string, min time.Duration, def string) time.Duration {
	defDuration, _ := time.ParseDuration(def)
	if sVal == nil {
		return defDuration
	}
	d, err := time.ParseDuration(*sVal)
	if err != nil || d < min {
		return defDuration
	}
	return d
}

// ByteSize parses human sizes like "100Mb" or "1KiB" into a count of bytes
func ByteSize(sVal *string, min int64, def string) int64 {
	defSize, _ := units.RAMInBytes(def)
	if sVal == nil {
		return defSize
	}
	size, err := units.RAMInBytes(*sVal)
	if err != nil || size < min {
		return defSize
	}
	return size
}
