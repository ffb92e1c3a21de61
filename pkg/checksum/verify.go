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

package checksum

import (
	"context"

	"github.com/kaleido-io/cchecksum/internal/msgs"
)

// IsChecksumAddress is true only for a 0x prefixed address string that is
// exactly its own checksum encoding
func IsChecksumAddress(s string) bool {
	a, err := parseHex(context.Background(), s)
	if err != nil {
		return false
	}
	return s == a.Checksummed()
}

// IsChecksumFormatted is true for a valid address string whose hex letters use
// both cases. It does not verify the checksum itself.
func IsChecksumFormatted(s string) bool {
	if _, err := parseHex(context.Background(), s); err != nil {
		return false
	}
	lower, upper := false, false
	for _, c := range []byte(stripPrefix(s)) {
		switch {
		case 'a' <= c && c <= 'f':
			lower = true
		case 'A' <= c && c <= 'F':
			upper = true
		}
	}
	return lower && upper
}

// ParseChecksumAddress parses like ParseAddress, and additionally rejects
// mixed-case input whose casing is not the EIP-55 checksum. Single-case input
// carries no checksum and is accepted.
func ParseChecksumAddress(ctx context.Context, s string) (*Address, error) {
	a, err := ParseAddress(ctx, s)
	if err != nil {
		return nil, err
	}
	if IsChecksumFormatted(s) {
		expected := a.Checksummed()
		if stripPrefix(s) != expected[2:] {
			return nil, newError(ctx, KindChecksumMismatch, msgs.MsgAddressBadChecksum, s, expected)
		}
	}
	return a, nil
}

func stripPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
