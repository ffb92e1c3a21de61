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

// Package checksum encodes 20 byte Ethereum account addresses in the mixed-case
// checksum form defined by EIP-55.
//
// The casing of each hex letter is taken from the Keccak-256 hash of the
// lowercase hex text of the address, so the result can be verified by anyone
// holding the string alone.
package checksum

import (
	"context"
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"
)

const (
	addressLen = 20
	hexLen     = addressLen * 2
)

var keccakPool = sync.Pool{
	New: func() any { return sha3.NewLegacyKeccak256() },
}

// ToChecksumAddress converts any of the accepted address forms into its EIP-55
// checksum string: "0x" followed by 40 hex characters.
//
// Accepted forms are hex strings (40 digits, optional 0x/0X prefix, any case),
// raw 20 byte values, non-negative integers that fit in 160 bits, and the
// address types of go-ethereum and firefly-signer. Failures are returned as
// *Error with a Kind describing the problem.
func ToChecksumAddress(ctx context.Context, value any) (string, error) {
	a, err := normalize(ctx, value)
	if err != nil {
		return "", err
	}
	return a.Checksummed(), nil
}

// checksumHex applies the EIP-55 casing to a 40 character lowercase hex string,
// returning it with the 0x prefix
func checksumHex(lower *[hexLen]byte) string {
	var digest [32]byte
	kh := keccakPool.Get().(hash.Hash)
	kh.Reset()
	_, _ = kh.Write(lower[:])
	kh.Sum(digest[:0])
	keccakPool.Put(kh)

	var out [2 + hexLen]byte
	out[0], out[1] = '0', 'x'
	for i, c := range lower {
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if c >= 'a' && nibble >= 8 {
			c -= 'a' - 'A'
		}
		out[2+i] = c
	}
	return string(out[:])
}
