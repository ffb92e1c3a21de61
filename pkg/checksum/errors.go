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
	"errors"

	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Kind classifies why an address was rejected
type Kind int

const (
	KindUnknown Kind = iota
	// a character outside [0-9a-fA-F] after the optional prefix
	KindMalformedInput
	// the hex portion is not exactly 40 digits, or a byte slice is not 20 bytes
	KindWrongLength
	// an integer that is negative or does not fit in 160 bits
	KindOutOfRange
	// a Go type that is not one of the accepted address forms
	KindUnsupportedType
	// mixed-case input whose casing does not match its EIP-55 checksum
	KindChecksumMismatch
)

func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed_input"
	case KindWrongLength:
		return "wrong_length"
	case KindOutOfRange:
		return "out_of_range"
	case KindUnsupportedType:
		return "unsupported_type"
	case KindChecksumMismatch:
		return "checksum_mismatch"
	default:
		return "unknown"
	}
}

// Error is a coded error from the message catalogue, tagged with its Kind
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf returns the Kind of the first *Error in the chain, or KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(ctx context.Context, kind Kind, msg i18n.ErrorMessageKey, inserts ...interface{}) error {
	return &Error{Kind: kind, err: i18n.NewError(ctx, msg, inserts...)}
}
