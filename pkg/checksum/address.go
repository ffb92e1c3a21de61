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
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"

	"github.com/kaleido-io/cchecksum/internal/msgs"
)

// Address is the 20 byte account address. It marshals to JSON in checksum form,
// and to the database as 40 lowercase hex characters.
type Address [addressLen]byte

var zeroAddress = Address{}

func ParseAddress(ctx context.Context, s string) (*Address, error) {
	a, err := parseHex(ctx, s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func MustParseAddress(s string) *Address {
	a, err := ParseAddress(context.Background(), s)
	if err != nil {
		panic(err)
	}
	return a
}

// AddressFromBytes requires exactly 20 raw bytes
func AddressFromBytes(ctx context.Context, b []byte) (*Address, error) {
	a, err := normalize(ctx, b)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AddressFrom accepts every input form of ToChecksumAddress
func AddressFrom(ctx context.Context, value any) (*Address, error) {
	a, err := normalize(ctx, value)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (a Address) Checksummed() string {
	var lower [hexLen]byte
	hex.Encode(lower[:], a[:])
	return checksumHex(&lower)
}

func (a *Address) Equals(b *Address) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

func (a *Address) IsZero() bool {
	return a == nil || *a == zeroAddress
}

// String is the lowercase 0x prefixed form
func (a Address) String() string {
	return "0x" + a.HexString()
}

func (a Address) HexString() string {
	return hex.EncodeToString(a[:])
}

func (a *Address) UnmarshalJSON(b []byte) error {
	if a == nil {
		return newError(context.Background(), KindUnknown, msgs.MsgAddressUnmarshalNil)
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := parseHex(context.Background(), s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Checksummed())
}

// Scan implements sql.Scanner
func (a *Address) Scan(src interface{}) error {
	ctx := context.Background()
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		parsed, err := parseHex(ctx, src)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		switch len(src) {
		case addressLen:
			copy(a[:], src)
		case hexLen, hexLen + 2 /* with 0x */ :
			parsed, err := parseHex(ctx, string(src))
			if err != nil {
				return err
			}
			*a = parsed
		default:
			return newError(ctx, KindWrongLength, msgs.MsgAddressRestoreFailed, src, a)
		}
		return nil
	default:
		return newError(ctx, KindUnsupportedType, msgs.MsgAddressRestoreFailed, src, a)
	}
}

// Value implements driver.Valuer
func (a Address) Value() (driver.Value, error) {
	// no prefix, always 40 chars
	return a.HexString(), nil
}
