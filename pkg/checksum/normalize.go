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
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/kaleido-io/cchecksum/internal/msgs"
)

// normalize reduces every accepted input form to the 20 address bytes
func normalize(ctx context.Context, value any) (Address, error) {
	switch v := value.(type) {
	case string:
		return parseHex(ctx, v)
	case []byte:
		if len(v) != addressLen {
			hexStr := "0x" + hex.EncodeToString(v)
			return Address{}, newError(ctx, KindWrongLength, msgs.MsgAddressUnknownFormat, hexStr, hexStr)
		}
		return Address(v), nil
	case [addressLen]byte:
		return Address(v), nil
	case Address:
		return v, nil
	case *Address:
		if v != nil {
			return *v, nil
		}
	case ethtypes.Address0xHex:
		return Address(v), nil
	case *ethtypes.Address0xHex:
		if v != nil {
			return Address(*v), nil
		}
	case ethtypes.AddressWithChecksum:
		return Address(v), nil
	case *ethtypes.AddressWithChecksum:
		if v != nil {
			return Address(*v), nil
		}
	case common.Address:
		return Address(v), nil
	case *common.Address:
		if v != nil {
			return Address(*v), nil
		}
	case *big.Int:
		if v != nil {
			return fromBigInt(ctx, v)
		}
	case big.Int:
		return fromBigInt(ctx, &v)
	case int:
		return fromBigInt(ctx, big.NewInt(int64(v)))
	case int8:
		return fromBigInt(ctx, big.NewInt(int64(v)))
	case int16:
		return fromBigInt(ctx, big.NewInt(int64(v)))
	case int32:
		return fromBigInt(ctx, big.NewInt(int64(v)))
	case int64:
		return fromBigInt(ctx, big.NewInt(v))
	case uint:
		return fromBigInt(ctx, new(big.Int).SetUint64(uint64(v)))
	case uint8:
		return fromBigInt(ctx, new(big.Int).SetUint64(uint64(v)))
	case uint16:
		return fromBigInt(ctx, new(big.Int).SetUint64(uint64(v)))
	case uint32:
		return fromBigInt(ctx, new(big.Int).SetUint64(uint64(v)))
	case uint64:
		return fromBigInt(ctx, new(big.Int).SetUint64(v))
	}
	return Address{}, newError(ctx, KindUnsupportedType, msgs.MsgAddressUnsupportedType, value)
}

// parseHex accepts exactly 40 hex digits in any case, with or without a 0x/0X prefix.
// Short input is rejected rather than padded.
func parseHex(ctx context.Context, s string) (a Address, err error) {
	body := stripPrefix(s)
	for i := 0; i < len(body); i++ {
		if !isHexDigit(body[i]) {
			return a, newError(ctx, KindMalformedInput, msgs.MsgAddressInvalidHex, s)
		}
	}
	if len(body) != hexLen {
		return a, newError(ctx, KindWrongLength, msgs.MsgAddressUnknownFormat, s, "0x"+strings.ToLower(body))
	}
	if _, err := hex.Decode(a[:], []byte(body)); err != nil {
		return a, newError(ctx, KindMalformedInput, msgs.MsgAddressInvalidHex, s)
	}
	return a, nil
}

func fromBigInt(ctx context.Context, i *big.Int) (a Address, err error) {
	if i.Sign() < 0 || i.BitLen() > addressLen*8 {
		return a, newError(ctx, KindOutOfRange, msgs.MsgAddressIntegerOutOfRange, i.String())
	}
	i.FillBytes(a[:])
	return a, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
