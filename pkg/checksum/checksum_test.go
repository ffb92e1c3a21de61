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
	"crypto/rand"
	"math"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eip55Vectors = []string{
	// all caps
	"0x52908400098527886E0F7030069857D2E4169EE7",
	"0x8617E340B3D01FA5F11F306F4090FD50E238070D",
	// all lower
	"0xde709f2102306220921060314715629080e2fb77",
	"0x27b1fdb04752bbc536007a920d24acb045561c26",
	// normal
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	"0xacA6D8Ba6BFf0fa5c8a06A58368CB6097285d5c5",
}

func randAddressBytes(t testing.TB) []byte {
	b := make([]byte, 20)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestEIP55Vectors(t *testing.T) {
	ctx := context.Background()
	for _, expected := range eip55Vectors {
		body := expected[2:]
		for _, input := range []string{
			expected,
			strings.ToLower(expected),
			"0x" + strings.ToUpper(body),
			"0X" + body,
			strings.ToLower(body),
		} {
			s, err := ToChecksumAddress(ctx, input)
			require.NoError(t, err, input)
			assert.Equal(t, expected, s, input)
		}
	}
}

func TestChecksumProperties(t *testing.T) {
	ctx := context.Background()
	for i := 0; i < 100; i++ {
		b := randAddressBytes(t)
		lower := "0x" + strings.ToLower(common.Bytes2Hex(b))

		s, err := ToChecksumAddress(ctx, b)
		require.NoError(t, err)

		assert.Regexp(t, "^0x[0-9a-fA-F]{40}$", s)
		assert.Equal(t, lower, strings.ToLower(s))

		again, err := ToChecksumAddress(ctx, s)
		require.NoError(t, err)
		assert.Equal(t, s, again)

		fromUpper, err := ToChecksumAddress(ctx, "0x"+strings.ToUpper(lower[2:]))
		require.NoError(t, err)
		assert.Equal(t, s, fromUpper)

		// independent implementations
		assert.Equal(t, common.BytesToAddress(b).Hex(), s)
		ffAddr := ethtypes.MustNewAddress(lower)
		assert.Equal(t, (*ethtypes.AddressWithChecksum)(ffAddr).String(), s)
	}
}

func TestInputForms(t *testing.T) {
	ctx := context.Background()
	const expected = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	a := MustParseAddress(expected)
	var arr [20]byte = *a
	geth := common.HexToAddress(expected)
	ff := ethtypes.MustNewAddress(expected)
	ffc := ethtypes.AddressWithChecksum(*ff)
	asInt := new(big.Int).SetBytes(a[:])

	for _, v := range []any{
		a[:], arr, *a, a,
		geth, &geth,
		*ff, ff, ffc, &ffc,
		asInt, *asInt,
	} {
		s, err := ToChecksumAddress(ctx, v)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, expected, s, "%T", v)
	}
}

func TestIntegerInputsArePadded(t *testing.T) {
	ctx := context.Background()

	for _, v := range []any{1, int8(1), int16(1), int32(1), int64(1), uint(1), uint8(1), uint16(1), uint32(1), uint64(1), big.NewInt(1)} {
		s, err := ToChecksumAddress(ctx, v)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, "0x0000000000000000000000000000000000000001", s, "%T", v)
	}

	s, err := ToChecksumAddress(ctx, uint64(math.MaxUint64))
	require.NoError(t, err)
	assert.Equal(t, common.BigToAddress(new(big.Int).SetUint64(math.MaxUint64)).Hex(), s)

	max160 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 160), big.NewInt(1))
	s, err = ToChecksumAddress(ctx, max160)
	require.NoError(t, err)
	assert.Equal(t, common.BigToAddress(max160).Hex(), s)
	assert.Equal(t, "0x"+strings.Repeat("f", 40), strings.ToLower(s))

	s, err = ToChecksumAddress(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000000", s)
}

func TestRejectedInputs(t *testing.T) {
	ctx := context.Background()
	tooBig := new(big.Int).Lsh(big.NewInt(1), 160)

	for _, tc := range []struct {
		name  string
		value any
		kind  Kind
		code  string
	}{
		{"bad char", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaeg", KindMalformedInput, "CC010100"},
		{"space", " 0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", KindMalformedInput, "CC010100"},
		{"double prefix", "0x0x5aaeb6053f3e94c9b9a09f33669435e7ef1bea", KindMalformedInput, "CC010100"},
		{"short and bad", "0xZZ", KindMalformedInput, "CC010100"},
		{"empty", "", KindWrongLength, "CC010101"},
		{"prefix only", "0x", KindWrongLength, "CC010101"},
		{"short", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1bea", KindWrongLength, "CC010101"},
		{"long", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed00", KindWrongLength, "CC010101"},
		{"long no prefix", "005aaeb6053f3e94c9b9a09f33669435e7ef1beaed", KindWrongLength, "CC010101"},
		{"short bytes", []byte{0x01, 0x02}, KindWrongLength, "CC010101"},
		{"long bytes", make([]byte, 32), KindWrongLength, "CC010101"},
		{"negative", -1, KindOutOfRange, "CC010102"},
		{"negative big", big.NewInt(-1), KindOutOfRange, "CC010102"},
		{"161 bits", tooBig, KindOutOfRange, "CC010102"},
		{"nil", nil, KindUnsupportedType, "CC010103"},
		{"bool", true, KindUnsupportedType, "CC010103"},
		{"float", 1.5, KindUnsupportedType, "CC010103"},
		{"struct", struct{}{}, KindUnsupportedType, "CC010103"},
		{"nil address", (*Address)(nil), KindUnsupportedType, "CC010103"},
		{"nil big", (*big.Int)(nil), KindUnsupportedType, "CC010103"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ToChecksumAddress(ctx, tc.value)
			assert.Empty(t, s)
			assert.Regexp(t, tc.code, err)
			assert.Equal(t, tc.kind, KindOf(err))
		})
	}
}

func TestRejectedInputMessages(t *testing.T) {
	ctx := context.Background()

	_, err := ToChecksumAddress(ctx, "0xABC")
	assert.Regexp(t, "Unknown format '0xABC', attempted to normalize to '0xabc'", err)

	_, err = ToChecksumAddress(ctx, 1.5)
	assert.Regexp(t, "instead got type float64", err)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "malformed_input", KindMalformedInput.String())
	assert.Equal(t, "wrong_length", KindWrongLength.String())
	assert.Equal(t, "out_of_range", KindOutOfRange.String())
	assert.Equal(t, "unsupported_type", KindUnsupportedType.String())
	assert.Equal(t, "checksum_mismatch", KindChecksumMismatch.String())

	_, err := ToChecksumAddress(context.Background(), "wrong")
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindMalformedInput, e.Kind)
	assert.NotNil(t, e.Unwrap())
}

func TestConcurrentCallers(t *testing.T) {
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, expected := range eip55Vectors {
				s, err := ToChecksumAddress(ctx, strings.ToLower(expected))
				assert.NoError(t, err)
				assert.Equal(t, expected, s)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkToChecksumAddress(b *testing.B) {
	ctx := context.Background()
	input := "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ToChecksumAddress(ctx, input)
	}
}
