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

package msgs

import (
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var registered sync.Once
var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registered.Do(func() {
		i18n.RegisterPrefix("CC01", "Checksum Address Encoder")
	})
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

var (
	// Address input CC0101XX
	MsgAddressInvalidHex        = ffe("CC010100", "When sending a str, it must be a hex string. Got: '%s'", 400)
	MsgAddressUnknownFormat     = ffe("CC010101", "Unknown format '%s', attempted to normalize to '%s'", 400)
	MsgAddressIntegerOutOfRange = ffe("CC010102", "Integer %s cannot be represented as a 160-bit address", 400)
	MsgAddressUnsupportedType   = ffe("CC010103", "Value must be any string, instead got type %T", 400)
	MsgAddressBadChecksum       = ffe("CC010104", "Address '%s' has an invalid EIP-55 checksum (expected '%s')", 400)
	MsgAddressRestoreFailed     = ffe("CC010105", "Failed to restore type '%T' into '%T'")
	MsgAddressUnmarshalNil      = ffe("CC010106", "UnmarshalJSON on nil pointer")

	// Encoder CC0102XX
	MsgEncoderBatchCancelled = ffe("CC010200", "Batch conversion cancelled after %d of %d addresses")

	// Config CC0103XX
	MsgConfigFileMissing    = ffe("CC010300", "Config file not found at path: %s")
	MsgConfigFileReadError  = ffe("CC010301", "Failed to read config file %s with error: %s")
	MsgConfigFileParseError = ffe("CC010302", "Failed to parse config file: %s")
)
