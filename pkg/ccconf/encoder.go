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

package ccconf

import "github.com/kaleido-io/cchecksum/pkg/confutil"

type CacheConfig struct {
	// whether results are cached at all
	Enabled *bool `json:"enabled"`
	// number of addresses held before the least recently used is evicted
	Capacity *int `json:"capacity"`
}

type EncoderConfig struct {
	Cache CacheConfig `json:"cache"`
	// upper bound on goroutines used by a single batch conversion
	BatchConcurrency *int `json:"batchConcurrency"`
}

var EncoderDefaults = &EncoderConfig{
	Cache: CacheConfig{
		Enabled:  confutil.P(true),
		Capacity: confutil.P(1000),
	},
	BatchConcurrency: confutil.P(8),
}
