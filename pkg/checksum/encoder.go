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
	"sync/atomic"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/cchecksum/internal/msgs"
	"github.com/kaleido-io/cchecksum/pkg/cache"
	"github.com/kaleido-io/cchecksum/pkg/ccconf"
	"github.com/kaleido-io/cchecksum/pkg/confutil"
	"github.com/kaleido-io/cchecksum/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// Encoder adds a result cache, metrics and batch conversion on top of ToChecksumAddress.
// It is safe for concurrent use.
type Encoder interface {
	ToChecksumAddress(ctx context.Context, value any) (string, error)
	// ToChecksumAddresses returns results in input order, or the error of the
	// lowest index input that failed
	ToChecksumAddresses(ctx context.Context, values []any) ([]string, error)
}

type encoder struct {
	cache            cache.Cache[Address, string]
	batchConcurrency int
	metrics          *encoderMetrics
}

// NewEncoder registers the encoder metrics on registry, which must not already
// hold them. A nil registry keeps the metrics private to the encoder.
func NewEncoder(ctx context.Context, conf *ccconf.EncoderConfig, registry *prometheus.Registry) Encoder {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	e := &encoder{
		cache:            cache.NewCache[Address, string](&conf.Cache, &ccconf.EncoderDefaults.Cache),
		batchConcurrency: confutil.IntMin(conf.BatchConcurrency, 1, *ccconf.EncoderDefaults.BatchConcurrency),
		metrics:          initMetrics(registry),
	}
	log.L(ctx).Debugf("Checksum encoder initialized cacheCapacity=%d batchConcurrency=%d", e.cache.Capacity(), e.batchConcurrency)
	return e
}

func (e *encoder) ToChecksumAddress(ctx context.Context, value any) (string, error) {
	a, err := normalize(ctx, value)
	if err != nil {
		e.metrics.IncFailures(KindOf(err))
		log.L(ctx).Debugf("Rejected address input: %s", err)
		return "", err
	}
	e.metrics.IncConversions()
	if s, ok := e.cache.Get(a); ok {
		e.metrics.IncCacheHits()
		return s, nil
	}
	s := a.Checksummed()
	e.cache.Set(a, s)
	return s, nil
}

func (e *encoder) ToChecksumAddresses(ctx context.Context, values []any) ([]string, error) {
	results := make([]string, len(values))
	errs := make([]error, len(values))
	var completed atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.batchConcurrency)
	for i, v := range values {
		i, v := i, v
		g.Go(func() error {
			// only cancellation stops the batch, so every input gets a result or an error
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = e.ToChecksumAddress(gCtx, v)
			completed.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgEncoderBatchCancelled, completed.Load(), len(values))
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
