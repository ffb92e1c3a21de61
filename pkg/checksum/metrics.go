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
	"github.com/prometheus/client_golang/prometheus"
)

var METRICS_SUBSYSTEM = "checksum"

type encoderMetrics struct {
	conversions prometheus.Counter
	failures    *prometheus.CounterVec
	cacheHits   prometheus.Counter
}

func initMetrics(registry *prometheus.Registry) *encoderMetrics {
	metrics := &encoderMetrics{}

	metrics.conversions = prometheus.NewCounter(prometheus.CounterOpts{Name: "conversions_total",
		Help: "Addresses successfully checksummed", Subsystem: METRICS_SUBSYSTEM})
	metrics.failures = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "failures_total",
		Help: "Address inputs rejected, by kind", Subsystem: METRICS_SUBSYSTEM}, []string{"kind"})
	metrics.cacheHits = prometheus.NewCounter(prometheus.CounterOpts{Name: "cache_hits_total",
		Help: "Conversions served from the result cache", Subsystem: METRICS_SUBSYSTEM})

	registry.MustRegister(metrics.conversions, metrics.failures, metrics.cacheHits)
	return metrics
}

func (m *encoderMetrics) IncConversions() {
	m.conversions.Inc()
}

func (m *encoderMetrics) IncFailures(kind Kind) {
	m.failures.WithLabelValues(kind.String()).Inc()
}

func (m *encoderMetrics) IncCacheHits() {
	m.cacheHits.Inc()
}
