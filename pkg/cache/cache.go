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

package cache

import (
	"sync/atomic"

	cacheimpl "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/kaleido-io/cchecksum/pkg/ccconf"
	"github.com/kaleido-io/cchecksum/pkg/confutil"
)

type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, val V)
	Capacity() int
	Clear()
}

type cache[K comparable, V any] struct {
	cache    atomic.Pointer[cacheimpl.Cache[K, V]]
	capacity int
}

// NewCache returns an LRU cache sized from conf, or a no-op cache when conf disables caching
func NewCache[K comparable, V any](conf *ccconf.CacheConfig, defs *ccconf.CacheConfig) Cache[K, V] {
	if !confutil.Bool(conf.Enabled, confutil.Bool(defs.Enabled, true)) {
		return disabled[K, V]{}
	}
	c := &cache[K, V]{
		capacity: confutil.IntMin(conf.Capacity, 1, *defs.Capacity),
	}
	// go-generics-cache is safe for concurrent use, but has no clear so we swap the whole thing
	c.Clear()
	return c
}

func (c *cache[K, V]) Get(key K) (V, bool) {
	return c.cache.Load().Get(key)
}

func (c *cache[K, V]) Set(key K, val V) {
	c.cache.Load().Set(key, val)
}

func (c *cache[K, V]) Clear() {
	c.cache.Store(cacheimpl.New[K, V](cacheimpl.AsLRU[K, V](
		lru.WithCapacity(c.capacity),
	)))
}

func (c *cache[K, V]) Capacity() int {
	return c.capacity
}

type disabled[K comparable, V any] struct{}

func (disabled[K, V]) Get(K) (v V, ok bool) { return v, false }
func (disabled[K, V]) Set(K, V)             {}
func (disabled[K, V]) Capacity() int        { return 0 }
func (disabled[K, V]) Clear()               {}
