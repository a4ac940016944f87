// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Clean up expired range results at most this often
const rangeCacheCleanup = time.Minute

// NewRangeCache creates a cache for range query results. Entries are only
// valid while the tree is unchanged, so every mutation must Flush it.
func NewRangeCache(ttl time.Duration) *cache.Cache {
	cleanup := rangeCacheCleanup
	if ttl < cleanup {
		cleanup = ttl
	}
	return cache.New(ttl, cleanup)
}

func rangeCacheKey(low, high int) string {
	return fmt.Sprintf("%d:%d", low, high)
}

func CacheRange(c *cache.Cache, low, high int, keys []int) {
	c.Set(rangeCacheKey(low, high), keys, cache.DefaultExpiration)
}

func GetRange(c *cache.Cache, low, high int) ([]int, bool) {
	val, ok := c.Get(rangeCacheKey(low, high))
	if !ok {
		return nil, false
	}
	return val.([]int), true
}
