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

package dictionary

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// newHotCache creates the cache holding recently found words
func newHotCache(expiration time.Duration, cleanup time.Duration) *cache.Cache {
	return cache.New(expiration, cleanup)
}

func cacheWord(c *cache.Cache, key string, value uint64, expiration time.Duration) {
	c.Set(key, value, expiration)
}

func cachedWord(c *cache.Cache, key string) (uint64, bool) {
	val, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	return val.(uint64), true
}
