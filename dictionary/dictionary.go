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

// Package dictionary maps words to unsigned counts on top of an AVL tree
// and persists them in a flat, whitespace separated text format.
package dictionary

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/cybrota/wordbook/avltree"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

const (
	DefaultBloomFilterSize   = 1 << 20 // bits
	DefaultBloomFilterHashes = 5
	DefaultCacheTTL          = 30 * time.Minute
	DefaultCacheCleanup      = 5 * time.Minute

	// MaxKeyLength is the longest key in bytes that AddWord accepts and
	// that Load reads back.
	MaxKeyLength = 4096
)

// ErrInvalidKey is wrapped by ValidateKey for keys the dump format cannot
// hold.
var ErrInvalidKey = errors.New("invalid key")

// ValidateKey checks that key is non-empty, holds no whitespace and is at
// most MaxKeyLength bytes long.
func ValidateKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	case len(key) > MaxKeyLength:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidKey, MaxKeyLength)
	case strings.IndexFunc(key, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w %q: contains whitespace", ErrInvalidKey, key)
	}
	return nil
}

// Config tunes a Dictionary. Zero numeric fields fall back to the defaults.
type Config struct {
	CaseFold          bool // lowercase every key before use
	BloomFilterSize   uint
	BloomFilterHashes uint
	CacheTTL          time.Duration
	CacheCleanup      time.Duration
	Progress          io.Writer // progress bar output for Dump and Load, nil for none
}

// DefaultConfig returns the configuration used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		CaseFold:          true,
		BloomFilterSize:   DefaultBloomFilterSize,
		BloomFilterHashes: DefaultBloomFilterHashes,
		CacheTTL:          DefaultCacheTTL,
		CacheCleanup:      DefaultCacheCleanup,
	}
}

// Dictionary is a word to count map. It is not safe for concurrent use.
type Dictionary struct {
	words  *avltree.Tree[string, uint64]
	filter *bloom.BloomFilter // every key ever added since the last load
	hot    *cache.Cache
	config Config
}

// New creates an empty dictionary.
func New(config Config) *Dictionary {
	if config.BloomFilterSize == 0 {
		config.BloomFilterSize = DefaultBloomFilterSize
	}
	if config.BloomFilterHashes == 0 {
		config.BloomFilterHashes = DefaultBloomFilterHashes
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	if config.CacheCleanup == 0 {
		config.CacheCleanup = DefaultCacheCleanup
	}

	return &Dictionary{
		words:  avltree.New[string, uint64](),
		filter: bloom.New(config.BloomFilterSize, config.BloomFilterHashes),
		hot:    newHotCache(config.CacheTTL, config.CacheCleanup),
		config: config,
	}
}

func (d *Dictionary) normalise(key string) string {
	if d.config.CaseFold {
		return strings.ToLower(key)
	}
	return key
}

// AddWord stores value under key and reports true. An existing key is
// left untouched and false is returned, as is false for a key rejected by
// ValidateKey.
func (d *Dictionary) AddWord(key string, value uint64) bool {
	key = d.normalise(key)
	if ValidateKey(key) != nil {
		return false
	}
	if !d.words.Insert(key, value) {
		return false
	}
	d.filter.AddString(key)
	return true
}

// RemoveWord deletes key and reports whether it was present.
func (d *Dictionary) RemoveWord(key string) bool {
	key = d.normalise(key)
	d.hot.Delete(key)
	return d.words.Remove(key)
}

// Find returns the value stored under key.
func (d *Dictionary) Find(key string) (uint64, bool) {
	key = d.normalise(key)

	// a filter miss is definite, a hit may be a false positive
	if !d.filter.TestString(key) {
		return 0, false
	}
	if v, ok := cachedWord(d.hot, key); ok {
		return v, true
	}
	v, ok := d.words.Lookup(key)
	if ok {
		cacheWord(d.hot, key, v, d.config.CacheTTL)
	}
	return v, ok
}

// Size returns the number of words.
func (d *Dictionary) Size() int {
	return d.words.Len()
}

// Height returns the height of the underlying tree.
func (d *Dictionary) Height() int {
	return d.words.Height()
}

// Check validates the structure of the underlying tree.
func (d *Dictionary) Check() error {
	return d.words.Check()
}

// Print writes the underlying tree to w.
func (d *Dictionary) Print(w io.Writer) {
	d.words.Print(w)
}

// replace swaps in a freshly loaded tree and resets the lookup helpers.
func (d *Dictionary) replace(words *avltree.Tree[string, uint64]) {
	d.words.Clear()
	d.words = words

	d.filter.ClearAll()
	for key := range words.Keys() {
		d.filter.AddString(key)
	}
	d.hot.Flush()
}
