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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/cybrota/wordbook/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordbook.yaml")
	data := []byte(`
dictionary:
  case_fold: false
  cache_ttl: 90s
logging:
  levels:
    session: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0600))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, config.Dictionary.CaseFold)
	assert.Equal(t, 90*time.Second, config.Dictionary.CacheTTL)
	assert.Equal(t, dictionary.DefaultCacheCleanup, config.Dictionary.CacheCleanup)
	assert.Equal(t, uint(dictionary.DefaultBloomFilterSize), config.Dictionary.BloomFilterSize)
	assert.Equal(t, "wordbook.log", config.Logging.File)
	assert.Equal(t, "debug", config.Logging.Levels["session"])
	assert.Equal(t, "info", config.Logging.Levels[logger.DefaultTag])
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dictionary: [not, a, map"), 0600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestDefaultConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordbook.yaml")
	require.NoError(t, createDefaultConfigFile(path))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)
}

func TestDictionaryConfig(t *testing.T) {
	c := defaultConfig().Dictionary
	dc := c.dictionaryConfig()
	assert.True(t, dc.CaseFold)
	assert.Nil(t, dc.Progress)

	c.ShowProgress = true
	assert.Equal(t, os.Stderr, c.dictionaryConfig().Progress)
}

func TestAVLHeightBound(t *testing.T) {
	assert.InDelta(t, 14.04, avlHeightBound(1000), 0.05)
	assert.Less(t, avlHeightBound(0), 1.5)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(dump, []byte("3 apple 5 banana 3 cherry 9\n"), 0600))

	var out strings.Builder
	inspect(&out, filepath.Join(dir, "absent.yaml"), dump, true)

	assert.Contains(t, out.String(), "📍 Dump: "+Info+dump+Reset+"\n")
	assert.Contains(t, out.String(), "words"+Reset+": 3\n")
	assert.Contains(t, out.String(), "check"+Reset+": ok\n")
	assert.Contains(t, out.String(), "banana → 3 h=2 +0")
}
