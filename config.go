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
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/cybrota/wordbook/dictionary"
	"gopkg.in/yaml.v3"
)

const configFileName = ".wordbook.yaml"

type DictionaryConfig struct {
	CaseFold          bool          `yaml:"case_fold"`
	BloomFilterSize   uint          `yaml:"bloom_filter_size"`
	BloomFilterHashes uint          `yaml:"bloom_filter_hashes"`
	CacheTTL          time.Duration `yaml:"cache_ttl"`
	CacheCleanup      time.Duration `yaml:"cache_cleanup"`
	ShowProgress      bool          `yaml:"show_progress"`
}

type LoggingConfig struct {
	Directory string            `yaml:"directory"` // empty means ~/.wordbook
	File      string            `yaml:"file"`
	Size      int               `yaml:"size"`
	Count     int               `yaml:"count"`
	Console   bool              `yaml:"console"`
	Levels    map[string]string `yaml:"levels"`
}

type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Logging    LoggingConfig    `yaml:"logging"`
}

func defaultConfig() Config {
	return Config{
		Dictionary: DictionaryConfig{
			CaseFold:          true,
			BloomFilterSize:   dictionary.DefaultBloomFilterSize,
			BloomFilterHashes: dictionary.DefaultBloomFilterHashes,
			CacheTTL:          dictionary.DefaultCacheTTL,
			CacheCleanup:      dictionary.DefaultCacheCleanup,
			ShowProgress:      false,
		},
		Logging: LoggingConfig{
			File:  "wordbook.log",
			Size:  1048576,
			Count: 10,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// LoadConfig reads the configuration at path, or ~/.wordbook.yaml when path
// is empty. Settings missing from the file keep their defaults and an
// unreadable file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// dictionaryConfig converts the file settings into dictionary options.
func (c DictionaryConfig) dictionaryConfig() dictionary.Config {
	dc := dictionary.Config{
		CaseFold:          c.CaseFold,
		BloomFilterSize:   c.BloomFilterSize,
		BloomFilterHashes: c.BloomFilterHashes,
		CacheTTL:          c.CacheTTL,
		CacheCleanup:      c.CacheCleanup,
	}
	if c.ShowProgress {
		dc.Progress = os.Stderr
	}
	return dc
}

func displaySettings(path string) {
	configPath := path
	if configPath == "" {
		p, err := getConfigPath()
		if err != nil {
			fmt.Printf("❌ Failed to get config path: %v\n", err)
			return
		}
		configPath = p
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		created = true
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Wordbook Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if created {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s\n", configPath)
	}
	fmt.Printf("📊 Current settings:\n\n")

	d := config.Dictionary
	fmt.Printf("📖 %sDictionary:%s\n", Green, Reset)
	fmt.Printf("  • %scase_fold%s: %t\n", Green, Reset, d.CaseFold)
	fmt.Printf("  • %sbloom_filter_size%s: %d bits\n", Green, Reset, d.BloomFilterSize)
	fmt.Printf("  • %sbloom_filter_hashes%s: %d\n", Green, Reset, d.BloomFilterHashes)
	fmt.Printf("  • %scache_ttl%s: %s\n", Green, Reset, d.CacheTTL)
	fmt.Printf("  • %scache_cleanup%s: %s\n", Green, Reset, d.CacheCleanup)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, d.ShowProgress)

	l := config.Logging
	fmt.Printf("🪵 %sLogging:%s\n", Green, Reset)
	fmt.Printf("  • %sdirectory%s: %s\n", Green, Reset, logDirectory(l))
	fmt.Printf("  • %sfile%s: %s (%d bytes x %d)\n", Green, Reset, l.File, l.Size, l.Count)
	fmt.Printf("  • %sconsole%s: %t\n", Green, Reset, l.Console)
	for tag, level := range l.Levels {
		fmt.Printf("  • %slevels.%s%s: %s\n", Green, tag, Reset, level)
	}
	fmt.Println()

	if !d.CaseFold {
		fmt.Printf("💡 Keys are case sensitive. To fold them to lowercase, edit %s:\n", configPath)
		fmt.Printf("   dictionary:\n     case_fold: true\n\n")
	}
	if l.Console {
		fmt.Printf("%s⚠️  Console logging is mixed into command replies on the terminal%s\n\n", Warning, Reset)
	}
}
