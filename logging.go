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

	"github.com/bitmark-inc/logger"
)

func logDirectory(config LoggingConfig) string {
	if config.Directory != "" {
		return config.Directory
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "wordbook")
	}
	return filepath.Join(homeDir, ".wordbook")
}

// startLogging creates the log directory if needed and initialises the
// logger. Callers must call logger.Finalise when done.
func startLogging(config LoggingConfig) error {
	dir := logDirectory(config)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	return logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      config.File,
		Size:      config.Size,
		Count:     config.Count,
		Console:   config.Console,
		Levels:    config.Levels,
	})
}
