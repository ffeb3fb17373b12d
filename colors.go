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
	"strings"
)

type TerminalMode int

const (
	TerminalModeDark TerminalMode = iota
	TerminalModeLight
)

// ANSI sequences used by the human facing commands. They stay empty when
// NO_COLOR is set.
var Green, Info, Warning, Error, Reset = GetANSIColors(detectTerminalMode())

// detectTerminalMode guesses the terminal background from the environment,
// defaulting to dark.
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		switch parts[len(parts)-1] {
		case "7", "15", "255":
			return TerminalModeLight
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if strings.Contains(strings.ToLower(os.Getenv(name)), "light") {
			return TerminalModeLight
		}
	}
	return TerminalModeDark
}

// GetANSIColors returns the colour sequences suited to mode.
func GetANSIColors(mode TerminalMode) (success, info, warning, error, reset string) {
	if os.Getenv("NO_COLOR") != "" {
		return
	}

	// darker colours read better on light backgrounds
	if mode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}
	reset = "\033[0m"
	return
}
