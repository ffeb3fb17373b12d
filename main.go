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
	"io"
	"math"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/cybrota/wordbook/dictionary"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	asciiLogo := `
 _    _               _ _                 _
| |  | |             | | |               | |
| |  | | ___  _ __ __| | |__   ___   ___ | | __
| |/\| |/ _ \| '__/ _' | '_ \ / _ \ / _ \| |/ /
\  /\  / (_) | | | (_| | |_) | (_) | (_) |   <
 \/  \/ \___/|_|  \__,_|_.__/ \___/ \___/|_|\_\
An AVL tree backed word dictionary driven by a text command stream [Version: %s%s%s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var configFile string
	var command string
	var preload string
	var showTree bool

	var cmdRun = &cobra.Command{
		Use:   "run [files...]",
		Short: "Runs dictionary commands from files, a string or stdin",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run executes + - ! and lookup commands read from the given files in order, or from stdin`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			runSession(configFile, command, preload, args)
		},
	}
	cmdRun.Flags().StringVarP(&command, "command", "c", "", "commands to execute before any file")
	cmdRun.Flags().StringVar(&preload, "preload", "", "dump file to load before executing commands")

	var cmdInspect = &cobra.Command{
		Use:   "inspect <dump>",
		Short: "Print statistics about a dump file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Inspect loads a dump and reports its size, tree height and structural check`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			inspect(os.Stdout, configFile, args[0], showTree)
		},
	}
	cmdInspect.Flags().BoolVar(&showTree, "tree", false, "print the tree")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Wordbook usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the wordbook CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the current configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings displays the configuration, creating the default file if missing`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(configFile)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Wordbook version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "wordbook",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command over stdin when no subcommand is provided
			runSession(configFile, "", "", nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file (default ~/"+configFileName+")")
	rootCmd.AddCommand(cmdRun, cmdInspect, cmdUsage, cmdSettings, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		exitwithstatus.Message("Error: %s\n", err)
	}
}

func mustLoadConfig(path string) *Config {
	config, err := LoadConfig(path)
	if err != nil {
		exitwithstatus.Message("Error: %s\n", err)
	}
	return config
}

func runSession(configFile string, command string, preload string, files []string) {
	config := mustLoadConfig(configFile)

	if err := startLogging(config.Logging); err != nil {
		exitwithstatus.Message("Logger setup failed with error: %s\n", err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	log.Info("starting…")
	defer log.Info("shutting down…")

	dict := dictionary.New(config.Dictionary.dictionaryConfig())
	if preload != "" {
		log.Infof("preload: %s", preload)
		if err := dict.LoadFile(preload); err != nil {
			log.Criticalf("preload error: %s", err)
			exitwithstatus.Message("Error: %s\n", err)
		}
	}

	session := NewSession(dict, os.Stdout, logger.New("session"))

	if command != "" {
		tokens, err := shellwords.Parse(command)
		if err != nil {
			exitwithstatus.Message("Error: cannot split command: %s\n", err)
		}
		if err := session.RunTokens(tokens); err != nil {
			log.Errorf("command string: %s", err)
			exitwithstatus.Message("Error: %s\n", err)
		}
	}

	if len(files) == 0 {
		if command == "" {
			if err := session.Run(os.Stdin); err != nil {
				log.Errorf("stdin: %s", err)
				exitwithstatus.Message("Error: %s\n", err)
			}
		}
		return
	}

	for _, name := range files {
		log.Infof("reading commands from: %s", name)
		if err := runFile(session, name); err != nil {
			log.Errorf("%s: %s", name, err)
			exitwithstatus.Message("Error: %s\n", err)
		}
	}
}

func runFile(session *Session, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return session.Run(f)
}

// avlHeightBound is the largest height an AVL tree of n nodes can have.
func avlHeightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}

func inspect(w io.Writer, configFile string, path string, showTree bool) {
	config := mustLoadConfig(configFile)

	dict := dictionary.New(config.Dictionary.dictionaryConfig())
	if err := dict.LoadFile(path); err != nil {
		exitwithstatus.Message("Error: %s\n", err)
	}

	fmt.Fprintf(w, "📍 Dump: %s%s%s\n", Info, path, Reset)
	fmt.Fprintf(w, "  • %swords%s: %d\n", Green, Reset, dict.Size())
	fmt.Fprintf(w, "  • %sheight%s: %d (AVL bound %.1f)\n", Green, Reset, dict.Height(), avlHeightBound(dict.Size()))
	if err := dict.Check(); err != nil {
		fmt.Fprintf(w, "  • %scheck%s: %sfailed: %s%s\n", Green, Reset, Error, err, Reset)
	} else {
		fmt.Fprintf(w, "  • %scheck%s: ok\n", Green, Reset)
	}

	if showTree {
		fmt.Fprintln(w)
		dict.Print(w)
	}
}
