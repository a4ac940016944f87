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
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// loadConfigOrDefault never fails; a broken file is logged and the
// defaults win
func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	InitializeColors(config.Display.Color)
	return config
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func interactive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func startShell() {
	config := loadConfigOrDefault()
	if err := runShell(os.Stdin, os.Stdout, NewSession(config), interactive()); err != nil {
		log.Fatalf("Error reading input: %v", err)
	}
}

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Height-balanced binary search tree playground [Version: %s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, version)

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Starts a line-oriented tree session",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell reads session commands from standard input, one per line`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			startShell()
		},
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore redraws the tree after every command`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if err := runExplorer(NewSession(config)); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}

	var cmdExec = &cobra.Command{
		Use:   "exec <commands>",
		Short: "Runs ';' separated session commands and exits",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Exec runs commands such as "insert 10 20 30; print; depth 10"`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			out, err := NewSession(config).ExecScript(strings.Join(args, " "))
			if out != "" {
				fmt.Println(out)
			}
			if err != nil && !errors.Is(err, ErrQuit) {
				fmt.Fprintf(os.Stderr, "%s%v%s\n", Error, err, Reset)
				os.Exit(1)
			}
		},
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Shows single and double rotations and a random tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo prints the tree after each insert of two fixed cases, then builds a random tree`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			seed, _ := cmd.Flags().GetUint64("seed")
			if count, _ := cmd.Flags().GetInt("count"); count > 0 {
				config.Demo.RandomCount = count
			}
			if err := runDemo(os.Stdout, config.Demo, newRand(seed)); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}
	cmdDemo.Flags().Uint64("seed", 0, "seed for the random tree (0 picks one)")
	cmdDemo.Flags().Int("count", 0, "number of random keys (overrides demo.random_count)")

	var cmdScenario = &cobra.Command{
		Use:   "scenario",
		Short: "Runs the insert, delete, range and depth walkthrough",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Scenario inserts and deletes keys, then queries a range and a depth`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			loadConfigOrDefault()
			opts := defaultScenario
			opts.Insert, _ = cmd.Flags().GetIntSlice("insert")
			opts.Delete, _ = cmd.Flags().GetIntSlice("delete")
			opts.RangeLow, _ = cmd.Flags().GetInt("range-low")
			opts.RangeHigh, _ = cmd.Flags().GetInt("range-high")
			opts.Depth, _ = cmd.Flags().GetInt("depth")
			runScenario(os.Stdout, opts)
		},
	}
	cmdScenario.Flags().IntSlice("insert", defaultScenario.Insert, "keys to insert")
	cmdScenario.Flags().IntSlice("delete", defaultScenario.Delete, "keys to delete")
	cmdScenario.Flags().Int("range-low", defaultScenario.RangeLow, "lower bound of the range query")
	cmdScenario.Flags().Int("range-high", defaultScenario.RangeHigh, "upper bound of the range query")
	cmdScenario.Flags().Int("depth", defaultScenario.Depth, "key whose depth is reported")

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Hammers a tree with random inserts and deletes",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stress verifies ordering, balance and heights while mutating a tree at random`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if ops, _ := cmd.Flags().GetInt("ops"); ops > 0 {
				config.Stress.Operations = ops
			}
			seed, _ := cmd.Flags().GetUint64("seed")
			quiet, _ := cmd.Flags().GetBool("quiet")

			var bar *progressbar.ProgressBar
			if !quiet {
				bar = newStressBar(config.Stress.Operations)
			}
			report, err := runStress(config.Stress, newRand(seed), bar)
			if err != nil {
				fmt.Fprintf(os.Stderr, "\n%s❌ %v%s\n", Error, err, Reset)
				os.Exit(1)
			}
			fmt.Printf("%s%s%s\n", Green, report, Reset)
		},
	}
	cmdStress.Flags().Int("ops", 0, "number of operations (overrides stress.operations)")
	cmdStress.Flags().Uint64("seed", 0, "random seed (0 picks one)")
	cmdStress.Flags().Bool("quiet", false, "no progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the current configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints ~/.avltree.yaml, creating it with defaults if missing`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			loadConfigOrDefault()
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to shell when no subcommand is provided
			startShell()
		},
	}
	rootCmd.AddCommand(cmdShell, cmdExplore, cmdExec, cmdDemo, cmdScenario, cmdStress, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}
