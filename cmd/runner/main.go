// runner is a three-lane endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play a run directly
//	runner menu              - Start the menu (play, demo, session scores)
//	runner sim               - Run a headless simulation and print the result
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--config <path>     - Load gameplay settings from a YAML file
//	--log-file <path>   - Write logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Temple Runner - an endless lane runner in your terminal",
	Long: `Temple Runner is a terminal endless runner. Switch between three lanes,
jump, dodge falling obstacles and collect coins while the pace picks up.

Available commands:
  play     - Play a run directly
  menu     - Menu with play, demo and session scores
  sim      - Headless deterministic simulation
  config   - Print the default configuration

Examples:
  runner play
  runner play --seed 42 --fps 30
  runner menu --log-file runner.log
  runner sim --ticks 5000 --seed 7 --autopilot
  runner config > my-runner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
