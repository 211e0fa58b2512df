// levelsim is a deterministic grid-level simulator for the terminal.
//
// Usage:
//
//	levelsim run [level.yaml]     - Run a level headless and print the report
//	levelsim watch [level.yaml]   - Watch a level run live in the terminal
//	levelsim list [dir]           - List level definitions in a directory
//	levelsim results [level]      - Show run history for a level
//	levelsim serve                - Start SSH server for remote watching
//
// Global flags:
//
//	--tps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Override the level's RNG seed
//	--db <path>     - Set database path (default: ~/.levelsim/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTPS    int
	flagSeed   string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "levelsim",
	Short: "Levelsim - Deterministic grid-level simulation in your terminal",
	Long: `Levelsim runs timed grid levels: a cell grid evolves under scheduled
environment events, obstacles, and hazard reactions, all driven by a
deterministic seeded RNG.

Available commands:
  run      - Run a level headless and print the report
  watch    - Watch a level run live
  list     - List level definitions in a directory
  results  - View run history
  serve    - Start SSH server for remote watching

Examples:
  levelsim run
  levelsim run configs/levels/arena.yaml --difficulty hard
  levelsim watch --seed replay-42
  levelsim list configs/levels
  levelsim results proving-grounds
  levelsim serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "RNG seed override (empty = level's own seed)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.levelsim/runs.db", "Path to run database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
