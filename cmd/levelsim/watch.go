package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelsim/internal/platform/tui"
	"github.com/vovakirdan/levelsim/internal/sim"
	"github.com/vovakirdan/levelsim/internal/storage"
)

var watchCmd = &cobra.Command{
	Use:   "watch [level.yaml]",
	Short: "Watch a level run live in the terminal",
	Long: `Run the given level definition with a live terminal view of the grid.
The run is recorded in the database when the level ends.

Controls:
  P/Space    - Pause/Resume
  R          - Restart with a fresh level
  Q/Ctrl+C   - Quit

Examples:
  levelsim watch
  levelsim watch configs/levels/arena.yaml
  levelsim watch --difficulty hard --tps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, nightmare")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, err := resolveLevel(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "levelsim"})

	runner, err := sim.Build(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error composing level: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - watching still works
		store = nil
	}

	runErr := tui.RunWatch(runner, store, logger, flagTPS)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error watching level: %v\n", runErr)
		os.Exit(1)
	}
}
