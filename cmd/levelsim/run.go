package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelsim/internal/config"
	"github.com/vovakirdan/levelsim/internal/level"
	"github.com/vovakirdan/levelsim/internal/sim"
	"github.com/vovakirdan/levelsim/internal/storage"
)

var (
	flagDifficulty string
	flagNoSave     bool
)

var runCmd = &cobra.Command{
	Use:   "run [level.yaml]",
	Short: "Run a level headless and print the report",
	Long: `Run the given level definition to completion without a UI and print
the run report. Omitting the level path runs the embedded default level.

Difficulty options:
  easy      - Half the obstacle density
  normal    - As defined in the level file
  hard      - 1.5x obstacle density
  nightmare - Double obstacle density

Examples:
  levelsim run
  levelsim run configs/levels/arena.yaml
  levelsim run --difficulty nightmare --seed replay-42
  levelsim run --no-save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, nightmare")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the database")
}

// resolveLevel loads the level definition for a command, applying the global
// seed override and the difficulty preset.
func resolveLevel(args []string) (config.LevelConfig, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.Resolve(path)
	if err != nil {
		return cfg, err
	}
	if flagSeed != "" {
		cfg.Seed = flagSeed
	}
	if flagDifficulty != "" {
		cfg.Difficulty = config.Difficulty(flagDifficulty)
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyDifficulty()
	return cfg, nil
}

func runRun(cmd *cobra.Command, args []string) {
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

	report, err := runner.Run(flagTPS)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
		os.Exit(1)
	}

	printReport(report)

	if flagNoSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(report); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", err)
		return
	}
	fmt.Printf("\nRun %s saved.\n", report.RunID)
}

// printReport writes a run report to stdout.
func printReport(report sim.Report) {
	fmt.Printf("Level:      %s (%s)\n", report.LevelName, report.Difficulty)
	fmt.Printf("Seed:       %s\n", report.Seed)
	fmt.Printf("Duration:   %.1f (%d ticks, %d time broadcasts)\n",
		report.Duration, report.Ticks, report.TimeBroadcasts)
	fmt.Printf("Events:     %d\n", len(report.EventsStarted))
	for _, name := range report.EventsStarted {
		fmt.Printf("  - %s\n", name)
	}
	fmt.Printf("Transitions: %d\n", report.Transitions)

	fmt.Println("Final cells:")
	states := make([]level.CellState, 0, len(report.FinalStates))
	for s := range report.FinalStates {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	for _, s := range states {
		if report.FinalStates[s] == 0 {
			continue
		}
		fmt.Printf("  %-10s %d\n", s.String(), report.FinalStates[s])
	}
}
