package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/levelsim/internal/config"
	"github.com/vovakirdan/levelsim/internal/platform/tui"
	"github.com/vovakirdan/levelsim/internal/storage"
)

var (
	flagResultsLimit int
	flagInteractive  bool
	flagLevelsDir    string
)

var resultsCmd = &cobra.Command{
	Use:   "results [level]",
	Short: "Show run history for a level",
	Long: `Display the most recent runs recorded for a level. Defaults to the
embedded default level when no name is given.

With --interactive the history opens in a browsable table covering every
level definition in the levels directory.

Examples:
  levelsim results
  levelsim results proving-grounds
  levelsim results proving-grounds --limit 25
  levelsim results --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of runs to show")
	resultsCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse history in a table UI")
	resultsCmd.Flags().StringVar(&flagLevelsDir, "levels", "configs/levels", "Levels directory for interactive mode")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		runResultsInteractive(store)
		return
	}

	levelName := ""
	if len(args) > 0 {
		levelName = args[0]
	} else {
		cfg, err := config.Default()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		levelName = cfg.Name
	}

	runs, err := store.RecentRuns(levelName, flagResultsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run History - %s\n", levelName)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'levelsim run' to record the first one!\n")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-10s  %-7s  %-7s  %-10s  %s\n",
		"When", "Difficulty", "Ticks", "Events", "Destroyed", "Anomaly")
	fmt.Printf("  %-16s  %-10s  %-7s  %-7s  %-10s  %s\n",
		"----", "----------", "-----", "------", "---------", "-------")

	// Print runs
	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-10s  %-7d  %-7d  %-10d  %d\n",
			dateStr, r.Difficulty, r.Ticks, r.EventsStarted, r.CellsDestroyed, r.CellsAnomaly)
	}

	count, err := store.RunCount(levelName)
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d runs\n", count)
	}
}

func runResultsInteractive(store *storage.Store) {
	levels, err := config.LoadDir(flagLevelsDir)
	if err != nil || len(levels) == 0 {
		// Fall back to the embedded default so the table has something to show
		cfg, defErr := config.Default()
		if defErr != nil {
			fmt.Fprintf(os.Stderr, "Error: no levels available: %v\n", defErr)
			os.Exit(1)
		}
		levels = []config.LevelConfig{cfg}
	}

	// Get terminal size for table layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunResults(store, levels, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing results: %v\n", err)
		os.Exit(1)
	}
}
