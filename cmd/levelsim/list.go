package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelsim/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List level definitions in a directory",
	Long: `Shows the valid level definitions found in a directory.
Defaults to ./configs/levels when no directory is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	dir := "configs/levels"
	if len(args) > 0 {
		dir = args[0]
	}

	levels, err := config.LoadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(levels) == 0 {
		fmt.Printf("No levels found in %s.\n", dir)
		return
	}

	fmt.Printf("Levels in %s:\n", dir)
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-10s  %-8s  %-8s  %s\n", maxNameLen, "Name", "Grid", "Duration", "Events", "Difficulty")
	fmt.Printf("  %-*s  %-10s  %-8s  %-8s  %s\n", maxNameLen, "----", "----", "--------", "------", "----------")

	// Print levels
	for _, l := range levels {
		grid := fmt.Sprintf("%dx%d", l.Grid.Width, l.Grid.Height)
		fmt.Printf("  %-*s  %-10s  %-8.1f  %-8d  %s\n",
			maxNameLen, l.Name, grid, l.Duration, len(l.Events), l.Difficulty)
	}

	fmt.Println()
	fmt.Println("Run 'levelsim run <path>' to run a level.")
}
