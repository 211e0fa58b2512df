package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/levelsim/internal/level"
)

// stateStyles maps level.CellState to lipgloss styles.
var stateStyles = map[level.CellState]lipgloss.Style{
	level.Blocked:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	level.Usable:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	level.Used:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	level.Destroyed: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	level.Damaged:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	level.Anomaly:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
}

// stateGlyphs maps level.CellState to the rune drawn for each cell.
var stateGlyphs = map[level.CellState]rune{
	level.Blocked:   '#',
	level.Usable:    '.',
	level.Used:      'o',
	level.Destroyed: 'x',
	level.Damaged:   '!',
	level.Anomaly:   '?',
}

// RenderGrid converts the level grid to a styled string for display.
// Groups adjacent cells with the same state to minimize ANSI escape sequences.
func RenderGrid(lvl *level.GridLevel) string {
	var sb strings.Builder
	sb.Grow(lvl.Width()*lvl.Height()*2 + lvl.Height())

	for y := range lvl.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same state for efficiency
		x := 0
		for x < lvl.Width() {
			start, err := lvl.CellState(level.C(x, y))
			if err != nil {
				return sb.String()
			}

			var run strings.Builder
			for x < lvl.Width() {
				state, err := lvl.CellState(level.C(x, y))
				if err != nil || state != start {
					break
				}
				run.WriteRune(stateGlyphs[state])
				run.WriteRune(' ')
				x++
			}

			sb.WriteString(stateStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}

// RenderLegend returns a one-line legend mapping glyphs to state names.
func RenderLegend() string {
	parts := make([]string, 0, len(level.AllCellStates()))
	for _, s := range level.AllCellStates() {
		parts = append(parts, stateStyles[s].Render(string(stateGlyphs[s])+" "+s.String()))
	}
	return strings.Join(parts, "  ")
}
