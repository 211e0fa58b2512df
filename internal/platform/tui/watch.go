package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/levelsim/internal/level"
	"github.com/vovakirdan/levelsim/internal/sim"
	"github.com/vovakirdan/levelsim/internal/storage"
)

// maxFeedLines bounds the on-screen event feed.
const maxFeedLines = 6

// eventFeed collects broadcast events for display. It is shared by pointer
// so the feed survives Bubble Tea's value-copied model updates.
type eventFeed struct {
	lines       []string
	transitions int
}

func (f *eventFeed) push(line string) {
	f.lines = append(f.lines, line)
	if len(f.lines) > maxFeedLines {
		f.lines = f.lines[len(f.lines)-maxFeedLines:]
	}
}

func (f *eventFeed) EventStarted(name string) {
	f.push(fmt.Sprintf("event started: %s", name))
}

func (f *eventFeed) LevelDurationReached(duration float64) {
	f.push(fmt.Sprintf("level ended at %.1f", duration))
}

func (f *eventFeed) CellStateChanged(level.CellChange) {
	f.transitions++
}

// WatchModel is the Bubble Tea model for watching a level run live.
type WatchModel struct {
	runner   *sim.Runner
	store    *storage.Store
	logger   *log.Logger
	tickRate int
	keys     WatchKeyMap
	help     help.Model
	feed     *eventFeed
	width    int
	height   int
	quitting bool
	runSaved bool
}

// NewWatchModel creates a watch model around a composed runner.
func NewWatchModel(runner *sim.Runner, store *storage.Store, logger *log.Logger, tickRate int) WatchModel {
	if tickRate <= 0 {
		tickRate = 60
	}
	feed := &eventFeed{}
	runner.Level().Register(feed)

	h := help.New()
	h.ShowAll = false

	return WatchModel{
		runner:   runner,
		store:    store,
		logger:   logger,
		tickRate: tickRate,
		keys:     DefaultWatchKeyMap(),
		help:     h,
		feed:     feed,
	}
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		lvl := m.runner.Level()
		if lvl.Ended() {
			return m, nil
		}
		if lvl.Paused() {
			lvl.Resume()
		} else {
			lvl.Pause()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		runner, err := sim.Build(m.runner.Config(), m.logger)
		if err != nil {
			m.logger.Error("cannot rebuild level", "error", err)
			return m, nil
		}
		m.runner = runner
		m.feed = &eventFeed{}
		m.runner.Level().Register(m.feed)
		m.runSaved = false
		return m, nil
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m WatchModel) handleTick() (tea.Model, tea.Cmd) {
	lvl := m.runner.Level()

	if !lvl.Ended() {
		m.runner.Tick(1.0 / float64(m.tickRate))
	}

	// Save the run once on completion
	if lvl.Ended() && !m.runSaved {
		if m.store != nil {
			if _, err := m.store.SaveRun(m.runner.Report()); err != nil {
				m.logger.Warn("could not save run", "error", err)
			} else {
				m.feed.push("run saved")
			}
		}
		m.runSaved = true
	}

	// Keep ticking so the UI stays responsive after the level ends
	return m, tickCmd(m.tickRate)
}

// View renders the current run state.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	lvl := m.runner.Level()
	cfg := m.runner.Config()

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", cfg.Name, cfg.Difficulty)))
	b.WriteString("\n")

	status := fmt.Sprintf("t=%5.1f / %.1f  transitions=%d", lvl.Elapsed(), lvl.Duration(), m.feed.transitions)
	switch {
	case lvl.Ended():
		status += "  [ended]"
	case lvl.Paused():
		status += "  [paused]"
	}
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n\n")

	b.WriteString(RenderGrid(lvl))
	b.WriteString("\n\n")
	b.WriteString(RenderLegend())
	b.WriteString("\n")

	if len(m.feed.lines) > 0 {
		feedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
		for _, line := range m.feed.lines {
			b.WriteString(feedStyle.Render("* " + line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// RunWatch starts the Bubble Tea program for a live run.
func RunWatch(runner *sim.Runner, store *storage.Store, logger *log.Logger, tickRate int) error {
	model := NewWatchModel(runner, store, logger, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
