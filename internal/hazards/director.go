package hazards

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/levelsim/internal/level"
)

// Reaction maps a timed environment event to a cell mutation: when the named
// event starts, Count random Usable cells are moved into State.
type Reaction struct {
	Event string
	State level.CellState
	Count int
}

// Director is the damage-cells gameplay driver. It reacts to StartEvent
// broadcasts by damaging sampled cells, and resolves every Damaged cell to
// Destroyed when the level duration is reached.
type Director struct {
	lvl       *level.GridLevel
	logger    *log.Logger
	reactions []Reaction

	transitions int // cell changes observed, including our own
}

// NewDirector creates a director and registers it on the level.
func NewDirector(lvl *level.GridLevel, reactions []Reaction, logger *log.Logger) *Director {
	if logger == nil {
		logger = log.Default()
	}
	d := &Director{lvl: lvl, logger: logger, reactions: reactions}
	lvl.Register(d)
	return d
}

// EventStarted implements level.StartListener.
func (d *Director) EventStarted(name string) {
	for _, r := range d.reactions {
		if r.Event != name {
			continue
		}
		cells, err := d.lvl.RandomCellsWithState(level.NewStateSet(level.Usable), r.Count)
		if err != nil {
			d.logger.Error("cell sampling failed", "event", name, "error", err)
			continue
		}
		for _, c := range cells {
			if err := d.lvl.SetCellState(c, r.State); err != nil {
				d.logger.Error("cell mutation failed", "event", name, "cell", c, "error", err)
			}
		}
		d.logger.Debug("event reaction applied", "event", name, "state", r.State, "cells", len(cells))
	}
}

// LevelDurationReached implements level.DurationListener: leftover Damaged
// cells collapse to Destroyed at the end of the level.
func (d *Director) LevelDurationReached(float64) {
	cells := d.coordsWithState(level.Damaged)
	for _, c := range cells {
		if err := d.lvl.SetCellState(c, level.Destroyed); err != nil {
			d.logger.Error("end-of-level resolution failed", "cell", c, "error", err)
		}
	}
}

// coordsWithState returns every cell currently in the given state.
func (d *Director) coordsWithState(s level.CellState) []level.Coord {
	cells, err := d.lvl.RandomCellsWithState(level.NewStateSet(s), d.lvl.Width()*d.lvl.Height())
	if err != nil {
		d.logger.Error("cell query failed", "state", s, "error", err)
		return nil
	}
	return cells
}

// CellStateChanged implements level.CellListener, tallying transitions for
// run reporting.
func (d *Director) CellStateChanged(level.CellChange) {
	d.transitions++
}

// Transitions returns the number of cell state changes observed.
func (d *Director) Transitions() int {
	return d.transitions
}
