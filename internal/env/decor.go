package env

import (
	"fmt"

	"github.com/vovakirdan/levelsim/internal/level"
)

// Placement is one decoration anchored at a cell's world-space center.
// A downstream renderer instantiates the named asset at the position; the
// decorator itself never renders.
type Placement struct {
	Name string
	Cell level.Coord
	Pos  level.Vec2
}

// Decorator scatters named decorations over sampled cells and tracks ambient
// effects toggled by StartEvent broadcasts.
type Decorator struct {
	lvl        *level.GridLevel
	placements []Placement
	active     []string
}

// NewDecorator creates a decorator and registers it on the level for
// StartEvent broadcasts.
func NewDecorator(lvl *level.GridLevel) *Decorator {
	d := &Decorator{lvl: lvl}
	lvl.Register(d)
	return d
}

// Scatter samples count cells in the given states and records one placement
// per cell, anchored at the cell's world center.
func (d *Decorator) Scatter(name string, states level.StateSet, count int) error {
	cells, err := d.lvl.RandomCellsWithState(states, count)
	if err != nil {
		return fmt.Errorf("env: scatter %q: %w", name, err)
	}
	for _, c := range cells {
		pos, err := d.lvl.CellWorldCenter(c)
		if err != nil {
			return fmt.Errorf("env: scatter %q: %w", name, err)
		}
		d.placements = append(d.placements, Placement{Name: name, Cell: c, Pos: pos})
	}
	return nil
}

// EventStarted implements level.StartListener: a started timed event becomes
// an active ambient effect.
func (d *Decorator) EventStarted(name string) {
	d.active = append(d.active, name)
}

// Placements returns all recorded decoration placements.
func (d *Decorator) Placements() []Placement {
	return d.placements
}

// ActiveEffects returns the names of ambient effects activated so far, in
// activation order.
func (d *Decorator) ActiveEffects() []string {
	return d.active
}
