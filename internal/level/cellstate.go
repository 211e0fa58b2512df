// Package level provides the core grid-level simulation: a rectangular
// grid of cell states, a level clock, seeded random cell sampling, and
// synchronous event broadcasting to registered listeners.
// This package is UI-agnostic and deterministic.
package level

// CellState represents the state of a single grid cell.
type CellState uint8

const (
	Blocked CellState = iota
	Usable
	Used
	Destroyed
	Damaged
	Anomaly
)

// numCellStates is the size of the closed CellState set.
const numCellStates = 6

// String returns the string representation of a cell state.
func (s CellState) String() string {
	switch s {
	case Blocked:
		return "Blocked"
	case Usable:
		return "Usable"
	case Used:
		return "Used"
	case Destroyed:
		return "Destroyed"
	case Damaged:
		return "Damaged"
	case Anomaly:
		return "Anomaly"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a member of the closed cell-state set.
func (s CellState) Valid() bool {
	return s < numCellStates
}

// AllCellStates returns every member of the cell-state set in declaration order.
func AllCellStates() []CellState {
	return []CellState{Blocked, Usable, Used, Destroyed, Damaged, Anomaly}
}

// ParseCellState converts a lower-case state name to its CellState value.
func ParseCellState(name string) (CellState, bool) {
	switch name {
	case "blocked":
		return Blocked, true
	case "usable":
		return Usable, true
	case "used":
		return Used, true
	case "destroyed":
		return Destroyed, true
	case "damaged":
		return Damaged, true
	case "anomaly":
		return Anomaly, true
	}
	return 0, false
}

// StateSet is a bitmask over CellState values, used for membership queries.
type StateSet uint8

// NewStateSet builds a set containing the given states.
func NewStateSet(states ...CellState) StateSet {
	var set StateSet
	for _, s := range states {
		set |= 1 << s
	}
	return set
}

// Contains reports whether the set includes the given state.
func (set StateSet) Contains(s CellState) bool {
	return set&(1<<s) != 0
}

// Empty reports whether the set contains no states.
func (set StateSet) Empty() bool {
	return set == 0
}
