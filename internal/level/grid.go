package level

import "fmt"

// Grid represents the level board as a rectangular grid of cell states.
// Cells are stored in row-major order: index = y*W + x. Dimensions are
// immutable after construction and every coordinate holds exactly one state.
//
// The grid is a pure data structure: it never broadcasts. State-change
// notification is the orchestrator's responsibility.
type Grid struct {
	w     int
	h     int
	cells []CellState
}

// NewGrid creates a grid with the given dimensions, every cell Usable.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	g := &Grid{
		w:     w,
		h:     h,
		cells: make([]CellState, w*h),
	}
	for i := range g.cells {
		g.cells[i] = Usable
	}
	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.h }

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Get returns the state of the cell at the given coordinate.
func (g *Grid) Get(c Coord) (CellState, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.w, g.h)
	}
	return g.cells[g.index(c)], nil
}

// Set writes a new state to the cell at the given coordinate.
// It returns the previous state and whether the state actually changed.
func (g *Grid) Set(c Coord, state CellState) (old CellState, changed bool, err error) {
	if !g.InBounds(c) {
		return 0, false, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.w, g.h)
	}
	i := g.index(c)
	old = g.cells[i]
	if old == state {
		return old, false, nil
	}
	g.cells[i] = state
	return old, true, nil
}

// CoordsWithStateIn returns the coordinates whose state is a member of the
// given set, in row-major order (y outer, x inner). The order is
// deterministic for fixed grid contents, which keeps sampling reproducible.
func (g *Grid) CoordsWithStateIn(set StateSet) []Coord {
	coords := make([]Coord, 0)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if set.Contains(g.cells[y*g.w+x]) {
				coords = append(coords, C(x, y))
			}
		}
	}
	return coords
}

// CountByState tallies how many cells currently hold each state.
func (g *Grid) CountByState() map[CellState]int {
	counts := make(map[CellState]int, numCellStates)
	for _, s := range g.cells {
		counts[s]++
	}
	return counts
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, s := range g.cells {
		if s != other.cells[i] {
			return false
		}
	}
	return true
}
