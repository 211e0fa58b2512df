package level

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Config holds the numeric and seed fields the core consumes. Presentation
// fields (name, preview assets, prefab references) belong to the host.
type Config struct {
	Width    int
	Height   int
	CellSize float64 // world units per cell edge
	Duration float64 // level duration in time units
	Seed     string  // deterministic RNG seed; empty means non-deterministic
}

// GridLevel is the single-owner level object: it composes the grid, the
// clock, the selector, and the broadcaster, and exposes the public
// query/mutation/lifecycle API. Single-threaded, cooperative: the host's
// per-frame tick drives Tick and all broadcast delivery is synchronous.
type GridLevel struct {
	grid     *Grid
	clock    *Clock
	selector *Selector
	bus      *Broadcaster
	rng      *rand.Rand
	cellSize float64
}

// New constructs a level from the given configuration.
func New(cfg Config, logger *log.Logger) (*GridLevel, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Duration <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d duration=%v",
			ErrInvalidConfiguration, cfg.Width, cfg.Height, cfg.Duration)
	}
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %v", ErrInvalidConfiguration, cfg.CellSize)
	}
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	clock, err := NewClock(cfg.Duration)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(SeedFromString(cfg.Seed)))
	return &GridLevel{
		grid:     grid,
		clock:    clock,
		selector: NewSelector(rng),
		bus:      NewBroadcaster(logger),
		rng:      rng,
		cellSize: cfg.CellSize,
	}, nil
}

// SeedFromString derives an RNG seed from a string seed. An empty string
// yields a non-deterministic, time-based seed.
func SeedFromString(seed string) int64 {
	if seed == "" {
		return time.Now().UnixNano()
	}
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}

// Register attaches a listener for every event kind it implements.
func (l *GridLevel) Register(listener any) {
	l.bus.Register(listener)
}

// Unregister detaches a listener from all event kinds.
func (l *GridLevel) Unregister(listener any) {
	l.bus.Unregister(listener)
}

// Tick advances the level clock by dt and fans out due broadcasts.
// No-op while paused or ended. The LevelDurationReached broadcast is issued
// exactly once, on the tick that crosses the duration boundary.
func (l *GridLevel) Tick(dt float64) {
	l.clock.Advance(dt)
	if l.clock.ShouldBroadcastTick() {
		l.bus.TimeChanged(l.clock.Elapsed())
	}
	if l.clock.ReachedDuration() {
		l.bus.DurationReached(l.clock.Duration())
	}
}

// Pause suspends the level clock.
func (l *GridLevel) Pause() { l.clock.Pause() }

// Resume restarts a paused level clock.
func (l *GridLevel) Resume() { l.clock.Resume() }

// Paused reports whether the level clock is paused.
func (l *GridLevel) Paused() bool { return l.clock.Paused() }

// Ended reports whether the level has reached its duration.
func (l *GridLevel) Ended() bool { return l.clock.Ended() }

// Elapsed returns the elapsed level time.
func (l *GridLevel) Elapsed() float64 { return l.clock.Elapsed() }

// Duration returns the fixed level duration.
func (l *GridLevel) Duration() float64 { return l.clock.Duration() }

// Width returns the grid width in cells.
func (l *GridLevel) Width() int { return l.grid.Width() }

// Height returns the grid height in cells.
func (l *GridLevel) Height() int { return l.grid.Height() }

// CellSize returns the world-space size of one cell edge.
func (l *GridLevel) CellSize() float64 { return l.cellSize }

// CellState returns the state of the cell at the given coordinate.
func (l *GridLevel) CellState(c Coord) (CellState, error) {
	return l.grid.Get(c)
}

// SetCellState writes a new state to the cell at the given coordinate and
// broadcasts CellStateChanged iff the state actually changed. Setting a cell
// to its current state is an idempotent no-op with no broadcast.
func (l *GridLevel) SetCellState(c Coord, state CellState) error {
	old, changed, err := l.grid.Set(c, state)
	if err != nil {
		return err
	}
	if changed {
		l.bus.CellChanged(CellChange{Coord: c, Old: old, New: state})
	}
	return nil
}

// RandomCellsWithState samples up to count distinct cells whose state is a
// member of the given set. Candidate order is row-major, so results are
// reproducible for a fixed seed and call sequence.
func (l *GridLevel) RandomCellsWithState(set StateSet, count int) ([]Coord, error) {
	return l.selector.Sample(l.grid.CoordsWithStateIn(set), count)
}

// CellWorldCenter maps a grid coordinate to the world-space center of its
// cell. Column x grows rightward from a center-relative origin and row y
// grows downward (row 0 topmost): gridX = x - width/2,
// gridY = (height-1-y) - height/2, with the center offset by half a cell.
// The mapping is pure and exactly reproducible for visual collaborators.
func (l *GridLevel) CellWorldCenter(c Coord) (Vec2, error) {
	if !l.grid.InBounds(c) {
		return Vec2{}, fmt.Errorf("%w: %v on %dx%d grid",
			ErrOutOfBounds, c, l.grid.Width(), l.grid.Height())
	}
	gridX := c.X - l.grid.Width()/2
	gridY := (l.grid.Height() - 1 - c.Y) - l.grid.Height()/2
	return Vec2{
		X: (float64(gridX) + 0.5) * l.cellSize,
		Y: (float64(gridY) + 0.5) * l.cellSize,
	}, nil
}

// BroadcastEventStart fans a StartEvent out to all start listeners. Used by
// the environment scheduler when a timed event crosses its start threshold.
func (l *GridLevel) BroadcastEventStart(name string) {
	l.bus.EventStarted(name)
}

// CountByState tallies how many cells currently hold each state.
func (l *GridLevel) CountByState() map[CellState]int {
	return l.grid.CountByState()
}
