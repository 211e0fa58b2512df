package level

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// CellChange describes one successful cell state transition. Immutable;
// produced exactly once per transition and delivered to all current
// cell listeners synchronously.
type CellChange struct {
	Coord Coord
	Old   CellState
	New   CellState
}

// Listener interfaces, one per event kind. A collaborator opts into an
// event kind by implementing its interface; absence of a handler is a
// structural condition, not an error.

// TimeListener receives LevelTimeChanged broadcasts.
type TimeListener interface {
	LevelTimeChanged(elapsed float64)
}

// DurationListener receives the single LevelDurationReached broadcast.
type DurationListener interface {
	LevelDurationReached(duration float64)
}

// CellListener receives CellStateChanged broadcasts.
type CellListener interface {
	CellStateChanged(change CellChange)
}

// StartListener receives StartEvent broadcasts issued when a timed
// environment event crosses its start threshold.
type StartListener interface {
	EventStarted(name string)
}

// Broadcaster fans events out to registered listeners. Delivery is
// synchronous and in registration order per event kind. A panicking
// listener is isolated and reported; the fan-out continues.
type Broadcaster struct {
	logger *log.Logger

	time     []TimeListener
	duration []DurationListener
	cell     []CellListener
	start    []StartListener
}

// NewBroadcaster creates an empty broadcaster. A nil logger falls back to
// the package default.
func NewBroadcaster(logger *log.Logger) *Broadcaster {
	if logger == nil {
		logger = log.Default()
	}
	return &Broadcaster{logger: logger}
}

// Register attaches a listener for every event kind it implements.
// Listeners implementing none of the kinds are ignored.
func (b *Broadcaster) Register(listener any) {
	if l, ok := listener.(TimeListener); ok {
		b.time = append(b.time, l)
	}
	if l, ok := listener.(DurationListener); ok {
		b.duration = append(b.duration, l)
	}
	if l, ok := listener.(CellListener); ok {
		b.cell = append(b.cell, l)
	}
	if l, ok := listener.(StartListener); ok {
		b.start = append(b.start, l)
	}
}

// Unregister detaches a previously registered listener from all event kinds.
func (b *Broadcaster) Unregister(listener any) {
	if l, ok := listener.(TimeListener); ok {
		b.time = removeListener(b.time, l)
	}
	if l, ok := listener.(DurationListener); ok {
		b.duration = removeListener(b.duration, l)
	}
	if l, ok := listener.(CellListener); ok {
		b.cell = removeListener(b.cell, l)
	}
	if l, ok := listener.(StartListener); ok {
		b.start = removeListener(b.start, l)
	}
}

func removeListener[T comparable](listeners []T, target T) []T {
	out := listeners[:0]
	for _, l := range listeners {
		if l != target {
			out = append(out, l)
		}
	}
	return out
}

// TimeChanged delivers LevelTimeChanged to all time listeners.
func (b *Broadcaster) TimeChanged(elapsed float64) {
	for _, l := range b.time {
		b.deliver("LevelTimeChanged", l, func() { l.LevelTimeChanged(elapsed) })
	}
}

// DurationReached delivers LevelDurationReached to all duration listeners.
func (b *Broadcaster) DurationReached(duration float64) {
	for _, l := range b.duration {
		b.deliver("LevelDurationReached", l, func() { l.LevelDurationReached(duration) })
	}
}

// CellChanged delivers CellStateChanged to all cell listeners.
func (b *Broadcaster) CellChanged(change CellChange) {
	for _, l := range b.cell {
		b.deliver("CellStateChanged", l, func() { l.CellStateChanged(change) })
	}
}

// EventStarted delivers StartEvent to all start listeners.
func (b *Broadcaster) EventStarted(name string) {
	for _, l := range b.start {
		b.deliver("StartEvent", l, func() { l.EventStarted(name) })
	}
}

// deliver invokes one handler, converting a panic into a logged report so a
// failing listener cannot abort the remaining fan-out or the triggering tick.
func (b *Broadcaster) deliver(event string, listener any, handle func()) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("listener failed during broadcast",
				"event", event,
				"listener", fmt.Sprintf("%T", listener),
				"panic", r,
			)
		}
	}()
	handle()
}
