package level

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

// recordingListener implements every event kind and records deliveries.
type recordingListener struct {
	times     []float64
	durations []float64
	changes   []CellChange
	starts    []string
}

func (r *recordingListener) LevelTimeChanged(elapsed float64)      { r.times = append(r.times, elapsed) }
func (r *recordingListener) LevelDurationReached(duration float64) { r.durations = append(r.durations, duration) }
func (r *recordingListener) CellStateChanged(change CellChange)    { r.changes = append(r.changes, change) }
func (r *recordingListener) EventStarted(name string)              { r.starts = append(r.starts, name) }

// timeOnlyListener opts into a single event kind.
type timeOnlyListener struct {
	times []float64
}

func (r *timeOnlyListener) LevelTimeChanged(elapsed float64) { r.times = append(r.times, elapsed) }

// panickyListener fails on every delivery.
type panickyListener struct{}

func (panickyListener) LevelTimeChanged(float64) { panic("boom") }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestBroadcastDeliversToAllRegistered(t *testing.T) {
	b := NewBroadcaster(quietLogger())

	first := &recordingListener{}
	second := &recordingListener{}
	b.Register(first)
	b.Register(second)

	b.TimeChanged(1.0)
	b.DurationReached(10.0)
	b.CellChanged(CellChange{Coord: C(1, 2), Old: Usable, New: Damaged})
	b.EventStarted("storm")

	for i, l := range []*recordingListener{first, second} {
		if len(l.times) != 1 || l.times[0] != 1.0 {
			t.Errorf("listener %d: times %v", i, l.times)
		}
		if len(l.durations) != 1 || l.durations[0] != 10.0 {
			t.Errorf("listener %d: durations %v", i, l.durations)
		}
		if len(l.changes) != 1 || l.changes[0].Old != Usable || l.changes[0].New != Damaged {
			t.Errorf("listener %d: changes %v", i, l.changes)
		}
		if len(l.starts) != 1 || l.starts[0] != "storm" {
			t.Errorf("listener %d: starts %v", i, l.starts)
		}
	}
}

func TestBroadcastSkipsListenersWithoutHandler(t *testing.T) {
	b := NewBroadcaster(quietLogger())

	partial := &timeOnlyListener{}
	b.Register(partial)

	// Event kinds the listener does not implement are structurally skipped.
	b.DurationReached(10.0)
	b.CellChanged(CellChange{Coord: C(0, 0), Old: Usable, New: Used})
	b.EventStarted("fog")

	b.TimeChanged(2.5)
	if len(partial.times) != 1 || partial.times[0] != 2.5 {
		t.Errorf("expected exactly one time delivery, got %v", partial.times)
	}
}

func TestBroadcastIsolatesFailingListener(t *testing.T) {
	b := NewBroadcaster(quietLogger())

	before := &timeOnlyListener{}
	after := &timeOnlyListener{}
	b.Register(before)
	b.Register(panickyListener{})
	b.Register(after)

	b.TimeChanged(3.0)

	if len(before.times) != 1 {
		t.Errorf("listener before the failure missed delivery: %v", before.times)
	}
	if len(after.times) != 1 {
		t.Errorf("listener after the failure missed delivery: %v", after.times)
	}
}

func TestBroadcastRegistrationOrder(t *testing.T) {
	b := NewBroadcaster(quietLogger())

	var order []string
	b.Register(orderedListener{name: "a", order: &order})
	b.Register(orderedListener{name: "b", order: &order})
	b.Register(orderedListener{name: "c", order: &order})

	b.TimeChanged(1.0)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("delivery %d: expected %q, got %q", i, want[i], order[i])
		}
	}
}

type orderedListener struct {
	name  string
	order *[]string
}

func (l orderedListener) LevelTimeChanged(float64) { *l.order = append(*l.order, l.name) }

func TestUnregisterStopsDelivery(t *testing.T) {
	b := NewBroadcaster(quietLogger())

	kept := &recordingListener{}
	dropped := &recordingListener{}
	b.Register(kept)
	b.Register(dropped)

	b.Unregister(dropped)
	b.TimeChanged(1.0)
	b.EventStarted("rain")

	if len(kept.times) != 1 || len(kept.starts) != 1 {
		t.Errorf("kept listener missed deliveries: %v %v", kept.times, kept.starts)
	}
	if len(dropped.times) != 0 || len(dropped.starts) != 0 {
		t.Errorf("unregistered listener still delivered: %v %v", dropped.times, dropped.starts)
	}
}
