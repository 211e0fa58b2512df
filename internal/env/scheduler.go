// Package env provides the environment collaborator: timed-event scheduling
// and decoration placement. It consumes the level's broadcasts and public
// API only; it owns no grid or clock state of its own.
package env

import (
	"github.com/vovakirdan/levelsim/internal/level"
)

// TimedEvent is a named environment event with a start threshold expressed
// as a percentage (0-100) of the level duration.
type TimedEvent struct {
	Name           string
	StartAtPercent float64
}

// eventPhase makes "fires exactly once" a structural transition rather than
// a scattered boolean.
type eventPhase uint8

const (
	eventNotStarted eventPhase = iota
	eventStarted
)

type scheduledEvent struct {
	TimedEvent
	phase eventPhase
}

// Scheduler watches LevelTimeChanged broadcasts and marks each configured
// event started the first time elapsed/duration crosses its threshold,
// issuing a StartEvent broadcast through the level. Idempotent per event.
type Scheduler struct {
	lvl    *level.GridLevel
	events []scheduledEvent
}

// NewScheduler creates a scheduler for the given events and registers it on
// the level.
func NewScheduler(lvl *level.GridLevel, events []TimedEvent) *Scheduler {
	s := &Scheduler{lvl: lvl, events: make([]scheduledEvent, 0, len(events))}
	for _, e := range events {
		s.events = append(s.events, scheduledEvent{TimedEvent: e})
	}
	lvl.Register(s)
	return s
}

// LevelTimeChanged implements level.TimeListener.
func (s *Scheduler) LevelTimeChanged(elapsed float64) {
	duration := s.lvl.Duration()
	for i := range s.events {
		e := &s.events[i]
		if e.phase != eventNotStarted {
			continue
		}
		if elapsed/duration >= e.StartAtPercent/100.0 {
			e.phase = eventStarted
			s.lvl.BroadcastEventStart(e.Name)
		}
	}
}

// Started reports whether the named event has crossed its start threshold.
func (s *Scheduler) Started(name string) bool {
	for _, e := range s.events {
		if e.Name == name {
			return e.phase == eventStarted
		}
	}
	return false
}

// Pending returns the names of events that have not started yet, in
// configuration order.
func (s *Scheduler) Pending() []string {
	names := make([]string, 0)
	for _, e := range s.events {
		if e.phase == eventNotStarted {
			names = append(names, e.Name)
		}
	}
	return names
}
