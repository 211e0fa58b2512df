package level

import "fmt"

// broadcastInterval is the minimum elapsed-time spacing between consecutive
// LevelTimeChanged broadcasts. Capping the rate bounds notification overhead
// on the hot per-frame path while the final broadcast at the duration
// boundary is still guaranteed.
const broadcastInterval = 1.0

// clockPhase is the state of the level clock.
type clockPhase uint8

const (
	clockRunning clockPhase = iota
	clockPaused
	clockEnded // terminal
)

// Clock owns the level's elapsed time, pause state, and fixed duration.
// Elapsed time is monotonically non-decreasing while running and is clamped
// to the duration; once the duration is reached the clock ends permanently.
type Clock struct {
	phase         clockPhase
	elapsed       float64
	duration      float64
	lastBroadcast float64
	endPending    bool
}

// NewClock creates a running clock with the given fixed duration.
func NewClock(duration float64) (*Clock, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration %v", ErrInvalidConfiguration, duration)
	}
	return &Clock{phase: clockRunning, duration: duration}, nil
}

// Advance adds dt to the elapsed time, clamping at the duration.
// It is a no-op while paused or ended. Reaching the duration transitions
// the clock into its terminal ended phase.
func (c *Clock) Advance(dt float64) {
	if c.phase != clockRunning || dt <= 0 {
		return
	}
	c.elapsed += dt
	if c.elapsed >= c.duration {
		c.elapsed = c.duration
		c.phase = clockEnded
		c.endPending = true
	}
}

// ShouldBroadcastTick reports whether a LevelTimeChanged broadcast is due:
// either at least one broadcast interval has elapsed since the last one, or
// the duration boundary has been crossed and not yet announced. A true
// result records the current elapsed time as broadcast.
func (c *Clock) ShouldBroadcastTick() bool {
	due := c.elapsed-c.lastBroadcast >= broadcastInterval ||
		(c.phase == clockEnded && c.lastBroadcast != c.duration)
	if due {
		c.lastBroadcast = c.elapsed
	}
	return due
}

// ReachedDuration reports, exactly once, that the clock has entered its
// ended phase. Edge-triggered: subsequent calls return false even though
// the clock stays ended.
func (c *Clock) ReachedDuration() bool {
	if !c.endPending {
		return false
	}
	c.endPending = false
	return true
}

// Pause suspends the clock. No-op unless running; the ended phase is terminal.
func (c *Clock) Pause() {
	if c.phase == clockRunning {
		c.phase = clockPaused
	}
}

// Resume restarts a paused clock.
func (c *Clock) Resume() {
	if c.phase == clockPaused {
		c.phase = clockRunning
	}
}

// Elapsed returns the elapsed level time.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// Duration returns the fixed level duration.
func (c *Clock) Duration() float64 { return c.duration }

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.phase == clockPaused }

// Ended reports whether the clock has reached its duration.
func (c *Clock) Ended() bool { return c.phase == clockEnded }
