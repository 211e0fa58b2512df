package level

import (
	"errors"
	"testing"
)

func TestNewClockRejectsNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -1, -0.5} {
		if _, err := NewClock(d); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("NewClock(%v): expected ErrInvalidConfiguration, got %v", d, err)
		}
	}
}

func TestClockAdvanceClampsToDuration(t *testing.T) {
	c, err := NewClock(10.0)
	if err != nil {
		t.Fatalf("NewClock() failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		c.Advance(0.7)
		if c.Elapsed() > c.Duration() {
			t.Fatalf("elapsed %v exceeded duration %v", c.Elapsed(), c.Duration())
		}
	}
	if c.Elapsed() != 10.0 {
		t.Errorf("expected elapsed clamped at 10.0, got %v", c.Elapsed())
	}
	if !c.Ended() {
		t.Error("clock should have ended")
	}
}

func TestClockPauseFreezesElapsed(t *testing.T) {
	c, err := NewClock(10.0)
	if err != nil {
		t.Fatalf("NewClock() failed: %v", err)
	}

	c.Advance(2.0)
	c.Pause()
	if !c.Paused() {
		t.Fatal("clock should be paused")
	}

	for i := 0; i < 10; i++ {
		c.Advance(1.0)
	}
	if c.Elapsed() != 2.0 {
		t.Errorf("paused clock advanced: elapsed %v", c.Elapsed())
	}

	c.Resume()
	c.Advance(1.0)
	if c.Elapsed() != 3.0 {
		t.Errorf("expected elapsed 3.0 after resume, got %v", c.Elapsed())
	}
}

func TestClockEndedIsTerminal(t *testing.T) {
	c, err := NewClock(1.0)
	if err != nil {
		t.Fatalf("NewClock() failed: %v", err)
	}

	c.Advance(2.0)
	if !c.Ended() {
		t.Fatal("clock should have ended")
	}

	// Pause/resume must not leave the ended phase or restart advancing.
	c.Pause()
	c.Resume()
	c.Advance(1.0)
	if !c.Ended() || c.Elapsed() != 1.0 {
		t.Errorf("ended clock changed: ended=%v elapsed=%v", c.Ended(), c.Elapsed())
	}
}

func TestClockReachedDurationEdgeTriggered(t *testing.T) {
	c, err := NewClock(2.0)
	if err != nil {
		t.Fatalf("NewClock() failed: %v", err)
	}

	c.Advance(1.0)
	if c.ReachedDuration() {
		t.Error("ReachedDuration fired before the boundary")
	}

	c.Advance(1.5)
	if !c.ReachedDuration() {
		t.Error("ReachedDuration should fire on the crossing tick")
	}
	if c.ReachedDuration() {
		t.Error("ReachedDuration fired twice")
	}

	// Staying clamped at the duration must not re-arm the edge.
	c.Advance(1.0)
	if c.ReachedDuration() {
		t.Error("ReachedDuration re-fired after clamping")
	}
}

func TestClockBroadcastSpacing(t *testing.T) {
	c, err := NewClock(10.0)
	if err != nil {
		t.Fatalf("NewClock() failed: %v", err)
	}

	var broadcasts []float64
	for i := 0; i < 16; i++ {
		c.Advance(0.5)
		if c.ShouldBroadcastTick() {
			broadcasts = append(broadcasts, c.Elapsed())
		}
	}

	want := []float64{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0}
	if len(broadcasts) != len(want) {
		t.Fatalf("expected %d broadcasts, got %d (%v)", len(want), len(broadcasts), broadcasts)
	}
	for i, e := range want {
		if broadcasts[i] != e {
			t.Errorf("broadcast %d: expected %v, got %v", i, e, broadcasts[i])
		}
	}
}

func TestClockFinalBroadcastAtDuration(t *testing.T) {
	c, err := NewClock(10.0)
	if err != nil {
		t.Fatalf("NewClock() failed: %v", err)
	}

	// Advance to 9.8, broadcast, then overshoot the boundary with a small dt.
	c.Advance(9.8)
	if !c.ShouldBroadcastTick() {
		t.Fatal("expected broadcast at 9.8")
	}

	c.Advance(0.5)
	if c.Elapsed() != 10.0 {
		t.Fatalf("expected clamp at 10.0, got %v", c.Elapsed())
	}

	// Spacing since the last broadcast is only 0.2, but the duration
	// boundary guarantees one final broadcast.
	if !c.ShouldBroadcastTick() {
		t.Error("expected final broadcast at the duration boundary")
	}
	if c.ShouldBroadcastTick() {
		t.Error("final broadcast repeated")
	}
}
