package level

import (
	"errors"
	"testing"
)

func TestNewGridStartsUsable(t *testing.T) {
	g, err := NewGrid(10, 5)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	if g.Width() != 10 || g.Height() != 5 {
		t.Errorf("expected 10x5 grid, got %dx%d", g.Width(), g.Height())
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			s, err := g.Get(C(x, y))
			if err != nil {
				t.Fatalf("Get(%d,%d) failed: %v", x, y, err)
			}
			if s != Usable {
				t.Errorf("at (%d,%d): expected Usable, got %v", x, y, s)
			}
		}
	}
}

func TestNewGridInvalidDimensions(t *testing.T) {
	testCases := []struct {
		w, h int
	}{
		{0, 5},
		{5, 0},
		{-1, 5},
		{5, -1},
		{0, 0},
	}

	for _, tc := range testCases {
		if _, err := NewGrid(tc.w, tc.h); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewGrid(%d,%d): expected ErrInvalidDimension, got %v", tc.w, tc.h, err)
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g, err := NewGrid(5, 5)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	testCases := []struct {
		coord    Coord
		inBounds bool
	}{
		{C(0, 0), true},
		{C(4, 4), true},
		{C(-1, 0), false},
		{C(0, -1), false},
		{C(5, 0), false},
		{C(0, 5), false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.coord); got != tc.inBounds {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.coord, tc.inBounds, got)
		}

		_, err := g.Get(tc.coord)
		if tc.inBounds && err != nil {
			t.Errorf("Get(%v): unexpected error %v", tc.coord, err)
		}
		if !tc.inBounds && !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%v): expected ErrOutOfBounds, got %v", tc.coord, err)
		}

		_, _, err = g.Set(tc.coord, Blocked)
		if !tc.inBounds && !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%v): expected ErrOutOfBounds, got %v", tc.coord, err)
		}
	}
}

func TestGridSetReportsChange(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	old, changed, err := g.Set(C(1, 1), Damaged)
	if err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if old != Usable || !changed {
		t.Errorf("expected (Usable, true), got (%v, %v)", old, changed)
	}

	// Same state again: no change reported, state untouched.
	old, changed, err = g.Set(C(1, 1), Damaged)
	if err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if old != Damaged || changed {
		t.Errorf("expected (Damaged, false), got (%v, %v)", old, changed)
	}

	s, _ := g.Get(C(1, 1))
	if s != Damaged {
		t.Errorf("expected Damaged at (1,1), got %v", s)
	}
}

func TestGridCoordsWithStateInRowMajor(t *testing.T) {
	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	for _, c := range []Coord{C(2, 0), C(0, 1), C(1, 0)} {
		if _, _, err := g.Set(c, Blocked); err != nil {
			t.Fatalf("Set(%v) failed: %v", c, err)
		}
	}

	got := g.CoordsWithStateIn(NewStateSet(Blocked))
	want := []Coord{C(1, 0), C(2, 0), C(0, 1)} // y outer, x inner

	if len(got) != len(want) {
		t.Fatalf("expected %d coords, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("at index %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	// Multi-state sets collect all members.
	g.Set(C(2, 1), Anomaly)
	mixed := g.CoordsWithStateIn(NewStateSet(Blocked, Anomaly))
	if len(mixed) != 4 {
		t.Errorf("expected 4 coords for {Blocked,Anomaly}, got %d", len(mixed))
	}
}

func TestGridCountByState(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	g.Set(C(0, 0), Blocked)
	g.Set(C(1, 0), Blocked)
	g.Set(C(2, 2), Destroyed)

	counts := g.CountByState()
	if counts[Blocked] != 2 {
		t.Errorf("expected 2 Blocked, got %d", counts[Blocked])
	}
	if counts[Destroyed] != 1 {
		t.Errorf("expected 1 Destroyed, got %d", counts[Destroyed])
	}
	if counts[Usable] != 13 {
		t.Errorf("expected 13 Usable, got %d", counts[Usable])
	}
}

func TestGridClone(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	g.Set(C(1, 1), Anomaly)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Error("clone should be equal to original")
	}

	g.Set(C(1, 1), Usable)
	s, _ := clone.Get(C(1, 1))
	if s != Anomaly {
		t.Error("clone should not be affected by original modification")
	}
}

func TestStateSet(t *testing.T) {
	set := NewStateSet(Usable, Damaged)

	testCases := []struct {
		state    CellState
		contains bool
	}{
		{Usable, true},
		{Damaged, true},
		{Blocked, false},
		{Anomaly, false},
	}

	for _, tc := range testCases {
		if got := set.Contains(tc.state); got != tc.contains {
			t.Errorf("Contains(%v): expected %v, got %v", tc.state, tc.contains, got)
		}
	}

	if !NewStateSet().Empty() {
		t.Error("empty set should report Empty")
	}
}
