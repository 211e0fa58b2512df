package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/levelsim/internal/level"
)

func validConfig() LevelConfig {
	return LevelConfig{
		Name:       "test",
		Difficulty: DifficultyNormal,
		Duration:   30,
		Grid:       GridConfig{Width: 10, Height: 5, CellSize: 1.5},
		Events:     []EventConfig{{Name: "storm", StartAt: 50}},
		Obstacles:  []ObstacleConfig{{Prefab: "rock", Count: 4}},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	testCases := []struct {
		name   string
		mutate func(*LevelConfig)
	}{
		{"missing name", func(c *LevelConfig) { c.Name = "" }},
		{"zero width", func(c *LevelConfig) { c.Grid.Width = 0 }},
		{"negative height", func(c *LevelConfig) { c.Grid.Height = -2 }},
		{"zero cell size", func(c *LevelConfig) { c.Grid.CellSize = 0 }},
		{"zero duration", func(c *LevelConfig) { c.Duration = 0 }},
		{"bad difficulty", func(c *LevelConfig) { c.Difficulty = "impossible" }},
		{"unnamed event", func(c *LevelConfig) { c.Events[0].Name = "" }},
		{"event over 100", func(c *LevelConfig) { c.Events[0].StartAt = 120 }},
		{"negative event", func(c *LevelConfig) { c.Events[0].StartAt = -5 }},
		{"bad effect state", func(c *LevelConfig) {
			c.Events[0].Effect = &EffectConfig{State: "molten", Cells: 2}
		}},
		{"negative effect cells", func(c *LevelConfig) {
			c.Events[0].Effect = &EffectConfig{State: "damaged", Cells: -2}
		}},
		{"negative obstacles", func(c *LevelConfig) { c.Obstacles[0].Count = -1 }},
	}

	for _, tc := range testCases {
		c := validConfig()
		tc.mutate(&c)
		if err := c.Validate(); !errors.Is(err, level.ErrInvalidConfiguration) {
			t.Errorf("%s: expected ErrInvalidConfiguration, got %v", tc.name, err)
		}
	}
}

func TestApplyDifficulty(t *testing.T) {
	testCases := []struct {
		difficulty Difficulty
		count      int
		want       int
	}{
		{DifficultyEasy, 10, 5},
		{DifficultyNormal, 10, 10},
		{DifficultyHard, 10, 15},
		{DifficultyNightmare, 10, 20},
		{"", 10, 10},
		{DifficultyEasy, 1, 1}, // never scales a positive count to zero
	}

	for _, tc := range testCases {
		c := validConfig()
		c.Difficulty = tc.difficulty
		c.Obstacles[0].Count = tc.count
		c.ApplyDifficulty()
		if got := c.Obstacles[0].Count; got != tc.want {
			t.Errorf("%q x %d: expected %d, got %d", tc.difficulty, tc.count, tc.want, got)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")

	data := []byte(`
name: arena
difficulty: hard
duration: 45.5
seed: arena-7
grid:
  width: 12
  height: 8
  cell_size: 1.0
events:
  - name: storm
    start_at: 25
obstacles:
  - prefab: pillar
    count: 3
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Name != "arena" || cfg.Difficulty != DifficultyHard {
		t.Errorf("unexpected header: %q %q", cfg.Name, cfg.Difficulty)
	}
	if cfg.Duration != 45.5 || cfg.Seed != "arena-7" {
		t.Errorf("unexpected timing: %v %q", cfg.Duration, cfg.Seed)
	}
	if cfg.Grid.Width != 12 || cfg.Grid.Height != 8 || cfg.Grid.CellSize != 1.0 {
		t.Errorf("unexpected grid: %+v", cfg.Grid)
	}
	if len(cfg.Events) != 1 || cfg.Events[0].StartAt != 25 {
		t.Errorf("unexpected events: %+v", cfg.Events)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")

	data := []byte("name: broken\nduration: -1\ngrid: {width: 4, height: 4, cell_size: 1}\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, level.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestLoadDirSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()

	write := func(file, name string) {
		data := []byte("name: " + name + "\nduration: 10\ngrid: {width: 4, height: 4, cell_size: 1}\n")
		if err := os.WriteFile(filepath.Join(dir, file), data, 0o644); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
	}
	write("b.yaml", "beta")
	write("a.yaml", "alpha")
	// Invalid file is skipped, not fatal.
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("duration: 0"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	// Non-YAML files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	levels, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(levels))
	}
	if levels[0].Name != "alpha" || levels[1].Name != "beta" {
		t.Errorf("levels not sorted by name: %q %q", levels[0].Name, levels[1].Name)
	}
}

func TestDefaultEmbedded(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if cfg.Name == "" {
		t.Error("default level has no name")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default level invalid: %v", err)
	}
}
