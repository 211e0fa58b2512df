// Package config provides YAML-based level definition loading and
// difficulty presets for the simulation.
package config

import (
	"fmt"

	"github.com/vovakirdan/levelsim/internal/level"
)

// LevelConfig is a complete level definition as loaded from YAML.
// The simulation core consumes only the numeric and seed fields; preview and
// prefab references are carried for rendering collaborators.
type LevelConfig struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Preview     string     `yaml:"preview,omitempty"`
	Difficulty  Difficulty `yaml:"difficulty"`
	Duration    float64    `yaml:"duration"`
	Seed        string     `yaml:"seed,omitempty"`

	Grid      GridConfig       `yaml:"grid"`
	Events    []EventConfig    `yaml:"events,omitempty"`
	Obstacles []ObstacleConfig `yaml:"obstacles,omitempty"`
}

// GridConfig defines the grid dimensions and world-space cell size.
type GridConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
}

// EventConfig is a timed environment event: it starts when elapsed time
// crosses StartAt percent of the level duration. An optional effect tells
// the gameplay collaborator to mutate cells when the event starts.
type EventConfig struct {
	Name    string        `yaml:"name"`
	StartAt float64       `yaml:"start_at"` // percentage of duration, 0-100
	Effect  *EffectConfig `yaml:"effect,omitempty"`
}

// EffectConfig moves Cells random usable cells into State (a lower-case
// cell state name, e.g. "damaged" or "anomaly") when its event starts.
type EffectConfig struct {
	State string `yaml:"state"`
	Cells int    `yaml:"cells"`
}

// ObstacleConfig scatters Count obstacles of the given prefab at level start.
type ObstacleConfig struct {
	Prefab string `yaml:"prefab"`
	Count  int    `yaml:"count"`
}

// Difficulty is a named difficulty preset.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyNormal    Difficulty = "normal"
	DifficultyHard      Difficulty = "hard"
	DifficultyNightmare Difficulty = "nightmare"
)

// Valid reports whether d is a known preset. The empty string is accepted
// and treated as normal.
func (d Difficulty) Valid() bool {
	switch d {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyNightmare:
		return true
	}
	return false
}

// obstacleScale returns the obstacle count multiplier for the preset.
func (d Difficulty) obstacleScale() float64 {
	switch d {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	case DifficultyNightmare:
		return 2.0
	default:
		return 1.0
	}
}

// Validate checks the definition against the invalid-configuration taxonomy.
func (c *LevelConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: level name is required", level.ErrInvalidConfiguration)
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", level.ErrInvalidConfiguration, c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %v", level.ErrInvalidConfiguration, c.Grid.CellSize)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration %v", level.ErrInvalidConfiguration, c.Duration)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", level.ErrInvalidConfiguration, c.Difficulty)
	}
	for _, e := range c.Events {
		if e.Name == "" {
			return fmt.Errorf("%w: event without a name", level.ErrInvalidConfiguration)
		}
		if e.StartAt < 0 || e.StartAt > 100 {
			return fmt.Errorf("%w: event %q start_at %v outside 0-100",
				level.ErrInvalidConfiguration, e.Name, e.StartAt)
		}
		if e.Effect != nil {
			if _, ok := level.ParseCellState(e.Effect.State); !ok {
				return fmt.Errorf("%w: event %q effect state %q",
					level.ErrInvalidConfiguration, e.Name, e.Effect.State)
			}
			if e.Effect.Cells < 0 {
				return fmt.Errorf("%w: event %q effect cells %d",
					level.ErrInvalidConfiguration, e.Name, e.Effect.Cells)
			}
		}
	}
	for _, o := range c.Obstacles {
		if o.Count < 0 {
			return fmt.Errorf("%w: obstacle %q count %d",
				level.ErrInvalidConfiguration, o.Prefab, o.Count)
		}
	}
	return nil
}

// ApplyDifficulty scales the obstacle counts by the preset's multiplier.
// Normal (and empty) leave the definition unchanged.
func (c *LevelConfig) ApplyDifficulty() {
	scale := c.Difficulty.obstacleScale()
	if scale == 1.0 {
		return
	}
	for i := range c.Obstacles {
		scaled := int(float64(c.Obstacles[i].Count) * scale)
		if c.Obstacles[i].Count > 0 && scaled == 0 {
			scaled = 1
		}
		c.Obstacles[i].Count = scaled
	}
}

// LevelParams converts the definition to the core level configuration.
func (c *LevelConfig) LevelParams() level.Config {
	return level.Config{
		Width:    c.Grid.Width,
		Height:   c.Grid.Height,
		CellSize: c.Grid.CellSize,
		Duration: c.Duration,
		Seed:     c.Seed,
	}
}
