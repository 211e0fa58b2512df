// Package hazards provides the gameplay collaborator: obstacle placement at
// level start and cell-damaging reactions to timed environment events. All
// mutations go through the level's public API so every transition is
// broadcast to the other listeners.
package hazards

import (
	"fmt"

	"github.com/vovakirdan/levelsim/internal/level"
)

// Obstacle describes one obstacle kind to scatter over the grid. The prefab
// name is opaque to the simulation; it matters only to a renderer.
type Obstacle struct {
	Prefab string
	Count  int
}

// PlaceObstacles blocks Count random Usable cells per obstacle entry and
// returns the blocked coordinates grouped by prefab name. Placement happens
// once, before the first tick, so the sampled cells are deterministic for a
// fixed level seed.
func PlaceObstacles(lvl *level.GridLevel, obstacles []Obstacle) (map[string][]level.Coord, error) {
	placed := make(map[string][]level.Coord, len(obstacles))
	usable := level.NewStateSet(level.Usable)
	for _, o := range obstacles {
		cells, err := lvl.RandomCellsWithState(usable, o.Count)
		if err != nil {
			return nil, fmt.Errorf("hazards: place %q: %w", o.Prefab, err)
		}
		for _, c := range cells {
			if err := lvl.SetCellState(c, level.Blocked); err != nil {
				return nil, fmt.Errorf("hazards: place %q: %w", o.Prefab, err)
			}
		}
		placed[o.Prefab] = cells
	}
	return placed, nil
}
