package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a level definition from a YAML file.
func Load(path string) (LevelConfig, error) {
	var cfg LevelConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse level %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("level %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDir scans a directory (non-recursive) for .yaml/.yml level files and
// returns the valid ones sorted by name for deterministic ordering.
// Invalid files are skipped.
func LoadDir(dir string) ([]LevelConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory %s: %w", dir, err)
	}

	var levels []LevelConfig
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		cfg, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		levels = append(levels, cfg)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels, nil
}

// Resolve loads the level at customPath when given, otherwise falls back to
// the embedded default level.
func Resolve(customPath string) (LevelConfig, error) {
	if customPath != "" {
		return Load(customPath)
	}
	return Default()
}
