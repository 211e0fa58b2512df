package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/level.yaml
var defaultLevelYAML []byte

// Default returns the embedded default level definition.
func Default() (LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(defaultLevelYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded default level: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("embedded default level: %w", err)
	}
	return cfg, nil
}
