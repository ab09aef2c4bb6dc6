package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.flapdragon/config.yaml -> ./configs/flapdragon.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that cannot be read or parsed is an error;
// the implicit locations are skipped silently.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flapdragon.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %dx%d", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Physics.StepMS <= 0:
		return fmt.Errorf("%w: physics.step_ms must be positive, got %v", ErrInvalid, c.Physics.StepMS)
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: physics.max_fall_speed must be positive, got %v", ErrInvalid, c.Physics.MaxFallSpeed)
	case c.Obstacles.MinGapSize < 0 || c.Obstacles.MinGapSize > c.Obstacles.MaxGapSize:
		return fmt.Errorf("%w: obstacles.min_gap_size %d must be within [0, max_gap_size %d]",
			ErrInvalid, c.Obstacles.MinGapSize, c.Obstacles.MaxGapSize)
	case c.Obstacles.GapShrink < 0:
		return fmt.Errorf("%w: obstacles.gap_shrink must not be negative, got %d", ErrInvalid, c.Obstacles.GapShrink)
	case c.Obstacles.GapCenterMin > c.Obstacles.GapCenterMax:
		return fmt.Errorf("%w: obstacles.gap_center_min %d is above gap_center_max %d",
			ErrInvalid, c.Obstacles.GapCenterMin, c.Obstacles.GapCenterMax)
	case c.Obstacles.SpawnOffset <= 0:
		return fmt.Errorf("%w: obstacles.spawn_offset must be positive, got %d", ErrInvalid, c.Obstacles.SpawnOffset)
	case c.Player.StartY < 0 || c.Player.StartY > c.Field.Height:
		return fmt.Errorf("%w: player.start_y %d is outside the field", ErrInvalid, c.Player.StartY)
	case c.Host.FPS <= 0:
		return fmt.Errorf("%w: host.fps must be positive, got %d", ErrInvalid, c.Host.FPS)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flapdragon", filename)
}
