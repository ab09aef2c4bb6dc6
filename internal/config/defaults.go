package config

import (
	_ "embed"
)

//go:embed defaults/flapdragon.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Field: Field{
			Width:  80,
			Height: 50,
		},
		Physics: Physics{
			StepMS:       75,
			Gravity:      0.2,
			MaxFallSpeed: 2.0,
			FlapImpulse:  -2.0,
		},
		Player: Player{
			StartX: 5,
			StartY: 25,
		},
		Obstacles: Obstacles{
			MaxGapSize:   20,
			MinGapSize:   2,
			GapShrink:    1,
			GapCenterMin: 10,
			GapCenterMax: 40,
			SpawnOffset:  80,
		},
		Host: Host{
			FPS: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
