// Package config provides YAML-based game configuration loading and
// validation for flapdragon.
package config

// Config contains all tunable parameters of the game and its host loop.
type Config struct {
	Field     Field     `yaml:"field"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Host      Host      `yaml:"host"`
}

// Field defines the playfield dimensions in character cells.
type Field struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines the fixed-step player physics.
type Physics struct {
	StepMS       float64 `yaml:"step_ms"`        // Accumulated milliseconds before a physics step
	Gravity      float64 `yaml:"gravity"`        // Velocity added per physics step
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	FlapImpulse  float64 `yaml:"flap_impulse"`   // Velocity set by a flap (negative = up)
}

// Player defines where a fresh player starts.
type Player struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// Obstacles defines obstacle generation.
type Obstacles struct {
	MaxGapSize   int `yaml:"max_gap_size"`   // Gap size at score 0
	MinGapSize   int `yaml:"min_gap_size"`   // Floor the gap never shrinks below
	GapShrink    int `yaml:"gap_shrink"`     // Rows removed from the gap per point
	GapCenterMin int `yaml:"gap_center_min"` // Lowest gap center row (inclusive)
	GapCenterMax int `yaml:"gap_center_max"` // Highest gap center row (inclusive)
	SpawnOffset  int `yaml:"spawn_offset"`   // Distance ahead of the player for a new obstacle
}

// Host defines the frame pacing of the terminal host loop.
type Host struct {
	FPS int `yaml:"fps"`
}
