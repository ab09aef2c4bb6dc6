package core

// RuntimeConfig contains host-loop settings passed from the CLI to the platform.
type RuntimeConfig struct {
	TickRate int // Frames per second driven by the host loop
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 30,
	}
}
