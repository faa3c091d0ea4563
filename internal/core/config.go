package core

// RuntimeConfig contains configuration passed to a play session at start.
type RuntimeConfig struct {
	ScreenW int    // Initial screen width in characters
	ScreenH int    // Initial screen height in characters
	Seed    uint64 // RNG seed for deterministic food placement; 0 means entropy
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}
