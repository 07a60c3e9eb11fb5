package core

// RuntimeConfig contains configuration passed to the engine at initialization.
// The engine uses it to size the world and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // World/screen width in cells
	ScreenH  int   // World/screen height in cells
	TickRate int   // Simulation ticks per second (default 20)
	Seed     int64 // RNG seed for deterministic platform generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  32,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
	}
}
