package core

// RuntimeConfig describes the surface a game session runs on.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the coarse status the platform reads after each tick.
type GameState struct {
	Score    int  // Current score
	Started  bool // Whether the first flap has happened
	GameOver bool // Whether the run has ended
}
