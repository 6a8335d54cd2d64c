package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic tile draws
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Accumulated score for the whole game
	Round    int  // Current round (1-based)
	GameOver bool // A run ended (lost or won) and an end screen is showing
	Won      bool // The final round was cleared
	Waiting  bool // An interstitial screen is waiting for Confirm
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
