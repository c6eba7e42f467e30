package core

// RuntimeConfig contains configuration passed to front ends at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal front end)
	ScreenH  int   // Screen height in characters (terminal front end)
	TickRate int   // Frame updates per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score float64 // +0.5 per obstacle cleared
	Ended bool    // Whether the game is over
}

// StepResult is returned by a frame update.
type StepResult struct {
	State  GameState
	Scored float64 // Score gained during this frame
	Ended  bool    // True only on the frame that ended the game
}
