package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// GameState is the HUD-facing view of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // distance + coins * coin points
	Coins    int  // Coins collected this run
	Distance int  // Distance travelled this run
	Frames   int  // Simulation ticks since the run started
	Started  bool // Whether a run has been started at least once
	GameOver bool // Whether the current run has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// RunStarted is true only on the tick a run (or restart) began.
	RunStarted bool
	// RunEnded is true only on the tick the run hit an obstacle.
	RunEnded bool
}
