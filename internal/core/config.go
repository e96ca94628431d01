package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Goals reached over the whole run
	Level    int  // Levels cleared so far
	GameOver bool // Terminal: the board became unsolvable
	Won      bool // Every level of the pack was cleared
	Paused   bool
}

// Finished reports whether the run has an outcome worth recording.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// Event is something the game reports from a tick, for logging and
// spectators. Attrs are alternating key/value pairs.
type Event struct {
	Name  string
	Attrs []any
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
