package core

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a front-end tells a game about its surroundings.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; equal seeds and inputs replay the same game

	// CellW and CellH are the field units covered by one terminal cell.
	// Zero means the game's own default.
	CellW int
	CellH int
}

// DefaultConfig returns an 80x24 terminal at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Ticks converts seconds to whole ticks at the configured rate, rounding
// to nearest.
func (c RuntimeConfig) Ticks(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return int(seconds*float64(rate) + 0.5)
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score    int
	Level    int // Level reached
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // Events raised during this tick, in order
}
