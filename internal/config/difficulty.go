package config

import "github.com/vovakirdan/tui-jezzball/internal/core"

// maxSpeedRatio caps scaled ball speed at this share of the ball size,
// the largest step the engine accepts.
const maxSpeedRatio = 0.75

// DifficultyManager turns the current level and score into a difficulty
// between InitialLevel and 1, then scales ball speed by it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager clamps cfg.InitialLevel into [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = core.Clamp(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled reports whether difficulty grows during a game.
func (d *DifficultyManager) IsEnabled() bool {
	switch {
	case !d.cfg.Enabled:
		return false
	case d.cfg.Progression.Type == "level", d.cfg.Progression.Type == "score":
		return true
	}
	return false
}

// progress is how far along the ramp the player is, from 0 to 1.
func (d *DifficultyManager) progress(gameLevel, score int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	span := float64(max(d.cfg.Progression.MaxAt, 1))
	reached := float64(score)
	if d.cfg.Progression.Type == "level" {
		reached = float64(gameLevel - 1)
	}
	return core.Clamp(reached/span, 0, 1)
}

// Level returns the difficulty for a game level and score.
func (d *DifficultyManager) Level(gameLevel, score int) float64 {
	start := d.cfg.InitialLevel
	return start + d.progress(gameLevel, score)*(1-start)
}

// BallSpeed scales base for the level. It never exceeds maxSpeedRatio of
// size unless base already does.
func (d *DifficultyManager) BallSpeed(base, size float64, gameLevel, score int) float64 {
	speed := base * (1 + d.Level(gameLevel, score)*d.cfg.Scaling.SpeedMultiplier)
	return min(speed, max(base, size*maxSpeedRatio))
}
