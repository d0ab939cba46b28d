// Package config provides YAML-based game configuration loading and
// difficulty management for Jezzball.
package config

import (
	"errors"
	"fmt"
)

// JezzballConfig contains all configuration for Jezzball.
type JezzballConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Balls      BallsConfig      `yaml:"balls"`
	Capture    CaptureConfig    `yaml:"capture"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Sound      SoundConfig      `yaml:"sound"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play field in field units.
type FieldConfig struct {
	Width      int `yaml:"width"`       // Field width for the window front-end
	Height     int `yaml:"height"`      // Field height for the window front-end
	CellWidth  int `yaml:"cell_width"`  // Units per terminal column
	CellHeight int `yaml:"cell_height"` // Units per terminal row
}

// BallsConfig defines ball parameters.
type BallsConfig struct {
	Size  float64 `yaml:"size"`  // Edge length in units
	Speed float64 `yaml:"speed"` // Units per tick on each axis
	Rule  string  `yaml:"rule"`  // Tengo script computing "count" from "level"
	Max   int     `yaml:"max"`   // Upper bound on balls per level, 0 = none
}

// CaptureConfig defines the capture line.
type CaptureConfig struct {
	Speed     int `yaml:"speed"`     // Units per side per tick
	Thickness int `yaml:"thickness"` // Strip width in units
}

// GameplayConfig defines level flow.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`            // Lives at the start of every level
	StartLevel     int     `yaml:"start_level"`      // 1..10
	Goal           float64 `yaml:"goal"`             // Captured fraction to win a level
	GoalMargin     float64 `yaml:"goal_margin"`      // Safety margin when the goal is lowered
	NextLevelDelay float64 `yaml:"next_level_delay"` // Seconds between levels
	TimePerBall    float64 `yaml:"time_per_ball"`    // Seconds per ball in timed mode
	Cheat          bool    `yaml:"cheat"`            // Freeze the balls
}

// SoundConfig toggles audio cues.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes. Only ball
// speed scales; every level starts from the same goal.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI name to a preset. Unknown names give "".
func ParseDifficultyPreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// MaxStartLevel is the highest level a game may start on.
const MaxStartLevel = 10

// Validate checks the values the engine cannot work with.
func (c JezzballConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field %dx%d: %w", c.Field.Width, c.Field.Height, ErrInvalidConfig)
	case c.Field.CellWidth <= 0 || c.Field.CellHeight <= 0:
		return fmt.Errorf("config: cell %dx%d: %w", c.Field.CellWidth, c.Field.CellHeight, ErrInvalidConfig)
	case c.Balls.Size <= 0:
		return fmt.Errorf("config: ball size %.2f: %w", c.Balls.Size, ErrInvalidConfig)
	case c.Balls.Speed <= 0 || c.Balls.Speed >= c.Balls.Size:
		return fmt.Errorf("config: ball speed %.2f must be in (0, size %.2f): %w",
			c.Balls.Speed, c.Balls.Size, ErrInvalidConfig)
	case c.Balls.Max < 0:
		return fmt.Errorf("config: max balls %d: %w", c.Balls.Max, ErrInvalidConfig)
	case c.Capture.Speed < 1 || c.Capture.Thickness < 1:
		return fmt.Errorf("config: capture speed %d, thickness %d: %w",
			c.Capture.Speed, c.Capture.Thickness, ErrInvalidConfig)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("config: lives %d: %w", c.Gameplay.Lives, ErrInvalidConfig)
	case c.Gameplay.StartLevel < 1 || c.Gameplay.StartLevel > MaxStartLevel:
		return fmt.Errorf("config: start level %d not in 1..%d: %w",
			c.Gameplay.StartLevel, MaxStartLevel, ErrInvalidConfig)
	case c.Gameplay.Goal <= 0 || c.Gameplay.Goal > 1:
		return fmt.Errorf("config: goal %.3f: %w", c.Gameplay.Goal, ErrInvalidConfig)
	case c.Gameplay.GoalMargin < 0 || c.Gameplay.NextLevelDelay < 0:
		return fmt.Errorf("config: negative margin or timing: %w", ErrInvalidConfig)
	case c.Gameplay.TimePerBall <= 0:
		return fmt.Errorf("config: time per ball %.2f must be positive: %w", c.Gameplay.TimePerBall, ErrInvalidConfig)
	}
	return nil
}
