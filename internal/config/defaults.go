package config

import (
	_ "embed"
)

//go:embed defaults/jezzball.yaml
var defaultJezzballYAML []byte

// DefaultBallRule gives one ball per level.
const DefaultBallRule = "count = level\n"

// DefaultJezzballConfig returns the built-in Jezzball configuration.
func DefaultJezzballConfig() JezzballConfig {
	return JezzballConfig{
		Field: FieldConfig{
			Width:      600,
			Height:     400,
			CellWidth:  4,
			CellHeight: 8,
		},
		Balls: BallsConfig{
			Size:  16,
			Speed: 1.25,
			Rule:  DefaultBallRule,
		},
		Capture: CaptureConfig{
			Speed:     2,
			Thickness: 8,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			StartLevel:     1,
			Goal:           0.75,
			GoalMargin:     0.075,
			NextLevelDelay: 5,
			TimePerBall:    45,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "jezzball", "jezzball_timed":
		return defaultJezzballYAML
	default:
		return nil
	}
}
