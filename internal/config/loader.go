package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// JezzballFile is the config file name looked up in the config directories.
const JezzballFile = "jezzball.yaml"

// LoadJezzball loads Jezzball configuration.
// Search order: customPath -> ~/.arcade/configs/jezzball.yaml -> ./configs/jezzball.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; broken files elsewhere in the search order are skipped.
func LoadJezzball(customPath string) (JezzballConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultJezzballConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseJezzball(data)
		if err != nil {
			return DefaultJezzballConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(JezzballFile), filepath.Join("configs", JezzballFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := ParseJezzball(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := ParseJezzball(defaultJezzballYAML)
	if err != nil {
		return DefaultJezzballConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseJezzball decodes YAML over the defaults and validates the result.
func ParseJezzball(data []byte) (JezzballConfig, error) {
	cfg := DefaultJezzballConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ResolvePath returns the file LoadJezzball would read, or "" when it would
// fall back to the embedded default.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{userConfigPath(JezzballFile), filepath.Join("configs", JezzballFile)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyJezzballPreset modifies the config based on a difficulty preset.
func ApplyJezzballPreset(cfg *JezzballConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Balls.Speed = BallSpeeds["slow"]
		cfg.Capture.Speed = CaptureSpeeds["fast"]
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Balls.Speed = BallSpeeds["fast"]
		cfg.Capture.Speed = CaptureSpeeds["slow"]
	}
}
