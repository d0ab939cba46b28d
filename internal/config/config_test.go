package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultJezzballConfig().Validate(); err != nil {
		t.Errorf("DefaultJezzballConfig().Validate() = %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseJezzball(GetDefaultYAML("jezzball"))
	if err != nil {
		t.Fatalf("embedded YAML: %v", err)
	}
	if cfg != DefaultJezzballConfig() {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultJezzballConfig())
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadJezzballCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("balls:\n  size: 32\ngameplay:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadJezzball(path)
	if err != nil {
		t.Fatalf("LoadJezzball() error = %v", err)
	}
	if cfg.Balls.Size != 32 || cfg.Gameplay.Lives != 7 {
		t.Errorf("overrides not applied: size=%v lives=%d", cfg.Balls.Size, cfg.Gameplay.Lives)
	}
	if cfg.Capture.Speed != 2 || cfg.Gameplay.Goal != 0.75 {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}
}

func TestLoadJezzballErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadJezzball(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("balls: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadJezzball(broken); err == nil {
		t.Error("unparsable custom file should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("balls:\n  size: 2\n  speed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadJezzball(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadJezzball(invalid) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*JezzballConfig)
		valid  bool
	}{
		{"defaults", func(*JezzballConfig) {}, true},
		{"speed equals size", func(c *JezzballConfig) { c.Balls.Speed = c.Balls.Size }, false},
		{"zero size", func(c *JezzballConfig) { c.Balls.Size = 0 }, false},
		{"empty field", func(c *JezzballConfig) { c.Field.Height = 0 }, false},
		{"zero cell", func(c *JezzballConfig) { c.Field.CellWidth = 0 }, false},
		{"no lives", func(c *JezzballConfig) { c.Gameplay.Lives = 0 }, false},
		{"start level 11", func(c *JezzballConfig) { c.Gameplay.StartLevel = 11 }, false},
		{"start level 10", func(c *JezzballConfig) { c.Gameplay.StartLevel = 10 }, true},
		{"goal zero", func(c *JezzballConfig) { c.Gameplay.Goal = 0 }, false},
		{"negative delay", func(c *JezzballConfig) { c.Gameplay.NextLevelDelay = -1 }, false},
		{"zero capture speed", func(c *JezzballConfig) { c.Capture.Speed = 0 }, false},
		{"zero time per ball", func(c *JezzballConfig) { c.Gameplay.TimePerBall = 0 }, false},
		{"negative time per ball", func(c *JezzballConfig) { c.Gameplay.TimePerBall = -5 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultJezzballConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestOptionsApply(t *testing.T) {
	cfg := DefaultJezzballConfig()
	opts := Options{
		BallSize:     "small",
		BallSpeed:    "fastest",
		CaptureSpeed: "fast",
		Lives:        4,
		StartLevel:   3,
		Cheat:        true,
	}
	if err := opts.Apply(&cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if cfg.Balls.Size != 8 || cfg.Balls.Speed != 3 || cfg.Capture.Speed != 5 {
		t.Errorf("named options not applied: %+v / %+v", cfg.Balls, cfg.Capture)
	}
	if cfg.Gameplay.Lives != 4 || cfg.Gameplay.StartLevel != 3 || !cfg.Gameplay.Cheat {
		t.Errorf("gameplay options not applied: %+v", cfg.Gameplay)
	}

	if err := (Options{BallSize: "huge"}).Apply(&cfg); err == nil {
		t.Error("unknown ball size should be an error")
	}
}

func TestNamedOptionLists(t *testing.T) {
	for _, name := range BallSizeNames {
		if _, ok := BallSizes[name]; !ok {
			t.Errorf("ball size %q missing", name)
		}
	}
	for _, name := range BallSpeedNames {
		if _, ok := BallSpeeds[name]; !ok {
			t.Errorf("ball speed %q missing", name)
		}
	}
	for _, name := range CaptureSpeedNames {
		if _, ok := CaptureSpeeds[name]; !ok {
			t.Errorf("capture speed %q missing", name)
		}
	}

	// Every named speed must be usable with every named size.
	for _, size := range BallSizes {
		for _, speed := range BallSpeeds {
			if speed >= size {
				t.Errorf("speed %v is not below size %v", speed, size)
			}
		}
	}
}

func TestApplyJezzballPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives       int
		progression bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 2, true},
		{DifficultyFixed, 3, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultJezzballConfig()
			ApplyJezzballPreset(&cfg, tc.preset)

			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.progression {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.progression)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	if ParseDifficultyPreset("hard") != DifficultyHard || ParseDifficultyPreset("insane") != "" {
		t.Error("ParseDifficultyPreset mismatch")
	}
}

func TestResolvePath(t *testing.T) {
	if got := ResolvePath("/tmp/x.yaml"); got != "/tmp/x.yaml" {
		t.Errorf("ResolvePath(custom) = %q", got)
	}
}
