package config

import (
	"fmt"
	"sort"
)

// Named option values offered by the CLI and the options screen.
var (
	BallSizes = map[string]float64{
		"small":  8,
		"medium": 16,
		"large":  32,
	}
	BallSpeeds = map[string]float64{
		"slowest": 0.25,
		"slow":    0.75,
		"medium":  1.25,
		"fast":    2.5,
		"fastest": 3.0,
	}
	CaptureSpeeds = map[string]int{
		"slow":   1,
		"medium": 2,
		"fast":   5,
	}
)

// BallSizeNames lists BallSizes from smallest to largest.
var BallSizeNames = []string{"small", "medium", "large"}

// BallSpeedNames lists BallSpeeds from slowest to fastest.
var BallSpeedNames = []string{"slowest", "slow", "medium", "fast", "fastest"}

// CaptureSpeedNames lists CaptureSpeeds from slowest to fastest.
var CaptureSpeedNames = []string{"slow", "medium", "fast"}

// Options are CLI or menu overrides applied on top of a loaded config.
// Empty strings and zero values leave the config alone.
type Options struct {
	BallSize     string
	BallSpeed    string
	CaptureSpeed string
	Lives        int
	StartLevel   int
	Cheat        bool
	Sound        bool
}

// Apply writes the options into cfg.
func (o Options) Apply(cfg *JezzballConfig) error {
	if o.BallSize != "" {
		v, ok := BallSizes[o.BallSize]
		if !ok {
			return fmt.Errorf("config: unknown ball size %q (want one of %v)", o.BallSize, keys(BallSizes))
		}
		cfg.Balls.Size = v
	}
	if o.BallSpeed != "" {
		v, ok := BallSpeeds[o.BallSpeed]
		if !ok {
			return fmt.Errorf("config: unknown ball speed %q (want one of %v)", o.BallSpeed, keys(BallSpeeds))
		}
		cfg.Balls.Speed = v
	}
	if o.CaptureSpeed != "" {
		v, ok := CaptureSpeeds[o.CaptureSpeed]
		if !ok {
			return fmt.Errorf("config: unknown capture speed %q (want one of %v)", o.CaptureSpeed, keys(CaptureSpeeds))
		}
		cfg.Capture.Speed = v
	}
	if o.Lives > 0 {
		cfg.Gameplay.Lives = o.Lives
	}
	if o.StartLevel > 0 {
		cfg.Gameplay.StartLevel = o.StartLevel
	}
	if o.Cheat {
		cfg.Gameplay.Cheat = true
	}
	if o.Sound {
		cfg.Sound.Enabled = true
	}
	return nil
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
