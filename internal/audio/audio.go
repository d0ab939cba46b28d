// Package audio plays short square wave cues for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Enabled reports whether Init succeeded.
func Enabled() bool {
	return initialized
}

// note is one tone of a cue. A zero freq is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// cue returns the notes played for an event kind, or nil for silence.
func cue(kind core.EventKind) []note {
	switch kind {
	case core.EventCaptureCommitted:
		return []note{{660, 40 * time.Millisecond}, {880, 60 * time.Millisecond}}
	case core.EventLifeLost:
		return []note{{220, 120 * time.Millisecond}}
	case core.EventGoalReached:
		return []note{{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 160 * time.Millisecond}}
	case core.EventLevelAdvance:
		return []note{{784, 50 * time.Millisecond}, {0, 30 * time.Millisecond}, {784, 50 * time.Millisecond}}
	case core.EventGameOver:
		return []note{{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 240 * time.Millisecond}}
	}
	return nil
}

// sequence joins notes into one streamer.
func sequence(notes []note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq <= 0 {
			parts = append(parts, beep.Silence(sampleRate.N(n.dur)))
			continue
		}
		parts = append(parts, squareWave(n.freq, n.dur))
	}
	return beep.Seq(parts...)
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// PlayEvent plays the cue for e. It does nothing before Init.
func PlayEvent(e core.Event) {
	if !initialized {
		return
	}
	notes := cue(e.Kind)
	if len(notes) == 0 {
		return
	}
	speaker.Play(sequence(notes))
}

// PlayEvents plays the cue of the most important event in events.
func PlayEvents(events []core.Event) {
	if e, ok := loudest(events); ok {
		PlayEvent(e)
	}
}

// loudest picks the event whose cue should win when several happen in one
// tick. Later kinds in the game flow take precedence.
func loudest(events []core.Event) (core.Event, bool) {
	var best core.Event
	found := false
	for _, e := range events {
		if cue(e.Kind) == nil {
			continue
		}
		if !found || e.Kind > best.Kind {
			best = e
			found = true
		}
	}
	return best, found
}
