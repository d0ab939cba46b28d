// Package registry maps game mode IDs to factories.
// Modes register themselves in init(), so front-ends can list and start
// them without importing each one by name.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

// Game is what every playable mode implements. Games are pure simulation:
// the platform owns timing, input mapping and drawing to a terminal or
// window.
type Game interface {
	// ID returns the mode identifier used by the CLI and the score table
	// (e.g. "jezzball", "jezzball_timed").
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a new game for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns score, level and game over / pause flags.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("unknown game")

var (
	mu    sync.RWMutex
	modes = map[string]registered{}
)

type registered struct {
	title string
	make  Factory
}

// Register adds a mode under id. Registering an empty or duplicate id is
// a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	switch _, taken := modes[id]; {
	case id == "":
		panic("registry: empty game id")
	case taken:
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	modes[id] = registered{title: f().Title(), make: f}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(modes))
	for id, m := range modes {
		out = append(out, GameInfo{ID: id, Title: m.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// IDs returns the registered mode IDs in order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(modes))
}

// Create returns a fresh instance of the mode. Unknown IDs give an error
// wrapping ErrUnknownGame that lists the known ones.
func Create(id string) (Game, error) {
	mu.RLock()
	m, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q, have %s", ErrUnknownGame, id, strings.Join(IDs(), ", "))
	}
	return m.make(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := modes[id]
	return ok
}
