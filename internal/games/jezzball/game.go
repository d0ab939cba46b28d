// Package jezzball implements Jezzball: balls bounce around a field and the
// player shrinks their space with capture lines until enough of the field
// is captured.
package jezzball

import (
	"errors"

	"github.com/vovakirdan/tui-jezzball/internal/config"
	"github.com/vovakirdan/tui-jezzball/internal/core"
	"github.com/vovakirdan/tui-jezzball/internal/jezz"
	"github.com/vovakirdan/tui-jezzball/internal/registry"
)

// Layout constants, in screen cells.
const (
	hudRows    = 2 // status line and progress bar above the field
	minScreenW = 30
	minScreenH = 12
)

// Score weights.
const (
	captureScale = 1000 // points for capturing the whole field on level 1
	lifeBonus    = 50   // per remaining life and level when a level is won
)

// Mode is the game mode.
type Mode int

const (
	ModeFree  Mode = iota // no time limit
	ModeTimed             // countdown of time_per_ball seconds per ball
)

// ErrScreenTooSmall is reported when the terminal cannot hold the field.
var ErrScreenTooSmall = errors.New("screen too small")

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// options stores per-game overrides set via CLI or the options menu
var options config.Options

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// SetOptions sets the overrides applied after loading the config.
func SetOptions(o config.Options) {
	options = o
}

// CurrentOptions returns the overrides in effect.
func CurrentOptions() config.Options {
	return options
}

func init() {
	registry.Register("jezzball", func() registry.Game { return New() })
	registry.Register("jezzball_timed", func() registry.Game { return NewTimed() })
}

// Game adapts the jezz engine to the arcade platform: level flow, timing,
// scoring, input mapping and terminal rendering.
type Game struct {
	mode Mode
	ctrl *jezz.Controller

	runtime    core.RuntimeConfig
	cfg        config.JezzballConfig
	pending    *config.JezzballConfig // hot-reloaded config for the next level
	difficulty *config.DifficultyManager
	rule       *LevelRule

	// Layout
	cellW, cellH   int
	fieldCells     core.Rect // field interior on screen
	field          core.Rect // field in engine units
	screenTooSmall bool

	cursor    core.Point // cursor cell relative to fieldCells
	level     int
	score     int
	paused    bool
	gameOver  bool
	ticks     uint64 // total simulation ticks
	levelTick int    // playing ticks in the current level
	remaining int    // timed mode ticks left
	nextLevel int    // ticks until the next level starts
	configErr error
}

// New creates a new Jezzball game instance (free mode).
func New() *Game {
	return &Game{mode: ModeFree}
}

// NewTimed creates a new Jezzball game instance in timed mode.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return "jezzball_timed"
	}
	return "jezzball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "Jezzball (Timed)"
	}
	return "Jezzball"
}

// FieldRuntime returns a RuntimeConfig whose field is exactly width x
// height units with one unit per cell, for pixel front-ends.
func FieldRuntime(width, height, tickRate int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width + 2,
		ScreenH:  height + hudRows + 2,
		TickRate: tickRate,
		Seed:     seed,
		CellW:    1,
		CellH:    1,
	}
}

// LoadConfig loads the config the way Reset does: file, then preset, then
// CLI options.
func LoadConfig() (config.JezzballConfig, error) {
	cfg, err := config.LoadJezzball(configPath)
	if err != nil {
		return cfg, err
	}
	return applyOverrides(cfg)
}

func applyOverrides(cfg config.JezzballConfig) (config.JezzballConfig, error) {
	if difficultyPreset != "" {
		config.ApplyJezzballPreset(&cfg, difficultyPreset)
	}
	if err := options.Apply(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultTickRate
	}
	g.pending = nil

	cfg, err := LoadConfig()
	g.cfg = cfg
	g.configErr = err
	if err == nil {
		g.configErr = g.setup()
	}
}

// ApplyConfig installs a reloaded config. It takes effect when the next
// level starts, or immediately when the current config was unusable.
// CLI presets and options are applied on top.
func (g *Game) ApplyConfig(cfg config.JezzballConfig) error {
	cfg, err := applyOverrides(cfg)
	if err != nil {
		return err
	}
	if g.configErr != nil {
		g.cfg = cfg
		g.configErr = g.setup()
		return g.configErr
	}
	g.pending = &cfg
	return nil
}

// setup builds everything derived from cfg and starts the first level.
func (g *Game) setup() error {
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	rule, err := CompileLevelRule(g.cfg.Balls.Rule)
	if err != nil {
		return err
	}
	g.rule = rule
	g.layout()

	g.ctrl = jezz.NewController(g.runtime.Seed)
	g.score = 0
	g.paused = false
	g.gameOver = false
	g.ticks = 0
	if g.screenTooSmall {
		return nil
	}
	return g.startLevel(g.cfg.Gameplay.StartLevel)
}

// layout computes the field position and size from the screen size.
func (g *Game) layout() {
	g.cellW, g.cellH = g.runtime.CellW, g.runtime.CellH
	if g.cellW <= 0 || g.cellH <= 0 {
		g.cellW, g.cellH = g.cfg.Field.CellWidth, g.cfg.Field.CellHeight
	}

	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	g.screenTooSmall = w < minScreenW || h < minScreenH
	g.fieldCells = core.NewRect(1, hudRows+1, w-2, h-hudRows-2)
	g.field = core.NewRect(0, 0, g.fieldCells.W*g.cellW, g.fieldCells.H*g.cellH)
}

// Params returns the engine parameters for a level.
func (g *Game) Params(level int) (jezz.Params, error) {
	count, err := g.rule.BallCount(level)
	if err != nil {
		return jezz.Params{}, err
	}
	if g.cfg.Balls.Max > 0 {
		count = min(count, g.cfg.Balls.Max)
	}
	size := g.cfg.Balls.Size
	return jezz.Params{
		Field:            g.field,
		Level:            level,
		BallCount:        count,
		BallSize:         size,
		BallSpeed:        g.difficulty.BallSpeed(g.cfg.Balls.Speed, size, level, g.score),
		CaptureSpeed:     g.cfg.Capture.Speed,
		CaptureThickness: g.cfg.Capture.Thickness,
		BaseGoal:         g.cfg.Gameplay.Goal,
		GoalMargin:       g.cfg.Gameplay.GoalMargin,
		Lives:            g.cfg.Gameplay.Lives,
		Cheat:            g.cfg.Gameplay.Cheat,
	}, nil
}

func (g *Game) startLevel(level int) error {
	p, err := g.Params(level)
	if err != nil {
		return err
	}
	if err := g.ctrl.Reset(p); err != nil {
		return err
	}

	g.level = level
	g.levelTick = 0
	g.nextLevel = 0
	g.remaining = g.runtime.Ticks(g.cfg.Gameplay.TimePerBall * float64(p.BallCount))
	g.cursor = core.Point{X: g.fieldCells.W / 2, Y: g.fieldCells.H / 2}
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.configErr != nil || g.screenTooSmall || g.ctrl == nil {
		return g.result(nil)
	}

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result(nil)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(nil)
	}
	g.ticks++

	if g.ctrl.Phase() == jezz.PhaseLevelComplete {
		g.nextLevel--
		if g.nextLevel > 0 {
			return g.result(nil)
		}
		return g.result(g.advance())
	}

	rep := g.ctrl.Step(g.translate(in))
	events := g.applyEvents(rep.Events)

	if g.ctrl.Phase() == jezz.PhasePlaying {
		g.levelTick++
		if g.mode == ModeTimed {
			g.remaining--
			if g.remaining <= 0 && g.ctrl.ForceGameOver() {
				events = append(events, core.Event{Kind: core.EventGameOver, Level: g.level, Lives: g.ctrl.Lives()})
			}
		}
	}
	if g.ctrl.Phase() == jezz.PhaseGameOver {
		g.gameOver = true
	}
	return g.result(events)
}

// translate turns platform input into engine input.
func (g *Game) translate(in core.InputFrame) jezz.Input {
	var out jezz.Input
	moved := false

	if in.PointerSet {
		if p, ok := g.toFieldCell(in.Pointer); ok {
			g.cursor = p
			moved = true
		}
	}

	dx, dy := 0, 0
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if dx != 0 || dy != 0 {
		g.cursor.X = core.Clamp(g.cursor.X+dx, 0, g.fieldCells.W-1)
		g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, g.fieldCells.H-1)
		moved = true
	}

	unit := g.cellToUnit(g.cursor)
	if moved {
		out.Moved = true
		out.Pointer = unit
	}
	out.Toggle = in.Has(core.ActionRotate)
	if in.Has(core.ActionCapture) {
		// A pointer press starts where it happened; a key press starts at
		// the cursor. Presses outside the field are dropped.
		out.Press, out.PressAt = true, unit
		if in.PressSet {
			p, ok := g.toFieldCell(in.PressAt)
			out.Press, out.PressAt = ok, g.cellToUnit(p)
		}
	}
	return out
}

// toFieldCell converts a screen cell to a field cell, reporting whether
// it lies on the field.
func (g *Game) toFieldCell(screen core.Point) (core.Point, bool) {
	p := core.Point{X: screen.X - g.fieldCells.X, Y: screen.Y - g.fieldCells.Y}
	ok := p.X >= 0 && p.X < g.fieldCells.W && p.Y >= 0 && p.Y < g.fieldCells.H
	return p, ok
}

// cellToUnit maps a field cell to the engine point at its center.
func (g *Game) cellToUnit(c core.Point) core.Point {
	return core.Point{X: c.X*g.cellW + g.cellW/2, Y: c.Y*g.cellH + g.cellH/2}
}

// applyEvents updates score and level flow for engine events.
func (g *Game) applyEvents(events []core.Event) []core.Event {
	fieldArea := g.field.Area()
	for _, e := range events {
		switch e.Kind {
		case core.EventCaptureCommitted:
			if fieldArea > 0 {
				g.score += e.Area * captureScale / fieldArea * g.level
			}
		case core.EventGoalReached:
			g.score += e.Lives * lifeBonus * g.level
			if g.mode == ModeTimed {
				g.score += g.remaining / g.runtime.TickRate * g.level
			}
			g.nextLevel = g.runtime.Ticks(g.cfg.Gameplay.NextLevelDelay)
		}
	}
	return events
}

// advance starts the next level, switching to a reloaded config first.
func (g *Game) advance() []core.Event {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
		rule, err := CompileLevelRule(g.cfg.Balls.Rule)
		if err != nil {
			g.configErr = err
			return nil
		}
		g.rule = rule
	}

	if err := g.startLevel(g.level + 1); err != nil {
		g.configErr = err
		return nil
	}
	return []core.Event{{Kind: core.EventLevelAdvance, Level: g.level, Lives: g.ctrl.Lives()}}
}

func (g *Game) result(events []core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// View returns the engine view for pixel front-ends.
func (g *Game) View() jezz.View {
	if g.ctrl == nil {
		return jezz.View{}
	}
	return g.ctrl.View()
}

// FieldOrigin returns the screen cell of the field's top-left corner.
func (g *Game) FieldOrigin() core.Point {
	return core.Point{X: g.fieldCells.X, Y: g.fieldCells.Y}
}

// CellSize returns the engine units covered by one screen cell.
func (g *Game) CellSize() (int, int) {
	return g.cellW, g.cellH
}

// Config returns the config in effect.
func (g *Game) Config() config.JezzballConfig {
	return g.cfg
}

// ConfigError returns the error that stopped the game from starting, if any.
func (g *Game) ConfigError() error {
	if g.configErr == nil && g.screenTooSmall {
		return ErrScreenTooSmall
	}
	return g.configErr
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.level
}

// Lives returns the lives left in the current level.
func (g *Game) Lives() int {
	if g.ctrl == nil {
		return 0
	}
	return g.ctrl.Lives()
}

// Clock returns the seconds shown in the HUD: time left in timed mode,
// time spent on the level otherwise.
func (g *Game) Clock() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		return 0
	}
	if g.mode == ModeTimed {
		return (max(g.remaining, 0) + rate - 1) / rate
	}
	return g.levelTick / rate
}

// NextLevelIn returns the seconds until the next level, or 0.
func (g *Game) NextLevelIn() int {
	if g.ctrl == nil || g.ctrl.Phase() != jezz.PhaseLevelComplete || g.runtime.TickRate <= 0 {
		return 0
	}
	return (max(g.nextLevel, 0) + g.runtime.TickRate - 1) / g.runtime.TickRate
}
