package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jezzball/internal/audio"
	"github.com/vovakirdan/tui-jezzball/internal/config"
	"github.com/vovakirdan/tui-jezzball/internal/core"
	"github.com/vovakirdan/tui-jezzball/internal/registry"
	"github.com/vovakirdan/tui-jezzball/internal/storage"
)

// Reloadable games accept a new config while running.
type Reloadable interface {
	ApplyConfig(cfg config.JezzballConfig) error
}

// GameOptions are the optional services a GameModel uses.
type GameOptions struct {
	Store     *storage.Store
	Player    string
	Logger    *log.Logger
	Sound     bool            // play event cues (needs audio.Init)
	Watcher   *config.Watcher // config reloads, local play only
	AllowBack bool            // B/Esc on pause or game over returns to the menu

	// Renderer styles output for a remote terminal. Nil means stdout.
	Renderer *lipgloss.Renderer
}

// reloadMsg carries one watcher update into the Bubble Tea loop.
type reloadMsg config.Update

// waitForReload blocks on the watcher until it reports a change.
func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-w.Updates
		if !ok {
			return nil
		}
		return reloadMsg(u)
	}
}

// GameModel runs one game: ticks, input, score saving and hot reload.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	opts       GameOptions
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	status     string
	statusTTL  int // ticks left to show status
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewScreenRenderer(opts.Renderer),
		opts:       opts,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.opts.Watcher != nil {
		cmds = append(cmds, waitForReload(m.opts.Watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case reloadMsg:
		return m.handleReload(config.Update(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.copyScreen()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.opts.AllowBack && (m.gameState.GameOver || m.gameState.Paused) {
		if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The field depends on the screen size, so a running game restarts.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.logger.Debug("restarted after resize", "width", msg.Width, "height", msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if m.statusTTL > 0 {
		m.statusTTL--
	}
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *GameModel) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventCaptureCommitted:
			m.logger.Debug("capture", "area", e.Area, "level", e.Level)
		case core.EventLifeLost:
			m.logger.Debug("life lost", "lives", e.Lives, "level", e.Level)
		default:
			m.logger.Info(e.Kind.String(), "level", e.Level, "lives", e.Lives, "score", m.gameState.Score)
		}
	}
	if m.opts.Sound {
		audio.PlayEvents(events)
	}
}

func (m *GameModel) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	best, err := m.opts.Store.PersonalBest(m.game.ID(), m.opts.Player)
	if err != nil {
		m.logger.Warn("cannot read personal best", "err", err)
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, m.gameState.Score, m.gameState.Level); err != nil {
		m.logger.Error("cannot save score", "err", err)
		m.setStatus("score not saved")
		return
	}
	m.logger.Info("score saved", "score", m.gameState.Score, "level", m.gameState.Level, "player", m.opts.Player)
	if best > 0 && m.gameState.Score > best {
		m.setStatus(fmt.Sprintf("new personal best! (was %d)", best))
	}
}

// handleReload applies a config file change and waits for the next one.
func (m GameModel) handleReload(u config.Update) (tea.Model, tea.Cmd) {
	var next tea.Cmd
	if m.opts.Watcher != nil {
		next = waitForReload(m.opts.Watcher)
	}
	if u.Err != nil {
		m.logger.Warn("config reload failed", "path", u.Path, "err", u.Err)
		m.setStatus("config error: " + u.Err.Error())
		return m, next
	}

	g, ok := m.game.(Reloadable)
	if !ok {
		return m, next
	}
	if err := g.ApplyConfig(u.Config); err != nil {
		m.logger.Warn("config rejected", "path", u.Path, "err", err)
		m.setStatus("config rejected: " + err.Error())
		return m, next
	}
	m.logger.Info("config reloaded", "path", u.Path)
	m.setStatus("config reloaded, applies next level")
	return m, next
}

func (m *GameModel) setStatus(s string) {
	m.status = s
	m.statusTTL = 3 * m.config.TickRate
}

// saveScreenshot saves the current screen to ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("screenshot saved")
}

// copyScreen puts the plain text screen on the system clipboard.
func (m *GameModel) copyScreen() {
	m.screen.Clear()
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("clipboard unavailable", "err", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("screen copied")
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.statusTTL > 0 && m.status != "" {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.status, core.ColorNotice)
	}
	return m.renderer.Render(m.screen)
}

// State returns the last game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the terminal until the player quits. It returns true
// when the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
