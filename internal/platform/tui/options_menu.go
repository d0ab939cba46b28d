package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jezzball/internal/config"
	"github.com/vovakirdan/tui-jezzball/internal/core"
)

// OptionsSelection holds the settings chosen on the options screen.
type OptionsSelection struct {
	Options config.Options
	Preset  string // difficulty preset name, "" for the config file's
}

// option rows
const (
	rowPreset = iota
	rowBallSize
	rowBallSpeed
	rowCaptureSpeed
	rowLives
	rowStartLevel
	rowCheat
	rowSound
	rowCount
)

const maxLives = 9

var presetNames = []string{"", "easy", "normal", "hard", "fixed"}

// OptionsModel lets users pick ball size and speed, capture speed, lives,
// start level, cheat and sound before playing.
type OptionsModel struct {
	cursor    int
	preset    int
	ballSize  int
	ballSpeed int
	capSpeed  int
	lives     int
	start     int
	cheat     bool
	sound     bool
	width     int
	height    int
	keyMapper *KeyMapper
	done      bool
	quitting  bool
	back      bool
}

// NewOptionsModel creates an options screen showing current.
func NewOptionsModel(current OptionsSelection, width, height int) OptionsModel {
	o := current.Options
	return OptionsModel{
		preset:    indexOr(presetNames, current.Preset, 0),
		ballSize:  indexOr(config.BallSizeNames, o.BallSize, 1),
		ballSpeed: indexOr(config.BallSpeedNames, o.BallSpeed, 2),
		capSpeed:  indexOr(config.CaptureSpeedNames, o.CaptureSpeed, 1),
		lives:     o.Lives,
		start:     max(o.StartLevel, 1),
		cheat:     o.Cheat,
		sound:     o.Sound,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

func indexOr(names []string, name string, fallback int) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return fallback
}

// Init initializes the model.
func (m OptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m OptionsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < rowCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.change(-1)
	case MenuActionRight:
		m.change(1)
	case MenuActionSelect:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// change moves the value of the current row by delta, wrapping around.
func (m *OptionsModel) change(delta int) {
	switch m.cursor {
	case rowPreset:
		m.preset = wrapIndex(m.preset+delta, len(presetNames))
	case rowBallSize:
		m.ballSize = wrapIndex(m.ballSize+delta, len(config.BallSizeNames))
	case rowBallSpeed:
		m.ballSpeed = wrapIndex(m.ballSpeed+delta, len(config.BallSpeedNames))
	case rowCaptureSpeed:
		m.capSpeed = wrapIndex(m.capSpeed+delta, len(config.CaptureSpeedNames))
	case rowLives:
		// 0 keeps the config file's value
		m.lives = wrapIndex(m.lives+delta, maxLives+1)
	case rowStartLevel:
		m.start = wrapIndex(m.start-1+delta, config.MaxStartLevel) + 1
	case rowCheat:
		m.cheat = !m.cheat
	case rowSound:
		m.sound = !m.sound
	}
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// Selection returns the settings as shown.
func (m OptionsModel) Selection() OptionsSelection {
	return OptionsSelection{
		Preset: presetNames[m.preset],
		Options: config.Options{
			BallSize:     config.BallSizeNames[m.ballSize],
			BallSpeed:    config.BallSpeedNames[m.ballSpeed],
			CaptureSpeed: config.CaptureSpeedNames[m.capSpeed],
			Lives:        m.lives,
			StartLevel:   m.start,
			Cheat:        m.cheat,
			Sound:        m.sound,
		},
	}
}

// View renders the options screen.
func (m OptionsModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	sel := m.Selection()
	lives := "from config"
	if m.lives > 0 {
		lives = fmt.Sprintf("%d", m.lives)
	}
	preset := sel.Preset
	if preset == "" {
		preset = "from config"
	}

	rows := []struct{ label, value string }{
		{"Difficulty", preset},
		{"Ball size", sel.Options.BallSize},
		{"Ball speed", sel.Options.BallSpeed},
		{"Capture speed", sel.Options.CaptureSpeed},
		{"Lives", lives},
		{"Start level", fmt.Sprintf("%d", m.start)},
		{"Cheat (frozen balls)", onOff(m.cheat)},
		{"Sound", onOff(m.sound)},
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("O P T I O N S"), m.width))
	b.WriteString("\n\n")

	for i, row := range rows {
		cursor := "  "
		line := fmt.Sprintf("%-22s < %-12s >", row.label, row.value)
		if i == m.cursor {
			cursor = "> "
			line = menuCurStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Left/Right: Change  |  Enter: Save  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Done returns true once the user saved the settings.
func (m OptionsModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user wants to quit.
func (m OptionsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m OptionsModel) WantsBack() bool {
	return m.back
}

// RunOptionsMenu runs the options screen. It returns the new settings, or
// nil when the user backed out, and whether they asked to quit.
func RunOptionsMenu(current OptionsSelection, cfg core.RuntimeConfig) (*OptionsSelection, bool, error) {
	model := NewOptionsModel(current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(OptionsModel)
	if !ok || m.IsQuitting() {
		return nil, true, nil
	}
	if !m.Done() {
		return nil, false, nil
	}
	sel := m.Selection()
	return &sel, false, nil
}
