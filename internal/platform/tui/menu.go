package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jezzball/internal/core"
	"github.com/vovakirdan/tui-jezzball/internal/registry"
	"github.com/vovakirdan/tui-jezzball/internal/storage"
)

// modeBlurbs describe the registered modes under their titles.
var modeBlurbs = map[string]string{
	"jezzball":       "No clock. Clear the goal at your own pace.",
	"jezzball_timed": "A countdown per ball. Time left scores extra.",
}

// Menu layout: a five line header, then three lines per mode.
const (
	menuHeaderLines = 5
	menuItemLines   = 3
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuItem is one mode in the picker with its record so far.
type MenuItem struct {
	GameID    string
	Title     string
	Blurb     string
	HighScore int
	BestLevel int
}

// MenuModel picks a mode. Tab and O leave the menu for the scoreboard and
// the options screen.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	selected       *MenuItem
	quitting       bool
	openScoreboard bool
	openOptions    bool
}

// NewMenuModel lists every registered mode. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title, Blurb: modeBlurbs[g.ID]}
		if store != nil {
			if stats, err := store.GetGameStats(g.ID); err == nil {
				item.HighScore = stats.HighScore
				item.BestLevel = stats.BestLevel
			}
		}
		items = append(items, item)
	}
	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles keys, mouse and resizes.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		return m.choose()
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionOptions:
		m.openOptions = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse highlights the mode under the pointer and starts it on a
// left click.
func (m MenuModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	i, ok := m.itemAt(msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = i
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m.choose()
	}
	return m, nil
}

// itemAt maps a screen row to a mode index.
func (m MenuModel) itemAt(y int) (int, bool) {
	row := y - menuHeaderLines
	if row < 0 || row%menuItemLines == menuItemLines-1 {
		return 0, false
	}
	i := row / menuItemLines
	return i, i < len(m.items)
}

func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	item := m.items[m.cursor]
	m.selected = &item
	return m, tea.Quit
}

// View renders the header, one card per mode and the key hints.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	lines := []string{
		"",
		centerText(menuTitleStyle.Render("J E Z Z B A L L"), width),
		"",
		centerText("Trap the balls. Capture the field.", width),
		"",
	}
	for i, item := range m.items {
		head := fmt.Sprintf("  %-22s", item.Title)
		if item.HighScore > 0 {
			head += fmt.Sprintf("best %d, level %d", item.HighScore, item.BestLevel)
		}
		if i == m.cursor {
			head = menuCurStyle.Render("> " + head[2:])
		}
		lines = append(lines,
			centerText(head, width),
			centerText(menuHintStyle.Render(item.Blurb), width),
			"",
		)
	}
	lines = append(lines, centerText(menuHintStyle.Render("↑/↓ or mouse: choose  Enter/click: play  O: options  Tab: scores  Q: quit"), width))
	return strings.Join(lines, "\n")
}

// Selected returns the chosen mode, nil until one is chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// WantsOptions returns true if user requested the options screen.
func (m MenuModel) WantsOptions() bool {
	return m.openOptions
}

// Config returns the runtime config with the latest terminal size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text to the middle of width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the player chose in the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	WantsOptions    bool
	Quit            bool
}

// RunMenu shows the menu until the player leaves it.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.WantsOptions():
		result.WantsOptions = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}
