package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// KeyMapper turns Bubble Tea key and mouse messages into game and menu
// actions. Bindings are checked in order, so the first match wins.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper returns the default bindings: arrows, WASD and vim keys
// move, Space captures, Tab or X rotates.
func NewKeyMapper() *KeyMapper {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}
	quit := bind("quit", "q", "ctrl+c")
	up := bind("up", "up", "w", "k")
	down := bind("down", "down", "s", "j")
	left := bind("left", "left", "a", "h")
	right := bind("right", "right", "d", "l")
	back := bind("back", "esc", "b")

	return &KeyMapper{
		game: []actionBinding{
			{quit, core.ActionQuit},
			{up, core.ActionUp},
			{down, core.ActionDown},
			{left, core.ActionLeft},
			{right, core.ActionRight},
			{bind("capture", " "), core.ActionCapture},
			{bind("rotate", "tab", "x"), core.ActionRotate},
			{bind("confirm", "enter"), core.ActionConfirm},
			{back, core.ActionBack},
			{bind("pause", "p"), core.ActionPause},
			{bind("restart", "r"), core.ActionRestart},
		},
		menu: []menuBinding{
			{quit, MenuActionQuit},
			{up, MenuActionUp},
			{down, MenuActionDown},
			{left, MenuActionLeft},
			{right, MenuActionRight},
			{bind("select", "enter", " "), MenuActionSelect},
			{back, MenuActionBack},
			{bind("scores", "tab"), MenuActionScoreboard},
			{bind("options", "o"), MenuActionOptions},
		},
	}
}

// MapKey returns the game action for msg, ActionNone when unbound, and
// whether msg asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records msg in frame and reports whether it asks to quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, quit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return quit
}

// MapMouseToFrame records the pointer cell. A left press also captures
// and a right press rotates the capture line.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action == tea.MouseActionRelease {
		return
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight {
		frame.Set(core.ActionRotate)
		return
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.SetPress(msg.X, msg.Y)
		return
	}
	frame.SetPointer(msg.X, msg.Y)
}

// MenuAction is what a key means on the menu screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionOptions
	MenuActionQuit
)

// MapKeyToMenuAction returns the menu action for msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
