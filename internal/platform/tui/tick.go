// Package tui runs Jezzball in a terminal with Bubble Tea: the game loop,
// key and mouse mapping, menus, the score table and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

// TickMsg advances the game by one step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. Each tick is scheduled after the
// previous one is handled, so a slow frame delays the game instead of
// queueing ticks.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}
