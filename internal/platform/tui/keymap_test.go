package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", runeKey(' '), core.ActionCapture, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionRotate, false},
		{"x", runeKey('x'), core.ActionRotate, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame) {
		t.Error("right arrow is not a quit key")
	}
	km.MapKeyToFrame(runeKey(' '), &frame)

	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionCapture) {
		t.Error("frame should hold both actions")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name    string
		msg     tea.MouseMsg
		pointer bool
		capture bool
		rotate  bool
	}{
		{"motion", tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionMotion}, true, false, false},
		{"left press", tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true, true, false},
		{"right press", tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false, false, true},
		{"release", tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			km.MapMouseToFrame(tc.msg, &frame)

			if frame.PointerSet != tc.pointer {
				t.Errorf("PointerSet = %v, expected %v", frame.PointerSet, tc.pointer)
			}
			if tc.pointer && frame.Pointer != (core.Point{X: 5, Y: 6}) {
				t.Errorf("Pointer = %v, expected {5 6}", frame.Pointer)
			}
			if frame.Has(core.ActionCapture) != tc.capture {
				t.Errorf("capture = %v, expected %v", frame.Has(core.ActionCapture), tc.capture)
			}
			if frame.Has(core.ActionRotate) != tc.rotate {
				t.Errorf("rotate = %v, expected %v", frame.Has(core.ActionRotate), tc.rotate)
			}
		})
	}
}

func TestMouseMotionKeepsPressPoint(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 30, Y: 1, Action: tea.MouseActionMotion}, &frame)

	if !frame.PressSet || frame.PressAt != (core.Point{X: 5, Y: 6}) {
		t.Errorf("PressAt = %v (set=%v), expected {5 6}", frame.PressAt, frame.PressSet)
	}
	if frame.Pointer != (core.Point{X: 30, Y: 1}) {
		t.Errorf("Pointer = %v, expected the latest motion {30 1}", frame.Pointer)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('o'), MenuActionOptions},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
