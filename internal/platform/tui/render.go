package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

// cellColors maps each cell role to an ANSI 256 color.
var cellColors = [core.NumColors]string{
	core.ColorText:     "255",
	core.ColorLabel:    "245",
	core.ColorBorder:   "250",
	core.ColorCaptured: "25",
	core.ColorBall:     "196",
	core.ColorStrip:    "220",
	core.ColorCursor:   "51",
	core.ColorLevel:    "51",
	core.ColorScore:    "226",
	core.ColorLives:    "160",
	core.ColorBar:      "33",
	core.ColorBarGoal:  "46",
	core.ColorGoal:     "226",
	core.ColorWarning:  "196",
	core.ColorSuccess:  "46",
	core.ColorNotice:   "220",
}

// ScreenRenderer turns a Screen into styled text for one output.
type ScreenRenderer struct {
	styles [core.NumColors]lipgloss.Style
}

// NewScreenRenderer builds styles on r, which carries the color profile
// of the output (an SSH session has its own). Nil means stdout.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{}
	for c, code := range cellColors {
		style := r.NewStyle()
		if code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		sr.styles[c] = style
	}
	sr.styles[core.ColorWarning] = sr.styles[core.ColorWarning].Bold(true)
	sr.styles[core.ColorSuccess] = sr.styles[core.ColorSuccess].Bold(true)
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if int(c) >= len(sr.styles) {
		return sr.styles[core.ColorDefault]
	}
	return sr.styles[c]
}

// Render writes the screen row by row, one escape sequence per run of
// cells that share a role.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		runColor := core.ColorDefault
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor && len(run) > 0 {
				sb.WriteString(sr.style(runColor).Render(string(run)))
				run = run[:0]
			}
			runColor = cell.Color
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(sr.style(runColor).Render(string(run)))
		}
	}
	return sb.String()
}

var stdoutRenderer = NewScreenRenderer(nil)

// RenderScreen renders s for stdout.
func RenderScreen(s *core.Screen) string {
	return stdoutRenderer.Render(s)
}
