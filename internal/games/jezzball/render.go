package jezzball

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-jezzball/internal/core"
	"github.com/vovakirdan/tui-jezzball/internal/jezz"
)

// Visual characters for rendering
const (
	CapturedChar = '░'
	BallChar     = '●'
	StripHChar   = '━'
	StripVChar   = '┃'
	CursorHChar  = '↔'
	CursorVChar  = '↕'
	LifeChar     = '♥'
	BarFullChar  = '█'
	BarEmptyChar = '·'
	GoalChar     = '┆'
)

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	if g.configErr != nil {
		g.renderConfigError(dst)
		return
	}
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.ctrl == nil {
		return
	}

	v := g.ctrl.View()
	g.renderHUD(dst, v)
	g.renderField(dst, v)
	g.renderOverlay(dst, v)
}

func (g *Game) renderHUD(dst *core.Screen, v jezz.View) {
	clock := g.Clock()
	timeLabel := "Time"
	timeColor := core.ColorText
	if g.mode == ModeTimed {
		timeLabel = "Left"
		if clock <= 10 {
			timeColor = core.ColorWarning
		}
	}

	x := 1
	x = drawField(dst, x, 0, "Level", fmt.Sprintf("%d", v.Level), core.ColorLevel)
	x = drawField(dst, x, 0, "Balls", fmt.Sprintf("%d", len(v.Balls)), core.ColorBall)
	x = drawField(dst, x, 0, "Score", fmt.Sprintf("%d", g.score), core.ColorScore)
	x = drawField(dst, x, 0, timeLabel, fmt.Sprintf("%02d:%02d", clock/60, clock%60), timeColor)

	lives := strings.Repeat(string(LifeChar), max(v.Lives, 0))
	if g.cfg.Gameplay.Cheat {
		lives = "∞"
	}
	drawField(dst, x, 0, "Lives", lives, core.ColorLives)

	g.renderProgress(dst, v)
}

// drawField draws "label value" at (x, y) and returns the next free column.
func drawField(dst *core.Screen, x, y int, label, value string, c core.Color) int {
	dst.DrawTextColored(x, y, label, core.ColorLabel)
	x += len(label) + 1
	dst.DrawTextColored(x, y, value, c)
	return x + len([]rune(value)) + 2
}

func (g *Game) renderProgress(dst *core.Screen, v jezz.View) {
	label := fmt.Sprintf(" %3.0f%% / %2.0f%%", v.Progress*100, v.Goal*100)
	width := dst.Width() - 2 - len(label)
	if width < 4 {
		return
	}

	filled := int(math.Round(v.Progress * float64(width)))
	goalAt := core.Clamp(int(math.Round(v.Goal*float64(width))), 0, width-1)
	barColor := core.ColorBar
	if v.Progress >= v.Goal {
		barColor = core.ColorBarGoal
	}

	for i := 0; i < width; i++ {
		switch {
		case i == goalAt:
			dst.SetColored(1+i, 1, GoalChar, core.ColorGoal)
		case i < filled:
			dst.SetColored(1+i, 1, BarFullChar, barColor)
		default:
			dst.SetColored(1+i, 1, BarEmptyChar, core.ColorLabel)
		}
	}
	dst.DrawTextColored(1+width, 1, label, core.ColorText)
}

func (g *Game) renderField(dst *core.Screen, v jezz.View) {
	fc := g.fieldCells
	dst.DrawBoxColored(core.NewRect(fc.X-1, fc.Y-1, fc.W+2, fc.H+2), core.ColorBorder)
	dst.DrawRectColored(fc, CapturedChar, core.ColorCaptured)

	for _, r := range v.Regions {
		dst.DrawRectColored(g.regionCells(r), ' ', core.ColorDefault)
	}

	if v.Growing {
		g.renderStrip(dst, v)
	}

	for _, b := range v.Balls {
		dst.DrawRectColored(g.coverCells(b), BallChar, core.ColorBall)
	}

	if v.Phase == jezz.PhasePlaying && !v.Growing {
		glyph := CursorHChar
		if v.Facing == jezz.FacingVertical {
			glyph = CursorVChar
		}
		dst.SetColored(fc.X+g.cursor.X, fc.Y+g.cursor.Y, glyph, core.ColorCursor)
	}
}

// renderStrip draws the capture strip one cell thick along its center line.
func (g *Game) renderStrip(dst *core.Screen, v jezz.View) {
	cells := g.coverCells(v.Strip)
	if v.StripFacing == jezz.FacingHorizontal {
		row := int((v.Strip.Y + v.Strip.H/2) / float64(g.cellH))
		row = g.fieldCells.Y + core.Clamp(row, 0, g.fieldCells.H-1)
		for x := cells.X; x < cells.Right(); x++ {
			dst.SetColored(x, row, StripHChar, core.ColorStrip)
		}
		return
	}
	col := int((v.Strip.X + v.Strip.W/2) / float64(g.cellW))
	col = g.fieldCells.X + core.Clamp(col, 0, g.fieldCells.W-1)
	for y := cells.Y; y < cells.Bottom(); y++ {
		dst.SetColored(col, y, StripVChar, core.ColorStrip)
	}
}

// regionCells maps a region to the cells whose centers it covers.
func (g *Game) regionCells(r core.Rect) core.Rect {
	x0 := (r.X + g.cellW/2) / g.cellW
	x1 := (r.Right() + g.cellW/2) / g.cellW
	y0 := (r.Y + g.cellH/2) / g.cellH
	y1 := (r.Bottom() + g.cellH/2) / g.cellH
	return core.NewRect(g.fieldCells.X+x0, g.fieldCells.Y+y0, x1-x0, y1-y0)
}

// coverCells maps a float rectangle to every cell it touches, clipped to
// the field.
func (g *Game) coverCells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X / float64(g.cellW)))
	x1 := int(math.Ceil(r.Right() / float64(g.cellW)))
	y0 := int(math.Floor(r.Y / float64(g.cellH)))
	y1 := int(math.Ceil(r.Bottom() / float64(g.cellH)))
	x0 = core.Clamp(x0, 0, g.fieldCells.W)
	x1 = core.Clamp(x1, 0, g.fieldCells.W)
	y0 = core.Clamp(y0, 0, g.fieldCells.H)
	y1 = core.Clamp(y1, 0, g.fieldCells.H)
	return core.NewRect(g.fieldCells.X+x0, g.fieldCells.Y+y0, x1-x0, y1-y0)
}

func (g *Game) renderOverlay(dst *core.Screen, v jezz.View) {
	mid := g.fieldCells.Y + g.fieldCells.H/2
	switch {
	case v.Phase == jezz.PhaseGameOver:
		dst.DrawTextCenteredColored(mid-1, " GAME OVER ", core.ColorWarning)
		dst.DrawTextCenteredColored(mid, fmt.Sprintf(" Score: %d  Level: %d ", g.score, g.level), core.ColorText)
		dst.DrawTextCenteredColored(mid+1, " R restart  B menu  Q quit ", core.ColorLabel)
	case v.Phase == jezz.PhaseLevelComplete:
		dst.DrawTextCenteredColored(mid-1, fmt.Sprintf(" LEVEL %d COMPLETE ", g.level), core.ColorSuccess)
		dst.DrawTextCenteredColored(mid, fmt.Sprintf(" Next level in %d ", g.NextLevelIn()), core.ColorText)
	case g.paused:
		dst.DrawTextCenteredColored(mid, " PAUSED ", core.ColorNotice)
	}
}

func (g *Game) renderConfigError(dst *core.Screen) {
	dst.DrawTextCenteredColored(1, "CONFIGURATION ERROR", core.ColorWarning)
	width := max(dst.Width()-4, 10)
	for i, line := range wrap(g.configErr.Error(), width) {
		if 3+i >= dst.Height()-2 {
			break
		}
		dst.DrawText(2, 3+i, line)
	}
	dst.DrawTextCenteredColored(dst.Height()-1, "Fix the config file or flags. B menu  Q quit", core.ColorLabel)
}

// wrap splits s into lines of at most width runes, breaking on spaces.
func wrap(s string, width int) []string {
	var lines []string
	var line []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		if len(line) > 0 && len(line)+1+len(w) > width {
			lines = append(lines, string(line))
			line = line[:0]
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, w...)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
