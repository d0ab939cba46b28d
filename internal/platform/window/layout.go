package window

import (
	"github.com/vovakirdan/tui-jezzball/internal/core"
)

// Window geometry in logical pixels before scaling.
const (
	hudHeight = 40
	margin    = 8
)

// layout maps between window pixels, field units and the game's screen
// cells. With jezzball.FieldRuntime one cell is one unit.
type layout struct {
	field  core.Rect  // field in units
	origin core.Point // screen cell of field unit (0,0)
	scale  float64    // pixels per unit
}

// size returns the window size in pixels.
func (l layout) size() (int, int) {
	w := float64(l.field.W)*l.scale + 2*margin
	h := float64(l.field.H)*l.scale + hudHeight + 2*margin
	return int(w), int(h)
}

// unitToPixel returns the pixel position of a field point.
func (l layout) unitToPixel(x, y float64) (float32, float32) {
	return float32(margin + x*l.scale), float32(hudHeight + margin + y*l.scale)
}

// pixelToCell converts a mouse position to the game's screen cell. ok is
// false outside the field.
func (l layout) pixelToCell(px, py int) (core.Point, bool) {
	ux := (float64(px) - margin) / l.scale
	uy := (float64(py) - hudHeight - margin) / l.scale
	if ux < 0 || uy < 0 || ux >= float64(l.field.W) || uy >= float64(l.field.H) {
		return core.Point{}, false
	}
	return core.Point{X: l.origin.X + int(ux), Y: l.origin.Y + int(uy)}, true
}
