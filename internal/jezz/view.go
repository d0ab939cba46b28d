package jezz

import "github.com/vovakirdan/tui-jezzball/internal/core"

// View is a read-only snapshot of a level for renderers.
type View struct {
	Field       core.Rect
	Regions     []core.Rect
	Balls       []core.RectF
	Strip       core.RectF
	Growing     bool
	StripFacing Facing // facing of the growing strip
	Cursor      core.Point
	Facing      Facing // facing of the next attempt
	Progress    float64
	Goal        float64
	Lives       int
	Level       int
	Phase       Phase
}

// View captures the current state. The result shares nothing with the
// controller.
func (c *Controller) View() View {
	regions := c.regions.All()
	rects := make([]core.Rect, len(regions))
	for i, r := range regions {
		rects[i] = r.Rect
	}
	strip, growing := c.capture.Strip()
	return View{
		Field:       c.params.Field,
		Regions:     rects,
		Balls:       c.balls.Rects(),
		Strip:       strip,
		Growing:     growing,
		StripFacing: c.capture.Facing(),
		Cursor:      c.cursor,
		Facing:      c.facing,
		Progress:    c.Progress(),
		Goal:        c.goal,
		Lives:       c.lives,
		Level:       c.params.Level,
		Phase:       c.phase,
	}
}
