package jezz

import "github.com/vovakirdan/tui-jezzball/internal/core"

// Facing decides which way the next capture line grows.
type Facing int

const (
	// FacingHorizontal grows a horizontal strip along X and splits the
	// region into top and bottom halves.
	FacingHorizontal Facing = iota
	// FacingVertical grows a vertical strip along Y and splits the region
	// into left and right halves.
	FacingVertical
)

// Toggle returns the other facing.
func (f Facing) Toggle() Facing {
	if f == FacingHorizontal {
		return FacingVertical
	}
	return FacingHorizontal
}

func (f Facing) String() string {
	if f == FacingVertical {
		return "vertical"
	}
	return "horizontal"
}

// CaptureState is the state of a CaptureLine.
type CaptureState int

const (
	CaptureIdle CaptureState = iota
	CaptureGrowing
)

// CaptureOutcome is what a CaptureLine tick ended with.
type CaptureOutcome int

const (
	OutcomeNone      CaptureOutcome = iota // still growing, or idle
	OutcomeCancelled                       // owning region vanished
	OutcomeAborted                         // a ball touched the strip
	OutcomeCommitted                       // both ends reached the edges, region split
)

func (o CaptureOutcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeAborted:
		return "aborted"
	case OutcomeCommitted:
		return "committed"
	default:
		return "none"
	}
}

// CaptureResult is returned by CaptureLine.Tick.
type CaptureResult struct {
	Outcome CaptureOutcome
	Split   SplitOutcome // set when Outcome is OutcomeCommitted
}

// CaptureLine is the player's line-growth state machine.
// Only one attempt can be active at a time.
type CaptureLine struct {
	state  CaptureState
	start  core.Point
	facing Facing
	side1  int // low end along the growth axis
	side2  int // high end along the growth axis
	owner  RegionID

	speed     int
	thickness int
}

// NewCaptureLine creates an idle line that grows speed units per side per
// tick and is thickness units wide.
func NewCaptureLine(speed, thickness int) *CaptureLine {
	return &CaptureLine{speed: speed, thickness: thickness}
}

// Configure changes speed and thickness and drops any attempt in progress.
func (c *CaptureLine) Configure(speed, thickness int) {
	c.speed = speed
	c.thickness = thickness
	c.Abort()
}

// Begin starts an attempt at start. It fails while another attempt is
// growing or when start is in no region.
func (c *CaptureLine) Begin(start core.Point, facing Facing, regions *RegionSet) bool {
	if c.state != CaptureIdle {
		return false
	}
	region, ok := regions.FindPoint(start)
	if !ok {
		return false
	}

	c.state = CaptureGrowing
	c.start = start
	c.facing = facing
	c.owner = region.ID
	pos := c.axisPos()
	c.side1, c.side2 = pos, pos
	return true
}

func (c *CaptureLine) axisPos() int {
	if c.facing == FacingHorizontal {
		return c.start.X
	}
	return c.start.Y
}

func (c *CaptureLine) axisBounds(r core.Rect) (lo, hi int) {
	if c.facing == FacingHorizontal {
		return r.X, r.Right()
	}
	return r.Y, r.Bottom()
}

// Tick grows the line one step. Ball contact is checked before the edge
// check, so a ball sitting at the region edge still aborts the attempt.
func (c *CaptureLine) Tick(regions *RegionSet, balls *BallField) CaptureResult {
	if c.state != CaptureGrowing {
		return CaptureResult{}
	}

	owner, ok := regions.Get(c.owner)
	if !ok {
		c.Abort()
		return CaptureResult{Outcome: OutcomeCancelled}
	}

	lo, hi := c.axisBounds(owner.Rect)
	c.side1 = max(c.side1-c.speed, lo)
	c.side2 = min(c.side2+c.speed, hi)

	if c.touches(balls) {
		c.Abort()
		return CaptureResult{Outcome: OutcomeAborted}
	}

	if c.side1 == lo && c.side2 == hi {
		split := regions.Split(c.start, c.facing == FacingVertical, balls.Rects())
		c.Abort()
		return CaptureResult{Outcome: OutcomeCommitted, Split: split}
	}
	return CaptureResult{}
}

func (c *CaptureLine) touches(balls *BallField) bool {
	strip, ok := c.Strip()
	if !ok {
		return false
	}
	return balls.Any(strip.Intersects)
}

// Touches reports whether r overlaps the growing strip.
func (c *CaptureLine) Touches(r core.RectF) bool {
	strip, ok := c.Strip()
	return ok && strip.Intersects(r)
}

// Strip returns the current capture rectangle while growing: the span
// side1..side2 along the growth axis, thickness wide, centered on start.
func (c *CaptureLine) Strip() (core.RectF, bool) {
	if c.state != CaptureGrowing {
		return core.RectF{}, false
	}
	half := float64(c.thickness) / 2
	length := float64(c.side2 - c.side1)
	if c.facing == FacingHorizontal {
		return core.RectF{X: float64(c.side1), Y: float64(c.start.Y) - half, W: length, H: float64(c.thickness)}, true
	}
	return core.RectF{X: float64(c.start.X) - half, Y: float64(c.side1), W: float64(c.thickness), H: length}, true
}

// Abort drops the attempt in progress, if any.
func (c *CaptureLine) Abort() {
	c.state = CaptureIdle
	c.owner = 0
}

// Growing reports whether an attempt is in progress.
func (c *CaptureLine) Growing() bool {
	return c.state == CaptureGrowing
}

// State returns the current state.
func (c *CaptureLine) State() CaptureState {
	return c.state
}

// Facing returns the facing of the current or last attempt.
func (c *CaptureLine) Facing() Facing {
	return c.facing
}

// Start returns the start point of the current or last attempt.
func (c *CaptureLine) Start() core.Point {
	return c.start
}

// Sides returns both ends along the growth axis.
func (c *CaptureLine) Sides() (int, int) {
	return c.side1, c.side2
}
