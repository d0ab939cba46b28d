package jezz

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

// Configuration errors returned by Params.Validate.
var (
	ErrBadField     = errors.New("field must have positive width and height")
	ErrNoBalls      = errors.New("level needs at least one ball")
	ErrBallTooFast  = errors.New("ball speed must be below ball size")
	ErrBadSpeed     = errors.New("ball speed must be positive")
	ErrBallTooLarge = errors.New("ball does not fit in the field")
	ErrBadCapture   = errors.New("capture speed and thickness must be positive")
	ErrBadGoal      = errors.New("goal must be in (0, 1]")
	ErrNoLives      = errors.New("level needs at least one life")
)

// Phase is the controller's level phase.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelComplete
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "playing"
	}
}

// Params is everything a level reset needs.
type Params struct {
	Field            core.Rect
	Level            int
	BallCount        int
	BallSize         float64
	BallSpeed        float64
	CaptureSpeed     int
	CaptureThickness int
	BaseGoal         float64 // captured fraction needed to win
	GoalMargin       float64 // subtracted when BaseGoal is out of reach
	Lives            int
	Cheat            bool // balls never move and contact costs no life
}

// Validate rejects parameters that would make containment or goal math
// meaningless.
func (p Params) Validate() error {
	switch {
	case p.Field.Empty():
		return fmt.Errorf("jezz: field %dx%d: %w", p.Field.W, p.Field.H, ErrBadField)
	case p.BallCount < 1:
		return fmt.Errorf("jezz: %d balls: %w", p.BallCount, ErrNoBalls)
	case p.BallSpeed <= 0:
		return fmt.Errorf("jezz: speed %.2f: %w", p.BallSpeed, ErrBadSpeed)
	case p.BallSpeed >= p.BallSize:
		return fmt.Errorf("jezz: speed %.2f, size %.2f: %w", p.BallSpeed, p.BallSize, ErrBallTooFast)
	case p.BallSize > float64(p.Field.W) || p.BallSize > float64(p.Field.H):
		return fmt.Errorf("jezz: size %.2f in %dx%d field: %w", p.BallSize, p.Field.W, p.Field.H, ErrBallTooLarge)
	case p.CaptureSpeed < 1 || p.CaptureThickness < 1:
		return fmt.Errorf("jezz: capture speed %d, thickness %d: %w", p.CaptureSpeed, p.CaptureThickness, ErrBadCapture)
	case p.BaseGoal <= 0 || p.BaseGoal > 1 || p.GoalMargin < 0:
		return fmt.Errorf("jezz: goal %.3f, margin %.3f: %w", p.BaseGoal, p.GoalMargin, ErrBadGoal)
	case p.Lives < 1:
		return fmt.Errorf("jezz: %d lives: %w", p.Lives, ErrNoLives)
	}
	return nil
}

// GoalFor returns the goal for a level. When the balls' footprint makes
// base unreachable, the goal drops to margin below the reachable ceiling.
func GoalFor(fieldArea, ballArea, base, margin float64) float64 {
	if fieldArea <= 0 {
		return base
	}
	open := (fieldArea - ballArea) / fieldArea
	if open < base {
		return open - margin
	}
	return base
}

// Input is the player input for one tick. It is consumed by a single Step.
type Input struct {
	Press   bool       // start a capture attempt at PressAt
	PressAt core.Point // field units
	Pointer core.Point // field units, valid when Moved
	Moved   bool
	Toggle  bool // switch facing for the next attempt
}

// Report lists what one Step did.
type Report struct {
	Events  []core.Event
	Capture CaptureResult
	Balls   TickReport
}

// Controller sequences one level: balls, then capture line, then goal.
type Controller struct {
	params  Params
	rng     *RNG
	regions *RegionSet
	balls   *BallField
	capture *CaptureLine

	phase  Phase
	lives  int
	goal   float64
	cursor core.Point
	facing Facing
	ticks  uint64
}

// NewController creates a controller whose ball placement follows seed.
// Reset must be called before Step.
func NewController(seed int64) *Controller {
	return &Controller{
		rng:     NewRNG(seed),
		regions: NewRegionSet(core.Rect{}),
		balls:   NewBallField(),
		capture: NewCaptureLine(1, 1),
		phase:   PhaseGameOver,
	}
}

// Reset starts a level from p. Invalid parameters leave the controller
// untouched.
func (c *Controller) Reset(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	ballArea := float64(p.BallCount) * p.BallSize * p.BallSize
	goal := GoalFor(float64(p.Field.Area()), ballArea, p.BaseGoal, p.GoalMargin)
	if goal <= 0 {
		return fmt.Errorf("jezz: %d balls of size %.0f leave nothing to capture: %w",
			p.BallCount, p.BallSize, ErrBadGoal)
	}

	c.regions.Reset(p.Field)
	c.balls.SpawnBalls(p.Field, p.BallCount, p.BallSize, p.BallSpeed, c.rng)
	c.balls.Frozen = p.Cheat

	c.params = p
	c.capture.Configure(p.CaptureSpeed, p.CaptureThickness)
	c.goal = goal
	c.lives = p.Lives
	c.phase = PhasePlaying
	cx, cy := p.Field.Center()
	c.cursor = core.Point{X: cx, Y: cy}
	c.ticks = 0
	return nil
}

// Advance resets into the next level described by p.
func (c *Controller) Advance(p Params) error {
	return c.Reset(p)
}

// Step runs one tick. Outside PhasePlaying it does nothing.
func (c *Controller) Step(in Input) Report {
	var rep Report
	if c.phase != PhasePlaying {
		return rep
	}
	c.ticks++

	// 1. balls
	rep.Balls = c.balls.Tick(c.regions, c.capture.Touches)
	if rep.Balls.CaptureHits > 0 {
		c.capture.Abort()
		c.loseLife(&rep)
	}

	// 2. capture line
	rep.Capture = c.capture.Tick(c.regions, c.balls)
	switch rep.Capture.Outcome {
	case OutcomeAborted:
		c.loseLife(&rep)
	case OutcomeCommitted:
		rep.Events = append(rep.Events, core.Event{
			Kind:  core.EventCaptureCommitted,
			Level: c.params.Level,
			Lives: c.lives,
			Area:  rep.Capture.Split.Captured,
		})
	}

	// 3. goal
	if c.Progress() >= c.goal {
		c.phase = PhaseLevelComplete
		c.capture.Abort()
		rep.Events = append(rep.Events, c.event(core.EventGoalReached))
		return rep
	}
	if c.lives <= 0 {
		c.phase = PhaseGameOver
		c.capture.Abort()
		rep.Events = append(rep.Events, c.event(core.EventGameOver))
		return rep
	}

	// 4. input for the next attempt
	if in.Moved {
		c.cursor = c.clampToField(in.Pointer)
	}
	if in.Toggle {
		c.facing = c.facing.Toggle()
	}
	if in.Press {
		c.capture.Begin(in.PressAt, c.facing, c.regions)
	}
	return rep
}

func (c *Controller) loseLife(rep *Report) {
	if c.params.Cheat {
		return
	}
	c.lives--
	rep.Events = append(rep.Events, c.event(core.EventLifeLost))
}

func (c *Controller) event(kind core.EventKind) core.Event {
	return core.Event{Kind: kind, Level: c.params.Level, Lives: c.lives}
}

func (c *Controller) clampToField(p core.Point) core.Point {
	f := c.params.Field
	return core.Point{
		X: core.Clamp(p.X, f.X, f.Right()-1),
		Y: core.Clamp(p.Y, f.Y, f.Bottom()-1),
	}
}

// ForceGameOver ends the game immediately, e.g. when a timer runs out.
// It reports whether the phase changed.
func (c *Controller) ForceGameOver() bool {
	if c.phase == PhaseGameOver {
		return false
	}
	c.phase = PhaseGameOver
	c.capture.Abort()
	return true
}

// Progress returns the captured fraction of the field.
func (c *Controller) Progress() float64 {
	return c.regions.Progress(c.params.Field.Area())
}

// Goal returns the captured fraction needed to finish the level.
func (c *Controller) Goal() float64 { return c.goal }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Lives returns the remaining lives.
func (c *Controller) Lives() int { return c.lives }

// Level returns the current level number.
func (c *Controller) Level() int { return c.params.Level }

// Params returns the parameters of the current level.
func (c *Controller) Params() Params { return c.params }

// Facing returns the facing the next attempt will use.
func (c *Controller) Facing() Facing { return c.facing }

// Cursor returns the last pointer position in field units.
func (c *Controller) Cursor() core.Point { return c.cursor }

// Ticks returns the number of playing ticks in this level.
func (c *Controller) Ticks() uint64 { return c.ticks }

// Regions exposes the region set for inspection. Callers must not mutate it.
func (c *Controller) Regions() *RegionSet { return c.regions }

// Balls exposes the ball field for inspection. Callers must not mutate it.
func (c *Controller) Balls() *BallField { return c.balls }

// Capture exposes the capture line for inspection. Callers must not mutate it.
func (c *Controller) Capture() *CaptureLine { return c.capture }

// RNGState returns the generator state, for snapshots.
func (c *Controller) RNGState() uint64 { return c.rng.State() }
