package jezz

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

func testParams() Params {
	return Params{
		Field:            core.NewRect(0, 0, 100, 100),
		Level:            1,
		BallCount:        1,
		BallSize:         8,
		BallSpeed:        2,
		CaptureSpeed:     5,
		CaptureThickness: 8,
		BaseGoal:         0.8,
		GoalMargin:       0.075,
		Lives:            3,
	}
}

// newTestController resets a controller with testParams and replaces the
// random balls with the given ones.
func newTestController(t *testing.T, p Params, balls ...Ball) *Controller {
	t.Helper()
	c := NewController(1)
	if err := c.Reset(p); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if len(balls) > 0 {
		c.balls.Set(balls)
	}
	return c
}

// capture starts an attempt at p with the given facing and ticks until it
// resolves, returning every event raised.
func capture(c *Controller, p core.Point, facing Facing) []core.Event {
	events := c.Step(Input{Press: true, PressAt: p, Toggle: c.Facing() != facing}).Events
	for i := 0; c.capture.Growing() && i < 1000; i++ {
		events = append(events, c.Step(Input{}).Events...)
	}
	return events
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
		err    error
	}{
		{"valid", func(*Params) {}, nil},
		{"no balls", func(p *Params) { p.BallCount = 0 }, ErrNoBalls},
		{"speed equals size", func(p *Params) { p.BallSpeed = 8 }, ErrBallTooFast},
		{"speed above size", func(p *Params) { p.BallSpeed = 12 }, ErrBallTooFast},
		{"zero speed", func(p *Params) { p.BallSpeed = 0 }, ErrBadSpeed},
		{"empty field", func(p *Params) { p.Field.W = 0 }, ErrBadField},
		{"ball larger than field", func(p *Params) { p.BallSize = 200; p.BallSpeed = 1 }, ErrBallTooLarge},
		{"zero capture speed", func(p *Params) { p.CaptureSpeed = 0 }, ErrBadCapture},
		{"goal above one", func(p *Params) { p.BaseGoal = 1.5 }, ErrBadGoal},
		{"negative margin", func(p *Params) { p.GoalMargin = -0.1 }, ErrBadGoal},
		{"no lives", func(p *Params) { p.Lives = 0 }, ErrNoLives},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testParams()
			tc.modify(&p)
			err := p.Validate()
			if tc.err == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.err) {
				t.Errorf("Validate() error = %v, expected %v", err, tc.err)
			}
		})
	}
}

func TestResetRejectsInvalidParams(t *testing.T) {
	c := newTestController(t, testParams())
	before := c.View()

	p := testParams()
	p.BallCount = 0
	if err := c.Reset(p); !errors.Is(err, ErrNoBalls) {
		t.Fatalf("Reset() error = %v, expected ErrNoBalls", err)
	}
	if c.Level() != before.Level || c.Balls().Len() != len(before.Balls) {
		t.Error("failed Reset should leave the controller untouched")
	}

	// Balls covering the whole field leave no reachable goal.
	p = testParams()
	p.BallCount = 200
	if err := c.Reset(p); !errors.Is(err, ErrBadGoal) {
		t.Errorf("Reset() error = %v, expected ErrBadGoal", err)
	}
}

func TestGoalFor(t *testing.T) {
	tests := []struct {
		name     string
		ballArea float64
		expected float64
	}{
		{"two balls leave the base goal reachable", 2 * 900, 0.80},
		{"three balls lower the goal", 3 * 900, 0.655},
		{"no balls", 0, 0.80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := GoalFor(10000, tc.ballArea, 0.80, 0.075)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("GoalFor() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestResetGoalFromBallFootprint(t *testing.T) {
	p := testParams()
	p.BallSize = 30
	p.BallCount = 3
	c := newTestController(t, p)

	if math.Abs(c.Goal()-0.655) > 1e-9 {
		t.Errorf("Goal() = %v, expected 0.655", c.Goal())
	}

	p.BallCount = 2
	if err := c.Reset(p); err != nil {
		t.Fatal(err)
	}
	if c.Goal() != 0.80 {
		t.Errorf("Goal() = %v, expected 0.80", c.Goal())
	}
}

func TestBallHitsGrowingLine(t *testing.T) {
	c := newTestController(t, testParams(), Ball{X: 40, Y: 40, Size: 8})

	events := capture(c, core.Point{X: 44, Y: 20}, FacingVertical)

	if !hasEvent(events, core.EventLifeLost) {
		t.Error("expected a life lost event")
	}
	if c.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", c.Lives())
	}
	if c.regions.Len() != 1 || c.regions.OpenArea() != 10000 {
		t.Errorf("regions changed: %v", c.regions.All())
	}
	if c.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", c.Phase())
	}
}

func TestBallMovingIntoLine(t *testing.T) {
	// The line is already growing when the ball runs into it.
	c := newTestController(t, testParams(), Ball{X: 70, Y: 46, VX: -2, Size: 8})
	p := testParams()
	p.CaptureSpeed = 1
	c.capture.Configure(p.CaptureSpeed, p.CaptureThickness)

	events := capture(c, core.Point{X: 50, Y: 10}, FacingVertical)

	if !hasEvent(events, core.EventLifeLost) || c.Lives() != 2 {
		t.Errorf("Lives() = %d, expected one life lost", c.Lives())
	}
}

func TestCheatKeepsLives(t *testing.T) {
	p := testParams()
	p.Cheat = true
	c := newTestController(t, p, Ball{X: 40, Y: 40, Size: 8})

	events := capture(c, core.Point{X: 44, Y: 20}, FacingVertical)

	if hasEvent(events, core.EventLifeLost) || c.Lives() != 3 {
		t.Errorf("cheat lost a life: lives=%d events=%v", c.Lives(), events)
	}
	if c.capture.Growing() {
		t.Error("attempt should still be aborted")
	}
}

func TestGameOverWhenLivesRunOut(t *testing.T) {
	p := testParams()
	p.Lives = 1
	c := newTestController(t, p, Ball{X: 40, Y: 40, Size: 8})

	events := capture(c, core.Point{X: 44, Y: 20}, FacingVertical)

	if !hasEvent(events, core.EventGameOver) {
		t.Fatalf("expected game over, events = %v", events)
	}
	if c.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, expected game over", c.Phase())
	}

	rep := c.Step(Input{Press: true, PressAt: core.Point{X: 10, Y: 90}})
	if len(rep.Events) != 0 || c.capture.Growing() {
		t.Error("Step after game over should do nothing")
	}
}

func TestLevelComplete(t *testing.T) {
	c := newTestController(t, testParams(), Ball{X: 10, Y: 10, Size: 8})

	events := capture(c, core.Point{X: 50, Y: 50}, FacingVertical)
	if !hasEvent(events, core.EventCaptureCommitted) {
		t.Fatalf("first capture did not commit: %v", events)
	}
	if c.Progress() != 0.5 {
		t.Errorf("Progress() = %v, expected 0.5", c.Progress())
	}

	capture(c, core.Point{X: 25, Y: 50}, FacingVertical)
	if c.Progress() != 0.75 {
		t.Errorf("Progress() = %v, expected 0.75", c.Progress())
	}
	if c.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %v, expected playing below the goal", c.Phase())
	}

	events = capture(c, core.Point{X: 10, Y: 30}, FacingHorizontal)
	if !hasEvent(events, core.EventGoalReached) {
		t.Fatalf("expected goal reached, events = %v", events)
	}
	if c.Phase() != PhaseLevelComplete {
		t.Errorf("Phase() = %v, expected level complete", c.Phase())
	}

	// Balls are frozen once the level is complete.
	before := c.balls.All()
	c.Step(Input{})
	if c.balls.All()[0] != before[0] {
		t.Error("balls moved after the level was complete")
	}

	next := testParams()
	next.Level = 2
	next.BallCount = 2
	if err := c.Advance(next); err != nil {
		t.Fatal(err)
	}
	if c.Phase() != PhasePlaying || c.Level() != 2 || c.Balls().Len() != 2 || c.Progress() != 0 {
		t.Errorf("Advance() state: phase=%v level=%d balls=%d progress=%v",
			c.Phase(), c.Level(), c.Balls().Len(), c.Progress())
	}
	if c.Lives() != next.Lives {
		t.Errorf("Lives() = %d, expected %d after advance", c.Lives(), next.Lives)
	}
}

func TestPressWhileGrowingIgnored(t *testing.T) {
	c := newTestController(t, testParams(), Ball{X: 10, Y: 10, Size: 8})

	c.Step(Input{Press: true, PressAt: core.Point{X: 50, Y: 50}, Toggle: true})
	c.Step(Input{Press: true, PressAt: core.Point{X: 80, Y: 80}, Toggle: true})

	if c.capture.Start() != (core.Point{X: 50, Y: 50}) || c.capture.Facing() != FacingVertical {
		t.Errorf("growing attempt changed: start=%v facing=%v", c.capture.Start(), c.capture.Facing())
	}
	if c.Facing() != FacingHorizontal {
		t.Errorf("Facing() = %v, expected the toggle to apply to the next attempt", c.Facing())
	}
}

func TestPointerClampedToField(t *testing.T) {
	c := newTestController(t, testParams())
	c.Step(Input{Moved: true, Pointer: core.Point{X: 500, Y: -3}})

	if c.Cursor() != (core.Point{X: 99, Y: 0}) {
		t.Errorf("Cursor() = %v, expected {99 0}", c.Cursor())
	}
}

func TestForceGameOver(t *testing.T) {
	c := newTestController(t, testParams())
	if !c.ForceGameOver() {
		t.Error("ForceGameOver() should report a change")
	}
	if c.ForceGameOver() {
		t.Error("second ForceGameOver() should be a no-op")
	}
}

// playRandom drives c with pseudo-random presses and checks the engine
// invariants after every tick.
func playRandom(t *testing.T, c *Controller, seed int64, ticks int) {
	t.Helper()
	rng := NewRNG(seed)
	field := c.Params().Field
	prevProgress := c.Progress()

	for tick := 0; tick < ticks && c.Phase() == PhasePlaying; tick++ {
		in := Input{}
		if tick%9 == 0 {
			in.Press = true
			in.PressAt = core.Point{X: field.X + rng.Intn(field.W), Y: field.Y + rng.Intn(field.H)}
			in.Toggle = rng.Intn(2) == 0
		}
		c.Step(in)

		progress := c.Progress()
		if progress < prevProgress {
			t.Fatalf("tick %d: progress fell from %v to %v", tick, prevProgress, progress)
		}
		prevProgress = progress

		regions := c.regions.All()
		for a := range regions {
			for b := a + 1; b < len(regions); b++ {
				if regions[a].Intersects(regions[b].Rect) {
					t.Fatalf("tick %d: regions %v and %v overlap", tick, regions[a], regions[b])
				}
			}
		}
		for i, r := range c.balls.Rects() {
			if _, ok := c.regions.FindRect(r); !ok {
				t.Fatalf("tick %d: ball %d at %+v is in no region", tick, i, r)
			}
		}
	}
}

func TestInvariantsUnderPlay(t *testing.T) {
	p := Params{
		Field:            core.NewRect(0, 0, 600, 400),
		Level:            4,
		BallCount:        4,
		BallSize:         16,
		BallSpeed:        1.25,
		CaptureSpeed:     2,
		CaptureThickness: 8,
		BaseGoal:         0.75,
		GoalMargin:       0.075,
		Lives:            1000,
	}
	for _, seed := range []int64{1, 2, 3} {
		c := NewController(seed)
		if err := c.Reset(p); err != nil {
			t.Fatal(err)
		}
		playRandom(t, c, seed*31, 5000)
	}
}

func TestControllerDeterminism(t *testing.T) {
	p := testParams()
	p.Field = core.NewRect(0, 0, 300, 200)
	p.BallCount = 3
	p.Lives = 50

	run := func() View {
		c := NewController(12345)
		if err := c.Reset(p); err != nil {
			t.Fatal(err)
		}
		playRandom(t, c, 777, 1500)
		return c.View()
	}

	a, b := run(), run()
	if a.Progress != b.Progress || a.Lives != b.Lives || a.Phase != b.Phase {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
	if len(a.Balls) != len(b.Balls) || len(a.Regions) != len(b.Regions) {
		t.Fatal("runs differ in ball or region count")
	}
	for i := range a.Balls {
		if a.Balls[i] != b.Balls[i] {
			t.Errorf("ball %d differs: %+v vs %+v", i, a.Balls[i], b.Balls[i])
		}
	}
}
