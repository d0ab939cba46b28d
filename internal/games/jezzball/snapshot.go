package jezzball

import "math"

// Snapshot contains the game state that matters for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Mode      int
	Level     int
	Score     int
	Lives     int
	Phase     int
	Remaining int
	NextLevel int
	CursorX   int
	CursorY   int
	Facing    int

	// Regions, 4 ints each: X, Y, W, H
	RegionData []int

	// Balls, 4 values each: X, Y, VX, VY
	BallData []float64

	// Capture line: growing flag, start X, start Y, facing, side1, side2
	CaptureData [6]int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.ticks,
		Mode:      int(g.mode),
		Level:     g.level,
		Score:     g.score,
		Remaining: g.remaining,
		NextLevel: g.nextLevel,
		CursorX:   g.cursor.X,
		CursorY:   g.cursor.Y,
	}
	if g.ctrl == nil {
		return snap
	}

	snap.Lives = g.ctrl.Lives()
	snap.Phase = int(g.ctrl.Phase())
	snap.Facing = int(g.ctrl.Facing())
	snap.RNGState = g.ctrl.RNGState()

	for _, r := range g.ctrl.Regions().All() {
		snap.RegionData = append(snap.RegionData, r.X, r.Y, r.W, r.H)
	}
	for _, b := range g.ctrl.Balls().All() {
		snap.BallData = append(snap.BallData, b.X, b.Y, b.VX, b.VY)
	}

	c := g.ctrl.Capture()
	if c.Growing() {
		s1, s2 := c.Sides()
		start := c.Start()
		snap.CaptureData = [6]int{1, start.X, start.Y, int(c.Facing()), s1, s2}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Mode, snap.Level, snap.Score, snap.Lives, snap.Phase,
		snap.Remaining, snap.NextLevel, snap.CursorX, snap.CursorY, snap.Facing,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.RegionData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.CaptureData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
