package jezz

import "github.com/vovakirdan/tui-jezzball/internal/core"

// Ball is a square moving with constant speed, reflected by region walls.
type Ball struct {
	X, Y   float64 // Top-left corner
	VX, VY float64 // Velocity per tick
	Size   float64
}

// Rect returns the ball's bounding rectangle.
func (b Ball) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

func (b *Ball) move() {
	b.X += b.VX
	b.Y += b.VY
}

// TickReport summarizes one BallField tick.
type TickReport struct {
	Bounces     int // balls reflected this tick
	CaptureHits int // balls the capture predicate reported as touching
}

// BallField owns the balls of one level.
type BallField struct {
	balls []Ball

	// Frozen stops all ball movement.
	Frozen bool
}

// NewBallField creates an empty field.
func NewBallField() *BallField {
	return &BallField{}
}

// SpawnBalls replaces the balls with count new ones placed at random fully
// inside container, each moving diagonally at speed on both axes.
func (f *BallField) SpawnBalls(container core.Rect, count int, size, speed float64, rng *RNG) {
	f.balls = f.balls[:0]
	spanX := float64(container.W) - size
	spanY := float64(container.H) - size
	for range count {
		b := Ball{
			X:    float64(container.X) + rng.Float64()*spanX,
			Y:    float64(container.Y) + rng.Float64()*spanY,
			VX:   speed,
			VY:   speed,
			Size: size,
		}
		if rng.Intn(2) == 0 {
			b.VX = -b.VX
		}
		if rng.Intn(2) == 0 {
			b.VY = -b.VY
		}
		f.balls = append(f.balls, b)
	}
}

// Set replaces the balls, mainly for tests and snapshots.
func (f *BallField) Set(balls []Ball) {
	f.balls = append(f.balls[:0], balls...)
}

// Tick advances every ball one step inside regions.
//
// Each ball's home region is resolved before it moves. If the moved ball is
// no longer fully inside its home, the velocity components whose axis left
// the home are negated and the ball goes back to where it started the tick.
// A ball without a home moves freely and is re-resolved next tick.
//
// hitsCapture, when non-nil, is asked about every ball before it moves.
func (f *BallField) Tick(regions *RegionSet, hitsCapture func(core.RectF) bool) TickReport {
	var rep TickReport
	if f.Frozen {
		return rep
	}

	for i := range f.balls {
		b := &f.balls[i]
		if hitsCapture != nil && hitsCapture(b.Rect()) {
			rep.CaptureHits++
		}

		prevX, prevY := b.X, b.Y
		home, ok := regions.FindRect(b.Rect())
		b.move()
		if !ok {
			continue
		}

		moved := b.Rect()
		if home.ContainsRectF(moved) {
			continue
		}
		if moved.X < float64(home.X) || moved.Right() > float64(home.Right()) {
			b.VX = -b.VX
		}
		if moved.Y < float64(home.Y) || moved.Bottom() > float64(home.Bottom()) {
			b.VY = -b.VY
		}
		b.X, b.Y = prevX, prevY
		rep.Bounces++
	}
	return rep
}

// Len returns the number of balls.
func (f *BallField) Len() int {
	return len(f.balls)
}

// All returns a copy of the balls.
func (f *BallField) All() []Ball {
	out := make([]Ball, len(f.balls))
	copy(out, f.balls)
	return out
}

// Rects returns every ball's rectangle.
func (f *BallField) Rects() []core.RectF {
	out := make([]core.RectF, len(f.balls))
	for i, b := range f.balls {
		out[i] = b.Rect()
	}
	return out
}

// Any reports whether pred holds for some ball rectangle.
func (f *BallField) Any(pred func(core.RectF) bool) bool {
	for _, b := range f.balls {
		if pred(b.Rect()) {
			return true
		}
	}
	return false
}

// TotalArea returns the combined footprint of all balls.
func (f *BallField) TotalArea() float64 {
	total := 0.0
	for _, b := range f.balls {
		total += b.Size * b.Size
	}
	return total
}
