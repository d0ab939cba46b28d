package jezz

import (
	"testing"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

func TestBallMovesInsideRegion(t *testing.T) {
	regions := NewRegionSet(core.NewRect(0, 0, 100, 100))
	f := NewBallField()
	f.Set([]Ball{{X: 10, Y: 10, VX: 2, VY: 2, Size: 8}})

	rep := f.Tick(regions, nil)

	b := f.All()[0]
	if b.X != 12 || b.Y != 12 {
		t.Errorf("position = (%v, %v), expected (12, 12)", b.X, b.Y)
	}
	if b.VX != 2 || b.VY != 2 {
		t.Errorf("velocity = (%v, %v), expected (2, 2)", b.VX, b.VY)
	}
	if rep.Bounces != 0 {
		t.Errorf("Bounces = %d, expected 0", rep.Bounces)
	}
}

func TestBallReflectsAndFreezesOneTick(t *testing.T) {
	regions := NewRegionSet(core.NewRect(0, 0, 100, 100))

	tests := []struct {
		name           string
		ball           Ball
		expectVX       float64
		expectVY       float64
		expectX        float64
		expectY        float64
		expectBounces  int
		expectAfterTwo float64 // X after a second tick
	}{
		{
			name:           "right wall",
			ball:           Ball{X: 92, Y: 10, VX: 2, VY: 0, Size: 8},
			expectVX:       -2,
			expectVY:       0,
			expectX:        92,
			expectY:        10,
			expectBounces:  1,
			expectAfterTwo: 90,
		},
		{
			name:           "left wall",
			ball:           Ball{X: 1, Y: 50, VX: -2, VY: 1, Size: 8},
			expectVX:       2,
			expectVY:       1,
			expectX:        1,
			expectY:        50,
			expectBounces:  1,
			expectAfterTwo: 3,
		},
		{
			name:           "corner flips both axes",
			ball:           Ball{X: 91, Y: 91, VX: 2, VY: 2, Size: 8},
			expectVX:       -2,
			expectVY:       -2,
			expectX:        91,
			expectY:        91,
			expectBounces:  1,
			expectAfterTwo: 89,
		},
		{
			name:           "exactly reaching the wall is not a bounce",
			ball:           Ball{X: 90, Y: 10, VX: 2, VY: 0, Size: 8},
			expectVX:       2,
			expectX:        92,
			expectY:        10,
			expectAfterTwo: 92,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewBallField()
			f.Set([]Ball{tc.ball})

			rep := f.Tick(regions, nil)
			b := f.All()[0]
			if b.VX != tc.expectVX || b.VY != tc.expectVY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.VX, b.VY, tc.expectVX, tc.expectVY)
			}
			if b.X != tc.expectX || b.Y != tc.expectY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", b.X, b.Y, tc.expectX, tc.expectY)
			}
			if rep.Bounces != tc.expectBounces {
				t.Errorf("Bounces = %d, expected %d", rep.Bounces, tc.expectBounces)
			}

			f.Tick(regions, nil)
			if got := f.All()[0].X; got != tc.expectAfterTwo {
				t.Errorf("X after second tick = %v, expected %v", got, tc.expectAfterTwo)
			}
		})
	}
}

func TestBallWithoutHomeMovesFreely(t *testing.T) {
	// Already poking out of the field: no region contains it, so it is
	// moved without a bounce check.
	regions := NewRegionSet(core.NewRect(0, 0, 100, 100))
	f := NewBallField()
	f.Set([]Ball{{X: 94, Y: 10, VX: 2, VY: 0, Size: 8}})

	rep := f.Tick(regions, nil)

	b := f.All()[0]
	if b.X != 96 || b.VX != 2 {
		t.Errorf("ball = %+v, expected X=96 VX=2", b)
	}
	if rep.Bounces != 0 {
		t.Errorf("Bounces = %d, expected 0", rep.Bounces)
	}
}

func TestBallBouncesOffSplitWall(t *testing.T) {
	regions := NewRegionSet(core.NewRect(0, 0, 100, 100))
	balls := []Ball{{X: 41, Y: 20, VX: 2, VY: 0, Size: 8}}
	regions.Split(core.Point{X: 50, Y: 0}, true, []core.RectF{balls[0].Rect(), ballAt(70, 70, 8)})

	f := NewBallField()
	f.Set(balls)
	f.Tick(regions, nil)

	if b := f.All()[0]; b.VX != -2 || b.X != 41 {
		t.Errorf("ball = %+v, expected reflection off x=50", b)
	}
}

func TestBallFieldCaptureHits(t *testing.T) {
	regions := NewRegionSet(core.NewRect(0, 0, 100, 100))
	f := NewBallField()
	f.Set([]Ball{
		{X: 10, Y: 10, VX: 1, VY: 1, Size: 8},
		{X: 60, Y: 60, VX: 1, VY: 1, Size: 8},
	})
	strip := core.RectF{X: 0, Y: 12, W: 100, H: 4}

	rep := f.Tick(regions, strip.Intersects)
	if rep.CaptureHits != 1 {
		t.Errorf("CaptureHits = %d, expected 1", rep.CaptureHits)
	}
}

func TestFrozenBallField(t *testing.T) {
	regions := NewRegionSet(core.NewRect(0, 0, 100, 100))
	f := NewBallField()
	f.Set([]Ball{{X: 10, Y: 10, VX: 2, VY: 2, Size: 8}})
	f.Frozen = true

	for range 10 {
		f.Tick(regions, nil)
	}
	if b := f.All()[0]; b.X != 10 || b.Y != 10 {
		t.Errorf("frozen ball moved to (%v, %v)", b.X, b.Y)
	}
}

func TestSpawnBalls(t *testing.T) {
	container := core.NewRect(20, 10, 200, 120)
	f := NewBallField()
	f.SpawnBalls(container, 12, 16, 1.25, NewRNG(7))

	if f.Len() != 12 {
		t.Fatalf("Len() = %d, expected 12", f.Len())
	}
	for i, b := range f.All() {
		if !container.ContainsRectF(b.Rect()) {
			t.Errorf("ball %d at %+v is outside the container", i, b.Rect())
		}
		if (b.VX != 1.25 && b.VX != -1.25) || (b.VY != 1.25 && b.VY != -1.25) {
			t.Errorf("ball %d velocity = (%v, %v), expected ±1.25", i, b.VX, b.VY)
		}
	}
	if f.TotalArea() != 12*16*16 {
		t.Errorf("TotalArea() = %v, expected %v", f.TotalArea(), 12*16*16)
	}

	g := NewBallField()
	g.SpawnBalls(container, 12, 16, 1.25, NewRNG(7))
	for i := range f.All() {
		if f.All()[i] != g.All()[i] {
			t.Fatalf("ball %d differs for the same seed", i)
		}
	}
}

func TestBallsStayContained(t *testing.T) {
	field := core.NewRect(0, 0, 320, 200)
	regions := NewRegionSet(field)
	f := NewBallField()
	f.SpawnBalls(field, 8, 8, 2.5, NewRNG(99))

	for tick := 0; tick < 2000; tick++ {
		f.Tick(regions, nil)
		for i, r := range f.Rects() {
			if _, ok := regions.FindRect(r); !ok {
				t.Fatalf("tick %d: ball %d at %+v left every region", tick, i, r)
			}
		}
	}
}
