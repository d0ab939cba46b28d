package jezz

import (
	"testing"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

func ballAt(x, y, size float64) core.RectF {
	return core.RectF{X: x, Y: y, W: size, H: size}
}

func TestRegionSetReset(t *testing.T) {
	field := core.NewRect(0, 0, 100, 100)
	s := NewRegionSet(field)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", s.Len())
	}
	if s.OpenArea() != 10000 {
		t.Errorf("OpenArea() = %d, expected 10000", s.OpenArea())
	}
	if s.Progress(field.Area()) != 0 {
		t.Errorf("Progress() = %f, expected 0", s.Progress(field.Area()))
	}

	s.Split(core.Point{X: 50, Y: 50}, true, []core.RectF{ballAt(10, 10, 8)})
	s.Reset(field)
	if s.Len() != 1 || s.All()[0].Rect != field {
		t.Errorf("after Reset regions = %v, expected the whole field", s.All())
	}
}

func TestSplitDropsEmptyHalf(t *testing.T) {
	// Field 100x100 with one ball on the left, split at x=50.
	field := core.NewRect(0, 0, 100, 100)
	s := NewRegionSet(field)

	out := s.Split(core.Point{X: 50, Y: 30}, true, []core.RectF{ballAt(10, 10, 8)})

	if !out.Found {
		t.Fatal("split point should be found")
	}
	if !out.KeptFirst || out.KeptSecond {
		t.Errorf("kept = (%v, %v), expected (true, false)", out.KeptFirst, out.KeptSecond)
	}
	if out.First != core.NewRect(0, 0, 50, 100) || out.Second != core.NewRect(50, 0, 50, 100) {
		t.Errorf("halves = %v / %v", out.First, out.Second)
	}
	if out.Captured != 5000 {
		t.Errorf("Captured = %d, expected 5000", out.Captured)
	}
	if s.OpenArea() != 5000 {
		t.Errorf("OpenArea() = %d, expected 5000", s.OpenArea())
	}
	if got := s.Progress(field.Area()); got != 0.5 {
		t.Errorf("Progress() = %f, expected 0.5", got)
	}
}

func TestSplitOutcomes(t *testing.T) {
	field := core.NewRect(0, 0, 100, 60)

	tests := []struct {
		name         string
		at           core.Point
		vertical     bool
		balls        []core.RectF
		expectKept   int
		expectRegion []core.Rect
	}{
		{
			name:         "horizontal split, ball on top",
			at:           core.Point{X: 10, Y: 20},
			balls:        []core.RectF{ballAt(40, 2, 8)},
			expectKept:   1,
			expectRegion: []core.Rect{core.NewRect(0, 0, 100, 20)},
		},
		{
			name:         "horizontal split, ball on bottom",
			at:           core.Point{X: 10, Y: 20},
			balls:        []core.RectF{ballAt(40, 50, 8)},
			expectKept:   1,
			expectRegion: []core.Rect{core.NewRect(0, 20, 100, 40)},
		},
		{
			name:       "vertical split, balls on both sides",
			at:         core.Point{X: 30, Y: 5},
			vertical:   true,
			balls:      []core.RectF{ballAt(2, 2, 8), ballAt(80, 40, 8)},
			expectKept: 2,
			expectRegion: []core.Rect{
				core.NewRect(0, 0, 30, 60),
				core.NewRect(30, 0, 70, 60),
			},
		},
		{
			name:       "no balls at all",
			at:         core.Point{X: 30, Y: 5},
			vertical:   true,
			expectKept: 0,
		},
		{
			name:       "ball straddling the split line",
			at:         core.Point{X: 30, Y: 5},
			vertical:   true,
			balls:      []core.RectF{ballAt(26, 10, 8)},
			expectKept: 0,
		},
		{
			name:         "ball touching the split line from the left",
			at:           core.Point{X: 30, Y: 5},
			vertical:     true,
			balls:        []core.RectF{ballAt(22, 10, 8)},
			expectKept:   1,
			expectRegion: []core.Rect{core.NewRect(0, 0, 30, 60)},
		},
		{
			name:       "split on the region's left edge",
			at:         core.Point{X: 0, Y: 5},
			vertical:   true,
			balls:      []core.RectF{ballAt(50, 10, 8)},
			expectKept: 1,
			expectRegion: []core.Rect{
				core.NewRect(0, 0, 100, 60),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewRegionSet(field)
			out := s.Split(tc.at, tc.vertical, tc.balls)

			if out.Kept() != tc.expectKept {
				t.Errorf("Kept() = %d, expected %d", out.Kept(), tc.expectKept)
			}
			if out.Parent.Area() != out.First.Area()+out.Second.Area() {
				t.Errorf("halves do not cover parent: %v + %v != %v", out.First, out.Second, out.Parent)
			}
			if s.Len() != len(tc.expectRegion) {
				t.Fatalf("Len() = %d, expected %d", s.Len(), len(tc.expectRegion))
			}
			for i, r := range s.All() {
				if r.Rect != tc.expectRegion[i] {
					t.Errorf("region %d = %v, expected %v", i, r.Rect, tc.expectRegion[i])
				}
			}
			if s.OpenArea()+out.Captured != field.Area() {
				t.Errorf("open %d + captured %d != field %d", s.OpenArea(), out.Captured, field.Area())
			}
		})
	}
}

func TestSplitOutsideEveryRegion(t *testing.T) {
	s := NewRegionSet(core.NewRect(0, 0, 100, 100))
	before := s.All()

	out := s.Split(core.Point{X: 150, Y: 10}, true, []core.RectF{ballAt(10, 10, 8)})

	if out.Found {
		t.Error("split outside the field should not be found")
	}
	if s.Len() != len(before) || s.All()[0] != before[0] {
		t.Error("RegionSet should be unchanged")
	}
}

func TestSplitKeepsScanOrderAndRetiresIDs(t *testing.T) {
	balls := []core.RectF{ballAt(5, 5, 4), ballAt(45, 5, 4), ballAt(85, 5, 4)}
	s := NewRegionSet(core.NewRect(0, 0, 100, 20))

	s.Split(core.Point{X: 60, Y: 0}, true, balls)
	regions := s.All()
	if len(regions) != 2 {
		t.Fatalf("Len() = %d, expected 2", len(regions))
	}
	left, right := regions[0], regions[1]

	s.Split(core.Point{X: 30, Y: 0}, true, balls)
	regions = s.All()
	if len(regions) != 3 {
		t.Fatalf("Len() = %d, expected 3", len(regions))
	}
	if regions[0].X != 0 || regions[1].X != 30 || regions[2] != right {
		t.Errorf("regions out of order: %v", regions)
	}
	if _, ok := s.Get(left.ID); ok {
		t.Error("split parent ID should no longer resolve")
	}
	if regions[0].ID == left.ID || regions[1].ID == left.ID {
		t.Error("children must get fresh IDs")
	}
}

func TestFindPointSharedEdge(t *testing.T) {
	s := NewRegionSet(core.NewRect(0, 0, 100, 100))
	s.Split(core.Point{X: 50, Y: 0}, true, []core.RectF{ballAt(10, 10, 8), ballAt(80, 10, 8)})

	r, ok := s.FindPoint(core.Point{X: 50, Y: 40})
	if !ok || r.X != 50 {
		t.Errorf("FindPoint on shared edge = %v (%v), expected the right region", r, ok)
	}
	if _, ok := s.FindPoint(core.Point{X: 100, Y: 40}); ok {
		t.Error("FindPoint on the field's right edge should fail")
	}

	// Rect lookup needs full containment but accepts touching edges.
	if r, ok := s.FindRect(ballAt(42, 0, 8)); !ok || r.X != 0 {
		t.Errorf("FindRect(touching edge) = %v (%v), expected the left region", r, ok)
	}
	if _, ok := s.FindRect(ballAt(46, 0, 8)); ok {
		t.Error("FindRect should fail for a rect spanning two regions")
	}
}

func TestRegionSetInvariantsUnderRandomSplits(t *testing.T) {
	field := core.NewRect(0, 0, 300, 200)
	rng := NewRNG(42)
	balls := make([]core.RectF, 6)
	for i := range balls {
		balls[i] = ballAt(float64(rng.Intn(292)), float64(rng.Intn(192)), 8)
	}

	s := NewRegionSet(field)
	prevOpen := s.OpenArea()
	for i := 0; i < 200; i++ {
		p := core.Point{X: rng.Intn(field.W), Y: rng.Intn(field.H)}
		out := s.Split(p, rng.Intn(2) == 0, balls)

		if out.Found && out.Parent.Area() != out.First.Area()+out.Second.Area() {
			t.Fatalf("split %d: area not conserved: %+v", i, out)
		}
		open := s.OpenArea()
		if open > prevOpen {
			t.Fatalf("split %d: open area grew from %d to %d", i, prevOpen, open)
		}
		prevOpen = open

		regions := s.All()
		for a := range regions {
			if regions[a].X < field.X || regions[a].Right() > field.Right() ||
				regions[a].Y < field.Y || regions[a].Bottom() > field.Bottom() {
				t.Fatalf("split %d: region %v leaves the field", i, regions[a])
			}
			for b := a + 1; b < len(regions); b++ {
				if regions[a].Intersects(regions[b].Rect) {
					t.Fatalf("split %d: regions %v and %v overlap", i, regions[a], regions[b])
				}
			}
		}
	}
}
