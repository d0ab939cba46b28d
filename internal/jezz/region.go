package jezz

import "github.com/vovakirdan/tui-jezzball/internal/core"

// RegionID tags a region for its whole lifetime. IDs are never reused
// within a RegionSet, so a stale ID simply stops resolving after a split.
type RegionID uint64

// Region is one open, uncaptured rectangle of the field.
type Region struct {
	ID RegionID
	core.Rect
}

// SplitOutcome describes what a Split did.
type SplitOutcome struct {
	Found      bool      // false when the point was in no region (nothing changed)
	Parent     core.Rect // region that was split
	First      core.Rect // left or top half
	Second     core.Rect // right or bottom half
	KeptFirst  bool
	KeptSecond bool
	Captured   int // area of the dropped halves
}

// Kept returns how many halves survived.
func (o SplitOutcome) Kept() int {
	n := 0
	if o.KeptFirst {
		n++
	}
	if o.KeptSecond {
		n++
	}
	return n
}

// RegionSet holds the disjoint open regions of one field.
type RegionSet struct {
	field   core.Rect
	regions []Region
	nextID  RegionID
}

// NewRegionSet creates a set holding one region equal to field.
func NewRegionSet(field core.Rect) *RegionSet {
	s := &RegionSet{}
	s.Reset(field)
	return s
}

// Reset discards every region and inserts one equal to field.
func (s *RegionSet) Reset(field core.Rect) {
	s.field = field
	s.regions = s.regions[:0]
	s.regions = append(s.regions, s.newRegion(field))
}

func (s *RegionSet) newRegion(r core.Rect) Region {
	s.nextID++
	return Region{ID: s.nextID, Rect: r}
}

// Field returns the rectangle the set was last reset to.
func (s *RegionSet) Field() core.Rect {
	return s.field
}

// Len returns the number of open regions.
func (s *RegionSet) Len() int {
	return len(s.regions)
}

// All returns a copy of the open regions in insertion order.
func (s *RegionSet) All() []Region {
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// Get looks a region up by ID.
func (s *RegionSet) Get(id RegionID) (Region, bool) {
	for _, r := range s.regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// FindPoint returns the region containing p (half-open edges).
func (s *RegionSet) FindPoint(p core.Point) (Region, bool) {
	for _, r := range s.regions {
		if r.ContainsPoint(p) {
			return r, true
		}
	}
	return Region{}, false
}

// FindRect returns the region fully containing rect.
func (s *RegionSet) FindRect(rect core.RectF) (Region, bool) {
	for _, r := range s.regions {
		if r.ContainsRectF(rect) {
			return r, true
		}
	}
	return Region{}, false
}

// Split divides the region containing p at p.X (vertical) or p.Y and keeps
// only the halves that fully contain at least one ball.
func (s *RegionSet) Split(p core.Point, vertical bool, balls []core.RectF) SplitOutcome {
	idx := -1
	for i, r := range s.regions {
		if r.ContainsPoint(p) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return SplitOutcome{}
	}

	parent := s.regions[idx].Rect
	out := SplitOutcome{Found: true, Parent: parent}
	if vertical {
		out.First = core.NewRect(parent.X, parent.Y, p.X-parent.X, parent.H)
		out.Second = core.NewRect(p.X, parent.Y, parent.Right()-p.X, parent.H)
	} else {
		out.First = core.NewRect(parent.X, parent.Y, parent.W, p.Y-parent.Y)
		out.Second = core.NewRect(parent.X, p.Y, parent.W, parent.Bottom()-p.Y)
	}
	out.KeptFirst = holdsBall(out.First, balls)
	out.KeptSecond = holdsBall(out.Second, balls)

	var survivors []Region
	if out.KeptFirst {
		survivors = append(survivors, s.newRegion(out.First))
	} else {
		out.Captured += out.First.Area()
	}
	if out.KeptSecond {
		survivors = append(survivors, s.newRegion(out.Second))
	} else {
		out.Captured += out.Second.Area()
	}

	// Survivors take the parent's slot so scan order stays stable.
	next := make([]Region, 0, len(s.regions)+1)
	next = append(next, s.regions[:idx]...)
	next = append(next, survivors...)
	next = append(next, s.regions[idx+1:]...)
	s.regions = next
	return out
}

func holdsBall(half core.Rect, balls []core.RectF) bool {
	if half.Empty() {
		return false
	}
	for _, b := range balls {
		if half.ContainsRectF(b) {
			return true
		}
	}
	return false
}

// OpenArea returns the summed area of all open regions.
func (s *RegionSet) OpenArea() int {
	total := 0
	for _, r := range s.regions {
		total += r.Area()
	}
	return total
}

// Progress returns the captured fraction of fieldArea.
// It is computed from the live regions on every call.
func (s *RegionSet) Progress(fieldArea int) float64 {
	if fieldArea <= 0 {
		return 0
	}
	return 1 - float64(s.OpenArea())/float64(fieldArea)
}
