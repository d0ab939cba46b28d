package window

import (
	"testing"

	"github.com/vovakirdan/tui-jezzball/internal/core"
)

func TestLayout(t *testing.T) {
	l := layout{
		field:  core.NewRect(0, 0, 600, 400),
		origin: core.Point{X: 1, Y: 3},
		scale:  2,
	}

	if w, h := l.size(); w != 1216 || h != 856 {
		t.Errorf("size() = %d, %d, expected 1216, 856", w, h)
	}

	x, y := l.unitToPixel(10, 20)
	if x != 28 || y != 88 {
		t.Errorf("unitToPixel(10, 20) = %v, %v, expected 28, 88", x, y)
	}

	tests := []struct {
		name     string
		px, py   int
		expected core.Point
		ok       bool
	}{
		{"top-left unit", 8, 48, core.Point{X: 1, Y: 3}, true},
		{"inside", 28, 88, core.Point{X: 11, Y: 23}, true},
		{"last unit", 1207, 847, core.Point{X: 600, Y: 402}, true},
		{"hud", 100, 10, core.Point{}, false},
		{"right margin", 1208, 100, core.Point{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := l.pixelToCell(tc.px, tc.py)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("pixelToCell(%d, %d) = %v, %v, expected %v, %v", tc.px, tc.py, got, ok, tc.expected, tc.ok)
			}
		})
	}
}
