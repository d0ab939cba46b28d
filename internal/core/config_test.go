package core

import "testing"

func TestRuntimeTicks(t *testing.T) {
	tests := []struct {
		name    string
		rate    int
		seconds float64
		want    int
	}{
		{"one second", 60, 1, 60},
		{"fraction", 60, 0.05, 3},
		{"rounds to nearest", 30, 0.51, 15},
		{"zero rate uses default", 0, 2, 120},
		{"zero seconds", 60, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RuntimeConfig{TickRate: tt.rate}
			if got := c.Ticks(tt.seconds); got != tt.want {
				t.Errorf("Ticks(%v) = %d, expected %d", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.ScreenW != 80 || c.ScreenH != 24 || c.TickRate != DefaultTickRate {
		t.Errorf("DefaultConfig() = %+v", c)
	}
}
