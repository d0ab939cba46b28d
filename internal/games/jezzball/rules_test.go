package jezzball

import (
	"strings"
	"testing"
)

func TestLevelRule(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		level    int
		expected int
	}{
		{"one per level", "count = level", 4, 4},
		{"doubling", "count = level * 2", 3, 6},
		{"capped", "count = level > 5 ? 5 : level", 9, 5},
		{"math module", "m := import(\"math\")\ncount = int(m.floor(level * 1.5))", 3, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := CompileLevelRule(tc.src)
			if err != nil {
				t.Fatalf("CompileLevelRule() error = %v", err)
			}
			got, err := rule.BallCount(tc.level)
			if err != nil {
				t.Fatalf("BallCount() error = %v", err)
			}
			if got != tc.expected {
				t.Errorf("BallCount(%d) = %d, expected %d", tc.level, got, tc.expected)
			}
		})
	}
}

func TestLevelRuleReusable(t *testing.T) {
	rule, err := CompileLevelRule("count = level + 1")
	if err != nil {
		t.Fatal(err)
	}
	for level := 1; level <= 3; level++ {
		got, err := rule.BallCount(level)
		if err != nil || got != level+1 {
			t.Errorf("BallCount(%d) = %d, %v", level, got, err)
		}
	}
}

func TestLevelRuleErrors(t *testing.T) {
	if _, err := CompileLevelRule("count = "); err == nil || !strings.HasPrefix(err.Error(), "ball rule: ") {
		t.Errorf("CompileLevelRule() error = %v, expected a ball rule error", err)
	}

	rule, err := CompileLevelRule("count = level + \"x\"")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rule.BallCount(1); err == nil {
		t.Error("int plus string should be a runtime error")
	}

	rule, err = CompileLevelRule("count = undefined")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rule.BallCount(1); err == nil {
		t.Error("undefined count should be an error")
	}
}
