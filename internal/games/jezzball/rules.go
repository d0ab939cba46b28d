package jezzball

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// LevelRule is a compiled tengo script that decides how many balls a level
// gets. The script sees "level" and must assign "count", e.g.
//
//	count = level + (level > 5 ? 1 : 0)
type LevelRule struct {
	src      string
	compiled *tengo.Compiled
}

// CompileLevelRule compiles src. The math and text modules are importable.
func CompileLevelRule(src string) (*LevelRule, error) {
	script := tengo.NewScript([]byte(src))
	for name, initial := range map[string]int{"level": 1, "count": 0} {
		if err := script.Add(name, initial); err != nil {
			return nil, fmt.Errorf("ball rule: %w", err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ball rule: %w", err)
	}
	return &LevelRule{src: src, compiled: compiled}, nil
}

// Source returns the script text.
func (r *LevelRule) Source() string {
	return r.src
}

// BallCount runs the rule for level. The result is not range checked here;
// level setup rejects counts below one.
func (r *LevelRule) BallCount(level int) (int, error) {
	if err := r.compiled.Set("level", level); err != nil {
		return 0, fmt.Errorf("ball rule: %w", err)
	}
	if err := r.compiled.Run(); err != nil {
		return 0, fmt.Errorf("ball rule at level %d: %w", level, err)
	}
	v := r.compiled.Get("count")
	if v.IsUndefined() {
		return 0, fmt.Errorf("ball rule at level %d: count is undefined", level)
	}
	return v.Int(), nil
}
