package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jezzball/internal/games/jezzball"
	"github.com/vovakirdan/tui-jezzball/internal/registry"
)

var flagListLevels int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modes and the rules in effect",
	Long: `Shows the registered Jezzball modes, then the rules the game flags
produce: field size, lives, goal and the balls per level.

Examples:
  jezzball list
  jezzball list --difficulty hard --levels 15
  jezzball list --config ./my_rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func init() {
	addGameFlags(listCmd)
	listCmd.Flags().IntVar(&flagListLevels, "levels", 10, "How many levels to show ball counts for")
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runList(_ *cobra.Command, _ []string) {
	modes := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Mode", "Title")
	for _, g := range registry.List() {
		modes.Row(g.ID, g.Title)
	}
	fmt.Println(modes)

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, _ := jezzball.LoadConfig()
	rule, err := jezzball.CompileLevelRule(cfg.Balls.Rule)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nField %dx%d, %d lives, goal %.0f%%, ball speed %.2f, wall speed %d\n",
		cfg.Field.Width, cfg.Field.Height, cfg.Gameplay.Lives,
		cfg.Gameplay.Goal*100, cfg.Balls.Speed, cfg.Capture.Speed)

	levels := table.New().Border(lipgloss.NormalBorder()).Headers("Level", "Balls")
	for level := 1; level <= flagListLevels; level++ {
		count, err := rule.BallCount(level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if cfg.Balls.Max > 0 {
			count = min(count, cfg.Balls.Max)
		}
		levels.Row(strconv.Itoa(level), strconv.Itoa(count))
	}
	fmt.Println(levels)
	fmt.Println("Run 'jezzball play <mode>' to play.")
}
