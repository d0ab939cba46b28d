package main

import (
	"cmp"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jezzball/internal/registry"
	"github.com/vovakirdan/tui-jezzball/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the specified mode (default: jezzball).

Examples:
  jezzball scores
  jezzball scores jezzball_timed --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "jezzball"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if len(scores) == 0 {
		fmt.Printf("No %s games recorded yet. Play 'jezzball play %s' to set the first score.\n", title, gameID)
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Player", "Score", "Level", "Played").
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 2 || col == 3 {
				return scoreNumStyle
			}
			return scoreCellStyle
		})
	for i, e := range scores {
		player := cmp.Or(e.Player, "-")
		t.Row(strconv.Itoa(i+1), player, strconv.Itoa(e.Score), strconv.Itoa(e.Level), e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println(title)
	fmt.Println(t)
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("%d games, average %.0f, best level %d\n", stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}
}

var (
	scoreCellStyle = lipgloss.NewStyle().Padding(0, 1)
	scoreNumStyle  = scoreCellStyle.Align(lipgloss.Right)
)
