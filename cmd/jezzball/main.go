// jezzball is a terminal Jezzball: trap bouncing balls by building walls
// until enough of the field is captured.
//
// Usage:
//
//	jezzball list              - List available modes
//	jezzball play [mode]       - Play a mode (default: jezzball)
//	jezzball menu              - Start menu to pick modes and options
//	jezzball window            - Play in a desktop window
//	jezzball serve             - Start SSH server for remote play
//	jezzball scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jezzball/internal/core"
	_ "github.com/vovakirdan/tui-jezzball/internal/games/jezzball"
	"github.com/vovakirdan/tui-jezzball/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

// logFile is closed on exit when --log-file is set.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jezzball",
	Short: "Jezzball - capture the field in your terminal",
	Long: `Jezzball is a terminal version of the classic area capture game.
Build walls across the field to trap the bouncing balls in ever smaller
regions. A level is won once enough of the field is captured.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive menu with options and scoreboard
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  jezzball play
  jezzball play jezzball_timed --difficulty hard
  jezzball menu
  jezzball window --scale 3
  jezzball serve --ssh :2222
  jezzball scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger returns a logger writing to --log-file. The terminal belongs to
// the game, so without the flag logs are discarded.
func newLogger() *log.Logger {
	if flagLogFile == "" {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return log.New(io.Discard)
	}
	logFile = f
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "jezzball",
	})
	logger.SetLevel(log.DebugLevel)
	return logger
}

// openStore opens the scores database. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newSeed returns the --seed value, or a fresh one when it is zero.
func newSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// playerName names the local player in the scores table.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
