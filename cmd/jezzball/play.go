package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jezzball/internal/audio"
	"github.com/vovakirdan/tui-jezzball/internal/config"
	"github.com/vovakirdan/tui-jezzball/internal/games/jezzball"
	"github.com/vovakirdan/tui-jezzball/internal/platform/tui"
	"github.com/vovakirdan/tui-jezzball/internal/registry"
)

var (
	flagConfig       string
	flagDifficulty   string
	flagWatch        bool
	flagBallSize     string
	flagBallSpeed    string
	flagCaptureSpeed string
	flagLives        int
	flagStartLevel   int
	flagCheat        bool
	flagSound        bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: jezzball).

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Mouse             - Point cursor, left click to build, right click to rotate
  Space             - Build a wall at the cursor
  Tab/X             - Rotate wall direction
  P                 - Pause
  R                 - Restart
  Ctrl+S / Ctrl+Y   - Save screenshot / copy screen to clipboard
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower balls, progression from the lowest level
  normal - Progression from 30% difficulty
  hard   - Faster balls, progression from 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  jezzball play
  jezzball play jezzball_timed
  jezzball play --difficulty hard --ball-size small
  jezzball play --config ./my-jezzball.yaml --watch
  jezzball play --start-level 5 --lives 3 --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that starts a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applies next level)")
	cmd.Flags().StringVar(&flagBallSize, "ball-size", "", "Ball size: small, medium, large")
	cmd.Flags().StringVar(&flagBallSpeed, "ball-speed", "", "Ball speed: slowest, slow, medium, fast, fastest")
	cmd.Flags().StringVar(&flagCaptureSpeed, "capture-speed", "", "Wall build speed: slow, medium, fast")
	cmd.Flags().IntVar(&flagLives, "lives", 0, "Lives per level (0 = from config)")
	cmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Level to start at, 1-10 (0 = from config)")
	cmd.Flags().BoolVar(&flagCheat, "cheat", false, "Freeze the balls")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

// applyGameFlags installs the game flags and checks that they produce a
// usable config.
func applyGameFlags() error {
	jezzball.SetConfigPath(flagConfig)
	jezzball.SetDifficultyPreset(flagDifficulty)
	jezzball.SetOptions(config.Options{
		BallSize:     flagBallSize,
		BallSpeed:    flagBallSpeed,
		CaptureSpeed: flagCaptureSpeed,
		Lives:        flagLives,
		StartLevel:   flagStartLevel,
		Cheat:        flagCheat,
		Sound:        flagSound,
	})
	_, err := jezzball.LoadConfig()
	return err
}

// startAudio opens the speaker when sound is on. The returned function
// releases it.
func startAudio(enabled bool, logger *log.Logger) (bool, func()) {
	if !enabled {
		return false, func() {}
	}
	if err := audio.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		logger.Warn("audio init failed", "err", err)
		return false, func() {}
	}
	return true, audio.Close
}

// startWatcher watches the active config file when --watch is set.
func startWatcher(logger *log.Logger) *config.Watcher {
	if !flagWatch {
		return nil
	}
	path := config.ResolvePath(flagConfig)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch ignored, no config file in use")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, err)
		return nil
	}
	logger.Info("watching config", "path", w.Path())
	return w
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "jezzball"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'jezzball list' to see available modes.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound, closeAudio := startAudio(flagSound, logger)
	watcher := startWatcher(logger)

	cfg := runtimeConfig()
	cfg.Seed = newSeed()

	_, runErr := tui.Run(game, cfg, tui.GameOptions{
		Store:   store,
		Player:  playerName(),
		Logger:  logger,
		Sound:   sound,
		Watcher: watcher,
	})

	if watcher != nil {
		watcher.Close()
	}
	closeAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
