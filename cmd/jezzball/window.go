package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jezzball/internal/platform/window"
)

var (
	flagScale float64
	flagTimed bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Jezzball in a desktop window instead of the terminal.

The field uses the configured size in units, multiplied by --scale.

Controls:
  Mouse        - Point cursor, left click to build, right click to rotate
  Arrows       - Move cursor
  Space        - Build a wall at the cursor
  Tab/X        - Rotate wall direction
  P            - Pause
  R            - Restart
  Esc/Q        - Quit

Examples:
  jezzball window
  jezzball window --scale 3 --timed
  jezzball window --ball-size large --sound`,
	Run: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 2, "Pixels per field unit")
	windowCmd.Flags().BoolVar(&flagTimed, "timed", false, "Play the timed mode")
}

func runWindow(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	store := openStore(logger)
	sound, closeAudio := startAudio(flagSound, logger)
	watcher := startWatcher(logger)

	err := window.Run(window.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Seed:     newSeed(),
		Timed:    flagTimed,
		Store:    store,
		Player:   playerName(),
		Logger:   logger,
		Sound:    sound,
		Watcher:  watcher,
	})

	if watcher != nil {
		watcher.Close()
	}
	closeAudio()
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
