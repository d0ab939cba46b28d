package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jezzball/internal/games/jezzball"
	"github.com/vovakirdan/tui-jezzball/internal/platform/tui"
	"github.com/vovakirdan/tui-jezzball/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Jezzball with a mode picker menu",
	Long: `Start Jezzball in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press B/Esc while paused or after game over to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  O            - Options (ball size, speed, lives, start level, sound)
  Tab          - Scoreboard
  Q            - Quit

Examples:
  jezzball menu
  jezzball menu --fps 30
  jezzball menu --difficulty easy --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	store := openStore(logger)
	watcher := startWatcher(logger)
	cfg := runtimeConfig()

	sound, closeAudio := startAudio(flagSound, logger)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.WantsOptions {
			current := tui.OptionsSelection{
				Options: jezzball.CurrentOptions(),
				Preset:  flagDifficulty,
			}
			selection, quit, optErr := tui.RunOptionsMenu(current, cfg)
			if optErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", optErr)
				continue
			}
			if quit {
				break
			}
			if selection != nil {
				flagDifficulty = selection.Preset
				jezzball.SetDifficultyPreset(selection.Preset)
				jezzball.SetOptions(selection.Options)
				logger.Info("options changed", "preset", selection.Preset, "options", fmt.Sprintf("%+v", selection.Options))

				if selection.Options.Sound && !sound {
					closeAudio()
					sound, closeAudio = startAudio(true, logger)
				} else if !selection.Options.Sound && sound {
					closeAudio()
					sound, closeAudio = false, func() {}
				}
			}
			continue
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		cfg.Seed = newSeed()

		back, err := tui.Run(game, cfg, tui.GameOptions{
			Store:     store,
			Player:    playerName(),
			Logger:    logger,
			Sound:     sound,
			Watcher:   watcher,
			AllowBack: true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			break
		}
	}

	if watcher != nil {
		watcher.Close()
	}
	closeAudio()
	if store != nil {
		store.Close()
	}
}
