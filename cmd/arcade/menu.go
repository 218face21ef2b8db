package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stasis-arcade/internal/config"
	"github.com/vovakirdan/stasis-arcade/internal/platform/tui"
	"github.com/vovakirdan/stasis-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Left/Right to change difficulty and
Enter to select a game. After a game ends, you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select game
  Tab             - High scores
  Q               - Quit

Examples:
  arcade menu
  arcade menu --fps 30 --sound
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(cmd.Context(), logger)
	if store != nil {
		defer store.Close()
	}
	player := newAudio(flagSound, logger)
	defer player.Close()

	width, height := terminalSize()

	for {
		res, err := tui.RunMenu(width, height, preset)
		if err != nil {
			return err
		}
		if res.Width > 0 && res.Height > 0 {
			width, height = res.Width, res.Height
		}
		preset = res.Difficulty

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(res.GameID, registry.Options{Difficulty: preset})
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		cfg := runtimeConfig(width, height-1)
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger.Info("play", "game", res.GameID, "host", "terminal", "difficulty", preset)

		err = tui.Run(game, cfg, tui.Options{
			Store:      store,
			Logger:     logger,
			Audio:      soundCues(player),
			Difficulty: string(preset),
			HoldTicks:  tui.DefaultHoldTicks,
			ShowHelp:   true,
		})
		if err != nil {
			return err
		}
	}
}
