package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stasis-arcade/internal/config"
	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/platform/gfx"
	"github.com/vovakirdan/stasis-arcade/internal/platform/session"
	"github.com/vovakirdan/stasis-arcade/internal/platform/tui"
	"github.com/vovakirdan/stasis-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
	flagSound      bool
	flagHoldTicks  int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  T/Z          - Toggle the stasis zone (stillroot)
  Enter/Space  - Start a match (avoider)
  Arrows/WASD  - Move the plane (avoider)
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a text screenshot (terminal)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - fewer, slower bodies; slower splits
  normal - values from the config file
  hard   - more, faster bodies; faster splits

Examples:
  arcade play stillroot
  arcade play avoider --difficulty hard
  arcade play avoider --window --sound
  arcade play stillroot --config ./my-stillroot.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a direction stays held after a key press (terminal)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{ConfigPath: flagConfig, Difficulty: preset})
	if err != nil {
		return err
	}

	store := openStore(cmd.Context(), logger)
	if store != nil {
		defer store.Close()
	}
	player := newAudio(flagSound, logger)
	defer player.Close()

	if flagWindow {
		cfg := runtimeConfig(0, 0)
		def := core.DefaultConfig()
		cfg.Width, cfg.Height = def.Width*1.5, def.Height*1.5
		logger.Info("play", "game", gameID, "host", "window", "difficulty", preset)
		return gfx.Run(game, cfg, gfx.Options{Session: session.Options{
			Store:      store,
			Logger:     logger,
			Audio:      soundCues(player),
			Difficulty: string(preset),
		}})
	}

	cols, rows := terminalSize()
	cfg := runtimeConfig(cols, rows-1)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Info("play", "game", gameID, "host", "terminal", "difficulty", preset, "cols", cols, "rows", rows)
	return tui.Run(game, cfg, tui.Options{
		Store:      store,
		Logger:     logger,
		Audio:      soundCues(player),
		Difficulty: string(preset),
		HoldTicks:  flagHoldTicks,
		ShowHelp:   true,
	})
}
