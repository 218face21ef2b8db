// arcade runs the Still-Root and Plane Avoider simulations in the terminal,
// in a desktop window, or headless.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade scores <game>     - Show high scores for a game
//	arcade sim <game>        - Run a game headless and plot what happened
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Log destination (default: ~/.arcade/arcade.log)
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stasis-arcade/internal/audio"
	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/platform/session"
	"github.com/vovakirdan/stasis-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/stasis-arcade/internal/games/avoider"
	_ "github.com/vovakirdan/stasis-arcade/internal/games/stillroot"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Stasis Arcade - bouncing bodies, stasis zones and splitting balls",
	Long: `Stasis Arcade runs two small 2D simulations:

  stillroot  - bodies bounce around a field; a stasis zone slows them down
  avoider    - steer a plane away from balls that split every few seconds

Available commands:
  list     - Show all available games
  play     - Play a specific game (terminal or --window)
  menu     - Interactive game picker menu
  scores   - View high scores
  sim      - Run a game headless and plot its history

Examples:
  arcade list
  arcade play stillroot
  arcade play avoider --difficulty hard --window
  arcade sim avoider --ticks 1800
  arcade scores avoider`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file path")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. Interactive hosts own the terminal,
// so logs go to a file unless w is given.
func newLogger(w io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	closeFn := func() {}
	if w == nil {
		path, err := storage.ExpandPath(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the score database. A failure is logged and play continues
// without saving.
func openStore(ctx context.Context, logger *log.Logger) *storage.Store {
	store, err := storage.Open(ctx, flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// newAudio starts the speaker when sound is requested.
func newAudio(enabled bool, logger *log.Logger) *audio.Player {
	if !enabled {
		return nil
	}
	p := audio.NewPlayer(0.6)
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return p
}

// soundCues keeps a disabled player out of the session.
func soundCues(p *audio.Player) session.Cues {
	if p == nil {
		return nil
	}
	return p
}

// terminalSize returns the terminal size in cells, 80x24 when unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 80, 24
}

// runtimeConfig builds the runtime config for a playfield of cols x rows cells.
func runtimeConfig(cols, rows int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Width = float64(cols) * core.DefaultCellWidth
	cfg.Height = float64(rows) * core.DefaultCellHeight
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
