package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stasis-arcade/internal/config"
	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/platform/headless"
	"github.com/vovakirdan/stasis-arcade/internal/platform/session"
	"github.com/vovakirdan/stasis-arcade/internal/registry"
)

var (
	flagSimTicks  int
	flagSimZone   bool
	flagSimWidth  float64
	flagSimHeight float64
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless and plot what happened",
	Long: `Run a game without a display using simulated time, then print plots
of its history and a short summary. Runs with the same --seed are identical.

Still-Root plots the number of slowed bodies; Plane Avoider starts a match on
the first tick and plots the ball count and score while the plane stands still.

Examples:
  arcade sim stillroot --zone
  arcade sim avoider --ticks 1800 --seed 42
  arcade sim avoider --difficulty hard --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	def := core.DefaultConfig()
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1800, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimZone, "zone", false, "Activate the stasis zone on the first tick")
	simCmd.Flags().Float64Var(&flagSimWidth, "width", def.Width, "Playfield width in world units")
	simCmd.Flags().Float64Var(&flagSimHeight, "height", def.Height, "Playfield height in world units")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// simHistory collects one sample per tick.
type simHistory struct {
	bodies []float64
	slowed []float64
	score  []float64
	splits int
	over   int // Tick the match ended on, 0 if it did not
}

func (h *simHistory) record(f headless.Frame) {
	st := f.Result.State
	h.bodies = append(h.bodies, float64(st.Bodies))
	h.slowed = append(h.slowed, float64(st.Slowed))
	h.score = append(h.score, float64(st.Score))
	for _, ev := range f.Result.Events {
		switch ev.Kind {
		case core.EventSplit:
			h.splits++
		case core.EventGameOver:
			h.over = f.Tick
		}
	}
}

// simInput presses the opening actions on the first tick.
func simInput(zone bool) headless.InputFunc {
	return func(tick int, _ core.GameState) core.InputFrame {
		in := core.NewInputFrame()
		if tick == 0 {
			in.Set(core.ActionConfirm)
			if zone {
				in.Set(core.ActionToggle)
			}
		}
		return in
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{ConfigPath: flagConfig, Difficulty: preset})
	if err != nil {
		return err
	}

	cfg := runtimeConfig(0, 0)
	cfg.Width, cfg.Height = flagSimWidth, flagSimHeight

	hist := &simHistory{}
	var loop *headless.Loop
	loop, err = headless.New(game, cfg, headless.Options{
		Ticks: flagSimTicks,
		Input: simInput(flagSimZone),
		OnFrame: func(f headless.Frame) {
			hist.record(f)
			if f.Result.State.GameOver {
				loop.Stop()
			}
		},
		Session: session.Options{Logger: logger, Difficulty: string(preset)},
	})
	if err != nil {
		return err
	}
	logger.Info("sim", "game", gameID, "ticks", flagSimTicks, "seed", cfg.Seed, "difficulty", preset)

	if err := loop.Run(cmd.Context()); err != nil && !errors.Is(err, headless.ErrStopped) {
		return err
	}

	out := cmd.OutOrStdout()
	plot := func(data []float64, caption string) {
		fmt.Fprintln(out, asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		))
		fmt.Fprintln(out)
	}

	final := game.State()
	fmt.Fprintf(out, "%s: %d ticks, %s simulated, seed %d\n\n", registry.Title(gameID), loop.Ticks(), loop.Elapsed(), cfg.Seed)

	switch gameID {
	case "avoider":
		plot(hist.bodies, "balls")
		plot(hist.score, "score")
		fmt.Fprintf(out, "splits: %d  balls: %d  score: %d\n", hist.splits, final.Bodies, final.Score)
		if hist.over > 0 {
			fmt.Fprintf(out, "game over on tick %d\n", hist.over)
		}
	default:
		plot(hist.slowed, "slowed bodies")
		fmt.Fprintf(out, "bodies: %d  slowed at end: %d\n", final.Bodies, final.Slowed)
	}
	return nil
}
