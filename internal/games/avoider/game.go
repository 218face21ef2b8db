package avoider

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/stasis-arcade/internal/config"
	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "avoider"

// Game adapts a Match to the platform's Game interface.
type Game struct {
	cfg   config.AvoiderConfig
	match *Match

	width  float64
	height float64
	tick   uint64
}

// New creates a Plane Avoider game with the given configuration.
func New(cfg config.AvoiderConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: "Plane Avoider"}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadAvoider(opts.ConfigPath, opts.Difficulty)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Plane Avoider" }

// Match exposes the simulation for hosts and tests.
func (g *Game) Match() *Match { return g.match }

// Reset creates a fresh idle match.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.width = rt.Width
	g.height = rt.Height
	g.tick = 0
	g.match = NewMatch(g.cfg, rt.Width, rt.Height, rand.New(rand.NewSource(rt.Seed)), rt.Now())
}

// Start begins or restarts the match.
func (g *Game) Start() error {
	return g.match.Start()
}

// Step processes input and advances the match by one tick.
// Confirm starts a match, Restart starts a new one after game over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if (in.Has(core.ActionConfirm) || in.Has(core.ActionRestart)) && !g.match.Running() {
		if err := g.match.Start(); err == nil {
			events = append(events, core.Event{Kind: core.EventStarted, Value: len(g.match.Balls)})
		}
	}
	if in.Has(core.ActionPause) {
		g.match.SetPaused(!g.match.Paused())
	}

	if g.match.Running() && !g.match.Paused() {
		events = append(events, g.match.Tick(in.Directions(), g.width, g.height)...)
		g.tick++
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Resize passes the new playfield size to the match.
func (g *Game) Resize(w, h float64) {
	g.width = w
	g.height = h
	g.match.Resize(w, h)
}

// Render draws the match, the HUD and any overlay.
func (g *Game) Render(dst core.Canvas) {
	g.match.Draw(dst)

	switch g.match.Phase() {
	case PhaseIdle:
		_, h := dst.Size()
		dst.DrawTextCentered(h/2+2*core.DefaultCellHeight, "[Enter] start  [Arrows/WASD] move  [Q] quit", core.ColorMuted)
	case PhaseRunning:
		dst.DrawText(0, 0, fmt.Sprintf(" Score: %d  Balls: %d", g.match.Score(), len(g.match.Balls)), core.ColorHUD)
		if g.match.Paused() {
			core.DrawMessage(dst, "PAUSED", "Press P to resume")
		}
	case PhaseOver:
		dst.DrawText(0, 0, fmt.Sprintf(" Score: %d  Balls: %d", g.match.Score(), len(g.match.Balls)), core.ColorHUD)
		core.DrawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.match.Score()))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.match.Score(),
		Running:  g.match.Running() && !g.match.Paused(),
		GameOver: g.match.Over(),
		Paused:   g.match.Paused(),
		Bodies:   len(g.match.Balls),
	}
}
