package stillroot

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/stasis-arcade/internal/config"
	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "stillroot"

// Notices shown when the zone is switched.
const (
	NoticeActivated   = "Still-Root Activated!"
	NoticeDeactivated = "Still-Root Deactivated!"
)

// Game adapts a Field to the platform's Game interface.
type Game struct {
	cfg   config.StillRootConfig
	field *Field
	rng   *rand.Rand

	width  float64
	height float64
	tick   uint64
	paused bool

	pending []core.Event // Events raised outside Step, flushed by the next Step
}

// New creates a Still-Root game with the given configuration.
func New(cfg config.StillRootConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: "Still-Root"}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadStillRoot(opts.ConfigPath, opts.Difficulty)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Still-Root" }

// Field exposes the simulation for hosts and tests.
func (g *Game) Field() *Field { return g.field }

// NoticeDuration is how long hosts keep a zone notice on screen.
func (g *Game) NoticeDuration() time.Duration {
	return g.cfg.Behavior.NoticeDuration()
}

// Reset initializes the field: zone centred, bodies populated.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.field = NewField(g.cfg.Bodies.StasisBodyConfig, g.cfg.Zone.ZoneConfig, g.cfg.Placement.MaxAttempts, g.rng)
	g.width = rt.Width
	g.height = rt.Height
	g.tick = 0
	g.paused = false
	g.pending = nil

	g.field.Zone.Active = g.cfg.Zone.ActiveOnStart
	g.field.Recentre(g.width, g.height)
	g.repopulate()
}

// repopulate refills the field, excluding the zone when it is on.
func (g *Game) repopulate() {
	g.field.Reset(g.width, g.height, g.cfg.Bodies.Count, g.field.Zone.Active)
	if n := g.field.Relaxed(); n > 0 {
		g.pending = append(g.pending, core.Event{Kind: core.EventPlacementRelaxed, Value: n})
	}
}

// ToggleZone switches the stasis zone and returns its new state.
func (g *Game) ToggleZone() bool {
	on := g.field.ToggleZone()
	if on && g.cfg.Behavior.ResetOnToggle {
		g.repopulate()
	}
	msg := NoticeDeactivated
	if on {
		msg = NoticeActivated
	}
	g.pending = append(g.pending, core.Event{Kind: core.EventZoneToggled, Message: msg, On: on})
	return on
}

// Step processes input and advances the field by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.repopulate()
	}
	if in.Has(core.ActionToggle) {
		g.ToggleZone()
	}

	if !g.paused {
		g.field.Tick(g.width, g.height)
		g.tick++
	}

	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// Resize recentres the zone and repopulates the field for the new size.
func (g *Game) Resize(w, h float64) {
	g.width = w
	g.height = h
	g.field.Recentre(w, h)
	g.repopulate()
}

// Render draws the field and a one-line HUD.
func (g *Game) Render(dst core.Canvas) {
	g.field.Draw(dst)

	zone := "off"
	if g.field.Zone.Active {
		zone = "ON"
	}
	hud := fmt.Sprintf(" Still-Root  bodies %d  slowed %d  zone %s", len(g.field.Bodies), g.field.Slowed(), zone)
	dst.DrawText(0, 0, hud, core.ColorHUD)

	if g.paused {
		core.DrawMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Running: !g.paused,
		Paused:  g.paused,
		Bodies:  len(g.field.Bodies),
		Slowed:  g.field.Slowed(),
	}
}
