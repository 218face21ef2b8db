package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/platform/session"
	"github.com/vovakirdan/stasis-arcade/internal/registry"
)

var background = color.NRGBA{R: 0x02, G: 0x06, B: 0x17, A: 0xff}

// Directions are sampled from the live key state every tick.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// Other actions fire once per key press.
var pressKeys = map[core.Action][]ebiten.Key{
	core.ActionToggle:  {ebiten.KeyT, ebiten.KeyZ},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeySpace},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionQuit:    {ebiten.KeyQ},
}

// sampleInput builds a tick's input from key state queries.
func sampleInput(pressed, justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for a, keys := range heldKeys {
		for _, k := range keys {
			if pressed(k) {
				in.Set(a)
				break
			}
		}
	}
	for a, keys := range pressKeys {
		for _, k := range keys {
			if justPressed(k) {
				in.Set(a)
				break
			}
		}
	}
	return in
}

// Options are the optional collaborators of the window host.
type Options struct {
	Session session.Options
	Title   string
}

// Host adapts a registry.Game to ebiten.Game.
type Host struct {
	game    registry.Game
	config  core.RuntimeConfig
	session *session.Session
	canvas  *Canvas
	width   int
	height  int
}

// NewHost creates a window host. The initial window matches cfg's playfield.
func NewHost(game registry.Game, cfg core.RuntimeConfig, opts Options) *Host {
	return &Host{
		game:    game,
		config:  cfg,
		session: session.New(game, cfg.Now(), opts.Session),
		canvas:  NewCanvas(),
		width:   int(cfg.Width),
		height:  int(cfg.Height),
	}
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	in := sampleInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	h.session.Observe(h.game.Step(in))
	return nil
}

// Draw renders the game and the live notice.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	h.canvas.Target(screen)
	h.game.Render(h.canvas)
	h.session.DrawNotice(h.canvas)
}

// Layout keeps one world unit per pixel and forwards size changes to the game.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != h.width || outsideHeight != h.height) {
		h.width, h.height = outsideWidth, outsideHeight
		h.game.Resize(float64(outsideWidth), float64(outsideHeight))
		h.session.Logger().Debug("resized", "width", outsideWidth, "height", outsideHeight)
	}
	return h.width, h.height
}

// Run opens a window and plays game until it is closed or Q is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("gfx: %w", err)
	}
	title := opts.Title
	if title == "" {
		title = game.Title()
	}

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	h := NewHost(game, cfg, opts)
	game.Reset(cfg)
	h.session.Logger().Info("window opened", "width", cfg.Width, "height", cfg.Height)

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("gfx: %w", err)
	}
	return nil
}
