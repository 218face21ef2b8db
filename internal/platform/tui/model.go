package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/platform/session"
	"github.com/vovakirdan/stasis-arcade/internal/registry"
	"github.com/vovakirdan/stasis-arcade/internal/storage"
)

// Options are the optional collaborators of the terminal host.
type Options struct {
	Store      *storage.Store // High-score log; nil disables saving
	Logger     *log.Logger    // nil discards logs
	Audio      session.Cues   // nil keeps the game silent
	Difficulty string         // Recorded with saved scores
	HoldTicks  int            // Ticks a direction stays held after a key press
	ShowHelp   bool           // Draw the key help line under the playfield
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	canvas    *core.CellCanvas
	config    core.RuntimeConfig
	opts      Options
	session   *session.Session
	log       *log.Logger
	keyMapper *KeyMapper
	help      help.Model
	input     *heldInput
	quitting  bool
	stopped   bool // No tick scheduled until the next Confirm or Restart
}

// NewModel creates a new Bubble Tea model for the given game.
// The playfield size comes from cfg in world units.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	sess := session.New(game, cfg.Now(), session.Options{
		Store:      opts.Store,
		Logger:     opts.Logger,
		Audio:      opts.Audio,
		Difficulty: opts.Difficulty,
	})

	cols := int(cfg.Width / core.DefaultCellWidth)
	rows := int(cfg.Height / core.DefaultCellHeight)
	screen := core.NewScreen(cols, rows)

	return Model{
		game:      game,
		screen:    screen,
		canvas:    core.NewCellCanvas(screen, core.DefaultCellWidth, core.DefaultCellHeight),
		config:    cfg,
		opts:      opts,
		session:   sess,
		log:       sess.Logger(),
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		input:     newHeldInput(opts.HoldTicks),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Info("game started", "width", m.config.Width, "height", m.config.Height, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action)
	if m.stopped && (action == core.ActionConfirm || action == core.ActionRestart) {
		m.stopped = false
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// handleResize maps the terminal size onto the playfield.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := msg.Height
	if m.opts.ShowHelp && rows > 1 {
		rows--
	}
	if msg.Width == m.screen.Width() && rows == m.screen.Height() {
		return m, nil
	}

	m.screen.Resize(msg.Width, rows)
	m.config.Width = float64(msg.Width) * core.DefaultCellWidth
	m.config.Height = float64(rows) * core.DefaultCellHeight
	m.help.Width = msg.Width
	m.game.Resize(m.config.Width, m.config.Height)
	m.log.Debug("resized", "cols", msg.Width, "rows", rows)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Next())
	m.session.Observe(result)

	for _, ev := range result.Events {
		if ev.Kind == core.EventStarted {
			m.input.Release()
		}
	}

	// The loop idles after game over once the last notice has faded.
	if result.State.GameOver {
		if _, live := m.session.Notice(); !live {
			m.stopped = true
			m.log.Debug("tick loop stopped")
			return m, nil
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// draw renders the game and any live notice into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	m.game.Render(m.canvas)
	m.session.DrawNotice(m.canvas)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() (string, error) {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	out := RenderScreen(m.screen)
	if m.opts.ShowHelp {
		out += "\n" + m.help.View(m.keyMapper.Keys())
	}
	return out
}

// State returns the game state after the most recent tick.
func (m Model) State() core.GameState {
	return m.session.State()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
