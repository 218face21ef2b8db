// Package headless drives a game without a display. Time is simulated with
// a manual clock so runs are reproducible.
package headless

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/platform/session"
	"github.com/vovakirdan/stasis-arcade/internal/registry"
)

// Epoch is the simulated time at which every loop starts.
var Epoch = time.Unix(0, 0)

// ErrStopped is returned by Run when Stop ended the loop early.
var ErrStopped = errors.New("headless: stopped")

// Frame describes one completed tick.
type Frame struct {
	Tick   int
	Time   time.Time
	Result core.StepResult
	Ops    int // Draw operations issued by Render
}

// InputFunc supplies the input for a tick.
type InputFunc func(tick int, state core.GameState) core.InputFrame

// Options configure a Loop.
type Options struct {
	Ticks   int       // Ticks Run performs; 0 runs until cancelled or stopped
	Input   InputFunc // nil feeds empty input
	OnFrame func(Frame)
	Session session.Options
}

// Loop ticks and renders a game on the caller's goroutine.
type Loop struct {
	game    registry.Game
	opts    Options
	clock   *core.ManualClock
	step    time.Duration
	canvas  *core.Recorder
	session *session.Session

	tick    int
	last    core.GameState
	stopped atomic.Bool
}

// New resets game for a headless run. The config's clock is replaced by a
// manual clock starting at Epoch.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("headless: %w", err)
	}
	clock := core.NewManualClock(Epoch)
	cfg.Clock = clock
	game.Reset(cfg)

	return &Loop{
		game:    game,
		opts:    opts,
		clock:   clock,
		step:    time.Second / time.Duration(cfg.TickRate),
		canvas:  core.NewRecorder(cfg.Width, cfg.Height),
		session: session.New(game, clock, opts.Session),
		last:    game.State(),
	}, nil
}

// Clock returns the simulated clock.
func (l *Loop) Clock() *core.ManualClock {
	return l.clock
}

// Elapsed returns the simulated time since the loop was created.
func (l *Loop) Elapsed() time.Duration {
	return l.clock.Now().Sub(Epoch)
}

// Canvas returns the recorder holding the latest frame's draw operations.
func (l *Loop) Canvas() *core.Recorder {
	return l.canvas
}

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() int {
	return l.tick
}

// Step advances the clock by one tick interval, steps the game with in and
// renders the result.
func (l *Loop) Step(in core.InputFrame) Frame {
	l.clock.Advance(l.step)
	res := l.game.Step(in)
	l.session.Observe(res)
	l.last = res.State

	l.canvas.Reset()
	l.game.Render(l.canvas)
	l.session.DrawNotice(l.canvas)

	l.tick++
	f := Frame{Tick: l.tick, Time: l.clock.Now(), Result: res, Ops: len(l.canvas.Ops)}
	if l.opts.OnFrame != nil {
		l.opts.OnFrame(f)
	}
	return f
}

// Run ticks until the configured count is reached, ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	for l.opts.Ticks <= 0 || l.tick < l.opts.Ticks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.stopped.Load() {
			return ErrStopped
		}

		in := core.NewInputFrame()
		if l.opts.Input != nil {
			in = l.opts.Input(l.tick, l.last)
		}
		l.Step(in)
	}
	return nil
}

// Stop ends Run before its next tick. Safe to call from any goroutine.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}
