package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/stasis-arcade/internal/config"
	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/games/avoider"
	"github.com/vovakirdan/stasis-arcade/internal/games/stillroot"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return cfg
}

func pressAt(tick int, a core.Action) InputFunc {
	return func(t int, _ core.GameState) core.InputFrame {
		in := core.NewInputFrame()
		if t == tick {
			in.Set(a)
		}
		return in
	}
}

func TestRunCountsTicksAndTime(t *testing.T) {
	g := stillroot.New(config.DefaultStillRootConfig())
	var frames []Frame
	l, err := New(g, testConfig(), Options{
		Ticks:   120,
		OnFrame: func(f Frame) { frames = append(frames, f) },
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if l.Ticks() != 120 || len(frames) != 120 {
		t.Fatalf("ticks = %d, frames = %d", l.Ticks(), len(frames))
	}
	if got, want := l.Elapsed(), 120*(time.Second/60); got != want {
		t.Errorf("simulated time = %v, want %v", got, want)
	}
	if frames[0].Ops != 51 {
		t.Errorf("first frame ops = %d, want 50 bodies + HUD", frames[0].Ops)
	}
}

func TestZoneToggleShowsNotice(t *testing.T) {
	g := stillroot.New(config.DefaultStillRootConfig())
	l, err := New(g, testConfig(), Options{Ticks: 30, Input: pressAt(0, core.ActionToggle)})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	found := false
	for _, op := range l.Canvas().Ops {
		if op.Kind == "text" && op.Text == stillroot.NoticeActivated {
			found = true
		}
	}
	if !found {
		t.Error("activation notice should be drawn within its lifetime")
	}
	if !g.Field().Zone.Active {
		t.Error("zone should be active")
	}
}

func TestAvoiderRunsAreReproducible(t *testing.T) {
	run := func() (core.GameState, int) {
		g := avoider.New(config.DefaultAvoiderConfig())
		splits := 0
		l, err := New(g, testConfig(), Options{
			Ticks: 600,
			Input: pressAt(0, core.ActionConfirm),
			OnFrame: func(f Frame) {
				for _, ev := range f.Result.Events {
					if ev.Kind == core.EventSplit {
						splits++
					}
				}
			},
		})
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		if err := l.Run(context.Background()); err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		return g.State(), splits
	}

	s1, n1 := run()
	s2, n2 := run()
	if s1 != s2 || n1 != n2 {
		t.Errorf("runs differ: %+v/%d vs %+v/%d", s1, n1, s2, n2)
	}
	if !s1.Running && !s1.GameOver {
		t.Errorf("match never started: %+v", s1)
	}
}

func TestStopEndsRun(t *testing.T) {
	g := stillroot.New(config.DefaultStillRootConfig())
	var l *Loop
	l, err := New(g, testConfig(), Options{
		OnFrame: func(f Frame) {
			if f.Tick == 10 {
				l.Stop()
			}
		},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := l.Run(context.Background()); !errors.Is(err, ErrStopped) {
		t.Fatalf("Run() = %v, want ErrStopped", err)
	}
	if l.Ticks() != 10 {
		t.Errorf("ticks = %d, want 10", l.Ticks())
	}
}

func TestCancelledContext(t *testing.T) {
	g := stillroot.New(config.DefaultStillRootConfig())
	l, err := New(g, testConfig(), Options{Ticks: 100})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
	if l.Ticks() != 0 {
		t.Errorf("ticks = %d, want 0", l.Ticks())
	}
}

func TestNewRejectsEmptySurface(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 0

	_, err := New(stillroot.New(config.DefaultStillRootConfig()), cfg, Options{})
	if !errors.Is(err, core.ErrNoSurface) {
		t.Errorf("New() error = %v, want ErrNoSurface", err)
	}
}
