package session

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/storage"
)

type fakeGame struct {
	notice time.Duration
}

func (g *fakeGame) ID() string                           { return "fake" }
func (g *fakeGame) Title() string                        { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(core.Canvas)                   {}
func (g *fakeGame) Resize(float64, float64)              {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }
func (g *fakeGame) NoticeDuration() time.Duration        { return g.notice }

type recordedCues struct {
	events []core.Event
}

func (c *recordedCues) PlayEvents(events []core.Event) {
	c.events = append(c.events, events...)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNoticeDuration(t *testing.T) {
	tests := []struct {
		name string
		game any
		want time.Duration
	}{
		{"configured", &fakeGame{notice: time.Second}, time.Second},
		{"zero falls back", &fakeGame{}, DefaultNoticeDuration},
		{"no method", struct{}{}, DefaultNoticeDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoticeDuration(tt.game); got != tt.want {
				t.Errorf("NoticeDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNoticeLifetime(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := New(&fakeGame{notice: 500 * time.Millisecond}, clock, Options{})

	if _, ok := s.Notice(); ok {
		t.Fatal("fresh session should have no notice")
	}

	s.Observe(core.StepResult{Events: []core.Event{{Kind: core.EventZoneToggled, Message: "on"}}})
	if text, ok := s.Notice(); !ok || text != "on" {
		t.Fatalf("Notice() = (%q, %v)", text, ok)
	}

	clock.Advance(300 * time.Millisecond)
	s.Observe(core.StepResult{Events: []core.Event{{Kind: core.EventZoneToggled, Message: "off"}}})
	clock.Advance(300 * time.Millisecond)
	if text, ok := s.Notice(); !ok || text != "off" {
		t.Errorf("newest notice should win and restart the timer, got (%q, %v)", text, ok)
	}

	clock.Advance(200 * time.Millisecond)
	if _, ok := s.Notice(); ok {
		t.Error("notice should have expired")
	}
}

func TestDrawNotice(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	s := New(&fakeGame{}, clock, Options{})
	rec := core.NewRecorder(640, 384)

	s.DrawNotice(rec)
	if rec.Count("text") != 0 {
		t.Error("no notice should draw nothing")
	}

	s.Observe(core.StepResult{Events: []core.Event{{Kind: core.EventZoneToggled, Message: "hello"}}})
	s.DrawNotice(rec)
	if rec.Count("text") != 1 || rec.Ops[0].Text != "hello" || rec.Ops[0].Color != core.ColorNotice {
		t.Errorf("ops = %v", rec.Ops)
	}
}

func TestScoreSavedOncePerGameOver(t *testing.T) {
	store := openStore(t)
	s := New(&fakeGame{}, nil, Options{Store: store, Difficulty: "easy"})

	over := core.StepResult{State: core.GameState{Score: 30, Bodies: 6, GameOver: true}}
	s.Observe(over)
	s.Observe(over)
	if s.Saved() != 1 {
		t.Fatalf("Saved() = %d, want 1", s.Saved())
	}
	if text, ok := s.Notice(); !ok || text != NoticeHighScore {
		t.Errorf("first score should be announced as a high score, got (%q, %v)", text, ok)
	}

	s.Observe(core.StepResult{State: core.GameState{Running: true}})
	s.Observe(core.StepResult{State: core.GameState{Score: 0, GameOver: true}})
	if s.Saved() != 1 {
		t.Errorf("zero score should not be saved, Saved() = %d", s.Saved())
	}

	top, err := store.TopScores(context.Background(), "fake", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 1 || top[0].Score != 30 || top[0].Balls != 6 || top[0].Difficulty != "easy" {
		t.Errorf("stored = %+v", top)
	}
}

func TestLowerScoreIsNotAnnounced(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(context.Background(), storage.ScoreEntry{GameID: "fake", Score: 100}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	clock := core.NewManualClock(time.Unix(0, 0))
	s := New(&fakeGame{}, clock, Options{Store: store})
	s.Observe(core.StepResult{State: core.GameState{Score: 50, GameOver: true}})

	if s.Saved() != 1 {
		t.Fatalf("Saved() = %d, want 1", s.Saved())
	}
	if _, ok := s.Notice(); ok {
		t.Error("a score below the best should not be announced")
	}
}

func TestSaveFailureIsLogged(t *testing.T) {
	store := openStore(t)
	store.Close()

	var buf bytes.Buffer
	s := New(&fakeGame{}, nil, Options{Store: store, Logger: log.New(&buf)})
	s.Observe(core.StepResult{State: core.GameState{Score: 5, GameOver: true}})

	if s.Saved() != 0 {
		t.Error("closed store should not count as saved")
	}
	if !strings.Contains(buf.String(), "score not saved") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestEventsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	s := New(&fakeGame{}, nil, Options{Logger: logger})

	s.Observe(core.StepResult{Events: []core.Event{
		{Kind: core.EventStarted, Value: 3},
		{Kind: core.EventSplit, Value: 6},
		{Kind: core.EventPlacementRelaxed, Value: 2},
		{Kind: core.EventGameOver, Value: 17},
	}})

	out := buf.String()
	for _, want := range []string{"fake", "match started", "balls split", "placement relaxed", "game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestEventsReachCues(t *testing.T) {
	cues := &recordedCues{}
	s := New(&fakeGame{}, nil, Options{Audio: cues})

	s.Observe(core.StepResult{Events: []core.Event{{Kind: core.EventSplit}, {Kind: core.EventGameOver}}})
	s.Observe(core.StepResult{})

	if len(cues.events) != 2 {
		t.Fatalf("cues got %d events, want 2", len(cues.events))
	}
	if cues.events[0].Kind != core.EventSplit || cues.events[1].Kind != core.EventGameOver {
		t.Errorf("cue order = %v", cues.events)
	}
}

func TestNilCuesStaySilent(t *testing.T) {
	s := New(&fakeGame{}, nil, Options{})
	s.Observe(core.StepResult{Events: []core.Event{{Kind: core.EventZoneToggled, Message: "on"}}})
	if _, ok := s.Notice(); !ok {
		t.Error("notice should still be shown without audio")
	}
}
