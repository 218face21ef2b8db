// Package session holds the host-side bookkeeping shared by every host:
// event logging, audio cues, transient notices and high-score saving.
package session

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/registry"
	"github.com/vovakirdan/stasis-arcade/internal/storage"
)

// DefaultNoticeDuration is used when the game does not configure one.
const DefaultNoticeDuration = 1500 * time.Millisecond

// saveTimeout bounds a single high-score write.
const saveTimeout = 2 * time.Second

// Options are the optional collaborators of a session.
type Options struct {
	Store      *storage.Store // High-score log; nil disables saving
	Logger     *log.Logger    // nil discards logs
	Audio      Cues           // nil keeps the game silent
	Difficulty string         // Recorded with saved scores
}

// Cues plays sounds for game events.
type Cues interface {
	PlayEvents(events []core.Event)
}

// noticer is implemented by games that choose how long notices stay visible.
type noticer interface {
	NoticeDuration() time.Duration
}

// NoticeDuration asks the game for its notice lifetime.
func NoticeDuration(g any) time.Duration {
	if n, ok := g.(noticer); ok {
		if d := n.NoticeDuration(); d > 0 {
			return d
		}
	}
	return DefaultNoticeDuration
}

// Session reacts to the results of one game's ticks.
type Session struct {
	game  registry.Game
	clock core.Clock
	opts  Options
	log   *log.Logger

	noticeTTL   time.Duration
	noticeText  string
	noticeUntil time.Time

	state      core.GameState
	scoreSaved bool // Whether score has been saved for current game over
	saved      int
}

// New creates a session for game. Notice expiry is measured with clock.
func New(game registry.Game, clock core.Clock, opts Options) *Session {
	if clock == nil {
		clock = core.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:      game,
		clock:     clock,
		opts:      opts,
		log:       logger.WithPrefix(game.ID()),
		noticeTTL: NoticeDuration(game),
	}
}

// Logger returns the game-scoped logger.
func (s *Session) Logger() *log.Logger {
	return s.log
}

// State returns the state reported by the last observed tick.
func (s *Session) State() core.GameState {
	return s.state
}

// Saved returns how many scores this session has written.
func (s *Session) Saved() int {
	return s.saved
}

// Observe handles one tick result: events are logged, voiced and announced,
// and a finished match is saved once.
func (s *Session) Observe(res core.StepResult) {
	s.state = res.State

	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventZoneToggled:
			s.log.Info("zone toggled", "on", ev.On)
		case core.EventSplit:
			s.log.Debug("balls split", "balls", ev.Value)
		case core.EventStarted:
			s.log.Info("match started", "balls", ev.Value)
		case core.EventGameOver:
			s.log.Info("game over", "score", ev.Value)
		case core.EventPlacementRelaxed:
			s.log.Warn("placement relaxed", "bodies", ev.Value)
		}
		if ev.Message != "" {
			s.notify(ev.Message)
		}
	}
	if s.opts.Audio != nil {
		s.opts.Audio.PlayEvents(res.Events)
	}

	switch {
	case s.state.GameOver && !s.scoreSaved:
		s.saveScore()
		s.scoreSaved = true
	case !s.state.GameOver:
		s.scoreSaved = false
	}
}

// NoticeHighScore is announced when a saved score beats every earlier one.
const NoticeHighScore = "New high score!"

// saveScore records a finished match. Failures are logged, play continues.
func (s *Session) saveScore() {
	if s.opts.Store == nil || s.state.Score <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	best, err := s.opts.Store.HighScore(ctx, s.game.ID())
	if err != nil {
		s.log.Warn("high score lookup failed", "err", err)
	}

	entry := storage.ScoreEntry{
		GameID:     s.game.ID(),
		Score:      s.state.Score,
		Balls:      s.state.Bodies,
		Difficulty: s.opts.Difficulty,
	}
	if _, err := s.opts.Store.SaveScore(ctx, entry); err != nil {
		s.log.Warn("score not saved", "score", entry.Score, "err", err)
		return
	}
	s.saved++
	s.log.Info("score saved", "score", entry.Score)

	if err == nil && entry.Score > best {
		s.notify(NoticeHighScore)
		s.log.Info("new high score", "score", entry.Score, "previous", best)
	}
}

func (s *Session) notify(text string) {
	s.noticeText = text
	s.noticeUntil = s.clock.Now().Add(s.noticeTTL)
}

// Notice returns the newest notice while it is still visible.
func (s *Session) Notice() (string, bool) {
	if s.noticeText == "" || !s.clock.Now().Before(s.noticeUntil) {
		return "", false
	}
	return s.noticeText, true
}

// DrawNotice paints the live notice near the top of the playfield.
func (s *Session) DrawNotice(dst core.Canvas) {
	if text, ok := s.Notice(); ok {
		dst.DrawTextCentered(2*core.DefaultCellHeight, text, core.ColorNotice)
	}
}
