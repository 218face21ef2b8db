// Package avoider implements Plane Avoider: the player steers a plane around
// balls that all split in two on a fixed interval.
package avoider

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/stasis-arcade/internal/config"
	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/particle"
)

// ErrMatchRunning is returned by Start while a match is in progress.
var ErrMatchRunning = errors.New("avoider: match already running")

// Phase is the lifecycle stage of a match.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "idle"
	}
}

// Plane is the player's rectangle.
type Plane struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	Speed float64
	Color core.Color
}

// Rect returns the plane's extent.
func (p Plane) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Match is one game of Plane Avoider.
type Match struct {
	Plane Plane
	Balls []*particle.Body

	cfg   config.AvoiderConfig
	rng   *rand.Rand
	clock core.Clock

	width  float64
	height float64

	phase     Phase
	score     int
	startedAt time.Time
	lastSplit time.Time
	paused    bool
	pausedAt  time.Time
}

// NewMatch creates an idle match on a w x h field.
func NewMatch(cfg config.AvoiderConfig, w, h float64, rng *rand.Rand, clock core.Clock) *Match {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Match{
		cfg:    cfg,
		rng:    rng,
		clock:  clock,
		width:  w,
		height: h,
	}
}

// Phase returns the current lifecycle stage.
func (m *Match) Phase() Phase { return m.phase }

// Running reports whether the match is being played.
func (m *Match) Running() bool { return m.phase == PhaseRunning }

// Over reports whether the plane has been hit.
func (m *Match) Over() bool { return m.phase == PhaseOver }

// Paused reports whether a running match is paused.
func (m *Match) Paused() bool { return m.paused }

// Score returns the points earned so far, frozen once the match is over.
func (m *Match) Score() int { return m.score }

// Start begins a new match from idle or over. Restarting is a second Start.
func (m *Match) Start() error {
	if m.phase == PhaseRunning {
		return ErrMatchRunning
	}

	m.placePlane()
	m.Balls = make([]*particle.Body, 0, m.cfg.Balls.InitialCount)
	for i := 0; i < m.cfg.Balls.InitialCount; i++ {
		m.Balls = append(m.Balls, m.spawnBall())
	}

	now := m.clock.Now()
	m.score = 0
	m.startedAt = now
	m.lastSplit = now
	m.paused = false
	m.phase = PhaseRunning
	return nil
}

// placePlane centres the plane horizontally, bottom_offset above the bottom edge.
func (m *Match) placePlane() {
	pc := m.cfg.Plane
	m.Plane = Plane{
		X:     m.width/2 - pc.Width/2,
		Y:     m.height - pc.Height - pc.BottomOffset,
		W:     pc.Width,
		H:     pc.Height,
		Speed: pc.Speed,
		Color: pc.Color,
	}
}

// spawnBall places a ball uniformly in the upper half of the field.
func (m *Match) spawnBall() *particle.Body {
	bc := m.cfg.Balls.BallConfig
	r := bc.Radius
	x := r + m.rng.Float64()*math.Max(0, m.width-2*r)
	y := r + m.rng.Float64()*math.Max(0, m.height/2-r)
	vx, vy := particle.RandomVelocity(m.rng, bc.SpeedMin, bc.SpeedMax)
	return particle.NewBall(x, y, vx, vy, bc)
}

// SetPaused pauses or resumes a running match. Time spent paused does not
// count towards the score or the split timer.
func (m *Match) SetPaused(paused bool) {
	if m.phase != PhaseRunning || paused == m.paused {
		return
	}
	now := m.clock.Now()
	if paused {
		m.pausedAt = now
	} else {
		gap := now.Sub(m.pausedAt)
		m.startedAt = m.startedAt.Add(gap)
		m.lastSplit = m.lastSplit.Add(gap)
	}
	m.paused = paused
}

// Tick advances a running match by one step. It does nothing while idle,
// paused or over.
func (m *Match) Tick(in core.Directions, w, h float64) []core.Event {
	if m.phase != PhaseRunning || m.paused {
		return nil
	}
	m.width, m.height = w, h

	m.movePlane(in)
	for _, b := range m.Balls {
		b.Update(w, h, nil)
	}

	var events []core.Event
	now := m.clock.Now()
	if now.Sub(m.lastSplit) > m.cfg.Split.Interval() {
		m.split()
		m.lastSplit = now
		events = append(events, core.Event{Kind: core.EventSplit, Value: len(m.Balls)})
	}

	m.score = int(math.Floor(now.Sub(m.startedAt).Seconds() * m.cfg.Scoring.Multiplier))

	if m.collides() {
		m.phase = PhaseOver
		events = append(events, core.Event{Kind: core.EventGameOver, Message: "Game Over!", Value: m.score})
	}
	return events
}

func (m *Match) movePlane(in core.Directions) {
	if !in.Any() {
		return
	}
	p := &m.Plane
	if in.Up {
		p.Y -= p.Speed
	}
	if in.Down {
		p.Y += p.Speed
	}
	if in.Left {
		p.X -= p.Speed
	}
	if in.Right {
		p.X += p.Speed
	}
	p.X = math.Max(0, math.Min(p.X, m.width-p.W))
	p.Y = math.Max(0, math.Min(p.Y, m.height-p.H))
}

// split replaces every ball with two children at its position. Children keep
// the parent's speed on random headings; a stationary parent's children get a
// freshly sampled speed.
func (m *Match) split() {
	parents := m.Balls
	next := make([]*particle.Body, 0, 2*len(parents))
	bc := m.cfg.Balls.BallConfig
	for _, p := range parents {
		speed := p.Speed()
		if speed == 0 {
			speed = bc.SpeedMin + m.rng.Float64()*(bc.SpeedMax-bc.SpeedMin)
		}
		for range 2 {
			vx, vy := particle.RandomHeading(m.rng, speed)
			next = append(next, particle.NewBall(p.X, p.Y, vx, vy, bc))
		}
	}
	m.Balls = next
}

// collides reports whether any ball touches the plane. Touching counts.
func (m *Match) collides() bool {
	rect := m.Plane.Rect()
	for _, b := range m.Balls {
		if b.Circle().OverlapsRect(rect) {
			return true
		}
	}
	return false
}

// Resize records the new field size. Once a match has started the plane is
// placed again; balls correct themselves against the new walls on their next update.
func (m *Match) Resize(w, h float64) {
	m.width, m.height = w, h
	if m.phase != PhaseIdle {
		m.placePlane()
	}
}

// Draw paints the prompt while idle, otherwise the plane and then the balls.
func (m *Match) Draw(dst core.Canvas) {
	if m.phase == PhaseIdle {
		_, h := dst.Size()
		dst.DrawTextCentered(h/2, m.cfg.Prompt.Text, m.cfg.Prompt.Color)
		return
	}
	dst.FillRect(m.Plane.Rect(), m.Plane.Color)
	for _, b := range m.Balls {
		b.Draw(dst)
	}
}
