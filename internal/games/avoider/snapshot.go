package avoider

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Score  int
	Balls  int
	PlaneX float64
	PlaneY float64
	FirstX float64 // Position of the first ball, 0 if none
	FirstY float64
	Paused bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	m := g.match
	s := Snapshot{
		Tick:   g.tick,
		Phase:  m.phase,
		Score:  m.score,
		Balls:  len(m.Balls),
		PlaneX: m.Plane.X,
		PlaneY: m.Plane.Y,
		Paused: m.paused,
	}
	if len(m.Balls) > 0 {
		s.FirstX = m.Balls[0].X
		s.FirstY = m.Balls[0].Y
	}
	return s
}
