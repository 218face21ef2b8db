package stillroot

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Bodies     int
	Slowed     int
	Relaxed    int
	ZoneActive bool
	ZoneX      float64
	ZoneY      float64
	FirstX     float64 // Position of the first body, 0 if empty
	FirstY     float64
	Paused     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Bodies:     len(g.field.Bodies),
		Slowed:     g.field.Slowed(),
		Relaxed:    g.field.Relaxed(),
		ZoneActive: g.field.Zone.Active,
		ZoneX:      g.field.Zone.X,
		ZoneY:      g.field.Zone.Y,
		Paused:     g.paused,
	}
	if len(g.field.Bodies) > 0 {
		s.FirstX = g.field.Bodies[0].X
		s.FirstY = g.field.Bodies[0].Y
	}
	return s
}
