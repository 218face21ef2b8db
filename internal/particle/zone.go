package particle

import "github.com/vovakirdan/stasis-arcade/internal/core"

// Zone is a circular stasis region. Bodies whose centre comes within
// Radius plus their own radius are slowed while the zone is active.
type Zone struct {
	X, Y       float64
	Radius     float64
	CoreRadius float64
	Active     bool

	EffectColor core.Color
	CoreColor   core.Color
	BorderColor core.Color
	BorderWidth float64
}

// NewZone creates an inactive zone centred at (x, y).
func NewZone(x, y float64, cfg ZoneConfig) *Zone {
	return &Zone{
		X: x, Y: y,
		Radius:      cfg.Radius,
		CoreRadius:  cfg.CoreRadius,
		EffectColor: cfg.EffectColor,
		CoreColor:   cfg.CoreColor,
		BorderColor: cfg.BorderColor,
		BorderWidth: cfg.BorderWidth,
	}
}

// Affects reports whether a body of radius r centred at (x, y) is inside the
// zone's reach. The comparison is strict: touching the edge does not count.
func (z *Zone) Affects(x, y, r float64) bool {
	return core.Dist(x, y, z.X, z.Y) < z.Radius+r
}

// Toggle flips the zone on or off and returns the new state.
func (z *Zone) Toggle() bool {
	z.Active = !z.Active
	return z.Active
}

// Centre moves the zone to the middle of a w x h field.
func (z *Zone) Centre(w, h float64) {
	z.X = w / 2
	z.Y = h / 2
}

// Draw paints the effect area, the core and its border. Inactive zones draw nothing.
func (z *Zone) Draw(dst core.Canvas) {
	if !z.Active {
		return
	}
	dst.FillCircle(core.Circle{X: z.X, Y: z.Y, R: z.Radius}, z.EffectColor)
	inner := core.Circle{X: z.X, Y: z.Y, R: z.CoreRadius}
	dst.FillCircle(inner, z.CoreColor)
	dst.StrokeCircle(inner, z.BorderWidth, z.BorderColor)
}
