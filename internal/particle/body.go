// Package particle implements the circular bodies shared by both games and
// the stasis zone that slows them.
package particle

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/stasis-arcade/internal/core"
)

// Body is a moving circle that bounces off the field walls.
//
// VX0/VY0 hold the body's unslowed velocity. While slowed the current
// velocity is VX0*SlowFactor, otherwise it equals VX0. Wall reflections
// mirror both, so the speed invariant holds across bounces.
type Body struct {
	X, Y   float64
	Radius float64
	VX, VY float64

	VX0, VY0 float64 // Set at creation, sign follows wall reflections

	Color      core.Color
	SlowColor  core.Color
	SlowFactor float64

	slowed bool
}

// NewStasisBody creates a still-root body at (x, y) with velocity (vx, vy).
func NewStasisBody(x, y, vx, vy float64, cfg StasisBodyConfig) *Body {
	return &Body{
		X: x, Y: y,
		Radius: cfg.Radius,
		VX:     vx, VY: vy,
		VX0: vx, VY0: vy,
		Color:      cfg.Color,
		SlowColor:  cfg.SlowColor,
		SlowFactor: cfg.SlowFactor,
	}
}

// NewBall creates an avoider ball. Balls are never slowed.
func NewBall(x, y, vx, vy float64, cfg BallConfig) *Body {
	return &Body{
		X: x, Y: y,
		Radius: cfg.Radius,
		VX:     vx, VY: vy,
		VX0: vx, VY0: vy,
		Color:      cfg.Color,
		SlowColor:  cfg.Color,
		SlowFactor: 1,
	}
}

// Slowed reports whether the body is currently inside an active zone.
func (b *Body) Slowed() bool {
	return b.slowed
}

// Speed returns the magnitude of the current velocity.
func (b *Body) Speed() float64 {
	return core.Hypot(b.VX, b.VY)
}

// BaseSpeed returns the magnitude of the unslowed velocity.
func (b *Body) BaseSpeed() float64 {
	return core.Hypot(b.VX0, b.VY0)
}

// Circle returns the body's outline in world units.
func (b *Body) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.Radius}
}

// Update advances the body one tick inside a w x h field.
// The zone may be nil.
func (b *Body) Update(w, h float64, zone *Zone) {
	b.X += b.VX
	b.Y += b.VY

	if zone != nil && zone.Active && zone.Affects(b.X, b.Y, b.Radius) {
		if !b.slowed {
			b.VX = b.VX0 * b.SlowFactor
			b.VY = b.VY0 * b.SlowFactor
			b.slowed = true
		}
	} else if b.slowed {
		b.VX = b.VX0
		b.VY = b.VY0
		b.slowed = false
	}

	if b.X-b.Radius < 0 || b.X+b.Radius > w {
		b.VX, b.VX0 = -b.VX, -b.VX0
		b.X = clampAxis(b.X, b.Radius, w)
	}
	if b.Y-b.Radius < 0 || b.Y+b.Radius > h {
		b.VY, b.VY0 = -b.VY, -b.VY0
		b.Y = clampAxis(b.Y, b.Radius, h)
	}
}

// clampAxis keeps a centre in [r, dim-r]. A field narrower than the body
// pins it to the middle.
func clampAxis(v, r, dim float64) float64 {
	if dim < 2*r {
		return dim / 2
	}
	return core.ClampF(v, r, dim-r)
}

// Draw paints the body as a filled circle.
func (b *Body) Draw(dst core.Canvas) {
	col := b.Color
	if b.slowed {
		col = b.SlowColor
	}
	dst.FillCircle(b.Circle(), col)
}

// RandomVelocity samples each component from [min, max] with a random sign.
func RandomVelocity(rng *rand.Rand, min, max float64) (float64, float64) {
	return signedSample(rng, min, max), signedSample(rng, min, max)
}

func signedSample(rng *rand.Rand, min, max float64) float64 {
	v := min + rng.Float64()*(max-min)
	if rng.Intn(2) == 0 {
		return -v
	}
	return v
}

// RandomHeading returns a velocity of the given speed in a uniformly random direction.
func RandomHeading(rng *rand.Rand, speed float64) (float64, float64) {
	angle := rng.Float64() * 2 * math.Pi
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}
