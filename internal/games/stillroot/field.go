// Package stillroot implements Still-Root: a field of bouncing bodies and a
// stasis zone that slows every body passing through it.
package stillroot

import (
	"math/rand"

	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/particle"
)

// DefaultMaxAttempts bounds the samples drawn per body while populating.
const DefaultMaxAttempts = 1000

// Field owns the bodies and the stasis zone.
type Field struct {
	Bodies []*particle.Body
	Zone   *particle.Zone

	body        particle.StasisBodyConfig
	maxAttempts int
	rng         *rand.Rand
	relaxed     int
}

// NewField creates an empty field with an inactive zone at the origin.
func NewField(body particle.StasisBodyConfig, zone particle.ZoneConfig, maxAttempts int, rng *rand.Rand) *Field {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Field{
		Zone:        particle.NewZone(0, 0, zone),
		body:        body,
		maxAttempts: maxAttempts,
		rng:         rng,
	}
}

// Reset discards every body and places count new ones uniformly inside a
// w x h field. With zoneActive set, positions inside the zone's reach are
// rejected and resampled.
func (f *Field) Reset(w, h float64, count int, zoneActive bool) {
	f.Bodies = make([]*particle.Body, 0, count)
	f.relaxed = 0

	for len(f.Bodies) < count {
		x, y := f.place(w, h, zoneActive)
		vx, vy := particle.RandomVelocity(f.rng, f.body.SpeedMin, f.body.SpeedMax)
		f.Bodies = append(f.Bodies, particle.NewStasisBody(x, y, vx, vy, f.body))
	}
}

// place samples a position for one body. After maxAttempts rejections the
// last sample is pushed radially out of the zone and clamped to the field.
// If the zone covers that point too the body stays there and counts as relaxed.
func (f *Field) place(w, h float64, exclude bool) (float64, float64) {
	r := f.body.Radius
	var x, y float64
	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		x = sampleAxis(f.rng, r, w)
		y = sampleAxis(f.rng, r, h)
		if !exclude || !f.Zone.Affects(x, y, r) {
			return x, y
		}
	}

	dx, dy := x-f.Zone.X, y-f.Zone.Y
	d := core.Hypot(dx, dy)
	if d == 0 {
		dx, d = 1, 1
	}
	reach := f.Zone.Radius + r + 1e-6
	x = clampAxis(f.Zone.X+dx/d*reach, r, w)
	y = clampAxis(f.Zone.Y+dy/d*reach, r, h)
	if f.Zone.Affects(x, y, r) {
		f.relaxed++
	}
	return x, y
}

func sampleAxis(rng *rand.Rand, r, dim float64) float64 {
	if dim < 2*r {
		return dim / 2
	}
	return r + rng.Float64()*(dim-2*r)
}

func clampAxis(v, r, dim float64) float64 {
	if dim < 2*r {
		return dim / 2
	}
	return core.ClampF(v, r, dim-r)
}

// Relaxed returns how many bodies of the last Reset could not be kept out of the zone.
func (f *Field) Relaxed() int {
	return f.relaxed
}

// Tick advances every body by one step.
func (f *Field) Tick(w, h float64) {
	for _, b := range f.Bodies {
		b.Update(w, h, f.Zone)
	}
}

// ToggleZone flips the zone and returns its new state. Bodies already inside
// are left where they are and slow down on the next tick.
func (f *Field) ToggleZone() bool {
	return f.Zone.Toggle()
}

// Recentre moves the zone to the middle of a w x h field.
func (f *Field) Recentre(w, h float64) {
	f.Zone.Centre(w, h)
}

// Slowed counts the bodies currently inside the active zone.
func (f *Field) Slowed() int {
	n := 0
	for _, b := range f.Bodies {
		if b.Slowed() {
			n++
		}
	}
	return n
}

// Draw paints the zone under the bodies.
func (f *Field) Draw(dst core.Canvas) {
	f.Zone.Draw(dst)
	for _, b := range f.Bodies {
		b.Draw(dst)
	}
}
