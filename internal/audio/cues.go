// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/stasis-arcade/internal/core"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueStart Cue = iota
	CueZoneOn
	CueZoneOff
	CueSplit
	CueGameOver
)

// note is one step of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueStart:    {{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {783.99, 90 * time.Millisecond}},
	CueZoneOn:   {{392.00, 70 * time.Millisecond}, {587.33, 110 * time.Millisecond}},
	CueZoneOff:  {{587.33, 70 * time.Millisecond}, {392.00, 110 * time.Millisecond}},
	CueSplit:    {{880.00, 40 * time.Millisecond}, {1174.66, 40 * time.Millisecond}},
	CueGameOver: {{329.63, 120 * time.Millisecond}, {261.63, 120 * time.Millisecond}, {196.00, 260 * time.Millisecond}},
}

// CueFor maps a game event to its sound, if it has one.
func CueFor(ev core.Event) (Cue, bool) {
	switch ev.Kind {
	case core.EventStarted:
		return CueStart, true
	case core.EventZoneToggled:
		if ev.On {
			return CueZoneOn, true
		}
		return CueZoneOff, true
	case core.EventSplit:
		return CueSplit, true
	case core.EventGameOver:
		return CueGameOver, true
	default:
		return 0, false
	}
}

// Streamer builds the cue's audio at the given rate and volume (0..1].
func Streamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n.freq, n.dur, rate))
	}
	seq := beep.Seq(parts...)
	if volume <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(math.Min(volume, 1))}
}

// tone is a sine wave with a short linear attack and release so notes don't click.
type tone struct {
	step     float64 // Phase advance per sample
	phase    float64
	position int
	length   int
	ramp     int
}

func newTone(freq float64, dur time.Duration, rate beep.SampleRate) *tone {
	length := rate.N(dur)
	return &tone{
		step:   freq / float64(rate),
		length: length,
		ramp:   max(1, min(length/4, rate.N(5*time.Millisecond))),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.position >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.length {
			return i, true
		}
		env := 1.0
		if t.position < t.ramp {
			env = float64(t.position) / float64(t.ramp)
		} else if rem := t.length - t.position; rem < t.ramp {
			env = float64(rem) / float64(t.ramp)
		}
		v := math.Sin(2*math.Pi*t.phase) * env * 0.5
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.step
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
