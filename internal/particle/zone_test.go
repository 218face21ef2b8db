package particle

import (
	"testing"

	"github.com/vovakirdan/stasis-arcade/internal/core"
)

func TestZoneToggleAndCentre(t *testing.T) {
	z := NewZone(0, 0, DefaultZoneConfig())
	if z.Active {
		t.Fatal("new zone should be inactive")
	}
	if !z.Toggle() || !z.Active {
		t.Error("first toggle should activate")
	}
	if z.Toggle() {
		t.Error("second toggle should deactivate")
	}

	z.Centre(640, 480)
	if z.X != 320 || z.Y != 240 {
		t.Errorf("centre = (%g, %g)", z.X, z.Y)
	}
}

func TestZoneDrawOrder(t *testing.T) {
	cfg := DefaultZoneConfig()
	z := NewZone(100, 100, cfg)

	rec := core.NewRecorder(200, 200)
	z.Draw(rec)
	if len(rec.Ops) != 0 {
		t.Fatalf("inactive zone drew %v", rec.Ops)
	}

	z.Toggle()
	z.Draw(rec)
	want := []core.DrawOp{
		{Kind: "fill_circle", Circle: core.Circle{X: 100, Y: 100, R: cfg.Radius}, Color: cfg.EffectColor},
		{Kind: "fill_circle", Circle: core.Circle{X: 100, Y: 100, R: cfg.CoreRadius}, Color: cfg.CoreColor},
		{Kind: "stroke_circle", Circle: core.Circle{X: 100, Y: 100, R: cfg.CoreRadius}, Color: cfg.BorderColor},
	}
	if len(rec.Ops) != len(want) {
		t.Fatalf("ops = %v", rec.Ops)
	}
	for i := range want {
		if rec.Ops[i] != want[i] {
			t.Errorf("op %d = %v, expected %v", i, rec.Ops[i], want[i])
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"default body", DefaultStasisBodyConfig().Validate(), false},
		{"default ball", DefaultBallConfig().Validate(), false},
		{"default zone", DefaultZoneConfig().Validate(), false},
		{"slow factor 1", func() error {
			c := DefaultStasisBodyConfig()
			c.SlowFactor = 1
			return c.Validate()
		}(), true},
		{"inverted speeds", func() error {
			c := DefaultBallConfig()
			c.SpeedMin, c.SpeedMax = 3, 1
			return c.Validate()
		}(), true},
		{"core wider than zone", func() error {
			c := DefaultZoneConfig()
			c.CoreRadius = c.Radius + 1
			return c.Validate()
		}(), true},
		{"bad colour", func() error {
			c := DefaultZoneConfig()
			c.CoreColor = "green"
			return c.Validate()
		}(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if (tc.err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", tc.err, tc.wantErr)
			}
		})
	}
}
