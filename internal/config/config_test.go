package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolate keeps the loaders away from the developer's own config files.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	sr, err := LoadStillRoot("", DifficultyNormal)
	if err != nil {
		t.Fatalf("LoadStillRoot: %v", err)
	}
	if want := DefaultStillRootConfig(); !reflect.DeepEqual(sr, want) {
		t.Errorf("embedded stillroot.yaml = %+v\nexpected %+v", sr, want)
	}

	av, err := LoadAvoider("", DifficultyNormal)
	if err != nil {
		t.Fatalf("LoadAvoider: %v", err)
	}
	if want := DefaultAvoiderConfig(); !reflect.DeepEqual(av, want) {
		t.Errorf("embedded avoider.yaml = %+v\nexpected %+v", av, want)
	}
}

func TestCustomFileOverlaysDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "split:\n  interval_ms: 2000\nballs:\n  initial_count: 4\n")

	cfg, err := LoadAvoider(path, DifficultyNormal)
	if err != nil {
		t.Fatalf("LoadAvoider: %v", err)
	}
	if cfg.Split.IntervalMS != 2000 || cfg.Balls.InitialCount != 4 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Balls.Radius != 10 || cfg.Plane.Width != 40 {
		t.Errorf("missing keys should keep defaults: radius=%g plane=%g", cfg.Balls.Radius, cfg.Plane.Width)
	}
}

func TestLocalConfigsDirectory(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "stillroot.yaml"), []byte("bodies:\n  count: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	if got := ResolvePath("stillroot.yaml", ""); got != filepath.Join("configs", "stillroot.yaml") {
		t.Errorf("ResolvePath = %q", got)
	}
	cfg, err := LoadStillRoot("", DifficultyNormal)
	if err != nil {
		t.Fatalf("LoadStillRoot: %v", err)
	}
	if cfg.Bodies.Count != 12 {
		t.Errorf("count = %d, expected 12", cfg.Bodies.Count)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name        string
		body        string
		missing     bool
		wantInvalid bool
	}{
		{name: "missing custom file", missing: true},
		{name: "malformed yaml", body: "plane: [1, 2\n", wantInvalid: true},
		{name: "negative split interval", body: "split:\n  interval_ms: -5\n", wantInvalid: true},
		{name: "bad colour", body: "plane:\n  color: blue\n", wantInvalid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nope.yaml")
			if !tc.missing {
				path = writeConfig(t, tc.body)
			}
			_, err := LoadAvoider(path, DifficultyNormal)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalid) != tc.wantInvalid {
				t.Errorf("errors.Is(ErrInvalid) = %v for %v", !tc.wantInvalid, err)
			}
		})
	}
}

func TestStillRootValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultStillRootConfig()
	cfg.Bodies.SlowFactor = 0
	cfg.Zone.CoreRadius = 500
	cfg.Placement.MaxAttempts = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 3 {
		t.Errorf("expected three joined errors, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		count        int
		intervalMS   int
		speedMax     float64
		stillBodies  int
		stillSpeedMx float64
	}{
		{DifficultyEasy, 2, 6000, 2.5 * 0.7, 35, 1.5 * 0.75},
		{DifficultyNormal, 3, 5000, 2.5, 50, 1.5},
		{DifficultyHard, 5, 3000, 2.5 * 1.6, 80, 1.5 * 1.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			av := DefaultAvoiderConfig()
			ApplyAvoiderPreset(&av, tc.preset)
			if av.Balls.InitialCount != tc.count || av.Split.IntervalMS != tc.intervalMS {
				t.Errorf("avoider count=%d interval=%d", av.Balls.InitialCount, av.Split.IntervalMS)
			}
			if diff := av.Balls.SpeedMax - tc.speedMax; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("avoider speed_max = %g, expected %g", av.Balls.SpeedMax, tc.speedMax)
			}
			if err := av.Validate(); err != nil {
				t.Errorf("preset produced invalid avoider config: %v", err)
			}

			sr := DefaultStillRootConfig()
			ApplyStillRootPreset(&sr, tc.preset)
			if sr.Bodies.Count != tc.stillBodies {
				t.Errorf("stillroot count = %d, expected %d", sr.Bodies.Count, tc.stillBodies)
			}
			if diff := sr.Bodies.SpeedMax - tc.stillSpeedMx; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("stillroot speed_max = %g, expected %g", sr.Bodies.SpeedMax, tc.stillSpeedMx)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, err)
	}
	if p, err := ParsePreset(" Hard "); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(Hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset err = %v", err)
	}
}
