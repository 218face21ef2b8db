package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyConfig defines how presets scale a game's parameters.
type DifficultyConfig struct {
	Scaling ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at the hard preset.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fraction added to speeds
	SplitReduction  float64 `yaml:"split_reduction"`  // Fraction of the split interval removed
	CountBonus      int     `yaml:"count_bonus"`      // Extra bodies or balls
}

// Validate checks the scaling bounds.
func (d DifficultyConfig) Validate() error {
	s := d.Scaling
	if s.SpeedMultiplier < 0 || s.SpeedMultiplier >= 2 {
		return fmt.Errorf("difficulty.scaling.speed_multiplier must be in [0, 2), got %g", s.SpeedMultiplier)
	}
	if s.SplitReduction < 0 || s.SplitReduction >= 1 {
		return fmt.Errorf("difficulty.scaling.split_reduction must be in [0, 1), got %g", s.SplitReduction)
	}
	if s.CountBonus < 0 {
		return fmt.Errorf("difficulty.scaling.count_bonus must not be negative, got %d", s.CountBonus)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
}

// LevelForPreset returns how far a preset moves away from the configured values:
// 0 leaves them alone, 1 applies the full scaling, negative values ease off.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return -0.5
	case DifficultyHard:
		return 1.0
	default:
		return 0.0
	}
}

// ApplyStillRootPreset modifies the config based on a difficulty preset.
func ApplyStillRootPreset(cfg *StillRootConfig, preset DifficultyPreset) {
	level := LevelForPreset(preset)
	if level == 0 {
		return
	}
	s := cfg.Difficulty.Scaling

	factor := 1 + level*s.SpeedMultiplier
	cfg.Bodies.SpeedMin *= factor
	cfg.Bodies.SpeedMax *= factor
	cfg.Bodies.Count = max(1, cfg.Bodies.Count+scaleCount(level, s.CountBonus))
}

// ApplyAvoiderPreset modifies the config based on a difficulty preset.
func ApplyAvoiderPreset(cfg *AvoiderConfig, preset DifficultyPreset) {
	level := LevelForPreset(preset)
	if level == 0 {
		return
	}
	s := cfg.Difficulty.Scaling

	factor := 1 + level*s.SpeedMultiplier
	cfg.Balls.SpeedMin *= factor
	cfg.Balls.SpeedMax *= factor
	cfg.Balls.InitialCount = max(1, cfg.Balls.InitialCount+scaleCount(level, s.CountBonus))

	interval := float64(cfg.Split.IntervalMS) * (1 - level*s.SplitReduction)
	cfg.Split.IntervalMS = max(1, int(math.Round(interval)))
}

func scaleCount(level float64, bonus int) int {
	return int(math.Round(level * float64(bonus)))
}
