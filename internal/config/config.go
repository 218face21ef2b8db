// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/stasis-arcade/internal/core"
	"github.com/vovakirdan/stasis-arcade/internal/particle"
)

// ErrInvalid wraps every validation failure returned by the loaders.
var ErrInvalid = errors.New("invalid config")

// StillRootConfig contains all configuration for the Still-Root field.
type StillRootConfig struct {
	Bodies     BodiesConfig      `yaml:"bodies"`
	Zone       ZoneSettings      `yaml:"zone"`
	Placement  PlacementConfig   `yaml:"placement"`
	Behavior   StillRootBehavior `yaml:"behavior"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// BodiesConfig defines the bouncing bodies of the field.
type BodiesConfig struct {
	Count                     int `yaml:"count"`
	particle.StasisBodyConfig `yaml:",inline"`
}

// ZoneSettings defines the stasis zone.
type ZoneSettings struct {
	particle.ZoneConfig `yaml:",inline"`
	ActiveOnStart       bool `yaml:"active_on_start"`
}

// PlacementConfig bounds the rejection sampling used when populating the field.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Samples per body before falling back
}

// StillRootBehavior defines host-facing behaviour.
type StillRootBehavior struct {
	ResetOnToggle bool `yaml:"reset_on_toggle"` // Re-populate when the zone is switched on
	NoticeMS      int  `yaml:"notice_ms"`       // How long toggle notices stay visible
}

// NoticeDuration returns the notice lifetime.
func (b StillRootBehavior) NoticeDuration() time.Duration {
	return time.Duration(b.NoticeMS) * time.Millisecond
}

// AvoiderConfig contains all configuration for Plane Avoider.
type AvoiderConfig struct {
	Plane      PlaneConfig      `yaml:"plane"`
	Balls      BallsConfig      `yaml:"balls"`
	Split      SplitConfig      `yaml:"split"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Prompt     PromptConfig     `yaml:"prompt"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlaneConfig defines the player's rectangle.
type PlaneConfig struct {
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	Speed        float64    `yaml:"speed"`         // World units per tick
	BottomOffset float64    `yaml:"bottom_offset"` // Gap between plane and bottom edge at start
	Color        core.Color `yaml:"color"`
}

// BallsConfig defines the hazards.
type BallsConfig struct {
	InitialCount        int `yaml:"initial_count"`
	particle.BallConfig `yaml:",inline"`
}

// SplitConfig defines how often every ball splits in two.
type SplitConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the split period.
func (s SplitConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// ScoringConfig defines how survival time turns into points.
type ScoringConfig struct {
	Multiplier float64 `yaml:"multiplier"` // Points per second survived
}

// PromptConfig defines the idle screen.
type PromptConfig struct {
	Text  string     `yaml:"text"`
	Color core.Color `yaml:"color"`
}

// Validate reports every invalid field of the still-root config.
func (c StillRootConfig) Validate() error {
	var errs []error
	if c.Bodies.Count < 0 {
		errs = append(errs, fmt.Errorf("bodies.count must not be negative, got %d", c.Bodies.Count))
	}
	if err := c.Bodies.StasisBodyConfig.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("bodies: %w", err))
	}
	if err := c.Zone.ZoneConfig.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("zone: %w", err))
	}
	if c.Placement.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("placement.max_attempts must be at least 1, got %d", c.Placement.MaxAttempts))
	}
	if c.Behavior.NoticeMS < 0 {
		errs = append(errs, fmt.Errorf("behavior.notice_ms must not be negative, got %d", c.Behavior.NoticeMS))
	}
	if err := c.Difficulty.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate reports every invalid field of the avoider config.
func (c AvoiderConfig) Validate() error {
	var errs []error
	if c.Plane.Width <= 0 || c.Plane.Height <= 0 {
		errs = append(errs, fmt.Errorf("plane size must be positive, got %gx%g", c.Plane.Width, c.Plane.Height))
	}
	if c.Plane.Speed < 0 {
		errs = append(errs, fmt.Errorf("plane.speed must not be negative, got %g", c.Plane.Speed))
	}
	if c.Plane.BottomOffset < 0 {
		errs = append(errs, fmt.Errorf("plane.bottom_offset must not be negative, got %g", c.Plane.BottomOffset))
	}
	if err := c.Plane.Color.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("plane: %w", err))
	}
	if c.Balls.InitialCount < 1 {
		errs = append(errs, fmt.Errorf("balls.initial_count must be at least 1, got %d", c.Balls.InitialCount))
	}
	if err := c.Balls.BallConfig.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("balls: %w", err))
	}
	if c.Split.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("split.interval_ms must be positive, got %d", c.Split.IntervalMS))
	}
	if c.Scoring.Multiplier < 0 {
		errs = append(errs, fmt.Errorf("scoring.multiplier must not be negative, got %g", c.Scoring.Multiplier))
	}
	if err := c.Prompt.Color.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("prompt: %w", err))
	}
	if err := c.Difficulty.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
