package particle

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/stasis-arcade/internal/core"
)

// BaseConfig holds the settings shared by every kind of body.
type BaseConfig struct {
	Radius   float64    `yaml:"radius"`
	SpeedMin float64    `yaml:"speed_min"`
	SpeedMax float64    `yaml:"speed_max"`
	Color    core.Color `yaml:"color"`
}

// Validate reports every invalid field.
func (c BaseConfig) Validate() error {
	var errs []error
	if c.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius must be positive, got %g", c.Radius))
	}
	if c.SpeedMin < 0 {
		errs = append(errs, fmt.Errorf("speed_min must not be negative, got %g", c.SpeedMin))
	}
	if c.SpeedMax < c.SpeedMin {
		errs = append(errs, fmt.Errorf("speed_max %g below speed_min %g", c.SpeedMax, c.SpeedMin))
	}
	if err := c.Color.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// StasisBodyConfig describes bodies that slow down inside an active zone.
type StasisBodyConfig struct {
	BaseConfig `yaml:",inline"`
	SlowFactor float64    `yaml:"slow_factor"`
	SlowColor  core.Color `yaml:"slow_color"`
}

// DefaultStasisBodyConfig returns the standard still-root body.
func DefaultStasisBodyConfig() StasisBodyConfig {
	return StasisBodyConfig{
		BaseConfig: BaseConfig{
			Radius:   5,
			SpeedMin: 0.5,
			SpeedMax: 1.5,
			Color:    "#3b82f6",
		},
		SlowFactor: 0.1,
		SlowColor:  "#60a5fa",
	}
}

// Validate reports every invalid field.
func (c StasisBodyConfig) Validate() error {
	errs := []error{c.BaseConfig.Validate()}
	if c.SlowFactor <= 0 || c.SlowFactor >= 1 {
		errs = append(errs, fmt.Errorf("slow_factor must be in (0, 1), got %g", c.SlowFactor))
	}
	if err := c.SlowColor.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// BallConfig describes avoider balls. Balls ignore stasis zones.
type BallConfig struct {
	BaseConfig `yaml:",inline"`
}

// DefaultBallConfig returns the standard avoider ball.
func DefaultBallConfig() BallConfig {
	return BallConfig{BaseConfig: BaseConfig{
		Radius:   10,
		SpeedMin: 1,
		SpeedMax: 2.5,
		Color:    "#ef4444",
	}}
}

// ZoneConfig describes a stasis zone's geometry and colours.
type ZoneConfig struct {
	Radius      float64    `yaml:"radius"`
	CoreRadius  float64    `yaml:"core_radius"`
	EffectColor core.Color `yaml:"effect_color"`
	CoreColor   core.Color `yaml:"core_color"`
	BorderColor core.Color `yaml:"border_color"`
	BorderWidth float64    `yaml:"border_width"`
}

// DefaultZoneConfig returns the standard still-root zone.
func DefaultZoneConfig() ZoneConfig {
	return ZoneConfig{
		Radius:      80,
		CoreRadius:  15,
		EffectColor: "#22c55e33",
		CoreColor:   "#16a34a",
		BorderColor: "#14532d",
		BorderWidth: 2,
	}
}

// Validate reports every invalid field.
func (c ZoneConfig) Validate() error {
	var errs []error
	if c.Radius <= 0 {
		errs = append(errs, fmt.Errorf("zone radius must be positive, got %g", c.Radius))
	}
	if c.CoreRadius < 0 || c.CoreRadius > c.Radius {
		errs = append(errs, fmt.Errorf("core_radius %g must be in [0, %g]", c.CoreRadius, c.Radius))
	}
	if c.BorderWidth < 0 {
		errs = append(errs, fmt.Errorf("border_width must not be negative, got %g", c.BorderWidth))
	}
	for _, col := range []core.Color{c.EffectColor, c.CoreColor, c.BorderColor} {
		if err := col.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
