package config

import (
	_ "embed"

	"github.com/vovakirdan/stasis-arcade/internal/particle"
)

//go:embed defaults/stillroot.yaml
var defaultStillRootYAML []byte

//go:embed defaults/avoider.yaml
var defaultAvoiderYAML []byte

// DefaultStillRootConfig returns the default Still-Root configuration.
func DefaultStillRootConfig() StillRootConfig {
	return StillRootConfig{
		Bodies: BodiesConfig{
			Count:            50,
			StasisBodyConfig: particle.DefaultStasisBodyConfig(),
		},
		Zone: ZoneSettings{
			ZoneConfig: particle.DefaultZoneConfig(),
		},
		Placement: PlacementConfig{
			MaxAttempts: 1000,
		},
		Behavior: StillRootBehavior{
			ResetOnToggle: false,
			NoticeMS:      1500,
		},
		Difficulty: DifficultyConfig{
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				CountBonus:      30,
			},
		},
	}
}

// DefaultAvoiderConfig returns the default Plane Avoider configuration.
func DefaultAvoiderConfig() AvoiderConfig {
	return AvoiderConfig{
		Plane: PlaneConfig{
			Width:        40,
			Height:       20,
			Speed:        5,
			BottomOffset: 10,
			Color:        "#1d4ed8",
		},
		Balls: BallsConfig{
			InitialCount: 3,
			BallConfig:   particle.DefaultBallConfig(),
		},
		Split: SplitConfig{
			IntervalMS: 5000,
		},
		Scoring: ScoringConfig{
			Multiplier: 10,
		},
		Prompt: PromptConfig{
			Text:  "Press 'Start Game' to begin!",
			Color: "#334155",
		},
		Difficulty: DifficultyConfig{
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
				SplitReduction:  0.4,
				CountBonus:      2,
			},
		},
	}
}
