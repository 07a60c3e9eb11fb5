package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// DefaultHopperConfig returns the default hopper tuning.
// Kept in sync with defaults/hopper.yaml; used as the last-resort fallback.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		Physics: HopperPhysics{
			Gravity:       0.10,
			JumpImpulse:   -1.05,
			BounceImpulse: -1.60,
			MaxTiltSpeed:  0.90,
		},
		Player: HopperPlayer{
			Width:  2,
			Height: 1,
		},
		Platforms: HopperPlatforms{
			Count:     8,
			Width:     5,
			Height:    1,
			MinGap:    3,
			MaxGap:    5,
			MoveSpeed: 0.35,
			Weights: PlatformWeights{
				Normal: 80,
				Bouncy: 15,
				Moving: 5,
			},
		},
		Camera: HopperCamera{
			FollowMargin:  8,
			FallMargin:    4,
			SpawnLead:     10,
			DespawnMargin: 4,
		},
		Score: HopperScore{
			Scale: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHopperYAML
}
