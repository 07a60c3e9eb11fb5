// Package config provides YAML-based game tuning for the hopper engine.
package config

// HopperConfig contains all tunable parameters for the hopper game.
type HopperConfig struct {
	Physics   HopperPhysics   `yaml:"physics"`
	Player    HopperPlayer    `yaml:"player"`
	Platforms HopperPlatforms `yaml:"platforms"`
	Camera    HopperCamera    `yaml:"camera"`
	Score     HopperScore     `yaml:"score"`
}

// HopperPhysics defines per-tick physics parameters.
type HopperPhysics struct {
	Gravity       float64 `yaml:"gravity"`         // Added to vertical velocity each tick
	JumpImpulse   float64 `yaml:"jump_impulse"`    // Velocity override on a normal landing (negative = up)
	BounceImpulse float64 `yaml:"bounce_impulse"`  // Velocity override on a bouncy landing
	MaxTiltSpeed  float64 `yaml:"max_tilt_speed"`  // Horizontal speed magnitude at full tilt
}

// HopperPlayer defines the player body dimensions.
type HopperPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HopperPlatforms defines platform layout and behavior parameters.
type HopperPlatforms struct {
	Count     int             `yaml:"count"`      // Platforms stacked above the base at start
	Width     float64         `yaml:"width"`
	Height    float64         `yaml:"height"`
	MinGap    float64         `yaml:"min_gap"`    // Minimum vertical gap between stacked platforms
	MaxGap    float64         `yaml:"max_gap"`    // Maximum vertical gap
	MoveSpeed float64         `yaml:"move_speed"` // Horizontal speed of moving platforms
	Weights   PlatformWeights `yaml:"weights"`
}

// PlatformWeights are the spawn weights per platform kind, out of 100.
type PlatformWeights struct {
	Normal float64 `yaml:"normal"`
	Bouncy float64 `yaml:"bouncy"`
	Moving float64 `yaml:"moving"`
}

// HopperCamera defines the scrolling and recycling margins, in cells.
type HopperCamera struct {
	FollowMargin  float64 `yaml:"follow_margin"`  // Camera keeps the player within this distance of its top edge
	FallMargin    float64 `yaml:"fall_margin"`    // Falling this far below the window ends the game
	SpawnLead     float64 `yaml:"spawn_lead"`     // Spawn a platform while the highest is within this distance of the top edge
	DespawnMargin float64 `yaml:"despawn_margin"` // Platforms this far below the window are removed
}

// HopperScore defines score derivation.
type HopperScore struct {
	Scale float64 `yaml:"scale"` // Points per cell of height climbed
}
