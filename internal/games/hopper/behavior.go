package hopper

import (
	"math/rand"

	"github.com/hopperlabs/tui-hopper/internal/config"
)

// Kind selects a platform's behavior. Assigned once at spawn, immutable
// thereafter.
type Kind int

const (
	KindNormal Kind = iota
	KindBouncy
	KindMoving
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindBouncy:
		return "bouncy"
	case KindMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Render intensities per kind. Normal is full brightness, bouncy dim,
// moving in between.
const (
	intensityNormal uint8 = 255
	intensityBouncy uint8 = 96
	intensityMoving uint8 = 176
)

// handler is the per-kind behavior table entry. A plain function table
// keeps dispatch explicit and keeps kinds open for extension without
// interface plumbing.
type handler struct {
	landing   func(p *Player, phys config.HopperPhysics)
	tick      func(pl *Platform, moveSpeed, worldW float64)
	intensity uint8
}

func noMotion(*Platform, float64, float64) {}

// slideTick shifts a moving platform horizontally, reversing direction at
// either screen edge. Position is mutated directly, not via velocity.
func slideTick(pl *Platform, moveSpeed, worldW float64) {
	pl.Pos.X += pl.dir * moveSpeed
	if pl.Pos.X <= 0 {
		pl.Pos.X = 0
		pl.dir = 1
	} else if pl.Pos.X+pl.Size.X >= worldW {
		pl.Pos.X = worldW - pl.Size.X
		pl.dir = -1
	}
}

var handlers = [...]handler{
	KindNormal: {
		landing: func(p *Player, phys config.HopperPhysics) {
			p.Jump(phys.JumpImpulse)
		},
		tick:      noMotion,
		intensity: intensityNormal,
	},
	KindBouncy: {
		// Bouncy landings always override velocity, even mid-ascent.
		landing: func(p *Player, phys config.HopperPhysics) {
			p.ForceJump(phys.BounceImpulse)
		},
		tick:      noMotion,
		intensity: intensityBouncy,
	},
	KindMoving: {
		landing: func(p *Player, phys config.HopperPhysics) {
			p.Jump(phys.JumpImpulse)
		},
		tick:      slideTick,
		intensity: intensityMoving,
	},
}

// OnLanding applies the kind's landing effect to a descending player.
func (k Kind) OnLanding(p *Player, phys config.HopperPhysics) {
	handlers[k].landing(p, phys)
}

// OnTick applies the kind's per-tick motion to the platform.
func (k Kind) OnTick(pl *Platform, moveSpeed, worldW float64) {
	handlers[k].tick(pl, moveSpeed, worldW)
}

// Intensity returns the render intensity for the kind.
func (k Kind) Intensity() uint8 {
	return handlers[k].intensity
}

// PickKind selects a kind by weighted random draw: cumulative thresholds
// over a uniform value in [0, 100).
func PickKind(rng *rand.Rand, w config.PlatformWeights) Kind {
	draw := rng.Float64() * 100
	if draw < w.Normal {
		return KindNormal
	}
	if draw < w.Normal+w.Bouncy {
		return KindBouncy
	}
	return KindMoving
}
