// Package hopper implements an endless tilt-jumper: the player falls under
// gravity, bounces off procedurally generated platforms and is scored by
// height climbed while the camera scrolls upward forever.
package hopper

import (
	"github.com/hopperlabs/tui-hopper/internal/config"
	"github.com/hopperlabs/tui-hopper/internal/core"
)

// Entity is a mutable physical body. Size components are positive and
// constant after construction; position and velocity change per tick.
type Entity struct {
	Pos  core.Vec2
	Size core.Vec2
	Vel  core.Vec2
}

// Rect derives the entity's bounding box from its current position.
// Boxes are computed at query time, never cached across ticks.
func (e *Entity) Rect() core.Rect {
	return core.Rect{Pos: e.Pos, Size: e.Size}
}

// wrapX applies the horizontal wrap rule shared by player and platforms:
// drifting past the left edge re-enters at the right and vice versa.
func (e *Entity) wrapX(worldW float64) {
	if e.Pos.X < 0 {
		e.Pos.X = worldW - e.Size.X
	} else if e.Pos.X+e.Size.X > worldW {
		e.Pos.X = 0
	}
}

// Player is the single controllable body. MaxHeight is the lowest y value
// ever reached (y decreases upward), used for scoring.
type Player struct {
	Entity
	MaxHeight float64
	spawn     core.Vec2
}

// NewPlayer creates a player at the given spawn position.
func NewPlayer(spawn core.Vec2, dims config.HopperPlayer) *Player {
	p := &Player{}
	p.Size = core.V(dims.Width, dims.Height)
	p.spawn = spawn
	p.Reset()
	return p
}

// Reset reinitializes position, velocity and max height in place.
func (p *Player) Reset() {
	p.Pos = p.spawn
	p.Vel = core.V(0, 0)
	p.MaxHeight = p.spawn.Y
}

// SpawnY returns the vertical spawn position, the scoring baseline.
func (p *Player) SpawnY() float64 {
	return p.spawn.Y
}

// Jump overrides vertical velocity with the given upward impulse, honored
// only when the player is not already ascending from a stronger jump.
func (p *Player) Jump(impulse float64) {
	if p.Vel.Y >= 0 {
		p.Vel.Y = impulse
	}
}

// ForceJump overrides vertical velocity unconditionally.
func (p *Player) ForceJump(impulse float64) {
	p.Vel.Y = impulse
}

// SetHorizontalVelocity sets the tilt-driven horizontal speed, clamped to
// [-max, max].
func (p *Player) SetHorizontalVelocity(v, max float64) {
	p.Vel.X = core.ClampF(v, -max, max)
}

// Update advances the player by one tick: gravity, max-height tracking,
// integration, horizontal wrap.
func (p *Player) Update(gravity, worldW float64) {
	p.Vel.Y += gravity
	if next := p.Pos.Y + p.Vel.Y; next < p.MaxHeight {
		p.MaxHeight = next
	}
	p.Pos = p.Pos.Add(p.Vel)
	p.wrapX(worldW)
}

// Platform is a landable body with a behavior kind assigned once at spawn.
type Platform struct {
	Entity
	Kind Kind
	dir  float64 // Motion direction for moving platforms, +1 or -1
}

// NewPlatform creates a platform of the given kind at the given position.
func NewPlatform(pos core.Vec2, dims config.HopperPlatforms, kind Kind) *Platform {
	pl := &Platform{Kind: kind, dir: 1}
	pl.Pos = pos
	pl.Size = core.V(dims.Width, dims.Height)
	return pl
}

// Update advances the platform by one tick: the kind's motion behavior,
// then the generic integration and wrap shared with the player.
func (pl *Platform) Update(moveSpeed, worldW float64) {
	pl.Kind.OnTick(pl, moveSpeed, worldW)
	pl.Pos = pl.Pos.Add(pl.Vel)
	pl.wrapX(worldW)
}
