package hopper

import (
	"math/rand"

	"github.com/hopperlabs/tui-hopper/internal/config"
	"github.com/hopperlabs/tui-hopper/internal/core"
)

// World owns the platform collection, the scrolling camera and the
// procedural generator. Platforms keep insertion order; order only matters
// for deterministic iteration, not correctness.
type World struct {
	platforms []*Platform
	camera    float64 // Vertical scroll offset; only ever decreases (moves up)
	rng       *rand.Rand
	cfg       config.HopperConfig
	w, h      float64
}

// NewWorld creates a world sized to the runtime config and lays out the
// initial platforms.
func NewWorld(cfg config.HopperConfig, rt core.RuntimeConfig) *World {
	w := &World{
		cfg: cfg,
		w:   float64(rt.ScreenW),
		h:   float64(rt.ScreenH),
	}
	w.Reset(rt.Seed)
	return w
}

// Reset clears the world, reseeds the generator and rebuilds the initial
// layout: one guaranteed normal platform beneath the spawn point, then a
// fixed count of platforms stacked upward at random positions and gaps.
func (w *World) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.camera = 0
	w.platforms = w.platforms[:0]

	dims := w.cfg.Platforms
	baseY := w.h - dims.Height
	baseX := (w.w - dims.Width) / 2
	w.platforms = append(w.platforms, NewPlatform(core.V(baseX, baseY), dims, KindNormal))

	y := baseY
	for i := 0; i < dims.Count; i++ {
		y -= w.randGap()
		w.platforms = append(w.platforms, NewPlatform(core.V(w.randX(), y), dims, PickKind(w.rng, dims.Weights)))
	}
}

func (w *World) randGap() float64 {
	return w.cfg.Platforms.MinGap + w.rng.Float64()*(w.cfg.Platforms.MaxGap-w.cfg.Platforms.MinGap)
}

func (w *World) randX() float64 {
	return w.rng.Float64() * (w.w - w.cfg.Platforms.Width)
}

// SpawnPoint returns the player's starting position: centered, standing on
// the base platform.
func (w *World) SpawnPoint(player config.HopperPlayer) core.Vec2 {
	return core.V((w.w-player.Width)/2, w.h-w.cfg.Platforms.Height-player.Height)
}

// Platforms returns the live platform collection in insertion order.
func (w *World) Platforms() []*Platform {
	return w.platforms
}

// Camera returns the current vertical scroll offset.
func (w *World) Camera() float64 {
	return w.camera
}

// UpdatePlatforms advances every platform by one tick in collection order.
func (w *World) UpdatePlatforms() {
	for _, pl := range w.platforms {
		pl.Update(w.cfg.Platforms.MoveSpeed, w.w)
	}
}

// Follow scrolls the camera up to keep the player within the follow margin
// of its top edge. The camera never moves down.
func (w *World) Follow(playerY float64) {
	if playerY < w.camera+w.cfg.Camera.FollowMargin {
		w.camera = playerY - w.cfg.Camera.FollowMargin
	}
}

// Recycle removes platforms that have fallen past the despawn margin below
// the visible window, then spawns at most one platform above the current
// highest while it is within the spawn lead of the camera's top edge.
// An empty collection skips the spawn; it is not a fault.
func (w *World) Recycle() {
	despawnBelow := w.camera + w.h + w.cfg.Camera.DespawnMargin
	kept := w.platforms[:0]
	for _, pl := range w.platforms {
		if pl.Pos.Y <= despawnBelow {
			kept = append(kept, pl)
		}
	}
	w.platforms = kept

	if len(w.platforms) == 0 {
		return
	}

	highest := w.platforms[0].Pos.Y
	for _, pl := range w.platforms[1:] {
		if pl.Pos.Y < highest {
			highest = pl.Pos.Y
		}
	}

	if highest > w.camera-w.cfg.Camera.SpawnLead {
		dims := w.cfg.Platforms
		y := highest - w.randGap()
		w.platforms = append(w.platforms, NewPlatform(core.V(w.randX(), y), dims, PickKind(w.rng, dims.Weights)))
	}
}

// Fallen reports whether the given player position is past the fall margin
// below the visible window, the terminal condition.
func (w *World) Fallen(playerY float64) bool {
	return playerY > w.camera+w.h+w.cfg.Camera.FallMargin
}

// RemoveAll drops every platform. Test hook for starvation scenarios.
func (w *World) RemoveAll() {
	w.platforms = w.platforms[:0]
}
