package hopper

// Sprite is a camera-relative body: screen-space position plus size.
type Sprite struct {
	X, Y float64
	W, H float64
}

// PlatformSprite is a visible platform with its render intensity.
type PlatformSprite struct {
	Sprite
	Kind      Kind
	Intensity uint8
}

// Frame is the outbound render payload emitted once per tick. Player and
// Platforms are populated for PLAYING and PAUSED; scores are always
// present. All data is value-copied so hosts can keep frames across ticks.
type Frame struct {
	State     State
	Tick      uint64
	Score     int
	High      int
	Climb     float64 // Cells climbed above the spawn row
	Player    Sprite
	Platforms []PlatformSprite
}

// frameLocked builds the current frame. Caller holds mu.
func (g *Game) frameLocked() Frame {
	cur, high := g.score.Values()
	f := Frame{
		State: g.state,
		Tick:  g.tick,
		Score: cur,
		High:  high,
		Climb: g.player.SpawnY() - g.player.MaxHeight,
	}

	if g.state != StatePlaying && g.state != StatePaused {
		return f
	}

	cam := g.world.Camera()
	f.Player = Sprite{
		X: g.player.Pos.X,
		Y: g.player.Pos.Y - cam,
		W: g.player.Size.X,
		H: g.player.Size.Y,
	}

	for _, pl := range g.world.Platforms() {
		y := pl.Pos.Y - cam
		// Only platforms inside the visible window are reported.
		if y+pl.Size.Y < 0 || y > g.world.h {
			continue
		}
		f.Platforms = append(f.Platforms, PlatformSprite{
			Sprite: Sprite{
				X: pl.Pos.X,
				Y: y,
				W: pl.Size.X,
				H: pl.Size.Y,
			},
			Kind:      pl.Kind,
			Intensity: pl.Kind.Intensity(),
		})
	}
	return f
}

// Snapshot captures the engine state for determinism testing.
type Snapshot struct {
	Tick      uint64
	State     State
	PlayerX   float64
	PlayerY   float64
	VelY      float64
	MaxHeight float64
	Camera    float64
	Platforms int
	Score     int
	High      int
}

// Snapshot returns the current snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	cur, high := g.score.Values()
	return Snapshot{
		Tick:      g.tick,
		State:     g.state,
		PlayerX:   g.player.Pos.X,
		PlayerY:   g.player.Pos.Y,
		VelY:      g.player.Vel.Y,
		MaxHeight: g.player.MaxHeight,
		Camera:    g.world.Camera(),
		Platforms: len(g.world.Platforms()),
		Score:     cur,
		High:      high,
	}
}
