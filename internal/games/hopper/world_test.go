package hopper

import (
	"math/rand"
	"testing"

	"github.com/hopperlabs/tui-hopper/internal/config"
	"github.com/hopperlabs/tui-hopper/internal/core"
)

func newTestWorld(seed int64) *World {
	return NewWorld(config.DefaultHopperConfig(), testRuntime(seed))
}

func TestInitialLayout(t *testing.T) {
	w := newTestWorld(42)
	cfg := w.cfg.Platforms

	if got := len(w.platforms); got != cfg.Count+1 {
		t.Fatalf("platform count = %d, want %d", got, cfg.Count+1)
	}

	base := w.platforms[0]
	if base.Kind != KindNormal {
		t.Errorf("base platform kind = %v, want normal", base.Kind)
	}
	if base.Pos.Y != w.h-cfg.Height {
		t.Errorf("base platform y = %v, want %v", base.Pos.Y, w.h-cfg.Height)
	}

	// The stack climbs with gaps inside the configured range.
	prevY := base.Pos.Y
	for i, pl := range w.platforms[1:] {
		gap := prevY - pl.Pos.Y
		if gap < cfg.MinGap || gap > cfg.MaxGap {
			t.Errorf("platform %d gap = %v, want within [%v, %v]", i+1, gap, cfg.MinGap, cfg.MaxGap)
		}
		if pl.Pos.X < 0 || pl.Pos.X+cfg.Width > w.w {
			t.Errorf("platform %d x = %v out of bounds", i+1, pl.Pos.X)
		}
		prevY = pl.Pos.Y
	}
}

func TestResetReproducible(t *testing.T) {
	a := newTestWorld(7)
	b := newTestWorld(7)

	if len(a.platforms) != len(b.platforms) {
		t.Fatalf("layout sizes differ: %d vs %d", len(a.platforms), len(b.platforms))
	}
	for i := range a.platforms {
		if a.platforms[i].Pos != b.platforms[i].Pos || a.platforms[i].Kind != b.platforms[i].Kind {
			t.Errorf("platform %d differs: %+v vs %+v", i, a.platforms[i], b.platforms[i])
		}
	}
}

func TestCameraOnlyMovesUp(t *testing.T) {
	w := newTestWorld(1)

	w.Follow(2) // Player well above the follow margin
	cam := w.Camera()
	if cam >= 0 {
		t.Fatalf("camera did not move up: %v", cam)
	}

	w.Follow(100) // Player falls back down
	if w.Camera() != cam {
		t.Errorf("camera moved down: %v -> %v", cam, w.Camera())
	}
}

func TestRecycleDespawnsBelowWindow(t *testing.T) {
	w := newTestWorld(2)
	w.camera = -50

	before := len(w.platforms)
	w.Recycle()
	after := len(w.platforms)

	despawnBelow := w.camera + w.h + w.cfg.Camera.DespawnMargin
	for _, pl := range w.platforms {
		if pl.Pos.Y > despawnBelow {
			t.Errorf("platform at y=%v survived past despawn line %v", pl.Pos.Y, despawnBelow)
		}
	}
	if after >= before {
		t.Errorf("expected despawns with camera at %v: %d -> %d", w.camera, before, after)
	}
}

func TestRecycleSpawnsAtMostOnePerTick(t *testing.T) {
	w := newTestWorld(3)
	w.camera = -100 // Far above every platform: all despawn... except the spawn rule needs survivors

	// Keep one platform near the camera so the spawn rule has an anchor.
	w.platforms = w.platforms[:1]
	w.platforms[0].Pos = core.V(5, w.camera+2)

	before := len(w.platforms)
	w.Recycle()
	if got := len(w.platforms) - before; got != 1 {
		t.Errorf("spawned %d platforms in one tick, want 1", got)
	}
}

func TestRecycleEmptyCollectionSkipsSpawn(t *testing.T) {
	w := newTestWorld(4)
	w.RemoveAll()

	w.Recycle() // Must not panic and must not spawn
	if got := len(w.platforms); got != 0 {
		t.Errorf("empty world spawned %d platforms", got)
	}
}

func TestPickKindDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	weights := config.DefaultHopperConfig().Platforms.Weights

	counts := map[Kind]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[PickKind(rng, weights)]++
	}

	ratio := func(k Kind) float64 { return float64(counts[k]) / n * 100 }
	if r := ratio(KindNormal); r < 77 || r > 83 {
		t.Errorf("normal ratio = %.1f%%, want ~80%%", r)
	}
	if r := ratio(KindBouncy); r < 12 || r > 18 {
		t.Errorf("bouncy ratio = %.1f%%, want ~15%%", r)
	}
	if r := ratio(KindMoving); r < 3 || r > 7 {
		t.Errorf("moving ratio = %.1f%%, want ~5%%", r)
	}
}
