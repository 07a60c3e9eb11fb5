package hopper

import (
	"sync"
	"time"

	"github.com/hopperlabs/tui-hopper/internal/config"
	"github.com/hopperlabs/tui-hopper/internal/core"
)

// State is the orchestrator state machine tag.
type State int

const (
	StateHome State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateHome:
		return "home"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RenderFunc receives one frame per tick and one per state transition.
// It is invoked outside the engine lock with value-copied data, so the
// engine never depends on the callback behaving. Callbacks must not call
// engine commands synchronously; hand frames off to the host loop instead.
type RenderFunc func(Frame)

// loop is a cancellable periodic task handle. halt is synchronous: it
// returns only after the loop goroutine has exited.
type loop struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func (l *loop) halt() {
	l.once.Do(func() { close(l.stop) })
	<-l.done
}

// Game owns all entities and runs the fixed-tick simulation. Every public
// operation is serialized behind one mutex protecting the entity
// collection, score state and camera as a unit, so the engine is safe to
// drive from any goroutine.
type Game struct {
	mu sync.Mutex

	cfg    config.HopperConfig
	rt     core.RuntimeConfig
	state  State
	player *Player
	world  *World
	score  *ScoreTracker
	tilt   float64 // Last-write-wins horizontal intent in [-1, 1]
	tick   uint64

	render RenderFunc
	loop   *loop
}

// New creates a game in the HOME state with a freshly generated world.
func New(cfg config.HopperConfig, rt core.RuntimeConfig) *Game {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	g := &Game{
		cfg:   cfg,
		rt:    rt,
		state: StateHome,
		score: NewScoreTracker(),
	}
	g.world = NewWorld(cfg, rt)
	g.player = NewPlayer(g.world.SpawnPoint(cfg.Player), cfg.Player)
	return g
}

// Score exposes the score tracker for subscription and seeding.
func (g *Game) Score() *ScoreTracker {
	return g.score
}

// State returns the current state machine tag.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// SetRenderFunc installs the per-tick outbound frame callback.
func (g *Game) SetRenderFunc(fn RenderFunc) {
	g.mu.Lock()
	g.render = fn
	g.mu.Unlock()
}

// SetTilt applies the bounded horizontal tilt intent. May be called at any
// time; the last value wins for the next tick.
func (g *Game) SetTilt(v float64) {
	g.mu.Lock()
	g.tilt = core.ClampF(v, -1, 1)
	g.mu.Unlock()
}

// Start begins play. From HOME it resets the session score and launches
// the tick loop; from GAME_OVER it additionally rebuilds the world first.
// While PLAYING or PAUSED it is a no-op.
func (g *Game) Start() {
	g.mu.Lock()
	switch g.state {
	case StatePlaying, StatePaused:
		g.mu.Unlock()
		return
	case StateGameOver:
		g.reinit()
	}
	g.state = StatePlaying
	g.score.Reset()
	g.startLoop()
	g.mu.Unlock()
	g.emit()
}

// Pause freezes the simulation in place. It returns only after the tick
// loop has stopped, so no tick mutates state after the call. No-op unless
// PLAYING.
func (g *Game) Pause() {
	g.mu.Lock()
	if g.state != StatePlaying {
		g.mu.Unlock()
		return
	}
	g.state = StatePaused
	l := g.loop
	g.loop = nil
	g.mu.Unlock()

	if l != nil {
		l.halt()
	}
	g.emit()
}

// Resume relaunches the tick loop from the frozen state. No-op unless
// PAUSED.
func (g *Game) Resume() {
	g.mu.Lock()
	if g.state != StatePaused {
		g.mu.Unlock()
		return
	}
	g.state = StatePlaying
	g.startLoop()
	g.mu.Unlock()
	g.emit()
}

// Restart returns from GAME_OVER to HOME with a freshly generated layout.
// It does not auto-start. No-op unless GAME_OVER.
func (g *Game) Restart() {
	g.mu.Lock()
	if g.state != StateGameOver {
		g.mu.Unlock()
		return
	}
	l := g.loop
	g.loop = nil
	g.reinit()
	g.state = StateHome
	g.score.Reset()
	g.mu.Unlock()

	if l != nil {
		l.halt()
	}
	g.emit()
}

// Toggle is the context-sensitive long-press command: start from HOME,
// pause from PLAYING, resume from PAUSED, restart from GAME_OVER.
func (g *Game) Toggle() {
	switch g.State() {
	case StateHome:
		g.Start()
	case StatePlaying:
		g.Pause()
	case StatePaused:
		g.Resume()
	case StateGameOver:
		g.Restart()
	}
}

// Stop halts the tick loop regardless of state. Used by hosts on shutdown.
func (g *Game) Stop() {
	g.mu.Lock()
	l := g.loop
	g.loop = nil
	if g.state == StatePlaying {
		g.state = StatePaused
	}
	g.mu.Unlock()

	if l != nil {
		l.halt()
	}
}

// reinit rebuilds the world and player for a fresh session. Caller holds mu.
func (g *Game) reinit() {
	seed := g.rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.world.Reset(seed)
	g.player.Reset()
	g.tilt = 0
	g.tick = 0
}

// startLoop launches the periodic tick task. Caller holds mu.
func (g *Game) startLoop() {
	l := &loop{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	g.loop = l
	interval := time.Second / time.Duration(g.rt.TickRate)
	go g.run(l, interval)
}

func (g *Game) run(l *loop, interval time.Duration) {
	defer close(l.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			if !g.tickOnce() {
				return
			}
		}
	}
}

// tickOnce runs one simulation step and emits its frame. Returns false
// when the loop should stop (paused externally or game over).
func (g *Game) tickOnce() bool {
	g.mu.Lock()
	if g.state != StatePlaying {
		g.mu.Unlock()
		return false
	}
	notify := g.step()
	frame := g.frameLocked()
	fn := g.render
	alive := g.state == StatePlaying
	g.mu.Unlock()

	if notify != nil {
		notify()
	}
	if fn != nil {
		fn(frame)
	}
	return alive
}

// step runs the fixed-tick update in the mandated order: player physics,
// platform updates, collision, scoring, camera, generation, terminal
// check. Caller holds mu and has verified the state is PLAYING; the
// returned score notification, if any, must be fired after mu is
// released so subscribers can call back into the engine.
func (g *Game) step() (notify func()) {
	g.tick++

	// 1. Player physics, horizontal velocity from the latest tilt intent.
	g.player.SetHorizontalVelocity(g.tilt*g.cfg.Physics.MaxTiltSpeed, g.cfg.Physics.MaxTiltSpeed)
	g.player.Update(g.cfg.Physics.Gravity, g.world.w)

	// 2. Platform motion, collection order.
	g.world.UpdatePlatforms()

	// 3. Collision pass: landings only while descending. Descent is
	// sampled once so every overlapping platform is honored in collection
	// order; impulses overwrite, so the last unconditional one wins when
	// kinds conflict.
	if g.player.Vel.Y > 0 {
		playerRect := g.player.Rect()
		for _, pl := range g.world.Platforms() {
			if playerRect.Intersects(pl.Rect()) {
				pl.Kind.OnLanding(g.player, g.cfg.Physics)
			}
		}
	}

	// 4. Score from height climbed above the spawn row; monotone.
	climbed := g.player.SpawnY() - g.player.MaxHeight
	notify = g.score.raise(int(climbed * g.cfg.Score.Scale))

	// 5. Camera follow, up only.
	g.world.Follow(g.player.Pos.Y)

	// 6. Despawn below, spawn above.
	g.world.Recycle()

	// 7. Terminal check.
	if g.world.Fallen(g.player.Pos.Y) {
		g.state = StateGameOver
	}
	return notify
}

// emit sends a frame for the current state outside the lock. Used on
// transitions so the host can redraw immediately; the loop emits per tick.
func (g *Game) emit() {
	g.mu.Lock()
	frame := g.frameLocked()
	fn := g.render
	g.mu.Unlock()

	if fn != nil {
		fn(frame)
	}
}

// Frame returns a snapshot of the current state for hosts that poll
// instead of subscribing.
func (g *Game) Frame() Frame {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frameLocked()
}
