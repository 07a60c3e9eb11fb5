package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hopperlabs/tui-hopper/internal/core"
	"github.com/hopperlabs/tui-hopper/internal/games/hopper"
	"github.com/hopperlabs/tui-hopper/internal/sensor"
	"github.com/hopperlabs/tui-hopper/internal/storage"
)

// FrameMsg delivers an engine frame to the UI. Pushed by the engine's
// render callback in local play; SSH sessions poll instead.
type FrameMsg hopper.Frame

// Model is the Bubble Tea model hosting a hopper engine.
type Model struct {
	game     *hopper.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper
	tilt     *sensor.KeyTilt
	frame    hopper.Frame
	pushed   bool // Frames arrive via FrameMsg; skip polling
	quitting bool
	runSaved bool // Whether the run has been recorded for the current game over
}

// NewModel creates a Bubble Tea model for the given engine.
func NewModel(game *hopper.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		tilt:   sensor.NewKeyTilt(),
		frame:  game.Frame(),
	}

	// Let the session high score survive process restarts.
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			game.Score().SeedHigh(high)
		}
	}
	return m
}

// markPushed tells the model that frames arrive via FrameMsg.
func (m Model) markPushed() Model {
	m.pushed = true
	return m
}

// Init starts the UI tick loop. The engine's own loop starts on demand.
func (m Model) Init() tea.Cmd {
	return uiTickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		m.frame = hopper.Frame(msg)
		m.recordRun()
		return m, nil

	case UITickMsg:
		return m.handleUITick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case CommandQuit:
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit
	case CommandToggle:
		m.game.Toggle()
	case CommandStart:
		m.game.Start()
	case CommandPause:
		m.game.Pause()
	case CommandResume:
		m.game.Resume()
	case CommandRestart:
		m.game.Restart()
	case CommandLeanLeft:
		m.tilt.Lean(-1)
	case CommandLeanRight:
		m.tilt.Lean(1)
	case CommandCenter:
		m.tilt.Center()
		m.game.SetTilt(0)
	}
	return m, nil
}

// handleUITick advances the tilt emulation and, without a push channel,
// polls the engine for the latest frame.
func (m Model) handleUITick() (tea.Model, tea.Cmd) {
	m.game.SetTilt(m.tilt.Step())

	if !m.pushed {
		m.frame = m.game.Frame()
		m.recordRun()
	}

	return m, uiTickCmd(m.config.TickRate)
}

// recordRun persists the finished run once per game over.
func (m *Model) recordRun() {
	switch m.frame.State {
	case hopper.StateGameOver:
		if !m.runSaved && m.frame.Score > 0 {
			if m.store != nil {
				duration := time.Duration(m.frame.Tick) * time.Second / time.Duration(m.config.TickRate)
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveRun(m.frame.Score, m.frame.Climb, duration)
			}
			m.runSaved = true
		}
	default:
		m.runSaved = false
	}
}

// View renders the latest frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawFrame(m.screen, m.frame)
	return RenderScreen(m.screen)
}

// Run starts a local Bubble Tea program hosting the engine, with frames
// pushed from the engine's render callback.
func Run(game *hopper.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg).markPushed()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	game.SetRenderFunc(func(f hopper.Frame) {
		p.Send(FrameMsg(f))
	})
	defer game.Stop()

	_, err := p.Run()
	return err
}
