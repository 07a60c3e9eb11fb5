// Package tui provides the Bubble Tea integration for the hopper engine.
// It handles the terminal UI loop, key-to-tilt mapping and frame display;
// the engine runs its own simulation loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// UITickMsg drives the UI-side tilt emulation and frame polling.
type UITickMsg time.Time

// uiTickCmd returns a Bubble Tea command that sends UI ticks at the given rate.
func uiTickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return UITickMsg(t)
	})
}
