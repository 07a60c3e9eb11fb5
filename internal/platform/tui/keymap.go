package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Command is a semantic player command, abstracted from physical key
// presses. The engine's command surface plus the tilt emulation nudges.
type Command int

const (
	CommandNone Command = iota
	CommandToggle
	CommandStart
	CommandPause
	CommandResume
	CommandRestart
	CommandLeanLeft
	CommandLeanRight
	CommandCenter
	CommandQuit
)

// KeyMapper translates Bubble Tea key messages to commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a command.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Command {
	switch msg.String() {
	case "ctrl+c", "q":
		return CommandQuit
	case " ", "enter":
		// Space stands in for the hardware long-press toggle.
		return CommandToggle
	case "left", "a", "h":
		return CommandLeanLeft
	case "right", "d", "l":
		return CommandLeanRight
	case "down", "s":
		return CommandCenter
	case "p", "esc":
		return CommandPause
	case "o":
		return CommandResume
	case "r":
		return CommandRestart
	case "g":
		return CommandStart
	}
	return CommandNone
}
