package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want Command
	}{
		{"q", CommandQuit},
		{"ctrl+c", CommandQuit},
		{" ", CommandToggle},
		{"enter", CommandToggle},
		{"left", CommandLeanLeft},
		{"a", CommandLeanLeft},
		{"h", CommandLeanLeft},
		{"right", CommandLeanRight},
		{"d", CommandLeanRight},
		{"l", CommandLeanRight},
		{"down", CommandCenter},
		{"s", CommandCenter},
		{"p", CommandPause},
		{"esc", CommandPause},
		{"o", CommandResume},
		{"r", CommandRestart},
		{"g", CommandStart},
		{"x", CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			msg := keyMsg(tc.key)
			if got := km.MapKey(msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

// keyMsg builds a tea.KeyMsg whose String() matches the given binding.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
