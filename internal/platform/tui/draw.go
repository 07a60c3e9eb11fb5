package tui

import (
	"fmt"

	"github.com/hopperlabs/tui-hopper/internal/core"
	"github.com/hopperlabs/tui-hopper/internal/games/hopper"
)

// Visual characters for rendering
const (
	PlayerChar   = '◆'
	PlatformChar = '▀'
	WallChar     = '│'
)

// intensityColor maps a platform's render intensity to a terminal color:
// full brightness, a mid level and a dim level.
func intensityColor(intensity uint8) core.Color {
	switch {
	case intensity >= 224:
		return core.ColorBrightGreen
	case intensity >= 128:
		return core.ColorBrightCyan
	default:
		return core.ColorGray
	}
}

// drawFrame renders an engine frame into the screen buffer. The playfield
// is centered; terminal cells outside it stay blank.
func (m Model) drawFrame(dst *core.Screen, f hopper.Frame) {
	dst.Clear()

	ox := (dst.Width() - m.config.ScreenW) / 2
	oy := (dst.Height() - m.config.ScreenH) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}

	// Playfield walls
	for y := 0; y < m.config.ScreenH; y++ {
		dst.Set(ox-1, oy+y, WallChar)
		dst.Set(ox+m.config.ScreenW, oy+y, WallChar)
	}

	switch f.State {
	case hopper.StateHome:
		m.drawHome(dst)
	case hopper.StatePlaying, hopper.StatePaused:
		m.drawPlay(dst, f, ox, oy)
		if f.State == hopper.StatePaused {
			m.drawCenteredMessage(dst, "PAUSED", "Space to resume")
		}
	case hopper.StateGameOver:
		m.drawGameOver(dst, f)
	}
}

func (m Model) drawPlay(dst *core.Screen, f hopper.Frame, ox, oy int) {
	for _, pl := range f.Platforms {
		c := intensityColor(pl.Intensity)
		for i := 0; i < int(pl.W); i++ {
			dst.SetCell(ox+int(pl.X)+i, oy+int(pl.Y), core.Cell{Rune: PlatformChar, Color: c})
		}
	}

	for i := 0; i < int(f.Player.W); i++ {
		dst.SetCell(ox+int(f.Player.X)+i, oy+int(f.Player.Y), core.Cell{Rune: PlayerChar, Color: core.ColorBrightYellow})
	}

	dst.DrawText(ox, core.Max(0, oy-1), fmt.Sprintf(" Score: %d  High: %d ", f.Score, f.High))
}

func (m Model) drawHome(dst *core.Screen) {
	m.drawCenteredMessage(dst, "SKY HOPPER", "Space to start  |  ←/→ lean  |  q quit")
}

func (m Model) drawGameOver(dst *core.Screen, f hopper.Frame) {
	m.drawCenteredMessage(dst, "GAME OVER",
		fmt.Sprintf("Score: %d  High: %d  |  Space to restart", f.Score, f.High))
}

// drawCenteredMessage draws a message box in the center of the screen.
func (m Model) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
