// Package tui runs games in a terminal with Bubble Tea: a pixel play area
// mapped onto character cells, key bindings with hold emulation, a picker
// menu and an SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/site-arcade/internal/core"
)

// TickMsg carries the frame timestamp handed to Game.Tick.
type TickMsg time.Time

// frameInterval converts a tick rate into the delay between frames.
// Non-positive rates use the default rate.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules a single frame. Each handled TickMsg asks for the next
// one only while the game stays active.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
