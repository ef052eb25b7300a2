// Package tui provides the Bubble Tea host for the game. It handles the
// terminal loop, frame timing, input mapping and drawing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameTime returns the elapsed time between two ticks, clamped to
// [0, maxFrame]. The first tick has no predecessor and yields zero.
func frameTime(prev, now time.Time, maxFrame time.Duration) time.Duration {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev)
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrame)
}
