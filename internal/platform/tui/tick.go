// Package tui provides the Bubble Tea integration for the stack game.
// It owns the frame clock, maps keys to game actions, renders snapshots
// to the terminal and serves sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// maxFrameDelta caps the simulated time of a single frame.
const maxFrameDelta = 100 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks.
// The first tick (zero prev) and clock regressions yield 0.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() || !now.After(prev) {
		return 0
	}
	d := now.Sub(prev)
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return d.Seconds()
}
