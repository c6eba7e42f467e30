// Package tui provides the Bubble Tea front end for the game.
// It handles the terminal UI loop, input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one frame update.
type TickMsg time.Time

// SpawnMsg is sent when the obstacle spawn timer fires.
type SpawnMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// spawnCmd returns a Bubble Tea command that sends a spawn message after interval.
// It runs on wall-clock time, independent of the frame rate.
func spawnCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SpawnMsg(t)
	})
}
