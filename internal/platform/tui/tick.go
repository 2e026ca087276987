// Package tui provides the Bubble Tea integration for Pond Hopper.
// It handles the terminal UI loop, keyboard and mouse input mapping,
// and the render pipeline.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one fixed simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. Each tick re-arms itself from
// Update, so the rate stays fixed regardless of render cost.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
