// Package tui provides the Bubble Tea integration for the aim trainer.
// It handles the terminal UI loop, mouse and key mapping, and drives the
// session's frame and countdown loops.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

// frameTickMsg asks the session to advance targets by one frame.
// Token identifies the frame loop that scheduled it.
type frameTickMsg struct {
	Token trainer.Token
}

// secondTickMsg asks the session to decrement its countdown.
type secondTickMsg struct {
	Token trainer.Token
}

// frameCmd schedules the next animation frame at the given rate.
func frameCmd(tickRate int, tok trainer.Token) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameTickMsg{Token: tok}
	})
}

// secondCmd schedules the next countdown tick.
func secondCmd(tok trainer.Token) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return secondTickMsg{Token: tok}
	})
}
