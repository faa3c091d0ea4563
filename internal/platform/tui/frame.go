// Package tui runs the game inside a Bubble Tea program, locally or per SSH
// session through Wish.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg carries a rendered frame from the game loop.
type FrameMsg string

// LoopDoneMsg reports that the game loop returned.
type LoopDoneMsg struct {
	Err error
}

// waitForFrame returns a command that blocks until the next frame and
// renders it, or yields nothing once the terminal is closed.
func waitForFrame(t *Terminal) tea.Cmd {
	return func() tea.Msg {
		select {
		case frame := <-t.frames:
			return FrameMsg(RenderScreen(frame))
		case <-t.done:
			return nil
		}
	}
}
