package game

import (
	"context"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Canvas is anything a frame can be drawn onto. *core.Screen satisfies it.
type Canvas interface {
	// Clear blanks every cell.
	Clear()
	// SetCell writes one glyph at column x, row y.
	SetCell(x, y int, r rune, c core.Color)
	// DrawText writes a line of text starting at column x, row y.
	DrawText(x, y int, text string)
}

// Terminal is the display and keyboard the loop plays on.
// Implementations own session setup and teardown; the loop only draws,
// shows and reads keys.
type Terminal interface {
	Canvas

	// Size reports the current grid size. It may change between frames.
	Size() (width, height int)

	// PollKey returns the next pending action, or core.ActionNone
	// without waiting when nothing is pending.
	PollKey() core.Action

	// WaitKey blocks until a key arrives or ctx is done.
	WaitKey(ctx context.Context) (core.Action, error)

	// Show presents everything drawn since the last Clear.
	Show()
}

// Sounds receives gameplay cues.
type Sounds interface {
	Eat()
	GameOver()
}

// Capturer stores a copy of a rendered frame.
type Capturer interface {
	Capture(s *core.Screen) error
}

type nopSounds struct{}

func (nopSounds) Eat()      {}
func (nopSounds) GameOver() {}
