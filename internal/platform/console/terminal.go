// Package console plays the game full-screen on the local terminal through
// tcell.
package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrClosed is returned by WaitKey once the terminal has been closed.
var ErrClosed = errors.New("console: terminal closed")

// eventBuffer is how many decoded keys may wait for the game loop.
const eventBuffer = 64

// Terminal is a game.Terminal backed by a tcell screen.
type Terminal struct {
	screen tcell.Screen
	keys   map[string]core.Action
	events chan core.Action
	done   chan struct{}

	closeOnce sync.Once
}

// New opens the local terminal: it initializes the screen, hides the cursor
// and starts reading input. keys maps key names to actions; unmapped keys
// are reported as core.ActionAny.
func New(keys map[string]core.Action) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("console: create screen: %w", err)
	}
	return Open(screen, keys)
}

// Open takes ownership of an uninitialized screen.
func Open(screen tcell.Screen, keys map[string]core.Action) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("console: init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	t := &Terminal{
		screen: screen,
		keys:   keys,
		events: make(chan core.Action, eventBuffer),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump translates tcell events until the screen is finalized.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			action, ok := t.keys[KeyName(ev)]
			if !ok {
				action = core.ActionAny
			}
			select {
			case t.events <- action:
			case <-t.done:
				return
			default:
				// Loop is not keeping up; drop the key.
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Size reports the current terminal size in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// PollKey returns the next queued action without blocking.
func (t *Terminal) PollKey() core.Action {
	select {
	case a := <-t.events:
		return a
	default:
		return core.ActionNone
	}
}

// WaitKey blocks until a key is pressed, ctx is done or the terminal closes.
func (t *Terminal) WaitKey(ctx context.Context) (core.Action, error) {
	select {
	case a := <-t.events:
		return a, nil
	case <-ctx.Done():
		return core.ActionNone, ctx.Err()
	case <-t.done:
		return core.ActionNone, ErrClosed
	}
}

// Clear blanks the back buffer.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// SetCell draws one glyph. Off-screen positions are ignored by tcell.
func (t *Terminal) SetCell(x, y int, r rune, c core.Color) {
	t.screen.SetContent(x, y, r, nil, Style(c))
}

// DrawText draws text left to right in the default style.
func (t *Terminal) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		t.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
		i++
	}
}

// Show flushes the back buffer to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}
