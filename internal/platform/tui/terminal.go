package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrClosed is returned by WaitKey once the program has ended.
var ErrClosed = errors.New("tui: terminal closed")

const keyBuffer = 64

// Terminal is a game.Terminal fed by a Bubble Tea program. The game loop
// draws into an off-screen buffer; Show hands a copy of it to the program,
// which renders only the frames it actually displays. Keys travel the other
// way over a channel.
type Terminal struct {
	screen *core.Screen // touched only by the game loop

	mu   sync.Mutex
	w, h int

	keys   chan core.Action
	frames chan *core.Screen
	done   chan struct{}

	closeOnce sync.Once
}

// NewTerminal creates a terminal of the given initial size.
func NewTerminal(w, h int) *Terminal {
	return &Terminal{
		screen: core.NewScreen(w, h),
		w:      w,
		h:      h,
		keys:   make(chan core.Action, keyBuffer),
		frames: make(chan *core.Screen, 1),
		done:   make(chan struct{}),
	}
}

// SetSize records a new window size. The next Clear picks it up.
func (t *Terminal) SetSize(w, h int) {
	t.mu.Lock()
	t.w, t.h = w, h
	t.mu.Unlock()
}

// Size reports the latest window size.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w, t.h
}

// Send queues a key for the game loop. Keys are dropped when the queue is full.
func (t *Terminal) Send(a core.Action) {
	select {
	case t.keys <- a:
	default:
	}
}

// PollKey returns the next queued key without blocking.
func (t *Terminal) PollKey() core.Action {
	select {
	case a := <-t.keys:
		return a
	default:
		return core.ActionNone
	}
}

// WaitKey blocks until a key arrives, ctx is done or the terminal closes.
func (t *Terminal) WaitKey(ctx context.Context) (core.Action, error) {
	select {
	case a := <-t.keys:
		return a, nil
	case <-ctx.Done():
		return core.ActionNone, ctx.Err()
	case <-t.done:
		return core.ActionNone, ErrClosed
	}
}

// Clear resizes the buffer to the current window and blanks it.
func (t *Terminal) Clear() {
	w, h := t.Size()
	t.screen.Resize(w, h)
	t.screen.Clear()
}

// SetCell draws one glyph into the buffer.
func (t *Terminal) SetCell(x, y int, r rune, c core.Color) {
	t.screen.SetCell(x, y, r, c)
}

// DrawText draws text into the buffer.
func (t *Terminal) DrawText(x, y int, text string) {
	t.screen.DrawText(x, y, text)
}

// Show publishes a copy of the buffer, replacing any frame the program has
// not displayed yet. Replaced frames are never rendered.
func (t *Terminal) Show() {
	frame := t.screen.Clone()
	for {
		select {
		case t.frames <- frame:
			return
		case <-t.done:
			return
		default:
		}
		select {
		case <-t.frames:
		default:
		}
	}
}

// Close unblocks WaitKey. It is safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}
