// Package game runs a Snake session on a Terminal: it polls input, advances
// the snake on a fixed cadence, handles eating and collisions, and redraws
// the whole frame every iteration.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const (
	// MoveInterval is the snake's fixed movement cadence, independent of
	// how fast frames are drawn.
	MoveInterval = 100 * time.Millisecond

	// GameOverPause is how long input is ignored after a collision.
	GameOverPause = time.Second

	// DefaultIdle is the pause between frames.
	DefaultIdle = 2 * time.Millisecond

	gameOverText = "Game Over! Press any key to start again..."
	tooSmallText = "Window too small"
)

// Options configures a Loop. Zero values select defaults.
type Options struct {
	Clock   Clock
	Logger  *log.Logger
	Sounds  Sounds
	Capture Capturer

	// Theme is the initial theme. Themes, if set, delivers replacements;
	// the loop applies the newest one at the start of a frame.
	Theme  Theme
	Themes <-chan Theme

	// QuitKey is the key name shown in the help line.
	QuitKey string

	// Idle is the pause between frames. Negative disables it.
	Idle time.Duration
}

// Loop owns one play session: the snake, the food and the score.
type Loop struct {
	term    Terminal
	clock   Clock
	log     *log.Logger
	sounds  Sounds
	capture Capturer
	themes  <-chan Theme
	theme   Theme
	help    string
	idle    time.Duration

	snake    *snake.Snake
	food     *snake.Food
	score    int
	lastMove time.Time

	frames uint64
	moves  uint64
	rounds int
	best   int
}

// New creates a loop that plays on term and places food with src.
func New(term Terminal, src snake.RandomSource, opts Options) *Loop {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sounds == nil {
		opts.Sounds = nopSounds{}
	}
	if opts.QuitKey == "" {
		opts.QuitKey = "q"
	}
	if opts.Idle == 0 {
		opts.Idle = DefaultIdle
	}

	w, h := term.Size()
	l := &Loop{
		term:    term,
		clock:   opts.Clock,
		log:     opts.Logger,
		sounds:  opts.Sounds,
		capture: opts.Capture,
		themes:  opts.Themes,
		theme:   opts.Theme.withDefaults(),
		help:    fmt.Sprintf("Press %s to exit", opts.QuitKey),
		idle:    opts.Idle,
		snake:   snake.New(),
		food:    snake.NewFood(src, snake.Bounds{W: w, H: h}),
	}
	l.lastMove = l.clock.Now()
	return l
}

// Run plays frames until the player quits or ctx is cancelled.
// Cancellation is a normal way to end and is not reported as an error.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Debug("loop started")
	defer func() {
		l.log.Debug("loop stopped", "frames", l.frames, "rounds", l.rounds, "best", l.best)
	}()

	for {
		done, err := l.Frame(ctx)
		if err != nil {
			if isCancel(err) {
				return nil
			}
			return err
		}
		if done {
			return nil
		}
		if l.idle > 0 {
			if err := l.clock.Sleep(ctx, l.idle); err != nil {
				return nil
			}
		}
	}
}

// Frame runs one iteration of the loop. done reports that the player quit.
func (l *Loop) Frame(ctx context.Context) (done bool, err error) {
	l.frames++
	l.applyThemes()

	action := l.term.PollKey()
	if action.Ends() {
		return true, nil
	}
	if dx, dy, ok := action.Vector(); ok {
		l.snake.SetDirection(dx, dy)
	}

	b := l.bounds()
	l.term.Clear()
	if !b.Valid() {
		drawTooSmall(l.term, b)
		l.term.Show()
		return false, nil
	}
	if !b.FoodArea().Contains(l.food.Position()) {
		l.respawnFood(b)
	}

	l.draw(l.term, b)
	if action == core.ActionScreenshot {
		l.screenshot(b)
	}

	if now := l.clock.Now(); now.Sub(l.lastMove) >= MoveInterval {
		l.snake.Move(b)
		l.lastMove = now
		l.moves++
	}

	if l.snake.Head() == l.food.Position() {
		l.score++
		l.best = max(l.best, l.score)
		l.snake.Grow()
		l.respawnFood(b)
		l.sounds.Eat()
		l.log.Debug("food eaten", "score", l.score, "length", l.snake.Len())
	}

	if l.snake.Collided() {
		return l.gameOver(ctx, b)
	}

	l.term.Show()
	return false, nil
}

// gameOver resets the round, shows the game over notice, ignores input for
// GameOverPause and then waits for any key.
func (l *Loop) gameOver(ctx context.Context, b snake.Bounds) (bool, error) {
	l.rounds++
	l.log.Info("round over", "round", l.rounds, "score", l.score, "length", l.snake.Len())

	l.score = 0
	l.snake.Reset()
	l.sounds.GameOver()

	l.term.Clear()
	l.term.DrawText(max(b.W/2-20, 0), b.H/2, gameOverText)
	l.term.Show()

	if err := l.clock.Sleep(ctx, GameOverPause); err != nil {
		return true, err
	}
	if l.discardPending() {
		return true, nil
	}

	key, err := l.term.WaitKey(ctx)
	if err != nil {
		return true, err
	}
	if key == core.ActionInterrupt {
		return true, nil
	}

	l.term.Clear()
	return false, nil
}

// maxDiscard bounds how many queued keys are thrown away after a collision.
const maxDiscard = 1024

// discardPending drops keys typed during the game over pause. It reports
// whether one of them was an interrupt.
func (l *Loop) discardPending() bool {
	for range maxDiscard {
		switch l.term.PollKey() {
		case core.ActionNone:
			return false
		case core.ActionInterrupt:
			return true
		}
	}
	return false
}

// applyThemes switches to the newest theme waiting on the themes channel.
func (l *Loop) applyThemes() {
	if l.themes == nil {
		return
	}
	for {
		select {
		case t, ok := <-l.themes:
			if !ok {
				l.themes = nil
				return
			}
			l.theme = t.withDefaults()
			l.log.Debug("theme reloaded")
		default:
			return
		}
	}
}

// respawnFood places the food anywhere in b's food area, snake included.
func (l *Loop) respawnFood(b snake.Bounds) {
	l.food.Respawn(b)
	if pos := l.food.Position(); l.snake.Occupies(pos) {
		l.log.Debug("food placed under the snake", "x", pos.X, "y", pos.Y)
	}
}

// screenshot renders the current frame off-screen and hands it to the capturer.
func (l *Loop) screenshot(b snake.Bounds) {
	if l.capture == nil {
		return
	}
	s := core.NewScreen(b.W, b.H)
	l.draw(s, b)
	if err := l.capture.Capture(s); err != nil {
		l.log.Warn("screenshot failed", "error", err)
		return
	}
	l.log.Info("screenshot saved")
}

func (l *Loop) bounds() snake.Bounds {
	w, h := l.term.Size()
	return snake.Bounds{W: w, H: h}
}

// Score returns the current round's score.
func (l *Loop) Score() int {
	return l.score
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
