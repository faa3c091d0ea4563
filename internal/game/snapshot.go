package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Snapshot captures the loop state for logging and determinism tests.
type Snapshot struct {
	Frames   uint64
	Moves    uint64
	Rounds   int // Completed rounds (collisions)
	Score    int
	Best     int // Best score this session
	SnakeLen int
	Head     core.Point
	Dir      snake.Direction
	Food     core.Point
}

// Snapshot returns the current loop state.
func (l *Loop) Snapshot() Snapshot {
	return Snapshot{
		Frames:   l.frames,
		Moves:    l.moves,
		Rounds:   l.rounds,
		Score:    l.score,
		Best:     l.best,
		SnakeLen: l.snake.Len(),
		Head:     l.snake.Head(),
		Dir:      l.snake.Direction(),
		Food:     l.food.Position(),
	}
}

// String returns a multi-line debug representation.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frames: %d, Moves: %d, Rounds: %d\n", s.Frames, s.Moves, s.Rounds)
	fmt.Fprintf(&b, "Score: %d, Best: %d, Snake len: %d, Direction: %s\n", s.Score, s.Best, s.SnakeLen, s.Dir)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", s.Head.X, s.Head.Y, s.Food.X, s.Food.Y)
	return b.String()
}
