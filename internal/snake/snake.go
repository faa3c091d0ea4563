// Package snake holds the pure game-state model: the snake body, its food and
// the random source that places the food. Nothing here draws; the play loop
// reads the state and renders it.
package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction is a unit step on the grid. At most one component is nonzero.
type Direction struct {
	DX, DY int
}

// Canonical headings.
var (
	DirRight = Direction{DX: 1}
	DirLeft  = Direction{DX: -1}
	DirUp    = Direction{DY: -1}
	DirDown  = Direction{DY: 1}
)

// String returns a human-readable heading name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case Direction{}:
		return "still"
	default:
		return "unknown"
	}
}

// isUnit reports whether (dx, dy) is one of the four orthogonal unit steps.
func isUnit(dx, dy int) bool {
	return (dx == 0) != (dy == 0) && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// initialBody is the layout every round starts from, head first.
func initialBody() []core.Point {
	return []core.Point{
		{X: 10, Y: 5}, // Head
		{X: 9, Y: 5},
		{X: 8, Y: 5},
	}
}

// Snake is the player's body and heading.
type Snake struct {
	body      []core.Point // Head at index 0
	direction Direction
}

// New creates a snake in the canonical starting layout, heading right.
func New() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset restores the starting body and heading.
func (s *Snake) Reset() {
	s.body = initialBody()
	s.direction = DirRight
}

// Head returns the head segment.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments, counting a pending growth segment.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection turns the snake. A turn is taken only onto the axis the
// snake is not currently moving along, so it can never reverse into its
// own neck. Anything else is ignored.
func (s *Snake) SetDirection(dx, dy int) {
	if !isUnit(dx, dy) {
		return
	}
	if (dx != 0 && s.direction.DX == 0) || (dy != 0 && s.direction.DY == 0) {
		s.direction = Direction{DX: dx, DY: dy}
	}
}

// Move advances the head one cell, wrapping inside b, and drops the tail.
// Length is unchanged.
func (s *Snake) Move(b Bounds) {
	head := b.Wrap(s.Head().Add(s.direction.DX, s.direction.DY))

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// Grow duplicates the tail segment. The copy stays stacked on the tail
// until the next Move, which leaves it behind: net growth is one segment.
func (s *Snake) Grow() {
	s.body = append(s.body, s.body[len(s.body)-1])
}

// Collided reports whether the head overlaps any other segment.
func (s *Snake) Collided() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
