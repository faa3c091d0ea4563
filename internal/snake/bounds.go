package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Minimum grid size that still has a non-empty playfield.
const (
	MinWidth  = 3
	MinHeight = 3
)

// Bounds is the live size of the character grid. Row 0 holds the score and
// row H-1 the help line, so the snake lives in rows 1..H-2.
type Bounds struct {
	W, H int
}

// Valid reports whether the grid is large enough to play on.
func (b Bounds) Valid() bool {
	return b.W >= MinWidth && b.H >= MinHeight
}

// Wrap maps a coordinate that left the playfield back in from the opposite
// side. Columns wrap into [1, W-1] and rows into [1, H-2]; column 0 and the
// first and last rows are never entered.
func (b Bounds) Wrap(p core.Point) core.Point {
	switch {
	case p.X <= 0:
		p.X = b.W - 1
	case p.X >= b.W:
		p.X = 1
	}
	switch {
	case p.Y <= 0:
		p.Y = b.H - 2
	case p.Y >= b.H-1:
		p.Y = 1
	}
	return p
}

// FoodArea is the rectangle food may be placed in: x in [1, W-2], y in [1, H-2].
func (b Bounds) FoodArea() core.Rect {
	return core.NewRect(1, 1, b.W-2, b.H-2)
}
