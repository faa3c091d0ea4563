package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// offBoard marks food that could not be placed because the grid is too small.
var offBoard = core.Point{X: -1, Y: -1}

// Food is the single piece of food on the board.
type Food struct {
	src      RandomSource
	position core.Point
}

// NewFood creates food and places it somewhere inside b.
func NewFood(src RandomSource, b Bounds) *Food {
	f := &Food{src: src}
	f.Respawn(b)
	return f
}

// Respawn moves the food to a uniformly random cell of b's food area.
// The snake's body is not avoided. On a grid with no food area the food is
// taken off the board until the next Respawn.
func (f *Food) Respawn(b Bounds) {
	area := b.FoodArea()
	if area.Empty() {
		f.position = offBoard
		return
	}
	f.position = PointIn(f.src, area)
}

// Placed reports whether the food is on the board.
func (f *Food) Placed() bool {
	return f.position != offBoard
}

// Position returns where the food is.
func (f *Food) Position() core.Point {
	return f.position
}
