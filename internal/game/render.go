package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// draw renders snake, food, score and help line onto c.
func (l *Loop) draw(c Canvas, b snake.Bounds) {
	for i, seg := range l.snake.Body() {
		if i == 0 {
			c.SetCell(seg.X, seg.Y, l.theme.Head, l.theme.HeadColor)
		} else {
			c.SetCell(seg.X, seg.Y, l.theme.Body, l.theme.BodyColor)
		}
	}

	// Food goes on top so it stays visible when it lands on the body.
	if l.food.Placed() {
		p := l.food.Position()
		c.SetCell(p.X, p.Y, l.theme.Food, l.theme.FoodColor)
	}

	c.DrawText(0, 0, fmt.Sprintf("Score: %d", l.score))
	c.DrawText(0, b.H-1, l.help)
}

// drawTooSmall asks the player to enlarge the window.
func drawTooSmall(c Canvas, b snake.Bounds) {
	c.DrawText(0, 0, tooSmallText)
	if b.H > 1 {
		c.DrawText(0, 1, fmt.Sprintf("%dx%d", b.W, b.H))
	}
}
