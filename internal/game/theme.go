package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Theme selects the glyphs and colors a frame is drawn with.
type Theme struct {
	Head      rune
	Body      rune
	Food      rune
	HeadColor core.Color
	BodyColor core.Color
	FoodColor core.Color
}

// DefaultTheme draws every segment as '*' and food as 'o'.
func DefaultTheme() Theme {
	return Theme{
		Head:      '*',
		Body:      '*',
		Food:      'o',
		HeadColor: core.ColorDefault,
		BodyColor: core.ColorDefault,
		FoodColor: core.ColorDefault,
	}
}

// withDefaults fills zero glyphs from DefaultTheme.
func (t Theme) withDefaults() Theme {
	d := DefaultTheme()
	if t.Head == 0 {
		t.Head = d.Head
	}
	if t.Body == 0 {
		t.Body = d.Body
	}
	if t.Food == 0 {
		t.Food = d.Food
	}
	return t
}
