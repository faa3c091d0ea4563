package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core colors to ANSI palette indices.
var palette = map[core.Color]int{
	core.ColorRed:           1,
	core.ColorGreen:         2,
	core.ColorYellow:        3,
	core.ColorBlue:          4,
	core.ColorMagenta:       5,
	core.ColorCyan:          6,
	core.ColorWhite:         7,
	core.ColorBrightRed:     9,
	core.ColorBrightGreen:   10,
	core.ColorBrightYellow:  11,
	core.ColorBrightBlue:    12,
	core.ColorBrightMagenta: 13,
	core.ColorBrightCyan:    14,
	core.ColorBrightWhite:   15,
	core.ColorOrange:        208,
	core.ColorGray:          245,
}

// Style returns the tcell style for a cell color.
func Style(c core.Color) tcell.Style {
	n, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
}
