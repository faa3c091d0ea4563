package console

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdown",
}

// KeyName names a key event the way key bindings are written in the
// config: "up", "q", "space", "ctrl+c", "alt+x".
func KeyName(ev *tcell.EventKey) string {
	if name, ok := keyNames[ev.Key()]; ok {
		return name
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+k-tcell.KeyCtrlA))
	}

	if ev.Key() != tcell.KeyRune {
		return strings.ToLower(ev.Name())
	}

	r := ev.Rune()
	name := string(r)
	if r == ' ' {
		name = "space"
	}
	switch {
	case ev.Modifiers()&tcell.ModCtrl != 0:
		return "ctrl+" + string(unicode.ToLower(r))
	case ev.Modifiers()&tcell.ModAlt != 0:
		return "alt+" + name
	}
	return name
}
