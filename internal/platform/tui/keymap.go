package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Quit       key.Binding
	Interrupt  key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	bind := func(names []string, help string) key.Binding {
		keys := make([]string, 0, len(names))
		for _, n := range names {
			n = config.NormalizeKey(n)
			if n == "space" {
				n = " " // Bubble Tea names the space bar " "
			}
			keys = append(keys, n)
		}
		helpKey := ""
		if len(names) > 0 {
			helpKey = names[0]
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, help))
	}

	return KeyMap{
		Up:         bind(cfg.Up, "up"),
		Down:       bind(cfg.Down, "down"),
		Left:       bind(cfg.Left, "left"),
		Right:      bind(cfg.Right, "right"),
		Quit:       bind(cfg.Quit, "exit"),
		Interrupt:  bind(cfg.Interrupt, "interrupt"),
		Screenshot: bind(cfg.Screenshot, "screenshot"),
	}
}

// Action maps a key to its action. Unbound keys become core.ActionAny so
// they can still dismiss the game over notice.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Interrupt):
		return core.ActionInterrupt
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionAny
}

// QuitKey returns the key name shown in the game's help line.
func (k KeyMap) QuitKey() string {
	if h := k.Quit.Help().Key; h != "" {
		return h
	}
	return "q"
}
