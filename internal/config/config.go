// Package config provides YAML-based configuration loading for the game:
// theme glyphs and colors, key bindings, sound, screenshots and logging.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Config is the full user configuration.
type Config struct {
	Theme       ThemeConfig      `yaml:"theme"`
	Keys        KeyConfig        `yaml:"keys"`
	Sound       SoundConfig      `yaml:"sound"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
	Log         LogConfig        `yaml:"log"`
}

// GlyphConfig is one drawable element: a single character and its color.
type GlyphConfig struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"` // Empty keeps the terminal default
}

// ThemeConfig defines how the snake and the food look.
type ThemeConfig struct {
	Head GlyphConfig `yaml:"head"`
	Body GlyphConfig `yaml:"body"`
	Food GlyphConfig `yaml:"food"`
}

// KeyConfig lists key names per action.
type KeyConfig struct {
	Up         []string `yaml:"up"`
	Down       []string `yaml:"down"`
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Quit       []string `yaml:"quit"`
	Interrupt  []string `yaml:"interrupt"`
	Screenshot []string `yaml:"screenshot"`
}

// SoundConfig toggles the eat and game over cues.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// ScreenshotConfig controls where Ctrl+S captures go.
type ScreenshotConfig struct {
	Dir   string `yaml:"dir"`   // Empty selects ~/.snake/screenshots
	PNG   bool   `yaml:"png"`   // Also write a rasterized image
	Scale int    `yaml:"scale"` // PNG upscaling factor
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// GameTheme converts the theme section into a game.Theme.
func (c Config) GameTheme() (game.Theme, error) {
	var t game.Theme
	var err error

	if t.Head, t.HeadColor, err = c.Theme.Head.parse("head"); err != nil {
		return game.Theme{}, err
	}
	if t.Body, t.BodyColor, err = c.Theme.Body.parse("body"); err != nil {
		return game.Theme{}, err
	}
	if t.Food, t.FoodColor, err = c.Theme.Food.parse("food"); err != nil {
		return game.Theme{}, err
	}
	return t, nil
}

// parse validates a glyph entry. An empty glyph yields 0, which the game
// replaces with its default.
func (g GlyphConfig) parse(name string) (rune, core.Color, error) {
	var r rune
	if g.Glyph != "" {
		if utf8.RuneCountInString(g.Glyph) != 1 {
			return 0, 0, fmt.Errorf("theme.%s.glyph: %q must be a single character", name, g.Glyph)
		}
		r, _ = utf8.DecodeRuneInString(g.Glyph)
	}
	color, ok := core.ParseColor(g.Color)
	if !ok {
		return 0, 0, fmt.Errorf("theme.%s.color: unknown color %q", name, g.Color)
	}
	return r, color, nil
}

// Bindings maps every configured key name to its action.
// When a key is listed twice, the later action in Up, Down, Left, Right,
// Quit, Interrupt, Screenshot order wins.
func (k KeyConfig) Bindings() map[string]core.Action {
	m := make(map[string]core.Action)
	add := func(keys []string, a core.Action) {
		for _, key := range keys {
			m[NormalizeKey(key)] = a
		}
	}
	add(k.Up, core.ActionUp)
	add(k.Down, core.ActionDown)
	add(k.Left, core.ActionLeft)
	add(k.Right, core.ActionRight)
	add(k.Quit, core.ActionQuit)
	add(k.Interrupt, core.ActionInterrupt)
	add(k.Screenshot, core.ActionScreenshot)
	return m
}

// Keys returns the key names bound to an action.
func (k KeyConfig) Keys(a core.Action) []string {
	switch a {
	case core.ActionUp:
		return k.Up
	case core.ActionDown:
		return k.Down
	case core.ActionLeft:
		return k.Left
	case core.ActionRight:
		return k.Right
	case core.ActionQuit:
		return k.Quit
	case core.ActionInterrupt:
		return k.Interrupt
	case core.ActionScreenshot:
		return k.Screenshot
	default:
		return nil
	}
}

// QuitKey returns the key shown in the help line.
func (k KeyConfig) QuitKey() string {
	if len(k.Quit) == 0 {
		return "q"
	}
	return k.Quit[0]
}

// NormalizeKey lowercases named keys so "Ctrl+C" and "ctrl+c" match.
// Single characters keep their case; a literal space becomes "space".
func NormalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	key = strings.TrimSpace(key)
	if utf8.RuneCountInString(key) == 1 {
		return key
	}
	return strings.ToLower(key)
}

// Validate checks the parts of the config that can be wrong.
func (c Config) Validate() error {
	if _, err := c.GameTheme(); err != nil {
		return err
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound.volume: %v is outside [0, 1]", c.Sound.Volume)
	}
	if c.Screenshots.Scale < 1 {
		return fmt.Errorf("screenshots.scale: %d must be at least 1", c.Screenshots.Scale)
	}
	return nil
}

// YAML returns the config encoded as YAML.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
