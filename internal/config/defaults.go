package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/snake.yaml and is used when that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Head: GlyphConfig{Glyph: "*"},
			Body: GlyphConfig{Glyph: "*"},
			Food: GlyphConfig{Glyph: "o"},
		},
		Keys: KeyConfig{
			Up:         []string{"up", "w", "k"},
			Down:       []string{"down", "s", "j"},
			Left:       []string{"left", "a", "h"},
			Right:      []string{"right", "d", "l"},
			Quit:       []string{"q"},
			Interrupt:  []string{"ctrl+c"},
			Screenshot: []string{"ctrl+s"},
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  0.3,
		},
		Screenshots: ScreenshotConfig{
			PNG:   true,
			Scale: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
