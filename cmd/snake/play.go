package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/capture"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagRenderer string
	flagSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake in this terminal",
	Long: `Start a local game.

Controls:
  Arrows/WASD/HJKL - Steer
  Ctrl+S           - Save a screenshot (~/.snake/screenshots)
  Q                - Quit
  Ctrl+C           - Quit, also from the game over screen

After a collision the game pauses for a second, then any key starts a
new round.

Renderers:
  console - tcell full-screen renderer (default)
  tea     - Bubble Tea renderer, the same one SSH sessions use

Examples:
  snake play
  snake play --renderer tea --sound
  snake play --config ./my-snake.yaml --seed 7`,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRenderer, "renderer", "console", "Renderer: console or tea")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues (overrides config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagRenderer != "console" && flagRenderer != "tea" {
		return fmt.Errorf("unknown renderer %q (expected console or tea)", flagRenderer)
	}

	cfg, cfgPath, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The game owns the screen, so logs only go to a file.
	logger, closeLog, err := newLogger(cfg.Log, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	src, err := snake.NewSource(rc.Seed)
	if err != nil {
		return err
	}
	theme, err := cfg.GameTheme()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := game.Options{
		Logger:  logger,
		Theme:   theme,
		QuitKey: cfg.Keys.QuitKey(),
		Capture: capture.New(capture.Options{
			Dir:   cfg.ScreenshotDir(),
			PNG:   cfg.Screenshots.PNG,
			Scale: cfg.Screenshots.Scale,
		}),
	}

	sound := cfg.Sound.Enabled
	if cmd.Flags().Changed("sound") {
		sound = flagSound
	}
	if sound {
		player := audio.NewPlayer(cfg.Sound.Volume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts.Sounds = player
		}
	}

	if cfgPath != "" {
		themes, err := config.WatchTheme(ctx, cfgPath, logger)
		if err != nil {
			logger.Warn("config reload disabled", "error", err)
		} else {
			opts.Themes = themes
		}
	}

	logger.Info("starting game", "renderer", flagRenderer, "config", cfgPath, "seed", rc.Seed)

	if flagRenderer == "tea" {
		return playTea(ctx, rc, src, opts, tui.NewKeyMap(cfg.Keys))
	}
	return playConsole(ctx, cfg, src, opts)
}

func playConsole(ctx context.Context, cfg config.Config, src snake.RandomSource, opts game.Options) error {
	t, err := console.New(cfg.Keys.Bindings())
	if err != nil {
		return fmt.Errorf("cannot open terminal: %w", err)
	}
	defer t.Close()

	return game.New(t, src, opts).Run(ctx)
}

func playTea(ctx context.Context, rc core.RuntimeConfig, src snake.RandomSource, opts game.Options, keys tui.KeyMap) error {
	// Get terminal size early so the first frame fits
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	opts.QuitKey = keys.QuitKey()
	return tui.Run(ctx, rc, keys, func(ctx context.Context, t game.Terminal) error {
		return game.New(t, src, opts).Run(ctx)
	})
}
