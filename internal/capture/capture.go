// Package capture saves rendered frames to disk as text and PNG.
package capture

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cell size of gg's built-in 7x13 font.
const (
	CellWidth  = 7
	CellHeight = 13
	baseline   = 10
)

// Options configures a Saver.
type Options struct {
	Dir    string
	Prefix string // File name prefix, "snake" if empty
	PNG    bool
	Scale  int // PNG upscaling factor, at least 1

	// Now stamps file names; time.Now if nil.
	Now func() time.Time
}

// Saver writes screenshots. It implements game.Capturer.
type Saver struct {
	opts Options
	last []string
}

// New creates a saver.
func New(opts Options) *Saver {
	if opts.Prefix == "" {
		opts.Prefix = "snake"
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Saver{opts: opts}
}

// Capture writes s as <prefix>_<timestamp>.txt and, if enabled, .png.
func (sv *Saver) Capture(s *core.Screen) error {
	if err := os.MkdirAll(sv.opts.Dir, 0o755); err != nil {
		return fmt.Errorf("capture: create %s: %w", sv.opts.Dir, err)
	}

	base := sv.uniqueBase()
	txt := base + ".txt"
	if err := os.WriteFile(txt, []byte(s.String()+"\n"), 0o600); err != nil {
		return fmt.Errorf("capture: write %s: %w", txt, err)
	}
	sv.last = []string{txt}

	if !sv.opts.PNG {
		return nil
	}
	img := Rasterize(s)
	if sv.opts.Scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*sv.opts.Scale, b.Dy()*sv.opts.Scale, imaging.NearestNeighbor)
	}
	png := base + ".png"
	if err := imaging.Save(img, png); err != nil {
		return fmt.Errorf("capture: write %s: %w", png, err)
	}
	sv.last = append(sv.last, png)
	return nil
}

// uniqueBase returns a path without extension that no earlier capture used.
func (sv *Saver) uniqueBase() string {
	stamp := sv.opts.Now().Format("20060102_150405")
	base := filepath.Join(sv.opts.Dir, fmt.Sprintf("%s_%s", sv.opts.Prefix, stamp))
	candidate := base
	for i := 2; ; i++ {
		if _, err := os.Stat(candidate + ".txt"); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", base, i)
	}
}

// LastFiles returns the files written by the latest successful Capture.
func (sv *Saver) LastFiles() []string {
	return sv.last
}

// Rasterize draws the screen as light glyphs on black, one 7x13 cell per
// screen cell.
func Rasterize(s *core.Screen) image.Image {
	w, h := s.Size()
	dc := gg.NewContext(max(w, 1)*CellWidth, max(h, 1)*CellHeight)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			dc.SetColor(RGB(cell.Color))
			dc.DrawString(string(cell.Rune), float64(x*CellWidth), float64(y*CellHeight+baseline))
		}
	}
	return dc.Image()
}

// RGB returns the xterm default color for c.
func RGB(c core.Color) color.RGBA {
	if rgb, ok := rgbPalette[c]; ok {
		return rgb
	}
	return color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
}

var rgbPalette = map[core.Color]color.RGBA{
	core.ColorRed:           {R: 0xcd, A: 0xff},
	core.ColorGreen:         {G: 0xcd, A: 0xff},
	core.ColorYellow:        {R: 0xcd, G: 0xcd, A: 0xff},
	core.ColorBlue:          {B: 0xee, A: 0xff},
	core.ColorMagenta:       {R: 0xcd, B: 0xcd, A: 0xff},
	core.ColorCyan:          {G: 0xcd, B: 0xcd, A: 0xff},
	core.ColorWhite:         {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, A: 0xff},
	core.ColorBrightGreen:   {G: 0xff, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xff, A: 0xff},
	core.ColorBrightBlue:    {R: 0x5c, G: 0x5c, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x87, A: 0xff},
	core.ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
}
