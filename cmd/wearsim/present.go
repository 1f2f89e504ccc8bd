package main

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fogleman/gg"
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/widgets"
)

// presentFPS caps how often the terminal is repainted; the framebuffer
// itself updates whenever widgets draw.
const presentFPS = 30

// present copies the framebuffer to the terminal whenever it is dirty,
// until ctx is cancelled. Each terminal cell shows two vertically
// stacked pixels with the upper-half-block glyph: foreground is the top
// pixel, background the bottom.
func present(ctx context.Context, tty tcell.Screen, fb *surface.ImageSurface, dirty *atomic.Bool) {
	ticker := time.NewTicker(time.Second / presentFPS)
	defer ticker.Stop()

	blit(tty, fb)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dirty.Swap(false) {
				blit(tty, fb)
			}
		}
	}
}

func blit(tty tcell.Screen, fb *surface.ImageSurface) {
	img := fb.Image()
	for cy := 0; cy < widgets.ScreenHeight/2; cy++ {
		for cx := 0; cx < widgets.ScreenWidth; cx++ {
			top := img.RGBAAt(cx, cy*2)
			bot := img.RGBAAt(cx, cy*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			tty.SetContent(cx, cy, '▀', nil, style)
		}
	}
	tty.Show()
}

// loadFaces installs the three watch font sizes from one TTF file.
func loadFaces(fb *surface.ImageSurface, path string) error {
	for _, f := range []surface.Font{surface.Sans24, surface.Sans28, surface.Sans36} {
		face, err := gg.LoadFontFace(path, float64(f.Height()))
		if err != nil {
			return err
		}
		fb.SetFace(f, face)
	}
	return nil
}
