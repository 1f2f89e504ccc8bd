// Package surface defines the drawing capability consumed by the widget
// library, plus two implementations: an op-recording surface for tests and
// a software framebuffer for the simulator.
//
// All calls are synchronous and side-effect the framebuffer immediately.
// Individual calls are cheap; whole-screen repaints are not, which is why
// the widgets above this package go to some lengths to avoid them.
package surface

import "github.com/go-drift/wear/pkg/graphics"

// Font identifies one of the built-in text faces. The surface owns the
// mapping from identifier to a concrete face.
type Font int

const (
	Sans24 Font = iota
	Sans28
	Sans36
)

// Height returns the nominal line height of the font in pixels.
func (f Font) Height() int {
	switch f {
	case Sans28:
		return 28
	case Sans36:
		return 36
	default:
		return 24
	}
}

// Surface is the drawing capability every widget draws through.
type Surface interface {
	// Fill paints a solid rectangle.
	Fill(c graphics.Color, x, y, w, h int)

	// Clear fills the entire screen with black.
	Clear()

	// Blit copies a bitmap. Pixel value 0 is painted with bg, 1 with fg
	// and 2 with hi.
	Blit(bm *graphics.Bitmap, x, y int, fg, bg, hi graphics.Color)

	// SetColor sets the foreground and background used by String.
	SetColor(fg, bg graphics.Color)

	// SetFont selects the face used by String and Wrap.
	SetFont(f Font)

	// String renders text at (x, y). When width is positive the text is
	// centered within [x, x+width) and the remainder of the band is
	// cleared to the background color.
	String(s string, x, y, width int)

	// Wrap returns byte offsets splitting s into chunks no wider than
	// width in the current font. The first offset is always 0 and the
	// last is always len(s).
	Wrap(s string, width int) []int
}

// Display extends Surface with control over pushes to the hardware.
// Muting suppresses intermediate flicker during a composite repaint; the
// framebuffer is still written, it just isn't shown until unmuted.
type Display interface {
	Surface
	Mute(muted bool)
}

// wrapOffsets implements Wrap on top of a width-measuring function.
// Breaks prefer the last space that still fits; a single over-wide word is
// broken at character granularity.
func wrapOffsets(s string, width int, advance func(string) int) []int {
	offsets := []int{0}
	start := 0
	lastSpace := -1
	for i := start; i <= len(s); i++ {
		if i < len(s) && s[i] == ' ' {
			lastSpace = i
		}
		if i == len(s) {
			break
		}
		if advance(s[start:i+1]) <= width {
			continue
		}
		brk := i
		if lastSpace > start {
			brk = lastSpace + 1
		}
		if brk == start {
			brk = start + 1
		}
		offsets = append(offsets, brk)
		start = brk
		lastSpace = -1
		i = brk - 1
	}
	if offsets[len(offsets)-1] != len(s) {
		offsets = append(offsets, len(s))
	}
	return offsets
}
