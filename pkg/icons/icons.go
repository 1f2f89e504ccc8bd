// Package icons provides the built-in bitmaps the widget library blits:
// status glyphs, scroll arrows, the checkbox box and the slider knob.
//
// The bitmaps are constructed procedurally at init time rather than stored
// as byte literals; they are simple enough shapes that the construction
// code doubles as their documentation. Pixel value 1 is the foreground,
// value 2 the highlight (2-bit bitmaps only) and value 0 the background.
package icons

import "github.com/go-drift/wear/pkg/graphics"

var (
	// Battery is the battery outline, 24x32. The interior is left clear
	// so the meter can paint the charge bar over it.
	Battery = buildBattery()

	// Bluetooth is the connectivity glyph, 22x32.
	Bluetooth = buildBluetooth()

	// Alert is the pending-notification bell, 30x32.
	Alert = buildAlert()

	// UpArrow and DownArrow are the scroll/spinner affordances, 16x9.
	UpArrow   = buildArrow(true)
	DownArrow = buildArrow(false)

	// Checkbox is a 32x32 2-bit box: value 1 is the border, value 2 the
	// check mark, value 0 the interior fill.
	Checkbox = buildCheckbox()

	// Knob is the 40x40 circular slider knob.
	Knob = buildKnob()

	// LightOn and LightOff are the demo card icons, 50x50.
	LightOn  = buildBulb(true)
	LightOff = buildBulb(false)
)

func buildBattery() *graphics.Bitmap {
	const w, h = 24, 32
	b := graphics.NewBitmap(w, h, 1)
	// Terminal nub centered on the top two rows.
	for y := 0; y < 2; y++ {
		for x := w/2 - 4; x < w/2+4; x++ {
			b.Set(x, y, 1)
		}
	}
	// Body outline, 2 px thick.
	for y := 2; y < h; y++ {
		for x := 0; x < w; x++ {
			edge := x < 2 || x >= w-2 || y < 4 || y >= h-2
			if edge {
				b.Set(x, y, 1)
			}
		}
	}
	return b
}

func buildBluetooth() *graphics.Bitmap {
	const w, h = 22, 32
	b := graphics.NewBitmap(w, h, 1)
	mid := w / 2
	// Vertical spine.
	for y := 2; y < h-2; y++ {
		b.Set(mid, y, 1)
		b.Set(mid+1, y, 1)
	}
	// The two chevrons are drawn as diagonals from the spine ends to the
	// opposite side midpoints.
	for i := 0; i < h/2-2; i++ {
		// Upper triangle edge and crossing diagonals.
		b.Set(mid+2+i*(w-mid-3)/(h/2-2), 2+i, 1)
		b.Set(mid+2+i*(w-mid-3)/(h/2-2), h-3-i, 1)
		b.Set(mid-2-i*(mid-3)/(h/2-2), h/2-1-i, 1)
		b.Set(mid-2-i*(mid-3)/(h/2-2), h/2+i, 1)
	}
	return b
}

func buildAlert() *graphics.Bitmap {
	const w, h = 30, 32
	b := graphics.NewBitmap(w, h, 1)
	// Bell dome: widening rows from the top center.
	for y := 3; y < h-8; y++ {
		half := 3 + (y-3)*(w/2-3)/(h-11)
		for x := w/2 - half; x < w/2+half; x++ {
			b.Set(x, y, 1)
		}
	}
	// Rim.
	for x := 1; x < w-1; x++ {
		b.Set(x, h-8, 1)
		b.Set(x, h-7, 1)
	}
	// Clapper.
	for y := h - 5; y < h-2; y++ {
		for x := w/2 - 2; x < w/2+2; x++ {
			b.Set(x, y, 1)
		}
	}
	return b
}

func buildArrow(up bool) *graphics.Bitmap {
	const w, h = 16, 9
	b := graphics.NewBitmap(w, h, 1)
	for y := 0; y < h; y++ {
		row := y
		if up {
			row = h - 1 - y
		}
		half := 1 + y*(w/2-1)/(h-1)
		for x := w/2 - half; x < w/2+half; x++ {
			b.Set(x, row, 1)
		}
	}
	return b
}

func buildCheckbox() *graphics.Bitmap {
	const s = 32
	b := graphics.NewBitmap(s, s, 2)
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			if x < 3 || x >= s-3 || y < 3 || y >= s-3 {
				b.Set(x, y, 1)
			}
		}
	}
	// Check mark: short stroke down-right, long stroke up-right.
	for i := 0; i < 6; i++ {
		stampDot(b, 8+i, 16+i)
	}
	for i := 0; i < 12; i++ {
		stampDot(b, 13+i, 21-i)
	}
	return b
}

// stampDot paints a 3x3 highlight block so the mark has visible weight.
func stampDot(b *graphics.Bitmap, cx, cy int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if b.At(cx+dx, cy+dy) == 0 {
				b.Set(cx+dx, cy+dy, 2)
			}
		}
	}
}

func buildKnob() *graphics.Bitmap {
	const d = 40
	b := graphics.NewBitmap(d, d, 1)
	r := d / 2
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := x - r
			dy := y - r
			if dx*dx+dy*dy <= (r-1)*(r-1) {
				b.Set(x, y, 1)
			}
		}
	}
	return b
}

func buildBulb(on bool) *graphics.Bitmap {
	const s = 50
	b := graphics.NewBitmap(s, s, 1)
	r := s/2 - 8
	cx, cy := s/2, s/2-4
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			dx := x - cx
			dy := y - cy
			d2 := dx*dx + dy*dy
			if on {
				if d2 <= r*r {
					b.Set(x, y, 1)
				}
			} else if d2 <= r*r && d2 >= (r-2)*(r-2) {
				b.Set(x, y, 1)
			}
		}
	}
	// Base.
	for y := s - 10; y < s-4; y++ {
		for x := cx - 5; x < cx+5; x++ {
			b.Set(x, y, 1)
		}
	}
	return b
}
