package graphics

import "fmt"

// Bitmap is a 1- or 2-bit-per-pixel blit source. Pixel values index into
// the colors supplied at blit time: 0 selects the background, 1 the
// foreground and 2 the highlight color.
type Bitmap struct {
	W     int
	H     int
	Depth int
	pix   []uint8
}

// NewBitmap allocates a blank bitmap of the given dimensions.
// Depth must be 1 or 2 bits per pixel.
func NewBitmap(w, h, depth int) *Bitmap {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("graphics: invalid bitmap size %dx%d", w, h))
	}
	if depth != 1 && depth != 2 {
		panic(fmt.Sprintf("graphics: invalid bitmap depth %d", depth))
	}
	return &Bitmap{W: w, H: h, Depth: depth, pix: make([]uint8, w*h)}
}

// ParseBitmap builds a bitmap from an ASCII pattern, one string per row.
// ' ' and '.' map to 0, '#' and '1' to 1, '2' to 2. All rows must be the
// same length. The depth is 2 when any pixel uses value 2, otherwise 1.
func ParseBitmap(rows []string) *Bitmap {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("graphics: empty bitmap pattern")
	}
	w := len(rows[0])
	depth := 1
	bm := NewBitmap(w, len(rows), 2)
	for y, row := range rows {
		if len(row) != w {
			panic(fmt.Sprintf("graphics: ragged bitmap pattern at row %d", y))
		}
		for x := 0; x < w; x++ {
			var v uint8
			switch row[x] {
			case ' ', '.':
				v = 0
			case '#', '1':
				v = 1
			case '2':
				v = 2
				depth = 2
			default:
				panic(fmt.Sprintf("graphics: invalid bitmap pattern byte %q", row[x]))
			}
			bm.pix[y*w+x] = v
		}
	}
	bm.Depth = depth
	return bm
}

// At returns the pixel value at (x, y). Out-of-range coordinates return 0.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return 0
	}
	return b.pix[y*b.W+x]
}

// Set stores a pixel value at (x, y). Out-of-range coordinates are ignored.
func (b *Bitmap) Set(x, y int, v uint8) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return
	}
	b.pix[y*b.W+x] = v
}
