package graphics

// Color is a pixel color packed as RGB565 (5 bits red, 6 bits green,
// 5 bits blue), the native format of the display framebuffer.
type Color uint16

// RGB constructs a Color from 8-bit red, green, blue components.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB565 constructs a Color from raw 5/6/5-bit channel values. Values
// beyond the channel width are truncated.
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r&0x1f)<<11 | uint16(g&0x3f)<<5 | uint16(b&0x1f))
}

// Channels returns the raw 5/6/5-bit channel values.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 11), uint8(c>>5) & 0x3f, uint8(c) & 0x1f
}

// RGBA8 expands the color to 8-bit components, replicating the high bits
// into the low bits so full-scale channels map to 255.
func (c Color) RGBA8() (r, g, b uint8) {
	r5, g6, b5 := c.Channels()
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// Lighten returns a lighter shade of the color. The amount is added to the
// red and blue channels and twice the amount to the wider green channel,
// saturating at full scale.
func Lighten(c Color, amount uint8) Color {
	r, g, b := c.Channels()
	r = addSat(r, amount, 0x1f)
	g = addSat(g, 2*amount, 0x3f)
	b = addSat(b, amount, 0x1f)
	return RGB565(r, g, b)
}

// Darken returns a slightly darker shade of the color, one step per
// 5-bit channel (two for green), flooring at zero.
func Darken(c Color) Color {
	r, g, b := c.Channels()
	r = subFloor(r, 1)
	g = subFloor(g, 2)
	b = subFloor(b, 1)
	return RGB565(r, g, b)
}

func addSat(v, amount, max uint8) uint8 {
	if uint16(v)+uint16(amount) > uint16(max) {
		return max
	}
	return v + amount
}

func subFloor(v, amount uint8) uint8 {
	if v < amount {
		return 0
	}
	return v - amount
}

// Common colors.
const (
	ColorBlack = Color(0x0000)
	ColorWhite = Color(0xFFFF)
	ColorRed   = Color(0xF800)
	ColorGreen = Color(0x07E0)
	ColorBlue  = Color(0x001F)
)
