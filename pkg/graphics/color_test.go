package graphics

import "testing"

func TestRGBPacking(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 255, 255, 255, 0xFFFF},
		{"red", 255, 0, 0, 0xF800},
		{"green", 0, 255, 0, 0x07E0},
		{"blue", 0, 0, 255, 0x001F},
		{"grey", 0x7B, 0x7D, 0x7B, 0x7BEF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGB(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGB(%d, %d, %d) = %#04x, want %#04x", tt.r, tt.g, tt.b, uint16(got), uint16(tt.want))
			}
		})
	}
}

func TestRGB565Truncates(t *testing.T) {
	if got := RGB565(0xff, 0xff, 0xff); got != 0xFFFF {
		t.Errorf("RGB565(0xff, 0xff, 0xff) = %#04x, want 0xffff", uint16(got))
	}
	if got := RGB565(0x20, 0x40, 0x20); got != 0 {
		t.Errorf("overflow bits should be masked, got %#04x", uint16(got))
	}
}

func TestChannelsRoundTrip(t *testing.T) {
	for _, c := range []Color{0x0000, 0xFFFF, 0x7BEF, 0xF800, 0x07E0, 0x001F, 0xE73C} {
		r, g, b := c.Channels()
		if got := RGB565(r, g, b); got != c {
			t.Errorf("RGB565(Channels(%#04x)) = %#04x", uint16(c), uint16(got))
		}
	}
}

func TestRGBA8FullScale(t *testing.T) {
	r, g, b := ColorWhite.RGBA8()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("white RGBA8 = (%d, %d, %d), want (255, 255, 255)", r, g, b)
	}
	r, g, b = ColorBlack.RGBA8()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("black RGBA8 = (%d, %d, %d), want (0, 0, 0)", r, g, b)
	}
}

func TestLighten(t *testing.T) {
	got := Lighten(RGB565(10, 20, 10), 3)
	if got != RGB565(13, 26, 13) {
		t.Errorf("Lighten = %#04x, want %#04x", uint16(got), uint16(RGB565(13, 26, 13)))
	}
	// Saturates at full scale instead of wrapping.
	if got := Lighten(ColorWhite, 12); got != ColorWhite {
		t.Errorf("Lighten(white) = %#04x, want white", uint16(got))
	}
}

func TestDarken(t *testing.T) {
	got := Darken(RGB565(10, 20, 10))
	if got != RGB565(9, 18, 9) {
		t.Errorf("Darken = %#04x, want %#04x", uint16(got), uint16(RGB565(9, 18, 9)))
	}
	if got := Darken(ColorBlack); got != ColorBlack {
		t.Errorf("Darken(black) = %#04x, want black", uint16(got))
	}
}
