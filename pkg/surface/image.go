package surface

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/wear/pkg/graphics"
)

// ImageSurface is a software framebuffer over an *image.RGBA, rendered
// with fogleman/gg. It backs the simulator and any host that wants an
// off-device rendition of the watch screen.
//
// The damage callback fires after every unmuted pixel-touching call; a
// host uses it to push the frame to whatever is actually displaying it.
// While muted, drawing still lands in the image but no damage is
// reported, which is how composite widgets suppress repaint flicker.
type ImageSurface struct {
	img      *image.RGBA
	dc       *gg.Context
	faces    map[Font]font.Face
	font     Font
	fg       graphics.Color
	bg       graphics.Color
	muted    bool
	onDamage func()
}

var _ Display = (*ImageSurface)(nil)

// NewImageSurface creates a w x h software framebuffer. onDamage may be
// nil. Fonts default to a built-in face; use SetFace to install real ones.
func NewImageSurface(w, h int, onDamage func()) *ImageSurface {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	s := &ImageSurface{
		img:      img,
		dc:       gg.NewContextForRGBA(img),
		faces:    map[Font]font.Face{},
		fg:       graphics.ColorWhite,
		bg:       graphics.ColorBlack,
		onDamage: onDamage,
	}
	s.Clear()
	return s
}

// SetFace installs a real font face for one of the font identifiers.
func (s *ImageSurface) SetFace(f Font, face font.Face) {
	s.faces[f] = face
}

// Image exposes the backing framebuffer for presentation.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) face() font.Face {
	if f, ok := s.faces[s.font]; ok {
		return f
	}
	return basicfont.Face7x13
}

func (s *ImageSurface) damage() {
	if !s.muted && s.onDamage != nil {
		s.onDamage()
	}
}

func rgba(c graphics.Color) color.RGBA {
	r, g, b := c.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func (s *ImageSurface) Fill(c graphics.Color, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.dc.SetColor(rgba(c))
	s.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	s.dc.Fill()
	s.damage()
}

func (s *ImageSurface) Clear() {
	b := s.img.Bounds()
	s.dc.SetColor(rgba(graphics.ColorBlack))
	s.dc.DrawRectangle(0, 0, float64(b.Dx()), float64(b.Dy()))
	s.dc.Fill()
	s.damage()
}

func (s *ImageSurface) Blit(bm *graphics.Bitmap, x, y int, fg, bg, hi graphics.Color) {
	colors := [3]color.RGBA{rgba(bg), rgba(fg), rgba(hi)}
	for by := 0; by < bm.H; by++ {
		for bx := 0; bx < bm.W; bx++ {
			v := bm.At(bx, by)
			if int(v) < len(colors) {
				s.img.SetRGBA(x+bx, y+by, colors[v])
			}
		}
	}
	s.damage()
}

func (s *ImageSurface) SetColor(fg, bg graphics.Color) {
	s.fg, s.bg = fg, bg
}

func (s *ImageSurface) SetFont(f Font) {
	s.font = f
}

func (s *ImageSurface) String(text string, x, y, width int) {
	face := s.face()
	tw := font.MeasureString(face, text).Ceil()
	tx := x
	if width > 0 {
		// Clear the whole band so shorter strings erase longer prior ones,
		// then center within it.
		s.dc.SetColor(rgba(s.bg))
		s.dc.DrawRectangle(float64(x), float64(y), float64(width), float64(s.font.Height()))
		s.dc.Fill()
		tx = x + (width-tw)/2
	}
	ascent := face.Metrics().Ascent.Ceil()
	s.dc.SetFontFace(face)
	s.dc.SetColor(rgba(s.fg))
	s.dc.DrawString(text, float64(tx), float64(y+ascent))
	s.damage()
}

func (s *ImageSurface) Wrap(text string, width int) []int {
	face := s.face()
	return wrapOffsets(text, width, func(chunk string) int {
		return font.MeasureString(face, chunk).Ceil()
	})
}

func (s *ImageSurface) Mute(muted bool) {
	was := s.muted
	s.muted = muted
	// Unmuting after a muted composite repaint presents the batch.
	if was && !muted && s.onDamage != nil {
		s.onDamage()
	}
}
