package widgets

import (
	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

// Button is a labelled push button. It keeps no state beyond its
// geometry; the caller reacts to the consumed touch.
type Button struct {
	draw  surface.Surface
	th    theme.Theme
	rect  graphics.Rect
	label string
}

// NewButton constructs a button with the given placement and label.
func NewButton(d surface.Surface, th theme.Theme, rect graphics.Rect, label string) *Button {
	return &Button{draw: d, th: th, rect: rect, label: label}
}

// Draw paints the background, the 2 px frame and the centered label.
func (b *Button) Draw() {
	r := b.rect
	bg := graphics.Darken(b.th.Color(theme.RoleUI))
	frame := b.th.Color(theme.RoleMid)
	txt := b.th.Color(theme.RoleBright)

	b.draw.Fill(bg, r.X, r.Y, r.W, r.H)
	b.draw.SetColor(txt, bg)
	b.draw.SetFont(surface.Sans24)
	b.draw.String(b.label, r.X, r.Y+r.H/2-12, r.W)

	b.draw.Fill(frame, r.X, r.Y, r.W, 2)
	b.draw.Fill(frame, r.X, r.Y+r.H-2, r.W, 2)
	b.draw.Fill(frame, r.X, r.Y, 2, r.H)
	b.draw.Fill(frame, r.X+r.W-2, r.Y, 2, r.H)
}

// Touch reports whether the event lands in the button's hit box. The box
// is the drawn rectangle expanded by a fixed margin so slightly sloppy
// taps still land.
func (b *Button) Touch(ev input.Event) bool {
	return b.rect.Expand(touchMargin).Contains(ev.X, ev.Y)
}
