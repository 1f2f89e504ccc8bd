package widgets

import (
	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

// Card is a toggle tile: an icon, a wrapped title and an On/Off state
// label on a light background.
//
// Unlike the other interactive widgets Touch performs no hit test. A
// card is meant to fill whatever region its host routes to it, so the
// host's own routing is the hit test and every delivered touch toggles.
type Card struct {
	draw    surface.Surface
	th      theme.Theme
	rect    graphics.Rect
	title   string
	onIcon  *graphics.Bitmap
	offIcon *graphics.Bitmap

	// State is the current on/off value.
	State bool
}

// NewCard constructs a card. offIcon is shown while the state is off.
func NewCard(d surface.Surface, th theme.Theme, rect graphics.Rect, title string, onIcon, offIcon *graphics.Bitmap) *Card {
	return &Card{draw: d, th: th, rect: rect, title: title, onIcon: onIcon, offIcon: offIcon}
}

// Draw paints the full card: background, wrapped title, icon and state
// label.
func (c *Card) Draw() {
	r := c.rect
	c.draw.Fill(graphics.ColorWhite, r.X, r.Y, r.W, r.H)

	c.draw.SetColor(graphics.ColorBlack, graphics.ColorWhite)
	c.draw.SetFont(surface.Sans24)

	textX := r.X + c.onIcon.W + 16
	textW := r.W - c.onIcon.W - 24
	offsets := c.draw.Wrap(c.title, textW)
	y := r.Y + 8
	for i := 1; i < len(offsets); i++ {
		c.draw.String(c.title[offsets[i-1]:offsets[i]], textX, y, 0)
		y += surface.Sans24.Height()
	}

	c.Update()
}

// Update repaints the icon and the state label only; the title and
// background are left untouched.
func (c *Card) Update() {
	r := c.rect
	icon := c.offIcon
	label := "Off"
	iconColor := c.th.Color(theme.RoleMid)
	if c.State {
		icon = c.onIcon
		label = "On"
		iconColor = c.th.Color(theme.RoleUI)
	}
	c.draw.Blit(icon, r.X+8, r.Y+8, iconColor, graphics.ColorWhite, graphics.ColorWhite)
	c.draw.SetColor(graphics.ColorBlack, graphics.ColorWhite)
	c.draw.SetFont(surface.Sans24)
	c.draw.String(label, r.X+c.onIcon.W+16, r.Y+r.H-32, 60)
}

// Touch toggles the state and repaints the icon and label. It always
// consumes; the host decides which touches reach the card.
func (c *Card) Touch(ev input.Event) bool {
	c.State = !c.State
	c.Update()
	return true
}
