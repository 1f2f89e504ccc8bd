package widgets

import (
	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/icons"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

// checkboxHitBand is the height of the touch-sensitive strip.
const checkboxHitBand = 40

// Checkbox is a labelled on/off box.
//
// The label is painted once by Draw; Update repaints only the box glyph,
// so toggling never disturbs the label pixels around it.
type Checkbox struct {
	draw  surface.Surface
	th    theme.Theme
	x     int
	y     int
	label string

	// State is the current checked value.
	State bool
}

// NewCheckbox constructs a checkbox. label may be empty, in which case
// the glyph is drawn at the widget's own x instead of the right margin.
func NewCheckbox(d surface.Surface, th theme.Theme, x, y int, label string) *Checkbox {
	return &Checkbox{draw: d, th: th, x: x, y: y, label: label}
}

// Label returns the label text.
func (c *Checkbox) Label() string {
	return c.label
}

// Draw paints the label and delegates the glyph to Update.
func (c *Checkbox) Draw() {
	if c.label != "" {
		c.draw.SetColor(c.th.Color(theme.RoleBright), graphics.ColorBlack)
		c.draw.SetFont(surface.Sans24)
		c.draw.String(c.label, c.x, c.y+6, 0)
	}
	c.Update()
}

// Update repaints the box glyph for the current state.
func (c *Checkbox) Update() {
	var fill, mark, fg graphics.Color
	if c.State {
		fill = c.th.Color(theme.RoleUI)
		mark = graphics.Lighten(fill, c.th.Contrast())
		fg = mark
	} else {
		fg = c.th.Color(theme.RoleMid)
	}
	// A labelled checkbox sits on the right margin; an unlabelled one at
	// its natural position.
	x := c.x
	if c.label != "" {
		x = ScreenWidth - 1 - 32 - 4
	}
	c.draw.Blit(icons.Checkbox, x, c.y, fg, fill, mark)
}

// Touch toggles the state when the tap falls inside the widget's
// horizontal band and repaints the glyph only.
func (c *Checkbox) Touch(ev input.Event) bool {
	if ev.Y < c.y || ev.Y >= c.y+checkboxHitBand {
		return false
	}
	c.State = !c.State
	c.Update()
	return true
}
