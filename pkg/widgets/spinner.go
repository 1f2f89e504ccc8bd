package widgets

import (
	"fmt"

	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/icons"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

const (
	spinnerWidth  = 60
	spinnerHeight = 120
)

// Spinner is a numeric up/down field. Values wrap around at both ends of
// the half-open range [min, max).
type Spinner struct {
	draw  surface.Surface
	th    theme.Theme
	x     int
	y     int
	min   int
	max   int
	field int

	// Value is the current selection, in [min, max).
	Value int
}

// NewSpinner constructs a spinner over [min, max). field is the zero-pad
// width of the rendered number, typically 1 or 2.
func NewSpinner(d surface.Surface, th theme.Theme, x, y, min, max, field int) *Spinner {
	return &Spinner{draw: d, th: th, x: x, y: y, min: min, max: max, field: field, Value: min}
}

// Draw paints the arrows and delegates the number to Update.
func (s *Spinner) Draw() {
	s.draw.Fill(graphics.ColorBlack, s.x, s.y, spinnerWidth, spinnerHeight)
	color := s.th.Color(theme.RoleMid)
	s.draw.Blit(icons.UpArrow, s.x+22, s.y+20, color, graphics.ColorBlack, graphics.ColorBlack)
	s.draw.Blit(icons.DownArrow, s.x+22, s.y+91, color, graphics.ColorBlack, graphics.ColorBlack)
	s.Update()
}

// Update repaints the number field only.
func (s *Spinner) Update() {
	s.draw.SetColor(s.th.Color(theme.RoleBright), graphics.ColorBlack)
	s.draw.SetFont(surface.Sans28)
	text := fmt.Sprintf("%0*d", s.field, s.Value)
	s.draw.String(text, s.x, s.y+46, spinnerWidth)
}

// Touch increments on the upper half and decrements on the lower half,
// wrapping at the range bounds, then repaints the number.
func (s *Spinner) Touch(ev input.Event) bool {
	if ev.X < s.x || ev.X >= s.x+spinnerWidth ||
		ev.Y < s.y || ev.Y >= s.y+spinnerHeight {
		return false
	}
	if ev.Y < s.y+spinnerHeight/2 {
		s.Value++
	} else {
		s.Value--
	}
	if s.Value >= s.max {
		s.Value = s.min
	} else if s.Value < s.min {
		s.Value = s.max - 1
	}
	s.Update()
	return true
}
