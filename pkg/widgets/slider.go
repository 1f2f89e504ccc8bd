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
	sliderKnobDiameter = 40
	sliderKnobRadius   = sliderKnobDiameter / 2
	sliderWidth        = 220
	sliderTrack        = sliderWidth - sliderKnobDiameter
	sliderTrackHeight  = 8
	sliderTrackY1      = 16
	sliderTrackY2      = sliderTrackY1 + sliderTrackHeight
	sliderHitHeight    = 40
)

// Slider selects one of a fixed number of steps by dragging a knob along
// a horizontal track.
type Slider struct {
	draw     surface.Surface
	th       theme.Theme
	x        int
	y        int
	steps    int
	stepsize float64
	color    graphics.Color

	// Value is the selected step, in [0, steps).
	Value int
}

// NewSlider constructs a slider with the given number of steps. color
// overrides the theme's ui color when nonzero. Panics when steps < 2
// since a slider with fewer positions cannot move.
func NewSlider(d surface.Surface, th theme.Theme, steps, x, y int, color graphics.Color) *Slider {
	if steps < 2 {
		panic(fmt.Sprintf("widgets: slider needs at least 2 steps, got %d", steps))
	}
	return &Slider{
		draw:     d,
		th:       th,
		x:        x,
		y:        y,
		steps:    steps,
		stepsize: sliderTrack / float64(steps-1),
		color:    color,
	}
}

// Draw paints the track and the knob for the current value.
//
// The theme is consulted on every call so palette switches take effect
// on the next repaint without any notification plumbing.
func (s *Slider) Draw() {
	color := s.color
	if color == 0 {
		color = s.th.Color(theme.RoleUI)
	}
	light := graphics.Lighten(color, s.th.Contrast())
	dark := graphics.Darken(color)

	knob := int(float64(s.Value)*s.stepsize + 0.5)

	// Erase the knob's travel band, then lay the split track under it.
	s.draw.Fill(graphics.ColorBlack, s.x, s.y, sliderWidth, sliderKnobDiameter)
	if knob > 0 {
		s.draw.Fill(light, s.x+sliderKnobRadius, s.y+sliderTrackY1, knob, sliderTrackHeight)
	}
	if knob < sliderTrack {
		s.draw.Fill(dark, s.x+sliderKnobRadius+knob, s.y+sliderTrackY2-sliderTrackHeight,
			sliderTrack-knob, sliderTrackHeight)
	}
	s.draw.Blit(icons.Knob, s.x+knob, s.y, color, graphics.ColorBlack, light)
}

// Touch maps the tap's x coordinate to the nearest step, clamps it and
// repaints. Taps outside the slider's band are ignored.
func (s *Slider) Touch(ev input.Event) bool {
	if ev.X < s.x || ev.X >= s.x+sliderWidth ||
		ev.Y < s.y || ev.Y >= s.y+sliderHitHeight {
		return false
	}
	threshold := float64(s.x) + sliderKnobRadius - s.stepsize/2
	v := int((float64(ev.X) - threshold) / s.stepsize)
	if v < 0 {
		v = 0
	} else if v >= s.steps {
		v = s.steps - 1
	}
	s.Value = v
	s.Draw()
	return true
}
