package widgets

import (
	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/icons"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

// ScrollIndicator is the pair of arrows prompting the user to swipe for
// more pages.
type ScrollIndicator struct {
	draw surface.Surface
	th   theme.Theme
	pos  graphics.Point

	// Up and Down select which arrows are shown.
	Up   bool
	Down bool
}

// NewScrollIndicator constructs the indicator at its customary
// bottom-right position.
func NewScrollIndicator(d surface.Surface, th theme.Theme) *ScrollIndicator {
	return NewScrollIndicatorAt(d, th, ScreenWidth-18, ScreenHeight-24)
}

// NewScrollIndicatorAt constructs the indicator at (x, y).
func NewScrollIndicatorAt(d surface.Surface, th theme.Theme, x, y int) *ScrollIndicator {
	return &ScrollIndicator{draw: d, th: th, pos: graphics.Point{X: x, Y: y}, Up: true, Down: true}
}

// Draw is a synonym for Update.
func (s *ScrollIndicator) Draw() {
	s.Update()
}

// Update paints the enabled arrows.
func (s *ScrollIndicator) Update() {
	color := s.th.Color(theme.RoleScrollIndicator)
	if s.Up {
		s.draw.Blit(icons.UpArrow, s.pos.X, s.pos.Y, color, graphics.ColorBlack, graphics.ColorBlack)
	}
	if s.Down {
		s.draw.Blit(icons.DownArrow, s.pos.X, s.pos.Y+13, color, graphics.ColorBlack, graphics.ColorBlack)
	}
}
