package widgets

import (
	"fmt"

	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

// ClockWidget is the small HH:MM clock shown in the status bar.
//
// Its change signal is load-bearing: the status bar gates its expensive
// children on whether the time advanced, so Update reports a change
// whenever the tuple differs from the one last seen, even while the
// widget is disabled and drawing nothing.
type ClockWidget struct {
	draw surface.Surface
	th   theme.Theme
	rtc  sensors.Clock

	// Enabled suppresses rendering (not change tracking) when false.
	// Host screens that paint their own large clock turn it off.
	Enabled bool

	onScreen sensors.TimeTuple
	valid    bool
}

// NewClockWidget constructs an enabled clock widget.
func NewClockWidget(d surface.Surface, th theme.Theme, rtc sensors.Clock) *ClockWidget {
	return &ClockWidget{draw: d, th: th, rtc: rtc, Enabled: true}
}

// Draw redraws the clock from scratch. The container is responsible for
// clearing the canvas first.
func (c *ClockWidget) Draw() {
	c.valid = false
	c.Update()
}

// Update lazily repaints the clock. It returns the current time and true
// when the time differs from the last call, false when nothing changed.
func (c *ClockWidget) Update() (sensors.TimeTuple, bool) {
	now := c.rtc.Localtime()
	if c.valid && c.onScreen.Equal(now) {
		return now, false
	}

	if c.Enabled && (!c.valid || now.Minute != c.onScreen.Minute || now.Hour != c.onScreen.Hour) {
		c.draw.SetFont(surface.Sans28)
		c.draw.SetColor(c.th.Color(theme.RoleStatusClock), graphics.ColorBlack)
		c.draw.String(fmt.Sprintf("%02d:%02d", now.Hour, now.Minute), 52, 4, 138)
	}

	c.onScreen = now
	c.valid = true
	return now, true
}
