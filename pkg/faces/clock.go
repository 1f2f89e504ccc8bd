// Package faces contains the built-in application screens: a digital
// clock and a stopwatch. Each face owns a status bar and drives its own
// lazy redraw off the bar's time-change signal.
package faces

import (
	"fmt"

	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
	"github.com/go-drift/wear/pkg/widgets"
)

const monthNames = "JanFebMarAprMayJunJulAugSepOctNovDec"

// monthAbbrev returns the three-letter abbreviation for month 1..12.
func monthAbbrev(month int) string {
	return monthNames[3*month-3 : 3*month]
}

// ClockFace is the default watch face: large HH:MM digits with a date
// line underneath. The status bar's small clock is suppressed since the
// face renders its own.
type ClockFace struct {
	draw surface.Surface
	th   theme.Theme
	bar  *widgets.StatusBar

	onScreen sensors.TimeTuple
	valid    bool
}

// NewClockFace constructs the face and its status bar.
func NewClockFace(d surface.Surface, th theme.Theme, rtc sensors.Clock, power sensors.Battery, conn sensors.Connectivity) *ClockFace {
	bar := widgets.NewStatusBar(d, th, rtc, power, conn)
	bar.SetClock(false)
	return &ClockFace{draw: d, th: th, bar: bar}
}

func (f *ClockFace) Name() string {
	return "clock"
}

// TickMS asks for one tick per second; the redraw itself is gated to
// once per minute.
func (f *ClockFace) TickMS() int {
	return 1000
}

// Draw clears the screen and repaints everything.
func (f *ClockFace) Draw() {
	f.draw.Fill(graphics.ColorBlack, 0, 0, widgets.ScreenWidth, widgets.ScreenHeight)
	f.bar.Draw()
	f.valid = false
	f.Update()
}

// Update redraws the time when the displayed minute changed and the date
// when the day changed.
func (f *ClockFace) Update() {
	now, changed := f.bar.Update()
	if !changed && f.valid {
		return
	}
	if !f.valid || now.Minute != f.onScreen.Minute || now.Hour != f.onScreen.Hour {
		f.draw.SetColor(f.th.Color(theme.RoleBright), graphics.ColorBlack)
		f.draw.SetFont(surface.Sans36)
		f.draw.String(fmt.Sprintf("%02d:%02d", now.Hour, now.Minute),
			0, 80, widgets.ScreenWidth)
	}
	if !f.valid || now.Day != f.onScreen.Day {
		f.draw.SetColor(f.th.Color(theme.RoleMid), graphics.ColorBlack)
		f.draw.SetFont(surface.Sans24)
		f.draw.String(fmt.Sprintf("%d %s %d", now.Day, monthAbbrev(now.Month), now.Year),
			0, 160, widgets.ScreenWidth)
	}
	f.onScreen = now
	f.valid = true
}
