package faces

import (
	"fmt"

	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
	"github.com/go-drift/wear/pkg/widgets"
)

// The elapsed count rolls over past 999 minutes, the largest value the
// MM:SS.cc layout can show.
const maxCentis = 999*60*100 + 59*100 + 99

const maxSplits = 4

// StopwatchFace measures elapsed time in centiseconds.
//
// The hardware button toggles running, a tap while running captures a
// split, a downward swipe while stopped resets. The count is rendered
// only when it differs from what is on screen, which with a sub-100 ms
// tick still means nearly every tick while running and zero work while
// stopped.
type StopwatchFace struct {
	draw surface.Surface
	th   theme.Theme
	rtc  sensors.Clock
	bar  *widgets.StatusBar

	startedAt int64 // uptime centis at (effective) start
	count     int64 // elapsed centis
	running   bool
	splits    []int64
	shown     int64 // last rendered count, -1 forces a render
}

// NewStopwatchFace constructs the face and its status bar.
func NewStopwatchFace(d surface.Surface, th theme.Theme, rtc sensors.Clock, power sensors.Battery, conn sensors.Connectivity) *StopwatchFace {
	return &StopwatchFace{
		draw:  d,
		th:    th,
		rtc:   rtc,
		bar:   widgets.NewStatusBar(d, th, rtc, power, conn),
		shown: -1,
	}
}

func (f *StopwatchFace) Name() string {
	return "stopwatch"
}

// TickMS asks for a tick slightly under the centisecond display's
// perceptual refresh; 97 keeps the last digit visibly spinning without
// aliasing against a round 100 ms period.
func (f *StopwatchFace) TickMS() int {
	return 97
}

// Running reports whether the count is advancing.
func (f *StopwatchFace) Running() bool {
	return f.running
}

// Count returns the elapsed centiseconds.
func (f *StopwatchFace) Count() int64 {
	return f.count
}

// Splits returns the captured split counts, oldest first.
func (f *StopwatchFace) Splits() []int64 {
	return f.splits
}

func (f *StopwatchFace) centis() int64 {
	return f.rtc.UptimeMS() / 10
}

// Draw clears the screen and repaints everything.
func (f *StopwatchFace) Draw() {
	f.draw.Fill(graphics.ColorBlack, 0, 0, widgets.ScreenWidth, widgets.ScreenHeight)
	f.bar.Draw()
	f.shown = -1
	f.drawSplits()
	f.Update()
}

// Update advances the count while running and repaints it when changed.
func (f *StopwatchFace) Update() {
	f.bar.Update()
	if f.running {
		f.count = f.centis() - f.startedAt
		if f.count > maxCentis {
			f.startedAt = f.centis()
			f.count = 0
			f.splits = nil
			f.drawSplits()
		}
	}
	if f.count != f.shown {
		f.drawCount()
	}
}

// Touch implements the stopwatch controls.
func (f *StopwatchFace) Touch(ev input.Event) bool {
	switch ev.Kind {
	case input.KindButton:
		if f.running {
			f.running = false
		} else {
			f.startedAt = f.centis() - f.count
			f.running = true
		}
		return true
	case input.KindTouch:
		if !f.running {
			return false
		}
		f.splits = append(f.splits, f.count)
		if len(f.splits) > maxSplits {
			f.splits = f.splits[len(f.splits)-maxSplits:]
		}
		f.drawSplits()
		return true
	case input.KindSwipeDown:
		if f.running {
			return false
		}
		f.count = 0
		f.splits = nil
		f.drawSplits()
		f.drawCount()
		return true
	}
	return false
}

func (f *StopwatchFace) drawCount() {
	f.draw.SetColor(f.th.Color(theme.RoleBright), graphics.ColorBlack)
	f.draw.SetFont(surface.Sans36)
	f.draw.String(FormatCentis(f.count), 0, 100, widgets.ScreenWidth)
	f.shown = f.count
}

func (f *StopwatchFace) drawSplits() {
	f.draw.Fill(graphics.ColorBlack, 0, 144, widgets.ScreenWidth, maxSplits*24)
	f.draw.SetColor(f.th.Color(theme.RoleMid), graphics.ColorBlack)
	f.draw.SetFont(surface.Sans24)
	y := 144
	for _, s := range f.splits {
		f.draw.String(FormatCentis(s), 0, y, widgets.ScreenWidth)
		y += 24
	}
}

// FormatCentis renders a centisecond count as "MM:SS.cc".
func FormatCentis(centis int64) string {
	if centis < 0 {
		centis = 0
	}
	minutes := centis / 6000
	seconds := (centis / 100) % 60
	frac := centis % 100
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, frac)
}
