package widgets

import (
	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

// StatusBar is the composite of clock, battery meter and notification
// indicator that most screens place along the top edge.
//
// Its Update is the fan-out point of the lazy-redraw scheme: the clock
// comparison is a handful of integer compares, while the battery and
// connectivity children re-sample sensors on every call. Gating the
// expensive pair behind the cheap clock check bounds sensor reads and
// bus traffic to once per displayed-time change.
type StatusBar struct {
	clock *ClockWidget
	meter *BatteryMeter
	notif *NotificationIndicator
}

// NewStatusBar wires the three children against the shared capabilities.
func NewStatusBar(d surface.Surface, th theme.Theme, rtc sensors.Clock, power sensors.Battery, conn sensors.Connectivity) *StatusBar {
	return &StatusBar{
		clock: NewClockWidget(d, th, rtc),
		meter: NewBatteryMeter(d, th, power),
		notif: NewNotificationIndicator(d, th, conn, 0, 0),
	}
}

// Clock reports whether the small status-bar clock is shown.
func (b *StatusBar) Clock() bool {
	return b.clock.Enabled
}

// SetClock enables or disables the small clock. Screens that render their
// own large clock disable it; time-change reporting is unaffected.
func (b *StatusBar) SetClock(enabled bool) {
	b.clock.Enabled = enabled
}

// Draw redraws the whole bar from scratch, in the fixed order clock,
// battery, notification.
func (b *StatusBar) Draw() {
	b.clock.Draw()
	b.meter.Draw()
	b.notif.Draw()
}

// Update lazily updates the bar. The battery and notification children
// are only consulted when the clock reports that the time changed. The
// fresh time and the change flag are returned so screens can drive their
// own once-per-minute redraws off the same signal.
func (b *StatusBar) Update() (sensors.TimeTuple, bool) {
	now, changed := b.clock.Update()
	if changed {
		b.meter.Update()
		b.notif.Update()
	}
	return now, changed
}
