package widgets

import (
	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/icons"
	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

// Battery level sentinels and meter geometry.
const (
	levelNeverDrawn = -2
	levelCharging   = -1

	lowBatteryPct = 5
	barTrack      = 22 // fill bar track height in px
	barTop        = 9

	// Icon color below the low-battery threshold.
	warningColor = graphics.Color(0xF800)
)

// BatteryMeter draws a battery icon with a proportional charge bar at the
// top-right of the display.
//
// The cached level doubles as the dirty state: -2 means never drawn and
// -1 means the charging icon is showing, so every transition the meter
// cares about is a plain integer comparison.
type BatteryMeter struct {
	draw  surface.Surface
	theme theme.Theme
	power sensors.Battery
	level int
}

// NewBatteryMeter constructs the meter. It draws nothing until Draw or
// Update is called.
func NewBatteryMeter(d surface.Surface, th theme.Theme, power sensors.Battery) *BatteryMeter {
	return &BatteryMeter{draw: d, theme: th, power: power, level: levelNeverDrawn}
}

// Draw repaints the meter from scratch.
func (m *BatteryMeter) Draw() {
	m.level = levelNeverDrawn
	m.Update()
}

// Update lazily repaints the meter. Nothing is drawn unless the charging
// flag or the sampled level changed since the last call.
func (m *BatteryMeter) Update() {
	icon := icons.Battery

	if m.power.Charging() {
		if m.level != levelCharging {
			m.draw.Blit(icon, ScreenWidth-1-icon.W-5, 5,
				m.theme.Color(theme.RoleBattery), graphics.ColorBlack, graphics.ColorBlack)
			m.level = levelCharging
		}
		return
	}

	level := m.power.Level()
	if level == m.level {
		return
	}

	green := level / 3
	if green > 31 {
		green = 31
	}
	rgb := graphics.RGB565(uint8(31-green), uint8(green)<<1, 0)

	// Repaint the icon only on the first draw and when crossing the
	// low-battery threshold; steady-state ticks touch the bar alone.
	if m.level < 0 || (level > lowBatteryPct) != (m.level > lowBatteryPct) {
		color := m.theme.Color(theme.RoleBattery)
		if level <= lowBatteryPct {
			color = warningColor
			rgb = warningColor
		}
		m.draw.Blit(icon, ScreenWidth-1-icon.W-5, 5, color, graphics.ColorBlack, graphics.ColorBlack)
	}

	w := icon.W - 4
	x := ScreenWidth - 1 - 7 - w
	h := level * barTrack / 100
	if barTrack-h > 0 {
		m.draw.Fill(graphics.ColorBlack, x, barTop, w, barTrack-h)
	}
	if h > 0 {
		m.draw.Fill(rgb, x, barTop+barTrack-h, w, h)
	}

	m.level = level
}
