package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/wear/pkg/graphics"
	"github.com/go-drift/wear/pkg/icons"
	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

func newMeterFixture(level int, charging bool) (*surface.OpSurface, *sensors.FakeBattery, *BatteryMeter) {
	op := surface.NewOpSurface()
	bat := &sensors.FakeBattery{Lvl: level, Charge: charging}
	return op, bat, NewBatteryMeter(op, theme.Default(), bat)
}

func TestBatteryMeterIdleUpdateDrawsNothing(t *testing.T) {
	op, _, m := newMeterFixture(80, false)
	m.Draw()
	op.Reset()

	m.Update()
	m.Update()
	m.Update()
	assert.Zero(t, op.DrawCalls(), "no-change updates must not draw")
}

func TestBatteryMeterSteadyLevelTouchesBarOnly(t *testing.T) {
	op, bat, m := newMeterFixture(80, false)
	m.Draw()
	op.Reset()

	bat.Lvl = 70
	m.Update()
	assert.Zero(t, op.BlitsOf(icons.Battery), "icon must not repaint for a same-side level change")
	assert.Equal(t, 2, op.CountKind(surface.OpFill), "expected bar clear plus bar fill")
}

func TestBatteryMeterThresholdCrossingRepaintsIcon(t *testing.T) {
	op, bat, m := newMeterFixture(7, false)
	m.Draw()

	op.Reset()
	bat.Lvl = 5
	m.Update()
	require.Equal(t, 1, op.BlitsOf(icons.Battery), "crossing into low battery repaints the icon")
	blit := op.Ops()[0]
	assert.Equal(t, graphics.Color(0xF800), blit.Color, "low battery icon is red")

	op.Reset()
	bat.Lvl = 7
	m.Update()
	require.Equal(t, 1, op.BlitsOf(icons.Battery), "crossing back repaints the icon again")
	assert.Equal(t, theme.Default().Color(theme.RoleBattery), op.Ops()[0].Color)
}

func TestBatteryMeterCharging(t *testing.T) {
	op, bat, m := newMeterFixture(50, true)
	m.Draw()
	assert.Equal(t, 1, op.BlitsOf(icons.Battery))
	assert.Equal(t, 1, op.DrawCalls(), "charging state is the icon alone, no bar")

	op.Reset()
	m.Update()
	assert.Zero(t, op.DrawCalls(), "still charging, nothing to redraw")

	op.Reset()
	bat.Charge = false
	m.Update()
	assert.Equal(t, 1, op.BlitsOf(icons.Battery), "leaving charging restores the level rendition")
	assert.NotZero(t, op.CountKind(surface.OpFill))
}

func TestBatteryMeterBarGeometry(t *testing.T) {
	op, _, m := newMeterFixture(100, false)
	m.Draw()

	var fills []surface.Op
	for _, o := range op.Ops() {
		if o.Kind == surface.OpFill {
			fills = append(fills, o)
		}
	}
	require.Len(t, fills, 1, "a full battery needs no clear band")
	bar := fills[0]
	assert.Equal(t, 212, bar.X)
	assert.Equal(t, 9, bar.Y)
	assert.Equal(t, icons.Battery.W-4, bar.W)
	assert.Equal(t, 22, bar.H)
	assert.Equal(t, graphics.RGB565(0, 62, 0), bar.Color, "full charge renders pure green")
}

func TestBatteryMeterEmptyLevel(t *testing.T) {
	op, _, m := newMeterFixture(0, false)
	m.Draw()

	var fills []surface.Op
	for _, o := range op.Ops() {
		if o.Kind == surface.OpFill {
			fills = append(fills, o)
		}
	}
	require.Len(t, fills, 1, "an empty battery is all clear band")
	assert.Equal(t, graphics.ColorBlack, fills[0].Color)
	assert.Equal(t, 22, fills[0].H)
}

func TestBatteryMeterDrawForcesRepaint(t *testing.T) {
	op, _, m := newMeterFixture(80, false)
	m.Draw()
	op.Reset()

	// An external full-screen clear wiped the pixels; Draw must not trust
	// the cached level.
	m.Draw()
	assert.NotZero(t, op.DrawCalls())
}
