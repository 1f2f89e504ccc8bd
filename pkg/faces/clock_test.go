package faces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

func TestMonthAbbrev(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{1, "Jan"}, {2, "Feb"}, {3, "Mar"}, {6, "Jun"}, {9, "Sep"}, {12, "Dec"},
	}
	for _, tt := range tests {
		if got := monthAbbrev(tt.month); got != tt.want {
			t.Errorf("monthAbbrev(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

type clockFixture struct {
	op  *surface.OpSurface
	rtc *sensors.FakeClock
	cf  *ClockFace
}

func newClockFixture() *clockFixture {
	f := &clockFixture{
		op: surface.NewOpSurface(),
		rtc: &sensors.FakeClock{Now: sensors.TimeTuple{
			Year: 2026, Month: 3, Day: 14, Hour: 10, Minute: 30,
		}},
	}
	bat := &sensors.FakeBattery{Lvl: 80}
	conn := &sensors.FakeConnectivity{}
	f.cf = NewClockFace(f.op, theme.Default(), f.rtc, bat, conn)
	return f
}

func (f *clockFixture) strings() []string {
	var out []string
	for _, o := range f.op.Ops() {
		if o.Kind == surface.OpString {
			out = append(out, o.Text)
		}
	}
	return out
}

func TestClockFaceDraw(t *testing.T) {
	f := newClockFixture()
	f.cf.Draw()

	texts := f.strings()
	require.Len(t, texts, 2, "time plus date; the status-bar clock is suppressed")
	assert.Equal(t, "10:30", texts[0])
	assert.Equal(t, "14 Mar 2026", texts[1])
}

func TestClockFaceSecondTickDrawsNoText(t *testing.T) {
	f := newClockFixture()
	f.cf.Draw()
	f.op.Reset()

	f.rtc.Advance(1000)
	f.cf.Update()
	assert.Empty(t, f.strings(), "neither minute nor day changed")
}

func TestClockFaceMinuteRedrawsTimeOnly(t *testing.T) {
	f := newClockFixture()
	f.cf.Draw()
	f.op.Reset()

	f.rtc.Advance(60_000)
	f.cf.Update()
	texts := f.strings()
	require.Len(t, texts, 1)
	assert.Equal(t, "10:31", texts[0])
}

func TestClockFaceDayRedrawsDate(t *testing.T) {
	f := newClockFixture()
	f.cf.Draw()
	f.op.Reset()

	f.rtc.Now.Day = 15
	f.rtc.Advance(60_000)
	f.cf.Update()
	texts := f.strings()
	require.Len(t, texts, 2)
	assert.Equal(t, "15 Mar 2026", texts[1])
}

func TestClockFaceIdleUpdate(t *testing.T) {
	f := newClockFixture()
	f.cf.Draw()
	f.op.Reset()

	f.cf.Update()
	f.cf.Update()
	assert.Zero(t, f.op.DrawCalls(), "a frozen clock draws nothing")
}

func TestClockFaceMetadata(t *testing.T) {
	f := newClockFixture()
	assert.Equal(t, "clock", f.cf.Name())
	assert.Equal(t, 1000, f.cf.TickMS())
}
