package faces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/sensors"
	"github.com/go-drift/wear/pkg/surface"
	"github.com/go-drift/wear/pkg/theme"
)

func TestFormatCentis(t *testing.T) {
	tests := []struct {
		centis int64
		want   string
	}{
		{0, "00:00.00"},
		{99, "00:00.99"},
		{100, "00:01.00"},
		{6000, "01:00.00"},
		{12345, "02:03.45"},
		{999*60*100 + 59*100 + 99, "999:59.99"},
		{-5, "00:00.00"},
	}
	for _, tt := range tests {
		if got := FormatCentis(tt.centis); got != tt.want {
			t.Errorf("FormatCentis(%d) = %q, want %q", tt.centis, got, tt.want)
		}
	}
}

type swFixture struct {
	op  *surface.OpSurface
	rtc *sensors.FakeClock
	sw  *StopwatchFace
}

func newSWFixture() *swFixture {
	f := &swFixture{
		op:  surface.NewOpSurface(),
		rtc: &sensors.FakeClock{Now: sensors.TimeTuple{Year: 2026, Hour: 10, Minute: 30}},
	}
	bat := &sensors.FakeBattery{Lvl: 80}
	conn := &sensors.FakeConnectivity{}
	f.sw = NewStopwatchFace(f.op, theme.Default(), f.rtc, bat, conn)
	return f
}

func (f *swFixture) elapsedText() string {
	var last string
	for _, o := range f.op.Ops() {
		if o.Kind == surface.OpString && o.Font == surface.Sans36 {
			last = o.Text
		}
	}
	return last
}

func TestStopwatchStartStop(t *testing.T) {
	f := newSWFixture()
	f.sw.Draw()
	assert.Equal(t, "00:00.00", f.elapsedText())

	require.True(t, f.sw.Touch(input.Event{Kind: input.KindButton}))
	assert.True(t, f.sw.Running())

	f.rtc.Advance(1230)
	f.sw.Update()
	assert.Equal(t, int64(123), f.sw.Count())
	assert.Equal(t, "00:01.23", f.elapsedText())

	require.True(t, f.sw.Touch(input.Event{Kind: input.KindButton}))
	assert.False(t, f.sw.Running())

	// Stopped: time passing does not advance the count.
	f.rtc.Advance(5000)
	f.sw.Update()
	assert.Equal(t, int64(123), f.sw.Count())
}

func TestStopwatchResumeKeepsCount(t *testing.T) {
	f := newSWFixture()
	f.sw.Draw()

	f.sw.Touch(input.Event{Kind: input.KindButton})
	f.rtc.Advance(1000)
	f.sw.Update()
	f.sw.Touch(input.Event{Kind: input.KindButton}) // stop at 100 centis

	f.rtc.Advance(60_000) // paused time is not counted
	f.sw.Touch(input.Event{Kind: input.KindButton}) // resume
	f.rtc.Advance(1000)
	f.sw.Update()
	assert.Equal(t, int64(200), f.sw.Count())
}

func TestStopwatchLazyRedraw(t *testing.T) {
	f := newSWFixture()
	f.sw.Draw()
	f.op.Reset()

	// Stopped, time frozen: nothing changes, nothing draws.
	f.sw.Update()
	f.sw.Update()
	assert.Zero(t, f.op.DrawCalls())
}

func TestStopwatchSplits(t *testing.T) {
	f := newSWFixture()
	f.sw.Draw()

	assert.False(t, f.sw.Touch(input.Touch(100, 100)), "a tap while stopped is not a split")

	f.sw.Touch(input.Event{Kind: input.KindButton})
	f.rtc.Advance(1000)
	f.sw.Update()
	require.True(t, f.sw.Touch(input.Touch(100, 100)))
	f.rtc.Advance(1000)
	f.sw.Update()
	require.True(t, f.sw.Touch(input.Touch(100, 100)))

	require.Len(t, f.sw.Splits(), 2)
	assert.Equal(t, int64(100), f.sw.Splits()[0])
	assert.Equal(t, int64(200), f.sw.Splits()[1])
}

func TestStopwatchResetOnlyWhileStopped(t *testing.T) {
	f := newSWFixture()
	f.sw.Draw()

	f.sw.Touch(input.Event{Kind: input.KindButton})
	f.rtc.Advance(1000)
	f.sw.Update()

	assert.False(t, f.sw.Touch(input.Event{Kind: input.KindSwipeDown}), "no reset while running")
	assert.Equal(t, int64(100), f.sw.Count())

	f.sw.Touch(input.Event{Kind: input.KindButton}) // stop
	require.True(t, f.sw.Touch(input.Event{Kind: input.KindSwipeDown}))
	assert.Zero(t, f.sw.Count())
	assert.Empty(t, f.sw.Splits())
	assert.Equal(t, "00:00.00", f.elapsedText())
}

func TestStopwatchRollsOverPastDisplayLimit(t *testing.T) {
	f := newSWFixture()
	f.sw.Draw()
	f.sw.Touch(input.Event{Kind: input.KindButton})

	f.rtc.Uptime = (maxCentis + 100) * 10
	f.sw.Update()
	assert.Zero(t, f.sw.Count(), "past the display limit the count restarts")
	assert.True(t, f.sw.Running(), "rollover does not stop the watch")
}
