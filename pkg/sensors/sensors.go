// Package sensors defines the host-state providers widgets read: wall
// time, battery charge and connectivity/notification state. Providers are
// injected at widget construction so tests and the simulator can swap in
// deterministic fakes.
package sensors

import "time"

// TimeTuple is a broken-down local time. Widgets treat it as opaque apart
// from the fields they read; equality is field-wise.
type TimeTuple struct {
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday int
	Yday    int
}

// Equal reports field-wise equality.
func (t TimeTuple) Equal(o TimeTuple) bool {
	return t == o
}

// FromTime converts a time.Time to a TimeTuple in its own location.
func FromTime(t time.Time) TimeTuple {
	return TimeTuple{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: int(t.Weekday()),
		Yday:    t.YearDay(),
	}
}

// Clock provides wall time and a monotonic uptime for elapsed timing.
type Clock interface {
	Localtime() TimeTuple
	UptimeMS() int64
}

// Battery reports charge state. Level is 0..100; reads re-sample the
// hardware, so callers avoid polling it when nothing else changed.
type Battery interface {
	Level() int
	Charging() bool
}

// Connectivity reports the radio link and pending-notification state.
type Connectivity interface {
	Connected() bool
	NotificationsPending() bool
}

// SystemClock adapts the Go runtime clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts the uptime reference at the moment of creation.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Localtime() TimeTuple {
	return FromTime(time.Now())
}

func (c *SystemClock) UptimeMS() int64 {
	return time.Since(c.start).Milliseconds()
}
