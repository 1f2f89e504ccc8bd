// Package host runs an application screen: it delivers the periodic
// tick that drives lazy updates and routes input events to the screen,
// all on a single goroutine.
package host

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-drift/wear/pkg/errors"
	"github.com/go-drift/wear/pkg/input"
	"github.com/go-drift/wear/pkg/widgets"
)

// Screen is what an application screen implements. The host calls Draw
// once on activation and Update on every tick. Screens that want input
// also implement widgets.Touchable.
type Screen interface {
	widgets.Drawable
	widgets.Updatable

	// TickMS is the screen's preferred tick period in milliseconds.
	TickMS() int
}

// Name reports a screen's name for logging when the screen provides one.
type Name interface {
	Name() string
}

// DispatchTouch offers ev to each widget in order and stops at the first
// consumer. Widgets are passed front to back: the topmost widget gets
// first refusal.
func DispatchTouch(ev input.Event, ws ...widgets.Touchable) bool {
	for _, w := range ws {
		if w == nil {
			continue
		}
		if w.Touch(ev) {
			return true
		}
	}
	return false
}

// Loop drives one screen until the context is cancelled.
type Loop struct {
	screen Screen
	events <-chan input.Event
	log    *slog.Logger
}

// NewLoop constructs a loop over screen, fed by events. log may be nil,
// in which case slog's default logger is used.
func NewLoop(screen Screen, events <-chan input.Event, log *slog.Logger) *Loop {
	if log == nil {
		log = slog.Default()
	}
	return &Loop{screen: screen, events: events, log: log}
}

// Run draws the screen and then alternates between ticks and input
// events until ctx is cancelled. Ticks and touches run on the calling
// goroutine, so screen code never needs locks. A panic in the screen is
// recovered, reported and logged; the loop carries on with the next
// event.
func (l *Loop) Run(ctx context.Context) error {
	l.safely("host.Loop.draw", func() {
		l.screen.Draw()
	})

	ticker := time.NewTicker(time.Duration(l.screen.TickMS()) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.log.Info("host loop stopped", "screen", l.screenName())
			return ctx.Err()
		case <-ticker.C:
			l.safely("host.Loop.tick", func() {
				l.screen.Update()
			})
		case ev, ok := <-l.events:
			if !ok {
				l.log.Info("event source closed", "screen", l.screenName())
				return nil
			}
			l.dispatch(ev)
		}
	}
}

func (l *Loop) dispatch(ev input.Event) {
	t, ok := l.screen.(widgets.Touchable)
	if !ok {
		return
	}
	l.safely("host.Loop.dispatch", func() {
		if !t.Touch(ev) {
			l.log.Debug("event not consumed",
				"screen", l.screenName(), "kind", ev.Kind, "x", ev.X, "y", ev.Y)
		}
	})
}

// safely runs fn, converting a panic into a report and a log line
// instead of tearing the loop down.
func (l *Loop) safely(op string, fn func()) {
	defer errors.RecoverWithCallback(op, func(r any) {
		l.log.Error("screen panicked", "op", op, "screen", l.screenName(), "value", r)
	})
	fn()
}

func (l *Loop) screenName() string {
	if n, ok := l.screen.(Name); ok {
		return n.Name()
	}
	return "screen"
}
