// Package widgets implements the watch UI widget library: small visual
// elements that share one framebuffer and one touch stream without a
// retained scene graph.
//
// # Lazy redraw model
//
// Every widget follows the same discipline. Draw performs a full repaint
// of the widget's region and resets whatever comparison state the widget
// keeps, so the next Update is never skipped. Update repaints only when
// the backing state changed since the last paint; calling it repeatedly
// with no change performs zero drawing calls after the first. The host
// calls Draw once when a screen appears and Update on every tick.
//
// # Touch routing
//
// Interactive widgets implement Touchable. The host iterates its visible
// interactive widgets front to back and stops at the first one whose
// Touch reports the event consumed; untouched widgets see nothing.
//
// # Capabilities
//
// Widgets receive their drawing surface, theme lookup and sensor
// providers at construction. Theme colors are resolved on every paint and
// never cached, so a palette change takes effect on the next repaint.
package widgets

import "github.com/go-drift/wear/pkg/input"

// Screen geometry of the target display.
const (
	ScreenWidth  = 240
	ScreenHeight = 240
)

// Drawable widgets can repaint themselves from scratch.
type Drawable interface {
	Draw()
}

// Updatable widgets support conditional repaints.
type Updatable interface {
	Update()
}

// Touchable widgets hit-test and consume touch events. Touch returns
// true when the event was consumed; the dispatcher stops at the first
// consumer.
type Touchable interface {
	Touch(ev input.Event) bool
}

// touchMargin enlarges button hit boxes beyond the drawn boundary.
const touchMargin = 10
