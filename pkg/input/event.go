// Package input defines the event record the host forwards to widgets.
package input

// Kind classifies an input event.
type Kind int

const (
	// KindTouch is a tap at a screen coordinate.
	KindTouch Kind = iota
	// KindButton is the hardware side button.
	KindButton
	// KindSwipeUp through KindSwipeRight are directional swipes.
	KindSwipeUp
	KindSwipeDown
	KindSwipeLeft
	KindSwipeRight
)

// Event carries one input occurrence. X and Y are meaningful for touch
// events only.
type Event struct {
	Kind Kind
	X    int
	Y    int
}

// Touch constructs a touch event at (x, y).
func Touch(x, y int) Event {
	return Event{Kind: KindTouch, X: x, Y: y}
}
