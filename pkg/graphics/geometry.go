package graphics

// Point is a pixel coordinate on the display.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle in pixel coordinates. Widgets own an
// immutable Rect describing their placement.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// RectXYWH constructs a Rect from position and size.
func RectXYWH(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the point (x, y) falls inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Expand returns the rectangle grown by margin pixels on every side.
// Used to enlarge touch targets beyond the drawn boundary.
func (r Rect) Expand(margin int) Rect {
	return Rect{
		X: r.X - margin,
		Y: r.Y - margin,
		W: r.W + 2*margin,
		H: r.H + 2*margin,
	}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
