package render

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x < float64(r.X+r.W) &&
		y >= float64(r.Y) && y < float64(r.Y+r.H)
}

// Point is an integer pixel position.
type Point struct {
	X, Y int
}

// Visual describes an interaction controller's current overlay: the
// rectangles to draw and, when hovering, the tracked cursor position. The
// view layer polls it each frame; controllers never draw.
type Visual struct {
	Rects  []Rect
	Cursor *Point
}
