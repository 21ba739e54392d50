// Package input carries pointer and touch events from a host surface to
// interaction controllers, and owns the single active gesture grab.
//
// The event model is host-independent: the desktop window in package surface
// translates ebiten input into these events, and tests inject them directly.
package input

import "math"

// Kind identifies a pointer or touch event.
type Kind uint8

const (
	MouseDown Kind = iota + 1
	MouseMove
	MouseUp
	MouseOut
	ContextMenu
	Wheel
	TouchStart
	TouchMove
	TouchEnd
	// Cancel ends any in-progress gesture without a terminating press or
	// release (window focus loss, host teardown).
	Cancel
)

// Button identifies a mouse button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// Touch is one active touch point.
type Touch struct {
	ID   int64
	X, Y float64
}

// Event is a single pointer, wheel or touch event in surface coordinates.
// Touch events carry the full set of currently active touch points.
type Event struct {
	Kind    Kind
	X, Y    float64
	Button  Button
	WheelDY float64
	Touches []Touch
}

// HasPosition reports whether the event carries usable pixel coordinates.
// Hosts occasionally deliver synthetic moves with no position (a mouse move
// fired during an in-progress touch sequence); consumers must skip those.
func (e Event) HasPosition() bool {
	return !math.IsNaN(e.X) && !math.IsNaN(e.Y)
}
