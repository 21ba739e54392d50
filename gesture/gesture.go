// Package gesture implements the interaction controllers that turn pointer
// and touch input into time-range changes: PanZoom (pan, drag-zoom, wheel
// and pinch zoom over a chart surface) and Brush (a draggable, resizable
// time-range selector).
//
// Controllers are plain objects attached to an input.Router. They own no
// rendering: PanZoom exposes Visual() and Brush exposes Geometry(), which a
// view layer polls each frame. All state is mutated only by the controller's
// own event handling and fully reset at gesture end and on Detach.
package gesture

// Pixel movement below this threshold reclassifies a press/release pair as
// a click instead of a drag.
const clickThresholdPx = 2.0

const (
	wheelScaleStep = 0.001
	// Pinch gestures cover far less screen distance than a wheel sweep, so
	// the per-pixel step is 10x the wheel step.
	pinchScaleStep = 0.01

	minZoomScale = 0.1
	maxZoomScale = 3.0
)

// Sentinel for "no prior pinch distance sample".
const noPinchDistance = -1.0

// phase is the single active gesture of a PanZoom controller. Exactly one
// phase is active at a time; a missed reset cannot leave two gestures live.
type phase uint8

const (
	phaseIdle phase = iota
	phasePanning
	phaseDragZooming
	phasePinching
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phasePanning:
		return "panning"
	case phaseDragZooming:
		return "drag-zooming"
	case phasePinching:
		return "pinching"
	}
	return "unknown"
}

func clampScale(s float64) float64 {
	if s < minZoomScale {
		return minZoomScale
	}
	if s > maxZoomScale {
		return maxZoomScale
	}
	return s
}

func clampOffset(o, lo, hi int64) int64 {
	if o < lo {
		return lo
	}
	if o > hi {
		return hi
	}
	return o
}
