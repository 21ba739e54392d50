package surface

import (
	"github.com/hajimehoshi/ebiten/v2"

	"chartglass/input"
)

// wheelNotch converts one wheel detent into the zoom delta the controllers
// expect: positive values zoom out. Ebiten reports scroll-up as a positive
// offset, so the sign flips.
const wheelNotch = -100.0

// sample is one frame's raw pointer state.
type sample struct {
	x, y                float64
	left, right, middle bool
	wheelDY             float64
	touches             []input.Touch
}

// poller turns per-frame pointer samples into edge-triggered input events.
type poller struct {
	width, height int

	prev     sample
	inside   bool
	touchIDs []ebiten.TouchID
}

func newPoller(width, height int) *poller {
	return &poller{width: width, height: height}
}

// read samples ebiten's pointer state for the current frame.
func (p *poller) read() sample {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()

	s := sample{
		x:       float64(mx),
		y:       float64(my),
		left:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		right:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		middle:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		wheelDY: wy * wheelNotch,
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		s.touches = append(s.touches, input.Touch{
			ID: int64(id), X: float64(tx), Y: float64(ty),
		})
	}
	return s
}

// events diffs s against the previous frame and returns the input events in
// dispatch order.
func (p *poller) events(s sample) []input.Event {
	var evs []input.Event

	in := s.x >= 0 && s.x < float64(p.width) && s.y >= 0 && s.y < float64(p.height)
	if p.inside && !in {
		evs = append(evs, input.Event{Kind: input.MouseOut, X: s.x, Y: s.y})
	}

	if in && (s.x != p.prev.x || s.y != p.prev.y || !p.inside) {
		evs = append(evs, input.Event{Kind: input.MouseMove, X: s.x, Y: s.y})
	} else if !in && (s.left || p.prev.left) {
		// keep a captured drag alive outside the surface
		if s.x != p.prev.x || s.y != p.prev.y {
			evs = append(evs, input.Event{Kind: input.MouseMove, X: s.x, Y: s.y})
		}
	}
	p.inside = in

	evs = append(evs, p.buttonEdges(s)...)

	if s.wheelDY != 0 && in {
		evs = append(evs, input.Event{Kind: input.Wheel, X: s.x, Y: s.y, WheelDY: s.wheelDY})
	}

	evs = append(evs, p.touchEdges(s)...)

	p.prev = s
	return evs
}

func (p *poller) buttonEdges(s sample) []input.Event {
	var evs []input.Event
	type btn struct {
		now, was bool
		b        input.Button
	}
	for _, e := range []btn{
		{s.left, p.prev.left, input.ButtonPrimary},
		{s.middle, p.prev.middle, input.ButtonMiddle},
		{s.right, p.prev.right, input.ButtonSecondary},
	} {
		switch {
		case e.now && !e.was:
			evs = append(evs, input.Event{Kind: input.MouseDown, X: s.x, Y: s.y, Button: e.b})
			if e.b == input.ButtonSecondary {
				evs = append(evs, input.Event{Kind: input.ContextMenu, X: s.x, Y: s.y, Button: e.b})
			}
		case !e.now && e.was:
			evs = append(evs, input.Event{Kind: input.MouseUp, X: s.x, Y: s.y, Button: e.b})
		}
	}
	return evs
}

func (p *poller) touchEdges(s sample) []input.Event {
	var evs []input.Event

	started := false
	for _, t := range s.touches {
		if !hasTouch(p.prev.touches, t.ID) {
			started = true
			break
		}
	}
	ended := false
	for _, t := range p.prev.touches {
		if !hasTouch(s.touches, t.ID) {
			ended = true
			break
		}
	}

	switch {
	case started:
		evs = append(evs, input.Event{Kind: input.TouchStart, Touches: s.touches})
	case ended:
		// remaining touches ride along so controllers can re-anchor
		evs = append(evs, input.Event{Kind: input.TouchEnd, Touches: s.touches})
	case len(s.touches) > 0 && touchesMoved(p.prev.touches, s.touches):
		evs = append(evs, input.Event{Kind: input.TouchMove, Touches: s.touches})
	}
	return evs
}

func hasTouch(ts []input.Touch, id int64) bool {
	for _, t := range ts {
		if t.ID == id {
			return true
		}
	}
	return false
}

func touchesMoved(prev, cur []input.Touch) bool {
	for _, c := range cur {
		for _, p := range prev {
			if p.ID == c.ID && (p.X != c.X || p.Y != c.Y) {
				return true
			}
		}
	}
	return false
}
