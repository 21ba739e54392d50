package gesture

import (
	"math"

	"chartglass/input"
	"chartglass/render"
	"chartglass/timerange"
	"chartglass/timescale"

	"github.com/jrivets/log4g"
)

// PanZoomConfig configures a PanZoom controller. Scale and Rect are
// required; everything else is optional. Nil callbacks are skipped.
type PanZoomConfig struct {
	// Scale maps time onto [0, Rect.W] pixels.
	Scale timescale.Scale
	// Rect is the controller's region in surface coordinates.
	Rect render.Rect

	EnablePanZoom  bool
	EnableDragZoom bool

	// MinDuration floors the zoomed-out window length, in ms. 0 = no floor.
	MinDuration int64
	// MinTime/MaxTime bound the reachable time span, in epoch ms.
	// 0 = unbounded on that side.
	MinTime int64
	MaxTime int64

	OnZoom           func(timerange.Range)
	OnMouseMove      func(x, y float64)
	OnMouseClick     func(x, y float64)
	OnMouseOut       func()
	OnContextMenu    func(x, y float64)
	OnPinchZoomStart func()
	OnPinchZoomEnd   func()
}

// PanZoom interprets pointer and touch events over a chart surface and
// reports modified time ranges through OnZoom. It holds the router grab for
// the duration of each gesture so a drag keeps working after the pointer
// leaves the controller's rectangle.
type PanZoom struct {
	cfg    PanZoomConfig
	router *input.Router
	grab   *input.Grab
	logger log4g.Logger

	phase        phase
	initialX     float64
	initialY     float64
	initialRange timerange.Range
	moved        bool

	dragInitX float64
	dragCurX  float64

	prevPinchDist float64

	hover  bool
	hoverX float64
	hoverY float64
}

// NewPanZoom returns an idle controller.
func NewPanZoom(cfg PanZoomConfig) *PanZoom {
	return &PanZoom{
		cfg:           cfg,
		prevPinchDist: noPinchDistance,
		logger:        log4g.GetLogger("gesture.panzoom"),
	}
}

// Attach registers the controller with a router.
func (p *PanZoom) Attach(r *input.Router) {
	p.router = r
	r.Attach(p)
}

// Detach resets any in-progress gesture, releases the grab and removes the
// controller from its router. Safe to call more than once.
func (p *PanZoom) Detach() {
	p.reset()
	if p.router != nil {
		r := p.router
		p.router = nil
		r.Detach(p)
	}
}

// SetScale swaps the time scale, typically after the host applied a zoom.
func (p *PanZoom) SetScale(s timescale.Scale) { p.cfg.Scale = s }

// Visual returns the controller's current overlay: the translucent drag-zoom
// selection rectangle while one is being dragged out, and the hovered cursor
// position when idle.
func (p *PanZoom) Visual() render.Visual {
	var v render.Visual
	if p.phase == phaseDragZooming {
		x0, x1 := p.dragInitX, p.dragCurX
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		v.Rects = append(v.Rects, render.Rect{
			X: p.cfg.Rect.X + int(x0),
			Y: p.cfg.Rect.Y,
			W: int(x1-x0) + 1,
			H: p.cfg.Rect.H,
		})
	}
	if p.hover && p.phase == phaseIdle {
		v.Cursor = &render.Point{
			X: p.cfg.Rect.X + int(p.hoverX),
			Y: p.cfg.Rect.Y + int(p.hoverY),
		}
	}
	return v
}

// HandleInput implements input.Controller.
func (p *PanZoom) HandleInput(ev input.Event) bool {
	switch ev.Kind {
	case input.MouseDown:
		return p.handleDown(ev)
	case input.MouseMove:
		return p.handleMove(ev)
	case input.MouseUp:
		return p.handleUp(ev)
	case input.Wheel:
		return p.handleWheel(ev)
	case input.TouchStart:
		return p.handleTouchStart(ev)
	case input.TouchMove:
		return p.handleTouchMove(ev)
	case input.TouchEnd:
		return p.handleTouchEnd(ev)
	case input.MouseOut:
		return p.handleMouseOut()
	case input.ContextMenu:
		return p.handleContextMenu(ev)
	case input.Cancel:
		if p.phase == phaseIdle {
			return false
		}
		p.logger.Debug("gesture cancelled while ", p.phase)
		p.reset()
		return true
	}
	return false
}

func (p *PanZoom) handleDown(ev input.Event) bool {
	if ev.Button == input.ButtonSecondary {
		return false
	}
	if !ev.HasPosition() || !p.cfg.Rect.Contains(ev.X, ev.Y) {
		return false
	}
	lx, ly := p.local(ev.X, ev.Y)
	switch {
	case p.cfg.EnablePanZoom:
		p.beginPan(lx, ly)
	case p.cfg.EnableDragZoom:
		p.beginDragZoom(lx, ly)
	default:
		return false
	}
	return true
}

func (p *PanZoom) handleMove(ev input.Event) bool {
	if !ev.HasPosition() {
		// Spurious synthetic move; keep any active gesture untouched.
		return p.phase != phaseIdle
	}
	lx, ly := p.local(ev.X, ev.Y)
	switch p.phase {
	case phasePanning:
		p.notifyMove(lx, ly)
		if !p.moved && math.Hypot(lx-p.initialX, ly-p.initialY) < clickThresholdPx {
			return true
		}
		p.moved = true
		p.panTo(lx)
		return true
	case phaseDragZooming:
		p.notifyMove(lx, ly)
		p.dragCurX = lx
		return true
	case phasePinching:
		// A mouse move reported mid-pinch is a platform artifact.
		return true
	case phaseIdle:
		p.trackHover(ev.X, ev.Y)
		return false
	}
	return false
}

func (p *PanZoom) handleUp(ev input.Event) bool {
	lx, ly := p.initialX, p.initialY
	if ev.HasPosition() {
		lx, ly = p.local(ev.X, ev.Y)
	}
	// Click or drag is decided by the NET movement at release, so a drag
	// that returns to its press point is still a click.
	click := math.Hypot(lx-p.initialX, ly-p.initialY) < clickThresholdPx
	switch p.phase {
	case phasePanning:
		if click && p.cfg.OnMouseClick != nil {
			p.cfg.OnMouseClick(lx, ly)
		}
		p.reset()
		return true
	case phaseDragZooming:
		if !click {
			p.finishDragZoom()
		} else if p.cfg.OnMouseClick != nil {
			p.cfg.OnMouseClick(lx, ly)
		}
		p.reset()
		return true
	}
	return false
}

func (p *PanZoom) handleWheel(ev input.Event) bool {
	if !p.cfg.EnablePanZoom && !p.cfg.EnableDragZoom {
		return false
	}
	if !ev.HasPosition() || !p.cfg.Rect.Contains(ev.X, ev.Y) {
		return false
	}
	lx, _ := p.local(ev.X, ev.Y)
	factor := clampScale(1 + ev.WheelDY*wheelScaleStep)
	center := p.cfg.Scale.Invert(lx)
	p.emitZoom(p.zoomAbout(center, factor))
	return true
}

func (p *PanZoom) handleTouchStart(ev input.Event) bool {
	if len(ev.Touches) == 0 {
		return false
	}
	t0 := ev.Touches[0]
	if p.phase == phaseIdle && !p.cfg.Rect.Contains(t0.X, t0.Y) {
		return false
	}
	if len(ev.Touches) >= 2 {
		p.beginPinch()
		return true
	}
	if p.cfg.EnablePanZoom {
		lx, ly := p.local(t0.X, t0.Y)
		p.beginPan(lx, ly)
		return true
	}
	if p.cfg.EnableDragZoom {
		lx, ly := p.local(t0.X, t0.Y)
		p.beginDragZoom(lx, ly)
		return true
	}
	return false
}

func (p *PanZoom) handleTouchMove(ev input.Event) bool {
	switch p.phase {
	case phasePinching:
		if len(ev.Touches) >= 2 {
			p.pinchTo(ev.Touches[0], ev.Touches[1])
		}
		return true
	case phasePanning:
		if len(ev.Touches) >= 1 {
			lx, _ := p.local(ev.Touches[0].X, ev.Touches[0].Y)
			p.panTo(lx)
		}
		return true
	case phaseDragZooming:
		if len(ev.Touches) >= 1 {
			lx, _ := p.local(ev.Touches[0].X, ev.Touches[0].Y)
			p.dragCurX = lx
		}
		return true
	}
	return false
}

// handleTouchEnd receives the touches still active after the lift.
func (p *PanZoom) handleTouchEnd(ev input.Event) bool {
	switch p.phase {
	case phasePinching:
		if len(ev.Touches) >= 2 {
			return true
		}
		if p.cfg.OnPinchZoomEnd != nil {
			p.cfg.OnPinchZoomEnd()
		}
		if len(ev.Touches) == 1 && p.cfg.EnablePanZoom {
			// One finger left: fall back to panning from the survivor.
			lx, ly := p.local(ev.Touches[0].X, ev.Touches[0].Y)
			p.phase = phasePanning
			p.initialX, p.initialY = lx, ly
			p.initialRange = p.cfg.Scale.Domain()
			p.moved = false
			p.prevPinchDist = noPinchDistance
			p.logger.Debug("pinch -> pan at ", lx)
			return true
		}
		p.reset()
		return true
	case phasePanning, phaseDragZooming:
		if len(ev.Touches) >= 1 {
			// Re-anchor on the remaining touch.
			lx, ly := p.local(ev.Touches[0].X, ev.Touches[0].Y)
			p.initialX, p.initialY = lx, ly
			p.initialRange = p.cfg.Scale.Domain()
			return true
		}
		if p.phase == phaseDragZooming &&
			math.Abs(p.dragCurX-p.dragInitX) >= clickThresholdPx {
			p.finishDragZoom()
		}
		p.reset()
		return true
	}
	return false
}

func (p *PanZoom) handleMouseOut() bool {
	had := p.hover
	p.hover = false
	if p.cfg.OnMouseOut != nil {
		p.cfg.OnMouseOut()
		return true
	}
	return had
}

func (p *PanZoom) handleContextMenu(ev input.Event) bool {
	if !ev.HasPosition() || !p.cfg.Rect.Contains(ev.X, ev.Y) {
		return false
	}
	if p.cfg.OnContextMenu == nil {
		return false
	}
	lx, ly := p.local(ev.X, ev.Y)
	p.cfg.OnContextMenu(lx, ly)
	return true
}

func (p *PanZoom) beginPan(lx, ly float64) {
	p.phase = phasePanning
	p.initialX, p.initialY = lx, ly
	p.initialRange = p.cfg.Scale.Domain()
	p.acquire()
	p.logger.Debug("pan start at ", lx, ",", ly)
}

func (p *PanZoom) beginDragZoom(lx, ly float64) {
	p.phase = phaseDragZooming
	p.initialX, p.initialY = lx, ly
	p.dragInitX = lx
	p.dragCurX = lx
	p.acquire()
	p.logger.Debug("drag-zoom start at ", lx)
}

func (p *PanZoom) beginPinch() {
	if p.phase == phasePinching {
		return
	}
	p.phase = phasePinching
	p.prevPinchDist = noPinchDistance
	p.acquire()
	if p.cfg.OnPinchZoomStart != nil {
		p.cfg.OnPinchZoomStart()
	}
	p.logger.Debug("pinch start")
}

// panTo shifts the captured initial range rigidly: duration is preserved
// exactly, min/max bounds clamp by shifting rather than resizing. The
// minTime clamp is applied before the maxTime clamp, matching the original
// behavior for windows wider than the bounded span.
func (p *PanZoom) panTo(lx float64) {
	sc := p.cfg.Scale
	offset := sc.Invert(lx) - sc.Invert(p.initialX)
	dur := p.initialRange.Duration()
	nb := p.initialRange.Begin() - offset
	ne := p.initialRange.End() - offset
	if p.cfg.MinTime != 0 && nb < p.cfg.MinTime {
		nb = p.cfg.MinTime
		ne = nb + dur
	}
	if p.cfg.MaxTime != 0 && ne > p.cfg.MaxTime {
		ne = p.cfg.MaxTime
		nb = ne - dur
	}
	p.emitZoom(timerange.New(nb, ne))
}

func (p *PanZoom) finishDragZoom() {
	sc := p.cfg.Scale
	b := sc.Invert(p.dragInitX)
	e := sc.Invert(p.dragCurX)
	if b > e {
		b, e = e, b
	}
	if p.cfg.MinTime != 0 && b < p.cfg.MinTime {
		b = p.cfg.MinTime
	}
	if p.cfg.MaxTime != 0 && e > p.cfg.MaxTime {
		e = p.cfg.MaxTime
	}
	p.emitZoom(timerange.New(b, e))
}

func (p *PanZoom) pinchTo(a, b input.Touch) {
	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	if p.prevPinchDist >= 0 {
		// Pinching apart increases the distance, so zoomDiff goes negative
		// and the factor drops below 1 (zoom in).
		zoomDiff := p.prevPinchDist - dist
		factor := clampScale(1 + zoomDiff*pinchScaleStep)
		lx, _ := p.local(a.X, a.Y)
		center := p.cfg.Scale.Invert(lx)
		p.emitZoom(p.zoomAbout(center, factor))
	}
	p.prevPinchDist = dist
}

// zoomAbout scales the current domain about center by factor, then applies
// the duration floor, the bounded-span ceiling and the min/max shift clamps.
// Clamps correct silently; no zoom input is ever rejected here.
func (p *PanZoom) zoomAbout(center int64, factor float64) timerange.Range {
	d := p.cfg.Scale.Domain()
	nb := center - int64(float64(center-d.Begin())*factor)
	ne := center + int64(float64(d.End()-center)*factor)
	dur := ne - nb

	if p.cfg.MinDuration > 0 && dur < p.cfg.MinDuration {
		// The floor expands symmetrically about center, not proportionally.
		nb = center - p.cfg.MinDuration/2
		ne = nb + p.cfg.MinDuration
		dur = p.cfg.MinDuration
	}
	if p.cfg.MinTime != 0 && p.cfg.MaxTime != 0 {
		if span := p.cfg.MaxTime - p.cfg.MinTime; span > 0 && dur > span {
			nb, ne = stretchAbout(center, nb, ne, span)
			dur = span
		}
	}
	if p.cfg.MinTime != 0 && nb < p.cfg.MinTime {
		nb = p.cfg.MinTime
		ne = nb + dur
	}
	if p.cfg.MaxTime != 0 && ne > p.cfg.MaxTime {
		ne = p.cfg.MaxTime
		nb = ne - dur
	}
	return timerange.New(nb, ne)
}

// stretchAbout resizes [nb, ne] to length target, keeping center at the
// same relative position inside the range. Used by the bounded-span ceiling;
// the duration floor expands symmetrically instead.
func stretchAbout(center, nb, ne, target int64) (int64, int64) {
	dur := ne - nb
	frac := 0.5
	if dur > 0 {
		frac = float64(center-nb) / float64(dur)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	b := center - int64(frac*float64(target))
	return b, b + target
}

func (p *PanZoom) trackHover(x, y float64) {
	inside := p.cfg.Rect.Contains(x, y)
	if inside {
		lx, ly := p.local(x, y)
		p.hover = true
		p.hoverX, p.hoverY = lx, ly
		p.notifyMove(lx, ly)
		return
	}
	if p.hover {
		p.hover = false
		if p.cfg.OnMouseOut != nil {
			p.cfg.OnMouseOut()
		}
	}
}

func (p *PanZoom) notifyMove(lx, ly float64) {
	if p.cfg.OnMouseMove != nil {
		p.cfg.OnMouseMove(lx, ly)
	}
}

func (p *PanZoom) emitZoom(r timerange.Range) {
	if p.cfg.OnZoom != nil {
		p.cfg.OnZoom(r)
	}
}

func (p *PanZoom) acquire() {
	if p.grab == nil && p.router != nil {
		p.grab = p.router.Grab(p)
	}
}

// reset returns the controller to idle and releases the grab. Runs on every
// gesture exit path: release, touch end, cancel and detach.
func (p *PanZoom) reset() {
	p.phase = phaseIdle
	p.initialX, p.initialY = 0, 0
	p.initialRange = timerange.Range{}
	p.moved = false
	p.dragInitX, p.dragCurX = 0, 0
	p.prevPinchDist = noPinchDistance
	p.grab.Release()
	p.grab = nil
}

func (p *PanZoom) local(x, y float64) (float64, float64) {
	return x - float64(p.cfg.Rect.X), y - float64(p.cfg.Rect.Y)
}
