package gesture

import (
	"math"

	"chartglass/input"
	"chartglass/render"
	"chartglass/timerange"
	"chartglass/timescale"

	"github.com/jrivets/log4g"
)

// site identifies where a brush drag was initiated.
type site uint8

const (
	siteNone site = iota
	siteOverlay
	siteBody
	siteHandleLeft
	siteHandleRight
)

func (s site) String() string {
	switch s {
	case siteNone:
		return "none"
	case siteOverlay:
		return "overlay"
	case siteBody:
		return "body"
	case siteHandleLeft:
		return "handle-left"
	case siteHandleRight:
		return "handle-right"
	}
	return "unknown"
}

// DefaultHandleSize is the resize handle width in pixels.
const DefaultHandleSize = 6

// BrushConfig configures a Brush controller.
type BrushConfig struct {
	// Scale maps time onto [0, Rect.W] pixels.
	Scale timescale.Scale
	// Rect is the brush lane in surface coordinates.
	Rect render.Rect
	// HandleSize is the resize handle width; 0 means DefaultHandleSize.
	HandleSize int
	// AllowSelectionClear lets an overlay click clear the selection.
	AllowSelectionClear bool

	// OnRangeChanged reports the new selection; nil means cleared.
	OnRangeChanged func(*timerange.Range)
}

// BrushGeometry is the rendered shape of the brush: the selection body and
// its two resize handles. Empty means nothing is visible (no selection, or
// the selection lies entirely outside the viewport).
type BrushGeometry struct {
	Empty       bool
	Body        render.Rect
	HandleLeft  render.Rect
	HandleRight render.Rect
}

// Brush manages a selectable, draggable, resizable window over the visible
// time viewport. Dragging the body translates the selection, dragging a
// handle moves one edge (crossing the opposite edge flips the selection),
// and dragging on the empty overlay grows a new selection outward from the
// press point.
type Brush struct {
	cfg    BrushConfig
	router *input.Router
	grab   *input.Grab
	logger log4g.Logger

	rng           *timerange.Range
	suppressTouch bool

	site        site
	pressX      float64
	moved       bool
	anchorTime  int64
	anchorRange timerange.Range
}

// NewBrush returns an idle brush with no selection.
func NewBrush(cfg BrushConfig) *Brush {
	if cfg.HandleSize <= 0 {
		cfg.HandleSize = DefaultHandleSize
	}
	return &Brush{cfg: cfg, logger: log4g.GetLogger("gesture.brush")}
}

// Attach registers the brush with a router. Attach it after (in front of)
// the surface-wide PanZoom controller so brush presses win.
func (b *Brush) Attach(r *input.Router) {
	b.router = r
	r.Attach(b)
}

// Detach resets any in-progress drag, releases the grab and removes the
// brush from its router.
func (b *Brush) Detach() {
	b.reset()
	if b.router != nil {
		r := b.router
		b.router = nil
		r.Detach(b)
	}
}

// Range returns the current selection, nil when there is none.
func (b *Brush) Range() *timerange.Range { return b.rng }

// SetRange replaces the selection without notifying OnRangeChanged.
func (b *Brush) SetRange(r *timerange.Range) {
	if r == nil {
		b.rng = nil
		return
	}
	cp := *r
	b.rng = &cp
}

// SetScale swaps the time scale, typically after the host applied a zoom.
func (b *Brush) SetScale(s timescale.Scale) { b.cfg.Scale = s }

// SetSuppressTouch disables the brush's touch handling while a surrounding
// pinch-zoom gesture is in progress.
func (b *Brush) SetSuppressTouch(v bool) { b.suppressTouch = v }

// Geometry returns the brush shapes clipped to the current viewport. The
// body width is floored at 1px so a degenerate selection stays visible and
// grabbable.
func (b *Brush) Geometry() BrushGeometry {
	if b.rng == nil {
		return BrushGeometry{Empty: true}
	}
	viewport := timescale.Viewport(b.cfg.Scale, b.cfg.Rect.W)
	clipped, ok := b.rng.Intersection(viewport)
	if !ok {
		return BrushGeometry{Empty: true}
	}
	x0 := b.cfg.Rect.X + int(b.cfg.Scale.Pixel(clipped.Begin()))
	x1 := b.cfg.Rect.X + int(b.cfg.Scale.Pixel(clipped.End()))
	w := x1 - x0
	if w < 1 {
		w = 1
	}
	hs := b.cfg.HandleSize
	return BrushGeometry{
		Body:        render.Rect{X: x0, Y: b.cfg.Rect.Y, W: w, H: b.cfg.Rect.H},
		HandleLeft:  render.Rect{X: x0 - hs/2, Y: b.cfg.Rect.Y, W: hs, H: b.cfg.Rect.H},
		HandleRight: render.Rect{X: x0 + w - hs/2, Y: b.cfg.Rect.Y, W: hs, H: b.cfg.Rect.H},
	}
}

// HandleInput implements input.Controller.
func (b *Brush) HandleInput(ev input.Event) bool {
	switch ev.Kind {
	case input.MouseDown:
		if ev.Button == input.ButtonSecondary || !ev.HasPosition() {
			return false
		}
		return b.press(ev.X, ev.Y)
	case input.TouchStart:
		if b.suppressTouch || len(ev.Touches) != 1 {
			return false
		}
		return b.press(ev.Touches[0].X, ev.Touches[0].Y)
	case input.MouseMove:
		if b.site == siteNone || !ev.HasPosition() {
			return false
		}
		b.drag(ev.X)
		return true
	case input.TouchMove:
		if b.site == siteNone {
			return false
		}
		if b.suppressTouch {
			b.reset()
			return true
		}
		if len(ev.Touches) >= 1 {
			b.drag(ev.Touches[0].X)
		}
		return true
	case input.MouseUp:
		return b.release()
	case input.TouchEnd:
		if b.site == siteNone {
			return false
		}
		if len(ev.Touches) > 0 {
			return true
		}
		return b.release()
	case input.Cancel:
		if b.site == siteNone {
			return false
		}
		b.reset()
		return true
	}
	return false
}

func (b *Brush) press(x, y float64) bool {
	if !b.cfg.Rect.Contains(x, y) {
		return false
	}
	g := b.Geometry()
	switch {
	case !g.Empty && g.HandleLeft.Contains(x, y):
		b.site = siteHandleLeft
	case !g.Empty && g.HandleRight.Contains(x, y):
		b.site = siteHandleRight
	case !g.Empty && g.Body.Contains(x, y):
		b.site = siteBody
	default:
		b.site = siteOverlay
	}
	b.pressX = x
	b.moved = false
	if b.site == siteOverlay {
		b.anchorTime = b.cfg.Scale.Invert(x - float64(b.cfg.Rect.X))
	} else {
		b.anchorRange = *b.rng
	}
	if b.router != nil {
		b.grab = b.router.Grab(b)
	}
	b.logger.Debug("press on ", b.site, " at ", x)
	return true
}

func (b *Brush) drag(x float64) {
	if !b.moved && math.Abs(x-b.pressX) < clickThresholdPx {
		return
	}
	b.moved = true

	sc := b.cfg.Scale
	viewport := timescale.Viewport(sc, b.cfg.Rect.W)
	lx := x - float64(b.cfg.Rect.X)
	t := sc.Invert(lx)

	switch b.site {
	case siteOverlay:
		tc := clampOffset(t, viewport.Begin(), viewport.End())
		if t < b.anchorTime {
			b.update(timerange.New(tc, b.anchorTime))
		} else {
			b.update(timerange.New(b.anchorTime, tc))
		}
	case siteBody:
		// Each edge caps the shared offset against the viewport on its own,
		// so one edge hitting a bound does not halt the other.
		offset := t - sc.Invert(b.pressX-float64(b.cfg.Rect.X))
		nb := b.anchorRange.Begin() + clampOffset(offset,
			viewport.Begin()-b.anchorRange.Begin(), viewport.End()-b.anchorRange.Begin())
		ne := b.anchorRange.End() + clampOffset(offset,
			viewport.Begin()-b.anchorRange.End(), viewport.End()-b.anchorRange.End())
		b.update(timerange.New(nb, ne))
	case siteHandleLeft:
		offset := t - sc.Invert(b.pressX-float64(b.cfg.Rect.X))
		nb := b.anchorRange.Begin() + clampOffset(offset,
			viewport.Begin()-b.anchorRange.Begin(), viewport.End()-b.anchorRange.Begin())
		// timerange.New swaps when the handle crosses the fixed edge.
		b.update(timerange.New(nb, b.anchorRange.End()))
	case siteHandleRight:
		offset := t - sc.Invert(b.pressX-float64(b.cfg.Rect.X))
		ne := b.anchorRange.End() + clampOffset(offset,
			viewport.Begin()-b.anchorRange.End(), viewport.End()-b.anchorRange.End())
		b.update(timerange.New(b.anchorRange.Begin(), ne))
	}
}

func (b *Brush) release() bool {
	if b.site == siteNone {
		return false
	}
	if b.site == siteOverlay && !b.moved && b.cfg.AllowSelectionClear {
		b.logger.Debug("selection cleared")
		b.rng = nil
		if b.cfg.OnRangeChanged != nil {
			b.cfg.OnRangeChanged(nil)
		}
	}
	b.reset()
	return true
}

func (b *Brush) update(r timerange.Range) {
	b.rng = &r
	if b.cfg.OnRangeChanged != nil {
		cp := r
		b.cfg.OnRangeChanged(&cp)
	}
}

// reset clears the drag state and releases the grab on every exit path.
func (b *Brush) reset() {
	b.site = siteNone
	b.pressX = 0
	b.moved = false
	b.anchorTime = 0
	b.anchorRange = timerange.Range{}
	b.grab.Release()
	b.grab = nil
}
