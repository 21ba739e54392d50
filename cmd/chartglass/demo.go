package main

import (
	"image/color"
	"math"
	"time"

	"chartglass/gesture"
	"chartglass/render"
	"chartglass/surface"
	"chartglass/theme"
	"chartglass/timerange"
	"chartglass/timescale"
	"chartglass/widget"
)

// demoNow anchors all relative range expressions for the demo run.
func demoNow() time.Time { return time.Now() }

// series is one synthetic signal in the demo chart.
type series struct {
	name  string
	unit  string
	color color.RGBA
	f     func(tMillis int64) float64
}

// demo wires the widgets and gesture controllers over a synthetic data set.
type demo struct {
	th      *theme.Theme
	initial timerange.Range

	chartRect render.Rect
	axisRect  render.Rect
	stripRect render.Rect

	scale      *timescale.Linear
	stripScale *timescale.Linear

	panZoom *gesture.PanZoom
	brush   *gesture.Brush

	title     *widget.Label
	axis      *widget.TimeAxis
	baseline  *widget.Baseline
	selection *widget.SelectionView
	brushView *widget.BrushView
	values    *widget.ValueList

	series   []series
	hover    bool
	hoverT   int64
	attached bool
}

func newDemo(th *theme.Theme, rng timerange.Range, width, height int) *demo {
	d := &demo{
		th:        th,
		initial:   rng,
		chartRect: render.Rect{X: 0, Y: 0, W: width, H: height - 44},
		axisRect:  render.Rect{X: 0, Y: height - 44, W: width, H: 14},
		stripRect: render.Rect{X: 0, Y: height - 28, W: width, H: 28},
	}

	d.scale = timescale.NewLinear(rng, width)
	// the overview strip shows a 4x window around the initial range
	overview := timerange.New(
		rng.Begin()-rng.Duration()*3/2,
		rng.End()+rng.Duration()*3/2,
	)
	d.stripScale = timescale.NewLinear(overview, width)

	d.series = []series{
		{
			name:  "voltage",
			unit:  "V",
			color: color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff},
			f: func(t int64) float64 {
				return 230 + 12*math.Sin(float64(t)/20000)
			},
		},
		{
			name:  "current",
			unit:  "A",
			color: color.RGBA{R: 0x2b, G: 0x7f, B: 0xa8, A: 0xff},
			f: func(t int64) float64 {
				return 0.02 * (1 + 0.5*math.Cos(float64(t)/45000))
			},
		},
	}

	d.panZoom = gesture.NewPanZoom(gesture.PanZoomConfig{
		Scale:          d.scale,
		Rect:           d.chartRect,
		EnablePanZoom:  true,
		EnableDragZoom: true,
		MinDuration:    1000,
		OnZoom:         d.setRange,
		OnMouseMove: func(x, y float64) {
			d.hover = true
			d.hoverT = d.scale.Invert(x)
		},
		OnMouseOut:  func() { d.hover = false },
		OnMouseClick: func(x, y float64) {
			logger.Debug("click at t=", d.scale.Invert(x))
		},
		OnContextMenu: func(x, y float64) {
			d.setRange(d.initial)
		},
		OnPinchZoomStart: func() { d.brush.SetSuppressTouch(true) },
		OnPinchZoomEnd:   func() { d.brush.SetSuppressTouch(false) },
	})

	d.brush = gesture.NewBrush(gesture.BrushConfig{
		Scale:               d.stripScale,
		Rect:                d.stripRect,
		HandleSize:          th.HandleSize,
		AllowSelectionClear: true,
		OnRangeChanged: func(r *timerange.Range) {
			if r == nil {
				d.setRange(d.initial)
				return
			}
			d.setRange(*r)
		},
	})
	d.brush.SetRange(&rng)

	d.title = &widget.Label{Text: "demo feed", X: 4, Y: 4, Dim: true, Box: true}
	d.axis = &widget.TimeAxis{Scale: d.scale, Rect: d.axisRect}
	d.baseline = &widget.Baseline{
		Value: 230, Min: 200, Max: 260,
		Rect: d.chartRect, Unit: "V", Label: "nominal",
	}
	d.selection = &widget.SelectionView{PanZoom: d.panZoom, Scale: d.scale, Rect: d.chartRect}
	d.brushView = &widget.BrushView{Brush: d.brush}
	d.values = &widget.ValueList{
		Title: "cursor",
		Rect:  render.Rect{X: width - 130, Y: 4, W: 126, H: 40},
	}
	return d
}

// setRange applies a new visible range to the chart scale. The overview
// strip keeps its fixed domain so the brush stays a stable reference.
func (d *demo) setRange(r timerange.Range) {
	logger.Debug("range -> ", r)
	d.scale.SetDomain(r)
}

// frame draws one frame. Called by the surface loop after input dispatch.
func (d *demo) frame(s *surface.Session) error {
	if !d.attached {
		// back to front: the pan-zoom controller attaches first so the
		// brush ends up in front of it
		d.panZoom.Attach(s.Router())
		d.brush.Attach(s.Router())
		d.attached = true
	}

	fb := s.Framebuffer()
	fb.ClearRGB(d.th.Background.R, d.th.Background.G, d.th.Background.B)
	disp := s.Display()

	d.drawSeries(disp)
	d.title.Draw(disp, d.th)
	d.baseline.Draw(disp, d.th)
	d.axis.Draw(disp, d.th)
	d.drawStrip(disp)
	d.brushView.Draw(disp, d.th)
	d.selection.Draw(disp, d.th)
	d.drawValues(disp)
	return nil
}

// drawSeries paints each signal as a connected polyline, one sample per
// pixel column, normalized into the chart rect.
func (d *demo) drawSeries(disp *render.Display) {
	for _, sr := range d.series {
		lo, hi := seriesBounds(sr, d.scale, d.chartRect.W)
		prevY := -1
		for x := 0; x < d.chartRect.W; x++ {
			v := sr.f(d.scale.Invert(float64(x)))
			y := d.chartRect.Y + d.chartRect.H - 2 - int((v-lo)/(hi-lo)*float64(d.chartRect.H-4))
			if prevY >= 0 && y != prevY {
				top, n := prevY, y-prevY
				if n < 0 {
					top, n = y, -n
				}
				disp.VLine(d.chartRect.X+x, top, n, sr.color)
			} else {
				disp.SetPixel(int16(d.chartRect.X+x), int16(y), sr.color)
			}
			prevY = y
		}
	}
}

func seriesBounds(sr series, sc timescale.Scale, width int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for x := 0; x < width; x++ {
		v := sr.f(sc.Invert(float64(x)))
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

func (d *demo) drawStrip(disp *render.Display) {
	disp.FillRect(d.stripRect, d.th.PanelBG)
	disp.HLine(d.stripRect.X, d.stripRect.Y, d.stripRect.W, d.th.Axis)
}

func (d *demo) drawValues(disp *render.Display) {
	if !d.hover {
		return
	}
	rows := make([]widget.Row, 0, len(d.series))
	for _, sr := range d.series {
		rows = append(rows, widget.Row{Name: sr.name, Value: sr.f(d.hoverT), Unit: sr.unit})
	}
	d.values.Rows = rows
	d.values.Draw(disp, d.th)
}
