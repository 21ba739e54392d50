package widget

import (
	"time"

	"chartglass/gesture"
	"chartglass/render"
	"chartglass/theme"
	"chartglass/timescale"
)

// SelectionView draws the visual output of a gesture.PanZoom: the drag-zoom
// selection rectangle while one is in progress, and a cursor line with a
// timestamp readout while the pointer hovers the chart.
type SelectionView struct {
	PanZoom *gesture.PanZoom
	// Scale resolves the hovered X back to a timestamp for the readout.
	// Nil draws the cursor line without one.
	Scale timescale.Scale
	Rect  render.Rect
}

func (v *SelectionView) Draw(d *render.Display, th *theme.Theme) {
	vis := v.PanZoom.Visual()
	for _, r := range vis.Rects {
		d.BlendRect(r, th.Selection)
	}
	if vis.Cursor == nil {
		return
	}

	d.VLine(vis.Cursor.X, v.Rect.Y, v.Rect.H, th.Cursor)
	if v.Scale == nil {
		return
	}

	t := v.Scale.Invert(float64(vis.Cursor.X - v.Rect.X))
	label := time.UnixMilli(t).UTC().Format("15:04:05")
	lx := vis.Cursor.X + 3
	if w := render.TextWidth(th.Font, label); lx+w > v.Rect.X+v.Rect.W {
		lx = vis.Cursor.X - 3 - w
	}
	d.Text(th.Font, lx, v.Rect.Y+th.FontOffset, label, th.Cursor)
}
