package widget

import (
	"chartglass/gesture"
	"chartglass/render"
	"chartglass/theme"
)

// BrushView draws the current geometry of a gesture.Brush: a translucent
// body over the selected range and solid resize handles at its edges.
type BrushView struct {
	Brush *gesture.Brush
}

func (v *BrushView) Draw(d *render.Display, th *theme.Theme) {
	g := v.Brush.Geometry()
	if g.Empty {
		return
	}
	d.BlendRect(g.Body, th.Brush)
	d.FillRect(g.HandleLeft, th.Handle)
	d.FillRect(g.HandleRight, th.Handle)
}
