package widget

import (
	"chartglass/render"
	"chartglass/theme"
)

// Baseline marks a reference value with a dashed horizontal line across the
// chart area. Min and Max give the value domain mapped onto the rect height;
// a baseline outside that domain is not drawn.
type Baseline struct {
	Value    float64
	Min, Max float64
	Rect     render.Rect
	// Label text next to the line. Empty means the formatted value.
	Label string
	Unit  string
}

const baselineDash = 3

func (b *Baseline) Draw(d *render.Display, th *theme.Theme) {
	if b.Rect.Empty() || b.Max <= b.Min {
		return
	}
	if b.Value < b.Min || b.Value > b.Max {
		return
	}

	frac := (b.Value - b.Min) / (b.Max - b.Min)
	y := b.Rect.Y + b.Rect.H - 1 - int(frac*float64(b.Rect.H-1))

	d.DashedHLine(b.Rect.X, y, b.Rect.W, baselineDash, th.Baseline)

	text := b.Label
	if text == "" {
		text = FormatValue(b.Value, b.Unit)
	}
	ly := y - th.FontHeight
	if ly < b.Rect.Y {
		ly = y + 2
	}
	d.Text(th.Font, b.Rect.X+2, ly+th.FontOffset, text, th.Baseline)
}
