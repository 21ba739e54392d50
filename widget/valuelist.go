package widget

import (
	"math"

	"github.com/dustin/go-humanize"

	"chartglass/render"
	"chartglass/theme"
)

// Row is one named reading in a ValueList.
type Row struct {
	Name  string
	Value float64
	Unit  string
}

// ValueList is a small panel listing named values, typically the series
// readings under the hovered cursor. Values are rendered with SI prefixes
// so large magnitudes stay short ("12.5 kV" rather than "12500 V").
type ValueList struct {
	Title string
	Rows  []Row
	Rect  render.Rect
}

const listPadding = 2

func (l *ValueList) Draw(d *render.Display, th *theme.Theme) {
	if l.Rect.Empty() {
		return
	}
	d.FillRect(l.Rect, th.PanelBG)

	y := l.Rect.Y + listPadding
	maxY := l.Rect.Y + l.Rect.H - th.FontHeight
	innerW := l.Rect.W - 2*listPadding

	if l.Title != "" {
		if y > maxY {
			return
		}
		title := fitText(th, l.Title, innerW)
		d.Text(th.Font, l.Rect.X+listPadding, y+th.FontOffset, title, th.Foreground)
		y += th.FontHeight
	}

	for _, row := range l.Rows {
		if y > maxY {
			break
		}
		val := FormatValue(row.Value, row.Unit)
		vw := render.TextWidth(th.Font, val)
		d.Text(th.Font, l.Rect.X+l.Rect.W-listPadding-vw, y+th.FontOffset, val, th.Foreground)

		nameW := innerW - vw - 2*listPadding
		if nameW > 0 {
			d.Text(th.Font, l.Rect.X+listPadding, y+th.FontOffset, fitText(th, row.Name, nameW), th.Dim)
		}
		y += th.FontHeight
	}
}

// FormatValue renders v with an SI prefix and at most two digits after the
// point, e.g. FormatValue(12500, "V") == "12.5 kV".
func FormatValue(v float64, unit string) string {
	val, prefix := humanize.ComputeSI(v)
	return humanize.Ftoa(math.Round(val*100)/100) + " " + prefix + unit
}
