// Package widget implements the chart overlay widgets: labels, value lists,
// baselines, the time axis and the views for the gesture controllers. All
// widgets draw onto a render.Display and take their colors and font from a
// theme.Theme.
package widget

import (
	"chartglass/render"
	"chartglass/theme"
)

// Widget is anything the surface can draw each frame.
type Widget interface {
	Draw(d *render.Display, th *theme.Theme)
}

// fitText truncates s so it fits into width pixels of the theme font,
// appending ".." when anything was cut.
func fitText(th *theme.Theme, s string, width int) string {
	if render.TextWidth(th.Font, s) <= width {
		return s
	}
	for len(s) > 0 {
		s = s[:len(s)-1]
		if render.TextWidth(th.Font, s+"..") <= width {
			return s + ".."
		}
	}
	return ""
}
