package widget

import (
	"chartglass/render"
	"chartglass/theme"
)

// Align selects the horizontal anchoring of a Label around its X position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label is a single line of text. X and Y give the top of the line; the
// label positions its own baseline from the theme font metrics.
type Label struct {
	Text  string
	X, Y  int
	Align Align
	Dim   bool
	// Box draws a panel-colored background behind the text.
	Box bool
}

func (l *Label) Draw(d *render.Display, th *theme.Theme) {
	if l.Text == "" {
		return
	}
	w := render.TextWidth(th.Font, l.Text)
	x := l.X
	switch l.Align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	if l.Box {
		d.FillRect(render.Rect{X: x - 2, Y: l.Y - 1, W: w + 4, H: th.FontHeight + 2}, th.PanelBG)
	}
	c := th.Foreground
	if l.Dim {
		c = th.Dim
	}
	d.Text(th.Font, x, l.Y+th.FontOffset, l.Text, c)
}
