package widget

import (
	"time"

	"chartglass/render"
	"chartglass/theme"
	"chartglass/timescale"
)

const (
	msSecond = int64(1000)
	msMinute = 60 * msSecond
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
)

// tickSteps is the ladder of tick intervals the axis picks from, smallest
// first.
var tickSteps = []int64{
	msSecond, 2 * msSecond, 5 * msSecond, 15 * msSecond, 30 * msSecond,
	msMinute, 2 * msMinute, 5 * msMinute, 15 * msMinute, 30 * msMinute,
	msHour, 3 * msHour, 6 * msHour, 12 * msHour,
	msDay, 2 * msDay, 7 * msDay, 14 * msDay, 30 * msDay,
}

const (
	// minTickGapPx is the smallest allowed pixel distance between ticks.
	minTickGapPx = 80
	// minLabelGapPx keeps adjacent labels from touching.
	minLabelGapPx = 4

	tickMarkLen = 4
)

// Tick is one axis tick with its surface X position and rendered label.
type Tick struct {
	T     int64
	X     int
	Label string
}

// TimeAxis draws the horizontal time axis for the given scale: a base line,
// tick marks at round timestamps and labels underneath. Tick density adapts
// to the zoom level.
type TimeAxis struct {
	Scale timescale.Scale
	Rect  render.Rect
}

// Ticks computes the visible ticks for the current scale and rect width.
func (a *TimeAxis) Ticks() []Tick {
	if a.Rect.W <= 0 || a.Scale == nil {
		return nil
	}
	dom := a.Scale.Domain()
	if dom.Duration() <= 0 {
		return nil
	}

	step := pickStep(float64(dom.Duration()) / float64(a.Rect.W))
	var ticks []Tick
	for t := ceilDiv(dom.Begin(), step) * step; t <= dom.End(); t += step {
		ticks = append(ticks, Tick{
			T:     t,
			X:     a.Rect.X + int(a.Scale.Pixel(t)),
			Label: formatTick(t, step),
		})
	}
	return ticks
}

func (a *TimeAxis) Draw(d *render.Display, th *theme.Theme) {
	if a.Rect.Empty() {
		return
	}
	d.HLine(a.Rect.X, a.Rect.Y, a.Rect.W, th.Axis)

	lastLabelEnd := a.Rect.X - minLabelGapPx
	for _, tk := range a.Ticks() {
		if tk.X < a.Rect.X || tk.X >= a.Rect.X+a.Rect.W {
			continue
		}
		d.VLine(tk.X, a.Rect.Y, tickMarkLen, th.Axis)

		w := render.TextWidth(th.Font, tk.Label)
		lx := tk.X - w/2
		if lx < a.Rect.X {
			lx = a.Rect.X
		}
		if lx+w > a.Rect.X+a.Rect.W {
			lx = a.Rect.X + a.Rect.W - w
		}
		if lx < lastLabelEnd+minLabelGapPx {
			continue
		}
		d.Text(th.Font, lx, a.Rect.Y+tickMarkLen+th.FontOffset, tk.Label, th.Dim)
		lastLabelEnd = lx + w
	}
}

// pickStep returns the smallest step whose on-screen spacing is at least
// minTickGapPx, doubling past the ladder for very wide domains.
func pickStep(msPerPx float64) int64 {
	need := int64(msPerPx * minTickGapPx)
	for _, s := range tickSteps {
		if s >= need {
			return s
		}
	}
	s := tickSteps[len(tickSteps)-1]
	for s < need {
		s *= 2
	}
	return s
}

// formatTick renders t for the given tick step: seconds resolution when the
// step is below a minute, minutes below a day, dates otherwise. A tick on a
// midnight boundary is promoted to a date so day transitions stay readable
// while panning.
func formatTick(t, step int64) string {
	ut := time.UnixMilli(t).UTC()
	switch {
	case step < msMinute:
		return ut.Format("15:04:05")
	case step < msDay:
		if t%msDay == 0 {
			return ut.Format("Jan 02")
		}
		return ut.Format("15:04")
	default:
		return ut.Format("Jan 02")
	}
}

// ceilDiv divides rounding toward positive infinity, so the first tick is
// the first step multiple at or after the domain begin.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
