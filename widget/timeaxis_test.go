package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartglass/render"
	"chartglass/timerange"
	"chartglass/timescale"
)

func axis(begin, end int64, width int) *TimeAxis {
	return &TimeAxis{
		Scale: timescale.NewLinear(timerange.New(begin, end), width),
		Rect:  render.Rect{W: width, H: 12},
	}
}

func TestTicksMinuteDomain(t *testing.T) {
	// 100 ms/px wants a step of at least 8 s, so 15 s is picked.
	ticks := axis(0, 60000, 600).Ticks()
	require.Len(t, ticks, 5)

	want := []struct {
		t     int64
		x     int
		label string
	}{
		{0, 0, "00:00:00"},
		{15000, 150, "00:00:15"},
		{30000, 300, "00:00:30"},
		{45000, 450, "00:00:45"},
		{60000, 600, "00:01:00"},
	}
	for i, w := range want {
		assert.Equal(t, w.t, ticks[i].T)
		assert.Equal(t, w.x, ticks[i].X)
		assert.Equal(t, w.label, ticks[i].Label)
	}
}

func TestTicksAlignToStepMultiples(t *testing.T) {
	ticks := axis(1230, 61230, 600).Ticks()
	require.NotEmpty(t, ticks)
	assert.Equal(t, int64(15000), ticks[0].T, "first tick rounds up to a step multiple")
	for _, tk := range ticks {
		assert.Zero(t, tk.T%15000)
	}
}

func TestTicksMidnightPromotedToDate(t *testing.T) {
	// One hour at 6 s/px picks a 15 m step; the midnight tick shows the
	// date instead of "00:00".
	ticks := axis(0, 3600000, 600).Ticks()
	require.Len(t, ticks, 5)
	assert.Equal(t, "Jan 01", ticks[0].Label)
	assert.Equal(t, "00:15", ticks[1].Label)
	assert.Equal(t, "01:00", ticks[4].Label)
}

func TestTicksDayDomainUsesDates(t *testing.T) {
	ticks := axis(0, 14*msDay, 700).Ticks()
	require.NotEmpty(t, ticks)
	for _, tk := range ticks {
		assert.Equal(t, "Jan", tk.Label[:3])
	}
}

func TestPickStepBeyondLadder(t *testing.T) {
	// 80 days per tick slot: the 30 d ladder top doubles to 120 d.
	assert.Equal(t, 120*msDay, pickStep(float64(msDay)))
}

func TestTicksDegenerateDomain(t *testing.T) {
	assert.Empty(t, axis(500, 500, 600).Ticks())
	assert.Empty(t, (&TimeAxis{}).Ticks())
}
