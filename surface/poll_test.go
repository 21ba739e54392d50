package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartglass/input"
)

func kinds(evs []input.Event) []input.Kind {
	var ks []input.Kind
	for _, e := range evs {
		ks = append(ks, e.Kind)
	}
	return ks
}

func TestPollerButtonEdges(t *testing.T) {
	p := newPoller(800, 600)

	evs := p.events(sample{x: 100, y: 100, left: true})
	assert.Equal(t, []input.Kind{input.MouseMove, input.MouseDown}, kinds(evs))
	assert.Equal(t, input.ButtonPrimary, evs[1].Button)

	// held button, no motion: nothing
	assert.Empty(t, p.events(sample{x: 100, y: 100, left: true}))

	evs = p.events(sample{x: 100, y: 100})
	require.Len(t, evs, 1)
	assert.Equal(t, input.MouseUp, evs[0].Kind)
}

func TestPollerRightClickContextMenu(t *testing.T) {
	p := newPoller(800, 600)
	p.events(sample{x: 50, y: 50})

	evs := p.events(sample{x: 50, y: 50, right: true})
	assert.Equal(t, []input.Kind{input.MouseDown, input.ContextMenu}, kinds(evs))
	assert.Equal(t, input.ButtonSecondary, evs[0].Button)
}

func TestPollerMouseOutOnce(t *testing.T) {
	p := newPoller(800, 600)
	p.events(sample{x: 100, y: 100})

	evs := p.events(sample{x: 100, y: 700})
	assert.Equal(t, []input.Kind{input.MouseOut}, kinds(evs))

	// still outside: no repeat
	assert.Empty(t, p.events(sample{x: 120, y: 700}))

	// back inside resumes moves
	evs = p.events(sample{x: 100, y: 100})
	assert.Equal(t, []input.Kind{input.MouseMove}, kinds(evs))
}

func TestPollerDragContinuesOutside(t *testing.T) {
	p := newPoller(800, 600)
	p.events(sample{x: 100, y: 100})
	p.events(sample{x: 100, y: 100, left: true})

	// dragging past the edge still reports moves for the captured gesture
	evs := p.events(sample{x: 900, y: 100, left: true})
	assert.Contains(t, kinds(evs), input.MouseOut)
	assert.Contains(t, kinds(evs), input.MouseMove)
}

func TestPollerWheel(t *testing.T) {
	p := newPoller(800, 600)
	p.events(sample{x: 100, y: 100})

	evs := p.events(sample{x: 100, y: 100, wheelDY: -100})
	require.Len(t, evs, 1)
	assert.Equal(t, input.Wheel, evs[0].Kind)
	assert.Equal(t, -100.0, evs[0].WheelDY)

	// wheel outside the surface is dropped
	p.events(sample{x: 900, y: 100})
	assert.Empty(t, p.events(sample{x: 900, y: 100, wheelDY: -100}))
}

func TestPollerTouchLifecycle(t *testing.T) {
	p := newPoller(800, 600)

	one := []input.Touch{{ID: 1, X: 100, Y: 100}}
	two := []input.Touch{{ID: 1, X: 100, Y: 100}, {ID: 2, X: 200, Y: 100}}

	evs := p.events(sample{x: -1, y: -1, touches: one})
	assert.Equal(t, []input.Kind{input.TouchStart}, kinds(evs))

	// second finger lands: another start with both touches
	evs = p.events(sample{x: -1, y: -1, touches: two})
	require.Len(t, evs, 1)
	assert.Equal(t, input.TouchStart, evs[0].Kind)
	assert.Len(t, evs[0].Touches, 2)

	// motion
	moved := []input.Touch{{ID: 1, X: 110, Y: 100}, {ID: 2, X: 200, Y: 100}}
	evs = p.events(sample{x: -1, y: -1, touches: moved})
	assert.Equal(t, []input.Kind{input.TouchMove}, kinds(evs))

	// finger 2 lifts: end event carries the survivor
	evs = p.events(sample{x: -1, y: -1, touches: moved[:1]})
	require.Len(t, evs, 1)
	assert.Equal(t, input.TouchEnd, evs[0].Kind)
	require.Len(t, evs[0].Touches, 1)
	assert.Equal(t, int64(1), evs[0].Touches[0].ID)

	evs = p.events(sample{x: -1, y: -1})
	require.Len(t, evs, 1)
	assert.Equal(t, input.TouchEnd, evs[0].Kind)
	assert.Empty(t, evs[0].Touches)
}
