package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingController struct {
	router   *Router
	grab     *Grab
	events   []Kind
	consume  bool
	grabOnDn bool
}

func (c *recordingController) HandleInput(ev Event) bool {
	c.events = append(c.events, ev.Kind)
	if ev.Kind == MouseDown && c.grabOnDn {
		c.grab = c.router.Grab(c)
	}
	if ev.Kind == MouseUp && c.grab != nil {
		c.grab.Release()
		c.grab = nil
	}
	return c.consume
}

func TestDispatchFrontToBack(t *testing.T) {
	r := NewRouter()
	back := &recordingController{router: r}
	front := &recordingController{router: r, consume: true}
	r.Attach(back)
	r.Attach(front) // attached last, dispatched first

	r.Dispatch(Event{Kind: MouseDown})
	assert.Equal(t, []Kind{MouseDown}, front.events)
	assert.Empty(t, back.events)
}

func TestGrabRoutesContinuations(t *testing.T) {
	r := NewRouter()
	other := &recordingController{router: r, consume: true}
	owner := &recordingController{router: r, consume: true, grabOnDn: true}
	r.Attach(other)
	r.Attach(owner)

	r.Dispatch(Event{Kind: MouseDown})
	assert.True(t, r.Grabbed())

	// Moves and the release go only to the grab holder, even though "other"
	// would otherwise consume them.
	r.Dispatch(Event{Kind: MouseMove})
	r.Dispatch(Event{Kind: MouseUp})
	assert.Equal(t, []Kind{MouseDown, MouseMove, MouseUp}, owner.events)
	assert.Empty(t, other.events)

	// Release at MouseUp restored normal dispatch: the front controller
	// consumes the move again.
	assert.False(t, r.Grabbed())
	r.Dispatch(Event{Kind: MouseMove})
	assert.Equal(t, []Kind{MouseDown, MouseMove, MouseUp, MouseMove}, owner.events)
	assert.Empty(t, other.events)
}

func TestGrabPreemptionCancelsOwner(t *testing.T) {
	r := NewRouter()
	a := &recordingController{router: r}
	b := &recordingController{router: r}

	ga := r.Grab(a)
	assert.True(t, r.Grabbed())

	// b takes over mid-gesture: a is told to cancel before b's grab lands.
	r.Grab(b)
	assert.Equal(t, []Kind{Cancel}, a.events)
	assert.True(t, r.Grabbed())

	// Continuations now flow to b, and a's stale grab cannot clobber b's.
	r.Dispatch(Event{Kind: MouseMove})
	assert.Equal(t, []Kind{MouseMove}, b.events)
	ga.Release()
	assert.True(t, r.Grabbed())

	// Re-grabbing by the same owner does not cancel itself.
	gb := r.Grab(b)
	assert.Equal(t, []Kind{MouseMove}, b.events)
	gb.Release()
	assert.False(t, r.Grabbed())
}

func TestDetachReleasesGrab(t *testing.T) {
	r := NewRouter()
	owner := &recordingController{router: r, consume: true, grabOnDn: true}
	r.Attach(owner)

	r.Dispatch(Event{Kind: MouseDown})
	assert.True(t, r.Grabbed())

	r.Detach(owner)
	assert.False(t, r.Grabbed())

	// Detached controller no longer receives anything.
	r.Dispatch(Event{Kind: MouseMove})
	assert.Equal(t, []Kind{MouseDown}, owner.events)
}

func TestGrabReleaseIdempotent(t *testing.T) {
	r := NewRouter()
	c := &recordingController{router: r}
	g := r.Grab(c)
	g.Release()
	g.Release()
	assert.False(t, r.Grabbed())

	// A stale grab's release must not clobber a newer grab.
	g2 := r.Grab(c)
	g.Release()
	assert.True(t, r.Grabbed())
	g2.Release()
	assert.False(t, r.Grabbed())
}

func TestHasPosition(t *testing.T) {
	assert.True(t, Event{X: 1, Y: 2}.HasPosition())
	assert.False(t, Event{X: math.NaN(), Y: 2}.HasPosition())
	assert.False(t, Event{X: 1, Y: math.NaN()}.HasPosition())
}
