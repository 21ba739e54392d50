package input

// Controller consumes events from a Router. HandleInput reports whether the
// event was consumed; unconsumed events continue to the next controller.
type Controller interface {
	HandleInput(ev Event) bool
}

// Router dispatches events to attached controllers, front to back, and
// tracks the single active grab. A controller acquires a grab at gesture
// start so that moves and releases keep flowing to it even when the pointer
// leaves its bounds, and releases it on every gesture exit path.
type Router struct {
	controllers []Controller
	grab        *Grab
}

// NewRouter returns an empty router.
func NewRouter() *Router { return &Router{} }

// Attach adds c in front of previously attached controllers.
func (r *Router) Attach(c Controller) {
	r.controllers = append([]Controller{c}, r.controllers...)
}

// Detach removes c and force-releases its grab, if held. Safe to call for a
// controller that was never attached.
func (r *Router) Detach(c Controller) {
	for i, have := range r.controllers {
		if have == c {
			r.controllers = append(r.controllers[:i], r.controllers[i+1:]...)
			break
		}
	}
	if r.grab != nil && r.grab.owner == c {
		r.grab.Release()
	}
}

// Grab routes all subsequent continuation events (moves, releases, Cancel)
// exclusively to c until the returned Grab is released. A previous grab is
// released first, and its owner receives a Cancel so the pre-empted gesture
// resets its state; one gesture is active at a time.
func (r *Router) Grab(c Controller) *Grab {
	if prev := r.grab; prev != nil {
		prev.Release()
		if prev.owner != c {
			prev.owner.HandleInput(Event{Kind: Cancel})
		}
	}
	g := &Grab{router: r, owner: c}
	r.grab = g
	return g
}

// Grabbed reports whether any controller currently holds the grab.
func (r *Router) Grabbed() bool { return r.grab != nil }

// Dispatch routes one event. Continuation events go to the grab holder;
// everything else walks the controller list until consumed. Events are
// processed strictly in call order; Dispatch never reorders or batches.
func (r *Router) Dispatch(ev Event) {
	if r.grab != nil && isContinuation(ev.Kind) {
		r.grab.owner.HandleInput(ev)
		return
	}
	for _, c := range r.controllers {
		if c.HandleInput(ev) {
			return
		}
	}
}

func isContinuation(k Kind) bool {
	switch k {
	case MouseMove, MouseUp, TouchMove, TouchEnd, Cancel:
		return true
	}
	return false
}

// Grab is the scoped input subscription held for the duration of a gesture.
type Grab struct {
	router   *Router
	owner    Controller
	released bool
}

// Release returns event routing to normal dispatch. Idempotent, so gesture
// exit paths (release, cancel, teardown) may all call it unconditionally.
func (g *Grab) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	if g.router.grab == g {
		g.router.grab = nil
	}
}
