// Package surface hosts the chart: it owns the framebuffer, polls pointer
// and touch input into events for the gesture controllers, and runs the
// frame loop either in a desktop window or headless.
package surface

import (
	"github.com/jrivets/log4g"

	"chartglass/input"
	"chartglass/render"
)

// Config describes a surface to run.
type Config struct {
	Width  int
	Height int
	Title  string
	// Frame is called once per tick, after input dispatch, to draw the
	// frame. Returning an error stops the loop.
	Frame func(s *Session) error
}

// Session is what a Frame callback works with: the framebuffer, the drawing
// display over it and the input router the controllers attach to.
type Session struct {
	fb      *render.Buffer
	display *render.Display
	router  *input.Router
	logger  log4g.Logger
}

func newSession(cfg Config) *Session {
	fb := render.NewBuffer(cfg.Width, cfg.Height)
	s := &Session{
		fb:      fb,
		display: render.NewDisplay(fb),
		router:  input.NewRouter(),
		logger:  log4g.GetLogger("surface"),
	}
	s.logger.Debug("session ", cfg.Width, "x", cfg.Height)
	return s
}

func (s *Session) Framebuffer() *render.Buffer { return s.fb }
func (s *Session) Display() *render.Display    { return s.display }
func (s *Session) Router() *input.Router       { return s.router }

func (s *Session) Width() int  { return s.fb.Width() }
func (s *Session) Height() int { return s.fb.Height() }
