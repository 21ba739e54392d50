package surface

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"chartglass/render"
)

// Run opens a desktop window showing the surface and blocks until the
// window closes or the frame callback fails.
func Run(cfg Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("invalid surface size %dx%d", cfg.Width, cfg.Height)
	}

	s := newSession(cfg)
	g := &game{
		s:      s,
		frame:  cfg.Frame,
		poller: newPoller(cfg.Width, cfg.Height),
	}

	title := cfg.Title
	if title == "" {
		title = "chartglass"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.Width*2, cfg.Height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	s      *Session
	frame  func(*Session) error
	poller *poller

	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *game) Update() error {
	for _, ev := range g.poller.events(g.poller.read()) {
		g.s.router.Dispatch(ev)
	}
	if g.frame != nil {
		if err := g.frame(g.s); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.s.fb
	w, h := fb.Width(), fb.Height()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, len(fb.Buffer()))
		g.fbImg = ebiten.NewImage(w, h)
	}

	fb.Snapshot(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := render.RGB888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.s.fb.Width(), g.s.fb.Height()
}
