package surface

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"chartglass/input"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
}

// RunHeadless runs the frame loop with no window and no pointer input.
// Useful for smoke tests and for rendering frames in CI. With Ticks set it
// returns after that many frames; otherwise it runs until ctx is done.
func RunHeadless(ctx context.Context, cfg Config, hcfg HeadlessConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("invalid surface size %dx%d", cfg.Width, cfg.Height)
	}
	if hcfg.Hz <= 0 {
		hcfg.Hz = 60
	}

	s := newSession(cfg)

	t := time.NewTicker(time.Second / time.Duration(hcfg.Hz))
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			s.router.Dispatch(input.Event{Kind: input.Cancel})
			return ctx.Err()
		case <-t.C:
			if cfg.Frame != nil {
				if err := cfg.Frame(s); err != nil {
					return err
				}
			}
			tick++
			if hcfg.Ticks > 0 && tick >= hcfg.Ticks {
				return nil
			}
		}
	}
}
