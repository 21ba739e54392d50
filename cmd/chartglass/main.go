package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/jrivets/log4g"
	ucli "gopkg.in/urfave/cli.v2"

	"chartglass/internal/buildinfo"
	"chartglass/rangeexpr"
	"chartglass/surface"
	"chartglass/theme"
)

const (
	argLogLevel = "log-level"
	argTheme    = "theme"

	argWidth    = "width"
	argHeight   = "height"
	argRange    = "range"
	argHeadless = "headless"
	argHz       = "hz"
	argTicks    = "ticks"
)

var logger = log4g.GetLogger("chartglass")

func main() {
	defer log4g.Shutdown()

	app := &ucli.App{
		Name:    "chartglass",
		Version: buildinfo.Short(),
		Usage:   "interactive time-series chart surface",
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:  argLogLevel,
				Usage: "log level: trace, debug, info, warn, error",
				Value: "info",
			},
			&ucli.StringFlag{
				Name:  argTheme,
				Usage: "theme file path (JSON)",
			},
		},
		Commands: []*ucli.Command{
			{
				Name:      "demo",
				Usage:     "Run the demo chart",
				UsageText: "chartglass demo [command options]",
				Action:    runDemo,
				Flags: []ucli.Flag{
					&ucli.IntFlag{
						Name:  argWidth,
						Usage: "surface width in pixels",
						Value: 640,
					},
					&ucli.IntFlag{
						Name:  argHeight,
						Usage: "surface height in pixels",
						Value: 360,
					},
					&ucli.StringFlag{
						Name:  argRange,
						Usage: "initial time range, e.g. \"-15m\" or \"2024-01-02..2024-01-03\"",
						Value: "-15m",
					},
					&ucli.BoolFlag{
						Name:  argHeadless,
						Usage: "run without a window",
					},
					&ucli.IntFlag{
						Name:  argHz,
						Usage: "frame rate in headless mode",
						Value: 60,
					},
					&ucli.IntFlag{
						Name:  argTicks,
						Usage: "stop after N frames in headless mode (0 = run forever)",
					},
				},
			},
		},
	}

	sort.Sort(ucli.FlagsByName(app.Flags))
	for _, c := range app.Commands {
		sort.Sort(ucli.FlagsByName(c.Flags))
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogging(c *ucli.Context) error {
	var lvl log4g.Level
	switch strings.ToLower(c.String(argLogLevel)) {
	case "trace":
		lvl = log4g.TRACE
	case "debug":
		lvl = log4g.DEBUG
	case "info", "":
		lvl = log4g.INFO
	case "warn":
		lvl = log4g.WARN
	case "error":
		lvl = log4g.ERROR
	default:
		return fmt.Errorf("unknown log level %q", c.String(argLogLevel))
	}
	log4g.SetLogLevel("", lvl)
	return nil
}

func initTheme(c *ucli.Context) (*theme.Theme, error) {
	if path := c.String(argTheme); path != "" {
		return theme.Load(path)
	}
	return theme.Default(), nil
}

func runDemo(c *ucli.Context) error {
	if err := initLogging(c); err != nil {
		return err
	}
	th, err := initTheme(c)
	if err != nil {
		return err
	}

	rng, err := rangeexpr.Eval(c.String(argRange), demoNow())
	if err != nil {
		return err
	}

	width := c.Int(argWidth)
	height := c.Int(argHeight)
	d := newDemo(th, rng, width, height)
	cfg := surface.Config{
		Width:  width,
		Height: height,
		Title:  "chartglass " + buildinfo.Short(),
		Frame:  d.frame,
	}

	if c.Bool(argHeadless) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := surface.RunHeadless(ctx, cfg, surface.HeadlessConfig{
			Hz:    c.Int(argHz),
			Ticks: uint64(c.Int(argTicks)),
		})
		if err == context.Canceled {
			return nil
		}
		return err
	}

	logger.Info("starting window ", width, "x", height, ", range ", rng)
	return surface.Run(cfg)
}
