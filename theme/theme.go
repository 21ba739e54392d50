// Package theme holds the styling configuration shared by all widgets.
package theme

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Theme is the widget color palette plus font metrics. Widgets treat it as
// read-only; the demo loads overrides from a JSON file at startup.
type Theme struct {
	Background color.RGBA
	Foreground color.RGBA
	Dim        color.RGBA
	PanelBG    color.RGBA

	Axis      color.RGBA
	Baseline  color.RGBA
	Selection color.RGBA
	Brush     color.RGBA
	Handle    color.RGBA
	Cursor    color.RGBA

	Font tinyfont.Fonter
	// FontHeight is the line advance; FontOffset the baseline offset from
	// the line top.
	FontHeight int
	FontOffset int

	HandleSize int
}

// Default returns the built-in dark palette.
func Default() *Theme {
	return &Theme{
		Background: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Foreground: color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		Dim:        color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
		PanelBG:    color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xff},

		Axis:      color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
		Baseline:  color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff},
		Selection: color.RGBA{R: 0x2b, G: 0x7f, B: 0xa8, A: 0xff},
		Brush:     color.RGBA{R: 0x72, G: 0x6c, B: 0xae, A: 0xff},
		Handle:    color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		Cursor:    color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff},

		Font:       &tinyfont.TomThumb,
		FontHeight: 8,
		FontOffset: 6,

		HandleSize: 6,
	}
}
