package theme

import (
	"encoding/json"
	"image/color"
	"os"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// fileTheme mirrors the on-disk layout. All fields are optional; missing
// ones keep the Default() value.
type fileTheme struct {
	Colors     map[string]string `mapstructure:"colors"`
	HandleSize int               `mapstructure:"handleSize"`
}

// Load reads theme overrides from the JSON file at path and applies them on
// top of Default(). Unknown keys are reported as errors so typos in config
// files do not silently fall back to defaults.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read theme file %s", path)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "could not parse theme file %s", path)
	}

	var ft fileTheme
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &ft,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errors.Wrapf(err, "invalid theme file %s", path)
	}

	th := Default()
	if err := applyColors(th, ft.Colors); err != nil {
		return nil, errors.Wrapf(err, "invalid theme file %s", path)
	}
	if ft.HandleSize > 0 {
		th.HandleSize = ft.HandleSize
	}
	return th, nil
}

func applyColors(th *Theme, colors map[string]string) error {
	for name, val := range colors {
		c, err := ParseColor(val)
		if err != nil {
			return err
		}
		switch name {
		case "background":
			th.Background = c
		case "foreground":
			th.Foreground = c
		case "dim":
			th.Dim = c
		case "panel":
			th.PanelBG = c
		case "axis":
			th.Axis = c
		case "baseline":
			th.Baseline = c
		case "selection":
			th.Selection = c
		case "brush":
			th.Brush = c
		case "handle":
			th.Handle = c
		case "cursor":
			th.Cursor = c
		default:
			return errors.Errorf("unknown color %q", name)
		}
	}
	return nil
}

// ParseColor parses a "#rrggbb" hex color.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, errors.Errorf("color %q must have the form #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "color %q must have the form #rrggbb", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
