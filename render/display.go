package render

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Display adapts a Framebuffer to drivers.Displayer so tinyfont can write
// text onto it, and carries the rectangle/line primitives the widgets use.
type Display struct {
	fb Framebuffer
}

// NewDisplay wraps fb. A nil or non-RGB565 framebuffer yields a display
// whose draws are no-ops.
func NewDisplay(fb Framebuffer) *Display {
	return &Display{fb: fb}
}

func (d *Display) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	buf, w, h := d.raw()
	if buf == nil {
		return
	}
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *Display) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// FillRectangle fills the given rectangle, clamped to the framebuffer.
func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	buf, w, h := d.raw()
	if buf == nil {
		return nil
	}

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// FillRect is FillRectangle over a Rect.
func (d *Display) FillRect(r Rect, c color.RGBA) {
	d.FillRectangle(int16(r.X), int16(r.Y), int16(r.W), int16(r.H), c)
}

// BlendRect mixes c into the rectangle at 50%, giving the translucent
// selection overlay look on a format with no alpha channel.
func (d *Display) BlendRect(r Rect, c color.RGBA) {
	buf, w, h := d.raw()
	if buf == nil {
		return
	}

	x0 := clampInt(r.X, 0, w)
	y0 := clampInt(r.Y, 0, h)
	x1 := clampInt(r.X+r.W, 0, w)
	y1 := clampInt(r.Y+r.H, 0, h)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			have := uint16(buf[off]) | uint16(buf[off+1])<<8
			hr, hg, hb := RGB888From565(have)
			mixed := RGB565(uint8((int(hr)+int(c.R))/2), uint8((int(hg)+int(c.G))/2), uint8((int(hb)+int(c.B))/2))
			buf[off] = byte(mixed)
			buf[off+1] = byte(mixed >> 8)
		}
	}
}

// HLine draws a 1px horizontal line of the given length starting at (x, y).
func (d *Display) HLine(x, y, length int, c color.RGBA) {
	d.FillRectangle(int16(x), int16(y), int16(length), 1, c)
}

// VLine draws a 1px vertical line of the given length starting at (x, y).
func (d *Display) VLine(x, y, length int, c color.RGBA) {
	d.FillRectangle(int16(x), int16(y), 1, int16(length), c)
}

// DashedHLine draws a horizontal line in on/off segments of dash pixels.
func (d *Display) DashedHLine(x, y, length, dash int, c color.RGBA) {
	if dash <= 0 {
		d.HLine(x, y, length, c)
		return
	}
	for off := 0; off < length; off += dash * 2 {
		seg := dash
		if off+seg > length {
			seg = length - off
		}
		d.HLine(x+off, y, seg, c)
	}
}

// Text writes a single text line with its baseline at y.
func (d *Display) Text(font tinyfont.Fonter, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(d, font, int16(x), int16(y), s, c)
}

// TextWidth returns the pixel width of s in the given font.
func TextWidth(font tinyfont.Fonter, s string) int {
	_, w := tinyfont.LineWidth(font, s)
	return int(w)
}

func (d *Display) raw() (buf []byte, w, h int) {
	if d.fb == nil || d.fb.Format() != PixelFormatRGB565 {
		return nil, 0, 0
	}
	return d.fb.Buffer(), d.fb.Width(), d.fb.Height()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
