package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pixel(fb *Buffer, x, y int) uint16 {
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*2
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range []struct{ r, g, b uint8 }{
		{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255},
	} {
		r, g, b := RGB888From565(RGB565(c.r, c.g, c.b))
		// channel extremes survive the 5/6/5 quantization exactly
		assert.Equal(t, c.r, r)
		assert.Equal(t, c.g, g)
		assert.Equal(t, c.b, b)
	}
}

func TestFillRectangleClamps(t *testing.T) {
	fb := NewBuffer(10, 10)
	d := NewDisplay(fb)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	d.FillRectangle(-5, -5, 8, 8, white)

	assert.NotEqual(t, uint16(0), pixel(fb, 0, 0))
	assert.NotEqual(t, uint16(0), pixel(fb, 2, 2))
	assert.Equal(t, uint16(0), pixel(fb, 3, 3))

	// fully out of bounds is a no-op
	d.FillRectangle(20, 20, 5, 5, white)
	assert.Equal(t, uint16(0), pixel(fb, 9, 9))
}

func TestSetPixelOutOfBoundsIgnored(t *testing.T) {
	fb := NewBuffer(4, 4)
	d := NewDisplay(fb)
	c := color.RGBA{R: 255, A: 255}

	d.SetPixel(-1, 0, c)
	d.SetPixel(0, -1, c)
	d.SetPixel(4, 0, c)
	d.SetPixel(0, 4, c)
	for _, b := range fb.Buffer() {
		assert.Zero(t, b)
	}

	d.SetPixel(1, 1, c)
	assert.Equal(t, RGB565(255, 0, 0), pixel(fb, 1, 1))
}

func TestBlendRectMixes(t *testing.T) {
	fb := NewBuffer(4, 4)
	d := NewDisplay(fb)

	fb.ClearRGB(0, 0, 0)
	d.BlendRect(Rect{X: 0, Y: 0, W: 4, H: 4}, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	got := pixel(fb, 1, 1)
	assert.NotEqual(t, uint16(0), got, "blend over black lightens")
	assert.NotEqual(t, RGB565(200, 200, 200), got, "blend is not a plain fill")
}

func TestDashedHLine(t *testing.T) {
	fb := NewBuffer(12, 3)
	d := NewDisplay(fb)
	c := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	d.DashedHLine(0, 1, 12, 2, c)

	on := RGB565(255, 255, 255)
	assert.Equal(t, on, pixel(fb, 0, 1))
	assert.Equal(t, on, pixel(fb, 1, 1))
	assert.Equal(t, uint16(0), pixel(fb, 2, 1))
	assert.Equal(t, uint16(0), pixel(fb, 3, 1))
	assert.Equal(t, on, pixel(fb, 4, 1))
}

func TestNilFramebufferIsNoOp(t *testing.T) {
	d := NewDisplay(nil)
	d.SetPixel(0, 0, color.RGBA{})
	d.FillRect(Rect{W: 10, H: 10}, color.RGBA{})
	assert.NoError(t, d.Display())

	w, h := d.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}
