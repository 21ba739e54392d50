// Package render provides the pixel framebuffer, the drawing primitives the
// widgets use, and the adapter that lets tinyfont draw text onto it.
package render

import "sync"

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a pixel buffer plus a "present" hook. The desktop surface
// presents it into a window; an embedded port would push it to a display.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Buffer is an in-memory RGB565 framebuffer.
type Buffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

// NewBuffer returns a zeroed RGB565 framebuffer of the given size.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * 2
	return &Buffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *Buffer) Width() int          { return f.width }
func (f *Buffer) Height() int         { return f.height }
func (f *Buffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *Buffer) StrideBytes() int    { return f.stride }
func (f *Buffer) Buffer() []byte      { return f.buf }
func (f *Buffer) Present() error      { return nil }

func (f *Buffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Snapshot copies the raw RGB565 contents into dst, which must be at least
// len(Buffer()) bytes. Used by the window blit so a present never races a
// concurrent draw.
func (f *Buffer) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// RGB565 packs an 8-bit RGB triple into the 16-bit wire format.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888From565 expands a packed RGB565 pixel back to 8-bit channels.
func RGB888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}
