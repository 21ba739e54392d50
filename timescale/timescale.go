// Package timescale maps time instants to pixel coordinates and back.
package timescale

import "chartglass/timerange"

// Scale is a monotonic, invertible mapping between epoch milliseconds and
// pixel offsets. Implementations must keep Pixel and Invert consistent:
// Invert(Pixel(t)) == t up to rounding.
type Scale interface {
	// Pixel returns the pixel offset of instant t within the scale's width.
	Pixel(t int64) float64
	// Invert returns the instant mapped to pixel offset px.
	Invert(px float64) int64
	// Domain returns the time range currently mapped onto the pixel span.
	Domain() timerange.Range
}

// Linear maps a time domain linearly onto [0, width] pixels.
type Linear struct {
	domain timerange.Range
	width  float64
}

// NewLinear returns a linear scale over domain spanning width pixels.
func NewLinear(domain timerange.Range, width int) *Linear {
	w := float64(width)
	if w < 0 {
		w = 0
	}
	return &Linear{domain: domain, width: w}
}

func (s *Linear) Domain() timerange.Range { return s.domain }

// Width returns the pixel span of the scale.
func (s *Linear) Width() int { return int(s.width) }

// SetDomain rescales to a new time domain, keeping the pixel span.
func (s *Linear) SetDomain(domain timerange.Range) { s.domain = domain }

func (s *Linear) Pixel(t int64) float64 {
	d := s.domain.Duration()
	if d == 0 {
		return 0
	}
	return float64(t-s.domain.Begin()) / float64(d) * s.width
}

func (s *Linear) Invert(px float64) int64 {
	if s.width == 0 {
		return s.domain.Begin()
	}
	return s.domain.Begin() + int64(px/s.width*float64(s.domain.Duration()))
}

// Viewport returns the visible time window of a scale spanning width pixels,
// Invert(0)..Invert(width).
func Viewport(s Scale, width int) timerange.Range {
	return timerange.New(s.Invert(0), s.Invert(float64(width)))
}
