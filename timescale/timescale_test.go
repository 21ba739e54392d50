package timescale

import (
	"testing"

	"chartglass/timerange"

	"github.com/stretchr/testify/assert"
)

func TestLinearRoundTrip(t *testing.T) {
	s := NewLinear(timerange.New(0, 1000), 500)

	assert.Equal(t, 0.0, s.Pixel(0))
	assert.Equal(t, 500.0, s.Pixel(1000))
	assert.Equal(t, 250.0, s.Pixel(500))

	assert.Equal(t, int64(0), s.Invert(0))
	assert.Equal(t, int64(1000), s.Invert(500))
	assert.Equal(t, int64(500), s.Invert(250))
}

func TestLinearInvertBeyondEdges(t *testing.T) {
	s := NewLinear(timerange.New(1000, 2000), 100)
	if got := s.Invert(-10); got >= 1000 {
		t.Fatalf("Invert(-10) = %d, want below domain begin", got)
	}
	if got := s.Invert(110); got <= 2000 {
		t.Fatalf("Invert(110) = %d, want above domain end", got)
	}
}

func TestLinearDegenerate(t *testing.T) {
	// Zero-duration domain and zero width must not divide by zero.
	s := NewLinear(timerange.New(500, 500), 100)
	assert.Equal(t, 0.0, s.Pixel(500))

	z := NewLinear(timerange.New(0, 1000), 0)
	assert.Equal(t, int64(0), z.Invert(50))
}

func TestViewport(t *testing.T) {
	s := NewLinear(timerange.New(0, 1000), 200)
	v := Viewport(s, 200)
	assert.True(t, v.Equal(timerange.New(0, 1000)), "viewport %v", v)
}
