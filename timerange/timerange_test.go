package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSwapsInverted(t *testing.T) {
	r := New(2000, 1000)
	if r.Begin() != 1000 || r.End() != 2000 {
		t.Fatalf("New(2000, 1000) = %v, want [1000, 2000]", r)
	}
}

func TestIntersection(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Range
		want   Range
		wantOK bool
	}{
		{"overlap", New(0, 100), New(50, 200), New(50, 100), true},
		{"contained", New(0, 100), New(25, 75), New(25, 75), true},
		{"touching", New(0, 100), New(100, 200), New(100, 100), true},
		{"disjoint", New(0, 100), New(101, 200), Range{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Intersection(tc.b)
			assert.Equal(t, tc.wantOK, ok)
			if ok {
				assert.True(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
			}
		})
	}
}

func TestDisjointSymmetry(t *testing.T) {
	a := New(0, 100)
	b := New(150, 300)
	assert.True(t, a.Disjoint(b))
	assert.True(t, b.Disjoint(a))
	assert.False(t, a.Disjoint(New(100, 120)))
}

func TestShiftPreservesDuration(t *testing.T) {
	r := New(1000, 2500)
	s := r.Shift(-400)
	assert.Equal(t, r.Duration(), s.Duration())
	assert.Equal(t, int64(600), s.Begin())
}

func TestMarshalJSON(t *testing.T) {
	b, err := New(300, 700).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "[300,700]", string(b))
}

func TestFromDuration(t *testing.T) {
	now := time.UnixMilli(10_000)
	r := FromDuration(2*time.Second, now)
	assert.Equal(t, int64(8000), r.Begin())
	assert.Equal(t, int64(10_000), r.End())
}
