// Package timerange provides the immutable time-range value type used
// throughout chartglass. A Range is a begin/end pair of epoch milliseconds;
// all widget and gesture code exchanges ranges by value.
package timerange

import (
	"fmt"
	"time"
)

// Range is an immutable [begin, end] pair of epoch milliseconds.
// The zero value is the empty range at the epoch.
type Range struct {
	begin int64
	end   int64
}

// New returns a Range over [begin, end] milliseconds. Inverted arguments are
// swapped so that Begin() <= End() always holds.
func New(begin, end int64) Range {
	if begin > end {
		begin, end = end, begin
	}
	return Range{begin: begin, end: end}
}

// FromTimes returns the Range spanning b..e with millisecond precision.
func FromTimes(b, e time.Time) Range {
	return New(b.UnixMilli(), e.UnixMilli())
}

// FromDuration returns the Range covering d up to now.
func FromDuration(d time.Duration, now time.Time) Range {
	return FromTimes(now.Add(-d), now)
}

func (r Range) Begin() int64 { return r.begin }
func (r Range) End() int64   { return r.end }

// Duration returns the range length in milliseconds.
func (r Range) Duration() int64 { return r.end - r.begin }

// Contains reports whether t lies inside the range, bounds included.
func (r Range) Contains(t int64) bool {
	return t >= r.begin && t <= r.end
}

// Disjoint reports whether r and other share no instant at all.
func (r Range) Disjoint(other Range) bool {
	return r.end < other.begin || r.begin > other.end
}

// Intersection returns the overlap of r and other. ok is false when the
// ranges are disjoint.
func (r Range) Intersection(other Range) (Range, bool) {
	if r.Disjoint(other) {
		return Range{}, false
	}
	b := r.begin
	if other.begin > b {
		b = other.begin
	}
	e := r.end
	if other.end < e {
		e = other.end
	}
	return Range{begin: b, end: e}, true
}

func (r Range) Equal(other Range) bool {
	return r.begin == other.begin && r.end == other.end
}

// Shift returns r translated by ms, preserving duration.
func (r Range) Shift(ms int64) Range {
	return Range{begin: r.begin + ms, end: r.end + ms}
}

// MarshalJSON encodes the range as [beginMs, endMs].
func (r Range) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", r.begin, r.end)), nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]",
		time.UnixMilli(r.begin).UTC().Format(time.RFC3339),
		time.UnixMilli(r.end).UTC().Format(time.RFC3339))
}
